package temporal

import (
	"context"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/converter"
	"go.temporal.io/sdk/testsuite"

	"claims-decision-orchestrator/internal/agent"
	"claims-decision-orchestrator/internal/domain"
)

type activityTrace struct {
	mu sync.Mutex

	startedOrder   []string
	completedOrder []string

	adjudicateIn  *AdjudicateClaimInput
	adjudicateOut *AdjudicateClaimOutput
	appendIn      *AppendClaimInput
	appendOut     *AppendClaimOutput
}

func (t *activityTrace) recordStarted(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.startedOrder = append(t.startedOrder, name)
}

func (t *activityTrace) recordCompleted(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.completedOrder = append(t.completedOrder, name)
}

var _ = Describe("ClaimIntakeWorkflow blackbox happy path", func() {
	It("submits a claim, adjudicates it, and lands the derived record first in the queue", func() {
		var suite testsuite.WorkflowTestSuite
		env := suite.NewTestWorkflowEnvironment()

		store := newFakeStore(domain.ClaimRecord{ID: "CLM-001", MemberName: "Sarah Johnson"})
		svc := &stubAgent{envelope: agent.Envelope{
			Success: true,
			Response: []byte(`{
				"claim_id": "CLM-2024-1001",
				"validation_results": {"status": "complete", "summary": "all documents present", "issues": []},
				"eligibility_results": {"status": "eligible", "eligible_amount": 12000, "summary": "active coverage"},
				"final_recommendation": {"decision": "APPROVE", "payable_amount": 12000, "confidence": "high", "rationale": "covered admission"},
				"workflow_status": "completed",
				"next_actions": ["issue payment"],
				"processing_notes": "straight-through"
			}`),
		}}
		acts := &Activities{
			Store:              store,
			Agent:              svc,
			CoordinatorAgentID: "coordinator-1",
			AgentTimeout:       5 * time.Second,
		}

		trace := &activityTrace{}

		env.SetOnActivityStartedListener(func(info *activity.Info, _ context.Context, args converter.EncodedValues) {
			trace.recordStarted(info.ActivityType.Name)

			switch info.ActivityType.Name {
			case "AdjudicateClaimActivity":
				var in AdjudicateClaimInput
				_ = args.Get(&in)
				trace.mu.Lock()
				trace.adjudicateIn = &in
				trace.mu.Unlock()
			case "AppendClaimActivity":
				var in AppendClaimInput
				_ = args.Get(&in)
				trace.mu.Lock()
				trace.appendIn = &in
				trace.mu.Unlock()
			}
		})

		env.SetOnActivityCompletedListener(func(info *activity.Info, result converter.EncodedValue, _ error) {
			trace.recordCompleted(info.ActivityType.Name)

			switch info.ActivityType.Name {
			case "AdjudicateClaimActivity":
				var out AdjudicateClaimOutput
				_ = result.Get(&out)
				trace.mu.Lock()
				trace.adjudicateOut = &out
				trace.mu.Unlock()
			case "AppendClaimActivity":
				var out AppendClaimOutput
				_ = result.Get(&out)
				trace.mu.Lock()
				trace.appendOut = &out
				trace.mu.Unlock()
			}
		})

		env.RegisterWorkflow(ClaimIntakeWorkflow)
		env.RegisterActivity(acts.AdjudicateClaimActivity)
		env.RegisterActivity(acts.AppendClaimActivity)

		submission := domain.ClaimSubmission{
			MemberID:        "MBR-2024-5678",
			MemberName:      "Sarah Johnson",
			PolicyNumber:    "POL-9001",
			ClaimType:       string(domain.ClaimTypeHospitalAdmission),
			ClaimedAmount:   12500,
			ServiceDateFrom: "2024-12-15",
			ServiceDateTo:   "2024-12-18",
			Provider:        "St. Mary's Hospital",
		}

		By("triggering the workflow execution")
		env.ExecuteWorkflow(ClaimIntakeWorkflow, ClaimIntakeInput{Submission: submission})

		By("validating workflow completes successfully")
		Expect(env.IsWorkflowCompleted()).To(BeTrue())
		Expect(env.GetWorkflowError()).ToNot(HaveOccurred())

		var result ClaimIntakeResult
		Expect(env.GetWorkflowResult(&result)).To(Succeed())

		By("validating the single coordinator call and its correlation context")
		Expect(trace.startedOrder).To(Equal([]string{
			"AdjudicateClaimActivity",
			"AppendClaimActivity",
		}))
		Expect(trace.completedOrder).To(Equal([]string{
			"AdjudicateClaimActivity",
			"AppendClaimActivity",
		}))

		Expect(svc.calls).To(HaveLen(1))
		Expect(svc.calls[0].UserID).To(Equal("user-MBR-2024-5678"))
		Expect(svc.calls[0].SessionID).To(HavePrefix("claim-"))
		Expect(svc.calls[0].Message).To(ContainSubstring("Claim Type: Hospital Admission"))

		By("validating the normalized decision")
		Expect(trace.adjudicateIn).ToNot(BeNil())
		Expect(trace.adjudicateIn.Submission).To(Equal(submission))
		Expect(trace.adjudicateOut).ToNot(BeNil())
		Expect(trace.adjudicateOut.Decision.ClaimID).To(Equal("CLM-2024-1001"))
		Expect(trace.adjudicateOut.Decision.Recommendation.Decision).To(Equal(domain.DecisionApprove))
		Expect(trace.adjudicateOut.Decision.Recommendation.PayableAmount).To(Equal(float64(12000)))
		Expect(trace.adjudicateOut.Decision.Eligibility.Status).To(Equal(domain.EligibilityEligible))

		By("validating the derived record and queue ordering")
		Expect(trace.appendIn).ToNot(BeNil())
		Expect(trace.appendIn.Decision.ClaimID).To(Equal("CLM-2024-1001"))
		Expect(trace.appendOut).ToNot(BeNil())
		Expect(trace.appendOut.Record.Status).To(Equal(domain.ClaimStatusApproved))
		Expect(trace.appendOut.Record.Priority).To(Equal(domain.PriorityHigh))

		Expect(result.Record).To(Equal(trace.appendOut.Record))
		Expect(result.Decision.ClaimID).To(Equal("CLM-2024-1001"))

		claims := store.list()
		Expect(claims).To(HaveLen(2))
		Expect(claims[0].ID).To(Equal("CLM-2024-1001"))
		Expect(claims[0].MemberName).To(Equal("Sarah Johnson"))
		Expect(claims[1].ID).To(Equal("CLM-001"))

		By("validating the stage tracker returned to idle")
		resp, err := env.QueryWorkflow(StageQueryName)
		Expect(err).ToNot(HaveOccurred())
		var stage domain.Stage
		Expect(resp.Get(&stage)).To(Succeed())
		Expect(stage).To(Equal(domain.StageIdle))
	})
})
