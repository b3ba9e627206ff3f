package temporal

import (
	"context"
	"fmt"
	"time"

	"claims-decision-orchestrator/internal/agent"
	"claims-decision-orchestrator/internal/domain"
	"claims-decision-orchestrator/internal/observability"
)

// ClaimStore is the single-point append boundary of the claim queue.
type ClaimStore interface {
	Prepend(rec domain.ClaimRecord)
}

type Activities struct {
	Store              ClaimStore
	Agent              agent.Client
	CoordinatorAgentID string
	AgentTimeout       time.Duration
}

type AdjudicateClaimInput struct {
	Submission domain.ClaimSubmission
}

type AdjudicateClaimOutput struct {
	Decision domain.Decision
}

type AppendClaimInput struct {
	Submission domain.ClaimSubmission
	Decision   domain.Decision
}

type AppendClaimOutput struct {
	Record domain.ClaimRecord
}

// AdjudicateClaimActivity composes the coordinator message, issues the one
// real decision service call with correlation context, and normalizes the
// envelope. It never touches the claim queue.
func (a *Activities) AdjudicateClaimActivity(ctx context.Context, input AdjudicateClaimInput) (AdjudicateClaimOutput, error) {
	message := agent.ComposeClaimMessage(input.Submission)

	started := time.Now()
	envelope, err := a.Agent.Invoke(ctx, agent.InvokeRequest{
		Message:   message,
		AgentID:   a.CoordinatorAgentID,
		UserID:    fmt.Sprintf("user-%s", input.Submission.MemberID),
		SessionID: fmt.Sprintf("claim-%d", time.Now().UnixMilli()),
		Timeout:   a.AgentTimeout,
	})
	elapsed := time.Since(started).Seconds()
	if err != nil {
		observability.RecordAgentCall("error", elapsed)
		return AdjudicateClaimOutput{}, err
	}
	if envelope.Success {
		observability.RecordAgentCall("success", elapsed)
	} else {
		observability.RecordAgentCall("failure", elapsed)
	}

	decision, err := agent.Normalize(envelope)
	if err != nil {
		return AdjudicateClaimOutput{}, err
	}

	observability.RecordDecisionOutcome(string(decision.Recommendation.Decision))
	return AdjudicateClaimOutput{Decision: decision}, nil
}

// AppendClaimActivity derives the queue record and prepends it. Runs only
// after normalization succeeded; exactly once per successful submission.
func (a *Activities) AppendClaimActivity(_ context.Context, input AppendClaimInput) (AppendClaimOutput, error) {
	rec := domain.DeriveRecord(input.Submission, input.Decision, time.Now())
	a.Store.Prepend(rec)
	return AppendClaimOutput{Record: rec}, nil
}
