package temporal

import (
	"fmt"
	"strings"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"claims-decision-orchestrator/internal/domain"
)

const ClaimIntakeWorkflowName = "ClaimIntakeWorkflow"

// StageQueryName exposes the current processing stage of an in-flight
// claim via a workflow query.
const StageQueryName = "currentStage"

const defaultStageDelay = time.Second

type ClaimIntakeInput struct {
	Submission domain.ClaimSubmission
	// StageDelay is the wait per simulated assessment stage. The
	// coordinator performs the real multi-stage assessment server-side in
	// one call; these timers only make progress observable to callers.
	StageDelay time.Duration
}

type ClaimIntakeResult struct {
	Decision domain.Decision
	Record   domain.ClaimRecord
}

// ClaimIntakeWorkflow drives one claim submission end to end: staged
// progress timers, a single coordinator call, normalization, and exactly
// one claim-queue append on success. Any failure leaves the queue
// untouched and the stage tracker back at idle.
func ClaimIntakeWorkflow(ctx workflow.Context, input ClaimIntakeInput) (ClaimIntakeResult, error) {
	tracker := domain.NewStageTracker()
	if err := workflow.SetQueryHandler(ctx, StageQueryName, func() (domain.Stage, error) {
		return tracker.Current(), nil
	}); err != nil {
		return ClaimIntakeResult{}, err
	}

	if missing := domain.ValidateSubmission(input.Submission); len(missing) > 0 {
		return ClaimIntakeResult{}, temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("submission is missing required fields: %s", strings.Join(missing, ", ")),
			"PreconditionError", nil)
	}

	delay := input.StageDelay
	if delay <= 0 {
		delay = defaultStageDelay
	}

	// Validation, eligibility and recommendation sub-phases run inside the
	// coordinator; the tracker walks them so callers can watch progress.
	for stage := domain.StageValidating; stage <= domain.StageRecommending; stage++ {
		if err := tracker.Advance(); err != nil {
			return ClaimIntakeResult{}, err
		}
		if err := workflow.Sleep(ctx, delay); err != nil {
			tracker.Reset()
			return ClaimIntakeResult{}, err
		}
	}
	if err := tracker.Advance(); err != nil {
		return ClaimIntakeResult{}, err
	}

	var adjudicated AdjudicateClaimOutput
	err := workflow.ExecuteActivity(
		mustActivityContext(ctx, ActivityPolicyAdjudicateClaim),
		(*Activities).AdjudicateClaimActivity,
		AdjudicateClaimInput{Submission: input.Submission},
	).Get(ctx, &adjudicated)
	if err != nil {
		tracker.Reset()
		return ClaimIntakeResult{}, err
	}

	var appended AppendClaimOutput
	err = workflow.ExecuteActivity(
		mustActivityContext(ctx, ActivityPolicyAppendClaim),
		(*Activities).AppendClaimActivity,
		AppendClaimInput{Submission: input.Submission, Decision: adjudicated.Decision},
	).Get(ctx, &appended)
	if err != nil {
		tracker.Reset()
		return ClaimIntakeResult{}, err
	}

	tracker.Reset()
	return ClaimIntakeResult{Decision: adjudicated.Decision, Record: appended.Record}, nil
}
