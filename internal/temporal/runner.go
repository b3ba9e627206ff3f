package temporal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/client"

	"claims-decision-orchestrator/internal/domain"
)

// ClaimRun is a handle on one in-flight claim intake workflow.
type ClaimRun interface {
	WorkflowID() string
	Result(ctx context.Context) (ClaimIntakeResult, error)
}

// Runner starts claim intake workflows and answers stage queries. It is
// the orchestration boundary the HTTP layer talks to.
type Runner struct {
	Client           client.Client
	TaskQueue        string
	WorkflowIDPrefix string
	StageDelay       time.Duration
}

func (r *Runner) Start(ctx context.Context, sub domain.ClaimSubmission) (ClaimRun, error) {
	workflowID := fmt.Sprintf("%s-%s", r.WorkflowIDPrefix, uuid.NewString())
	run, err := r.Client.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: r.TaskQueue,
	}, ClaimIntakeWorkflowName, ClaimIntakeInput{
		Submission: sub,
		StageDelay: r.StageDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("start claim intake workflow: %w", err)
	}
	return &claimRun{id: workflowID, run: run}, nil
}

func (r *Runner) Stage(ctx context.Context, workflowID string) (domain.Stage, error) {
	resp, err := r.Client.QueryWorkflow(ctx, workflowID, "", StageQueryName)
	if err != nil {
		return domain.StageIdle, err
	}
	var stage domain.Stage
	if err := resp.Get(&stage); err != nil {
		return domain.StageIdle, err
	}
	return stage, nil
}

type claimRun struct {
	id  string
	run client.WorkflowRun
}

func (c *claimRun) WorkflowID() string {
	return c.id
}

func (c *claimRun) Result(ctx context.Context) (ClaimIntakeResult, error) {
	var result ClaimIntakeResult
	if err := c.run.Get(ctx, &result); err != nil {
		return ClaimIntakeResult{}, err
	}
	return result, nil
}
