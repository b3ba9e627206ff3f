package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"claims-decision-orchestrator/internal/claimstore"
	"claims-decision-orchestrator/internal/config"
	"claims-decision-orchestrator/internal/domain"
	"claims-decision-orchestrator/internal/observability"
	apptemporal "claims-decision-orchestrator/internal/temporal"
)

// ClaimPipeline is the orchestration boundary: it starts one claim intake
// workflow and answers stage queries for an in-flight one.
type ClaimPipeline interface {
	Start(ctx context.Context, sub domain.ClaimSubmission) (apptemporal.ClaimRun, error)
	Stage(ctx context.Context, workflowID string) (domain.Stage, error)
}

type Handler struct {
	cfg      config.Config
	store    *claimstore.Store
	pipeline ClaimPipeline

	// One submission at a time: the gate plus the stage query jointly act
	// as the mutual-exclusion and progress surface for callers.
	mu               sync.Mutex
	inflight         bool
	activeWorkflowID string
}

func NewHandler(cfg config.Config, store *claimstore.Store, pipeline ClaimPipeline) *Handler {
	return &Handler{cfg: cfg, store: store, pipeline: pipeline}
}

type submitResponse struct {
	WorkflowID string              `json:"workflow_id"`
	Claim      domain.ClaimRecord  `json:"claim"`
	Decision   domain.Decision     `json:"decision"`
	Metrics    domain.QueueMetrics `json:"queue_metrics"`
}

type listResponse struct {
	Items []domain.ClaimRecord `json:"items"`
	Total int                  `json:"total"`
}

type processingResponse struct {
	Active     bool   `json:"active"`
	WorkflowID string `json:"workflow_id,omitempty"`
	Stage      int    `json:"stage"`
	StageName  string `json:"stage_name"`
}

func (h *Handler) SubmitClaim(w http.ResponseWriter, r *http.Request) {
	var sub domain.ClaimSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json"})
		return
	}

	if missing := domain.ValidateSubmission(sub); len(missing) > 0 {
		observability.RecordSubmission("rejected")
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "missing required fields",
			"missing": missing,
		})
		return
	}

	if !h.acquire() {
		writeJSON(w, http.StatusConflict, map[string]any{"error": "a claim submission is already in progress"})
		return
	}
	defer h.release()

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.cfg.SubmitTimeoutSec)*time.Second)
	defer cancel()

	run, err := h.pipeline.Start(ctx, sub)
	if err != nil {
		observability.RecordSubmission("failed")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to start claim processing"})
		return
	}
	h.setActiveWorkflowID(run.WorkflowID())

	result, err := run.Result(ctx)
	if err != nil {
		observability.RecordSubmission("failed")
		writeJSON(w, http.StatusBadGateway, map[string]any{"error": err.Error()})
		return
	}

	observability.RecordSubmission("completed")
	writeJSON(w, http.StatusOK, submitResponse{
		WorkflowID: run.WorkflowID(),
		Claim:      result.Record,
		Decision:   result.Decision,
		Metrics:    domain.ComputeMetrics(h.store.List()),
	})
}

func (h *Handler) ListClaims(w http.ResponseWriter, r *http.Request) {
	statusFilter := r.URL.Query().Get("status")
	if statusFilter == "" {
		statusFilter = domain.StatusFilterAll
	}
	query := r.URL.Query().Get("q")

	items := domain.FilterClaims(h.store.List(), statusFilter, query)
	writeJSON(w, http.StatusOK, listResponse{Items: items, Total: len(items)})
}

func (h *Handler) QueueMetrics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.ComputeMetrics(h.store.List()))
}

func (h *Handler) Processing(w http.ResponseWriter, r *http.Request) {
	workflowID, active := h.currentWorkflowID()
	if !active {
		writeJSON(w, http.StatusOK, processingResponse{Active: false, Stage: int(domain.StageIdle), StageName: domain.StageIdle.String()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	stage, err := h.pipeline.Stage(ctx, workflowID)
	if err != nil {
		// The workflow may have just completed; report active without a stage.
		writeJSON(w, http.StatusOK, processingResponse{Active: true, WorkflowID: workflowID, Stage: int(domain.StageIdle), StageName: domain.StageIdle.String()})
		return
	}
	writeJSON(w, http.StatusOK, processingResponse{Active: true, WorkflowID: workflowID, Stage: int(stage), StageName: stage.String()})
}

func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) acquire() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.inflight {
		return false
	}
	h.inflight = true
	return true
}

func (h *Handler) release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.inflight = false
	h.activeWorkflowID = ""
}

func (h *Handler) setActiveWorkflowID(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.activeWorkflowID = id
}

func (h *Handler) currentWorkflowID() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.activeWorkflowID, h.inflight && h.activeWorkflowID != ""
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
