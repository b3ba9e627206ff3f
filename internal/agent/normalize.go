package agent

import (
	"encoding/json"
	"fmt"
	"time"

	"claims-decision-orchestrator/internal/domain"
)

// ServiceError carries the failure message of a Failure envelope verbatim.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// coordinatorPayload mirrors the coordinator's loose response shape. Every
// field beyond the top level is optional; pointers distinguish absent from
// zero so each field can be defaulted independently.
type coordinatorPayload struct {
	ClaimID           *string             `json:"claim_id"`
	ClaimSummary      *claimSummary       `json:"claim_summary"`
	ValidationResults *validationResults  `json:"validation_results"`
	EligibilityResult *eligibilityResults `json:"eligibility_results"`
	Recommendation    *recommendation     `json:"final_recommendation"`
	WorkflowStatus    *string             `json:"workflow_status"`
	NextActions       []string            `json:"next_actions"`
	ProcessingNotes   *string             `json:"processing_notes"`
}

type claimSummary struct {
	ClaimedAmount *float64 `json:"claimed_amount"`
}

type validationResults struct {
	Status  *string  `json:"status"`
	Summary *string  `json:"summary"`
	Issues  []string `json:"issues"`
}

type eligibilityResults struct {
	Status         *string  `json:"status"`
	EligibleAmount *float64 `json:"eligible_amount"`
	Summary        *string  `json:"summary"`
}

type recommendation struct {
	Decision      *string  `json:"decision"`
	PayableAmount *float64 `json:"payable_amount"`
	Confidence    *string  `json:"confidence"`
	Rationale     *string  `json:"rationale"`
}

// Normalize maps a decision envelope onto the canonical Decision record.
// A Failure envelope yields a ServiceError with the message untouched. A
// Success payload is normalized totally: any missing sub-field is replaced
// by its documented default, never treated as a hard error.
func Normalize(env Envelope) (domain.Decision, error) {
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "decision service reported failure without a message"
		}
		return domain.Decision{}, &ServiceError{Message: msg}
	}

	var payload coordinatorPayload
	if len(env.Response) > 0 {
		if err := json.Unmarshal(env.Response, &payload); err != nil {
			return domain.Decision{}, fmt.Errorf("normalize decision payload: %w", err)
		}
	}

	decision := domain.Decision{
		ClaimID: strOr(payload.ClaimID, fallbackClaimID()),
		Validation: domain.ValidationFindings{
			Status: domain.ValidationIncomplete,
			Issues: []string{},
		},
		Eligibility: domain.EligibilityFindings{
			Status: domain.EligibilityPending,
		},
		Recommendation: domain.Recommendation{
			Decision:   domain.DecisionReview,
			Confidence: domain.ConfidenceLow,
		},
		WorkflowStatus:  strOr(payload.WorkflowStatus, ""),
		NextActions:     sliceOr(payload.NextActions),
		ProcessingNotes: strOr(payload.ProcessingNotes, ""),
	}

	if s := payload.ClaimSummary; s != nil {
		decision.Summary.ClaimedAmount = amountOr(s.ClaimedAmount)
	}
	if v := payload.ValidationResults; v != nil {
		decision.Validation.Status = domain.ValidationStatus(strOr(v.Status, string(domain.ValidationIncomplete)))
		decision.Validation.Summary = strOr(v.Summary, "")
		decision.Validation.Issues = sliceOr(v.Issues)
	}
	if e := payload.EligibilityResult; e != nil {
		decision.Eligibility.Status = domain.EligibilityStatus(strOr(e.Status, string(domain.EligibilityPending)))
		decision.Eligibility.EligibleAmount = amountOr(e.EligibleAmount)
		decision.Eligibility.Summary = strOr(e.Summary, "")
	}
	if r := payload.Recommendation; r != nil {
		decision.Recommendation.Decision = domain.RecommendationDecision(strOr(r.Decision, string(domain.DecisionReview)))
		decision.Recommendation.PayableAmount = amountOr(r.PayableAmount)
		decision.Recommendation.Confidence = domain.ConfidenceLevel(strOr(r.Confidence, string(domain.ConfidenceLow)))
		decision.Recommendation.Rationale = strOr(r.Rationale, "")
	}

	return decision, nil
}

// fallbackClaimID is time-derived, unique within process lifetime only.
func fallbackClaimID() string {
	return fmt.Sprintf("CLM-%d", time.Now().UnixMilli())
}

func strOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func amountOr(v *float64) float64 {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}

func sliceOr(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
