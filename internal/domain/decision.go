package domain

type ValidationStatus string

const (
	ValidationComplete   ValidationStatus = "complete"
	ValidationIncomplete ValidationStatus = "incomplete"
	ValidationInvalid    ValidationStatus = "invalid"
)

type EligibilityStatus string

const (
	EligibilityEligible   EligibilityStatus = "eligible"
	EligibilityIneligible EligibilityStatus = "ineligible"
	EligibilityPending    EligibilityStatus = "pending"
)

type RecommendationDecision string

const (
	DecisionApprove RecommendationDecision = "APPROVE"
	DecisionDeny    RecommendationDecision = "DENY"
	DecisionReview  RecommendationDecision = "REVIEW"
)

type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

// ClaimSummary echoes the coordinator's reading of the submitted claim.
type ClaimSummary struct {
	ClaimedAmount float64 `json:"claimed_amount"`
}

type ValidationFindings struct {
	Status  ValidationStatus `json:"status"`
	Summary string           `json:"summary"`
	Issues  []string         `json:"issues"`
}

type EligibilityFindings struct {
	Status         EligibilityStatus `json:"status"`
	EligibleAmount float64           `json:"eligible_amount"`
	Summary        string            `json:"summary"`
}

type Recommendation struct {
	Decision      RecommendationDecision `json:"decision"`
	PayableAmount float64                `json:"payable_amount"`
	Confidence    ConfidenceLevel        `json:"confidence"`
	Rationale     string                 `json:"rationale"`
}

// Decision is the canonical adjudication record. Every field carries a
// defined default, so a partially populated coordinator payload never
// surfaces an absent value downstream.
type Decision struct {
	ClaimID         string              `json:"claim_id"`
	Summary         ClaimSummary        `json:"claim_summary"`
	Validation      ValidationFindings  `json:"validation"`
	Eligibility     EligibilityFindings `json:"eligibility"`
	Recommendation  Recommendation      `json:"recommendation"`
	WorkflowStatus  string              `json:"workflow_status"`
	NextActions     []string            `json:"next_actions"`
	ProcessingNotes string              `json:"processing_notes"`
}
