package domain

type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusApproved ClaimStatus = "approved"
	ClaimStatusDenied   ClaimStatus = "denied"
	ClaimStatusReview   ClaimStatus = "review"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type ClaimType string

const (
	ClaimTypeHospitalAdmission ClaimType = "Hospital Admission"
	ClaimTypeOutpatientSurgery ClaimType = "Outpatient Surgery"
	ClaimTypeEmergencyRoom     ClaimType = "Emergency Room"
	ClaimTypeDiagnosticTests   ClaimType = "Diagnostic Tests"
	ClaimTypePrescription      ClaimType = "Prescription Medication"
	ClaimTypePhysicalTherapy   ClaimType = "Physical Therapy"
	ClaimTypeMentalHealth      ClaimType = "Mental Health Services"
	ClaimTypeDentalServices    ClaimType = "Dental Services"
)

func ClaimTypes() []ClaimType {
	return []ClaimType{
		ClaimTypeHospitalAdmission,
		ClaimTypeOutpatientSurgery,
		ClaimTypeEmergencyRoom,
		ClaimTypeDiagnosticTests,
		ClaimTypePrescription,
		ClaimTypePhysicalTherapy,
		ClaimTypeMentalHealth,
		ClaimTypeDentalServices,
	}
}

// ClaimSubmission is the structured intake form payload. It is treated as
// immutable once composed into a coordinator message.
type ClaimSubmission struct {
	MemberID        string  `json:"member_id"`
	MemberName      string  `json:"member_name"`
	PolicyNumber    string  `json:"policy_number"`
	ClaimType       string  `json:"claim_type"`
	ClaimedAmount   float64 `json:"claimed_amount"`
	ServiceDateFrom string  `json:"service_date_from"`
	ServiceDateTo   string  `json:"service_date_to"`
	Provider        string  `json:"provider"`
	ProviderPhone   string  `json:"provider_phone"`
	Diagnosis       string  `json:"diagnosis"`
	Documents       string  `json:"documents"`
}

// ClaimRecord is the queue-visible representation of a claim. Records are
// appended most-recent-first and never mutated in place.
type ClaimRecord struct {
	ID             string      `json:"id"`
	MemberName     string      `json:"member_name"`
	MemberID       string      `json:"member_id"`
	ClaimType      string      `json:"claim_type"`
	Amount         float64     `json:"amount"`
	Status         ClaimStatus `json:"status"`
	SubmissionDate string      `json:"submission_date"`
	Priority       Priority    `json:"priority"`
	ServiceDate    string      `json:"service_date,omitempty"`
	Provider       string      `json:"provider,omitempty"`
}
