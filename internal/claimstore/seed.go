package claimstore

import "claims-decision-orchestrator/internal/domain"

// SeedClaims returns the demonstration queue the service boots with.
func SeedClaims() []domain.ClaimRecord {
	return []domain.ClaimRecord{
		{
			ID:             "CLM-001",
			MemberName:     "Sarah Johnson",
			MemberID:       "MBR-2024-5678",
			ClaimType:      string(domain.ClaimTypeHospitalAdmission),
			Amount:         12500,
			Status:         domain.ClaimStatusPending,
			SubmissionDate: "2024-12-20",
			Priority:       domain.PriorityHigh,
			ServiceDate:    "2024-12-15 to 2024-12-18",
			Provider:       "St. Mary's Hospital",
		},
		{
			ID:             "CLM-002",
			MemberName:     "Michael Chen",
			MemberID:       "MBR-2024-3421",
			ClaimType:      string(domain.ClaimTypeOutpatientSurgery),
			Amount:         4200,
			Status:         domain.ClaimStatusApproved,
			SubmissionDate: "2024-12-18",
			Priority:       domain.PriorityMedium,
			ServiceDate:    "2024-12-12",
			Provider:       "City Medical Center",
		},
		{
			ID:             "CLM-003",
			MemberName:     "Emily Rodriguez",
			MemberID:       "MBR-2024-9012",
			ClaimType:      string(domain.ClaimTypeDiagnosticTests),
			Amount:         850,
			Status:         domain.ClaimStatusDenied,
			SubmissionDate: "2024-12-15",
			Priority:       domain.PriorityLow,
			ServiceDate:    "2024-12-10",
			Provider:       "HealthLab Diagnostics",
		},
		{
			ID:             "CLM-004",
			MemberName:     "David Kim",
			MemberID:       "MBR-2024-7843",
			ClaimType:      string(domain.ClaimTypeEmergencyRoom),
			Amount:         3200,
			Status:         domain.ClaimStatusReview,
			SubmissionDate: "2024-12-19",
			Priority:       domain.PriorityHigh,
			ServiceDate:    "2024-12-18",
			Provider:       "General Hospital ER",
		},
		{
			ID:             "CLM-005",
			MemberName:     "Lisa Thompson",
			MemberID:       "MBR-2024-2156",
			ClaimType:      string(domain.ClaimTypePrescription),
			Amount:         450,
			Status:         domain.ClaimStatusApproved,
			SubmissionDate: "2024-12-17",
			Priority:       domain.PriorityLow,
			ServiceDate:    "2024-12-16",
			Provider:       "Pharmacy Plus",
		},
	}
}
