package agent

import (
	"fmt"
	"strconv"

	"claims-decision-orchestrator/internal/domain"
)

// ComposeClaimMessage serializes a submission into the single instruction
// consumed by the claims coordinator agent. The coordinator interprets
// natural language, not a strict schema; optional fields render as empty
// segments. Total function, no validation.
func ComposeClaimMessage(sub domain.ClaimSubmission) string {
	return fmt.Sprintf(
		"Process new claim submission: Member ID: %s, Member Name: %s, Policy Number: %s, "+
			"Claim Type: %s, Claimed Amount: $%s, Service Dates: %s to %s, Provider: %s, "+
			"Provider Phone: %s, Diagnosis: %s, Documents submitted: %s.",
		sub.MemberID,
		sub.MemberName,
		sub.PolicyNumber,
		sub.ClaimType,
		formatAmount(sub.ClaimedAmount),
		sub.ServiceDateFrom,
		sub.ServiceDateTo,
		sub.Provider,
		sub.ProviderPhone,
		sub.Diagnosis,
		sub.Documents,
	)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
