package agent

import (
	"strings"
	"testing"

	"claims-decision-orchestrator/internal/domain"
)

func TestComposeClaimMessage(t *testing.T) {
	sub := domain.ClaimSubmission{
		MemberID:        "MBR-2024-5678",
		MemberName:      "Sarah Johnson",
		PolicyNumber:    "POL-9001",
		ClaimType:       string(domain.ClaimTypeHospitalAdmission),
		ClaimedAmount:   12500,
		ServiceDateFrom: "2024-12-15",
		ServiceDateTo:   "2024-12-18",
		Provider:        "St. Mary's Hospital",
		ProviderPhone:   "555-0101",
		Diagnosis:       "Acute appendicitis",
		Documents:       "admission summary, itemized bill",
	}

	msg := ComposeClaimMessage(sub)

	for _, part := range []string{
		"Process new claim submission:",
		"Member ID: MBR-2024-5678",
		"Member Name: Sarah Johnson",
		"Policy Number: POL-9001",
		"Claim Type: Hospital Admission",
		"Claimed Amount: $12500",
		"Service Dates: 2024-12-15 to 2024-12-18",
		"Provider: St. Mary's Hospital",
		"Provider Phone: 555-0101",
		"Diagnosis: Acute appendicitis",
		"Documents submitted: admission summary, itemized bill.",
	} {
		if !strings.Contains(msg, part) {
			t.Fatalf("message missing %q:\n%s", part, msg)
		}
	}
}

func TestComposeClaimMessageEmptyOptionalFields(t *testing.T) {
	msg := ComposeClaimMessage(domain.ClaimSubmission{
		MemberID:      "MBR-1",
		MemberName:    "A",
		ClaimType:     "Dental Services",
		ClaimedAmount: 120.5,
	})

	if !strings.Contains(msg, "Claimed Amount: $120.5") {
		t.Fatalf("amount not rendered: %s", msg)
	}
	// Optional fields render as empty segments rather than being omitted.
	if !strings.Contains(msg, "Provider Phone: ,") {
		t.Fatalf("expected empty provider phone segment: %s", msg)
	}
	if !strings.Contains(msg, "Service Dates:  to ,") {
		t.Fatalf("expected empty service date segments: %s", msg)
	}
}
