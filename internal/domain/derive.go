package domain

import (
	"fmt"
	"time"
)

const submissionDateLayout = "2006-01-02"

// DeriveStatus maps a coordinator recommendation onto a queue status.
// Any unrecognized value lands on review, the most conservative outcome.
func DeriveStatus(decision RecommendationDecision) ClaimStatus {
	switch decision {
	case DecisionApprove:
		return ClaimStatusApproved
	case DecisionDeny:
		return ClaimStatusDenied
	default:
		return ClaimStatusReview
	}
}

// DerivePriority buckets a claim by amount. Boundary values belong to the
// lower tier: exactly 5000 is medium, exactly 2000 is low.
func DerivePriority(amount float64) Priority {
	switch {
	case amount > 5000:
		return PriorityHigh
	case amount > 2000:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// DeriveRecord builds the queue entry for a processed claim from the
// normalized decision plus the original submission. The submission date
// comes from the supplied clock reading, not from the caller's form data.
func DeriveRecord(sub ClaimSubmission, decision Decision, now time.Time) ClaimRecord {
	return ClaimRecord{
		ID:             decision.ClaimID,
		MemberName:     sub.MemberName,
		MemberID:       sub.MemberID,
		ClaimType:      sub.ClaimType,
		Amount:         sub.ClaimedAmount,
		Status:         DeriveStatus(decision.Recommendation.Decision),
		SubmissionDate: now.Format(submissionDateLayout),
		Priority:       DerivePriority(sub.ClaimedAmount),
		ServiceDate:    formatServiceDate(sub.ServiceDateFrom, sub.ServiceDateTo),
		Provider:       sub.Provider,
	}
}

func formatServiceDate(from, to string) string {
	if from == "" && to == "" {
		return ""
	}
	return fmt.Sprintf("%s to %s", from, to)
}
