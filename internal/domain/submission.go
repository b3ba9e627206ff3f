package domain

// ValidateSubmission reports the required fields a submission is missing.
// Submission is blocked (not merely warned) while this is non-empty.
func ValidateSubmission(sub ClaimSubmission) []string {
	missing := make([]string, 0)

	if sub.MemberID == "" {
		missing = append(missing, "member_id")
	}
	if sub.MemberName == "" {
		missing = append(missing, "member_name")
	}
	if sub.ClaimType == "" {
		missing = append(missing, "claim_type")
	}
	if sub.ClaimedAmount <= 0 {
		missing = append(missing, "claimed_amount")
	}

	return missing
}

func SubmissionComplete(sub ClaimSubmission) bool {
	return len(ValidateSubmission(sub)) == 0
}
