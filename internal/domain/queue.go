package domain

import "strings"

// StatusFilterAll matches every claim status.
const StatusFilterAll = "all"

type QueueMetrics struct {
	Total         int     `json:"total"`
	Pending       int     `json:"pending"`
	Approved      int     `json:"approved"`
	Denied        int     `json:"denied"`
	Review        int     `json:"review"`
	TotalAmount   float64 `json:"total_amount"`
	AverageAmount float64 `json:"average_amount"`
}

// ComputeMetrics aggregates the claim queue. Pure; recomputed on every read.
func ComputeMetrics(claims []ClaimRecord) QueueMetrics {
	m := QueueMetrics{Total: len(claims)}
	for _, c := range claims {
		switch c.Status {
		case ClaimStatusPending:
			m.Pending++
		case ClaimStatusApproved:
			m.Approved++
		case ClaimStatusDenied:
			m.Denied++
		case ClaimStatusReview:
			m.Review++
		}
		m.TotalAmount += c.Amount
	}
	if m.Total > 0 {
		m.AverageAmount = m.TotalAmount / float64(m.Total)
	}
	return m
}

// FilterClaims narrows the queue by status and free-text search, preserving
// order. The search matches case-insensitively against member name, member
// ID and claim ID; statusFilter is either "all" or an exact status.
func FilterClaims(claims []ClaimRecord, statusFilter string, query string) []ClaimRecord {
	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]ClaimRecord, 0, len(claims))
	for _, c := range claims {
		if statusFilter != "" && statusFilter != StatusFilterAll && string(c.Status) != statusFilter {
			continue
		}
		if needle != "" && !matchesQuery(c, needle) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesQuery(c ClaimRecord, needle string) bool {
	return strings.Contains(strings.ToLower(c.MemberName), needle) ||
		strings.Contains(strings.ToLower(c.MemberID), needle) ||
		strings.Contains(strings.ToLower(c.ID), needle)
}
