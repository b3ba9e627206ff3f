package domain

import "errors"

// Stage is the cursor of the claim processing progress machine.
type Stage int

const (
	StageIdle Stage = iota
	StageValidating
	StageAssessingEligibility
	StageRecommending
	StageFinalizing
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageValidating:
		return "validating"
	case StageAssessingEligibility:
		return "assessing_eligibility"
	case StageRecommending:
		return "recommending"
	case StageFinalizing:
		return "finalizing"
	default:
		return "unknown"
	}
}

var ErrStageComplete = errors.New("stage tracker is already finalizing; reset before advancing")

// StageTracker advances strictly one stage at a time from idle to
// finalizing. One tracker exists per in-flight submission.
type StageTracker struct {
	cursor Stage
}

func NewStageTracker() *StageTracker {
	return &StageTracker{cursor: StageIdle}
}

func (t *StageTracker) Current() Stage {
	return t.cursor
}

func (t *StageTracker) Advance() error {
	if t.cursor >= StageFinalizing {
		return ErrStageComplete
	}
	t.cursor++
	return nil
}

func (t *StageTracker) Reset() {
	t.cursor = StageIdle
}
