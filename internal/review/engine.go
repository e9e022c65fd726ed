package review

import (
	"github.com/oklog/ulid/v2"
)

const (
	toolName    = "revmon"
	toolVersion = "1.0"
)

// EngineConfig carries the immutable alerting configuration for one run.
type EngineConfig struct {
	Mode       Mode
	Thresholds Thresholds
}

// Evaluate compares a baseline snapshot against the current one and produces
// the full audit report. It is pure with respect to both snapshots; the only
// non-determinism is the RunID, which never appears in rendered output.
func Evaluate(baseline, current Snapshot, cfg EngineConfig) *Report {
	newOnly := NewOnly(baseline.UIDSet(), current)

	prev, curr := countSlicePair(baseline, current, IsNegative)
	deltas := ComputeDeltas(prev, curr, cfg.Thresholds)
	exceeding := ExceedingSlices(deltas)

	var newNegatives []Record
	for _, r := range newOnly {
		if IsNegative(r) {
			newNegatives = append(newNegatives, r)
		}
	}

	updated := len(newOnly) > 0
	for _, d := range deltas {
		if d.Delta != 0 {
			updated = true
			break
		}
	}

	var alert bool
	switch cfg.Mode {
	case ModeAnyNewNegative:
		alert = len(newNegatives) > 0
	default:
		alert = len(exceeding) > 0
	}

	return &Report{
		Tool:          toolName,
		Version:       toolVersion,
		RunID:         ulid.Make().String(),
		Mode:          cfg.Mode,
		Thresholds:    cfg.Thresholds,
		TotalReviews:  current.Len(),
		NegativeTotal: len(current.Negatives()),
		Alert:         alert,
		Updated:       updated,
		Deltas:        deltas,
		Exceeding:     exceeding,
		NewOnly:       newOnly,
		NewNegatives:  newNegatives,
		Negatives:     current.Negatives(),
	}
}
