package review

import "fmt"

// Mode selects how the alert decision is made.
type Mode string

const (
	// ModeThreshold alerts when at least one slice's negative-count
	// increase crosses the absolute or relative threshold.
	ModeThreshold Mode = "threshold"
	// ModeAnyNewNegative alerts when the diff against the baseline contains
	// at least one negative record.
	ModeAnyNewNegative Mode = "any-new-negative"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeThreshold, ModeAnyNewNegative:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown alerting mode %q (want %q or %q)", s, ModeThreshold, ModeAnyNewNegative)
	}
}

// Thresholds configures the slice alerting math.
type Thresholds struct {
	// Abs is the minimum absolute increase in negative count.
	Abs int `json:"abs"`
	// Rel is the minimum relative increase (fraction of the previous count).
	Rel float64 `json:"rel"`
}

// DefaultThresholds returns the standard alerting thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{Abs: 3, Rel: 0.20}
}

// ComputeDeltas compares two slice-count maps over the union of their keys
// and returns one delta per key, sorted lexicographically. A slice with a
// prior count of zero and any increase is defined as a 100% relative
// increase; zero-to-zero is 0%. A delta exceeds iff it is positive and
// crosses either threshold.
func ComputeDeltas(prev, curr map[SliceKey]int, th Thresholds) []SliceDelta {
	keys := SortedSliceKeys(prev, curr)
	deltas := make([]SliceDelta, 0, len(keys))
	for _, k := range keys {
		p, c := prev[k], curr[k]
		d := c - p
		var rel float64
		switch {
		case p > 0:
			rel = float64(d) / float64(p)
		case d > 0:
			rel = 1.0
		}
		deltas = append(deltas, SliceDelta{
			Key:       k,
			Prev:      p,
			Curr:      c,
			Delta:     d,
			Rel:       rel,
			Exceeding: d > 0 && (d >= th.Abs || rel >= th.Rel),
		})
	}
	return deltas
}

// ExceedingSlices filters deltas down to those that crossed a threshold.
func ExceedingSlices(deltas []SliceDelta) []SliceDelta {
	var out []SliceDelta
	for _, d := range deltas {
		if d.Exceeding {
			out = append(out, d)
		}
	}
	return out
}
