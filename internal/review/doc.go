// Package review contains the core types and engine for review snapshot
// comparison and alerting.
//
// It normalizes raw upstream records into a fixed schema (normalize.go),
// assigns each record a stable identity — a store-native ID when present,
// otherwise a SHA-256 digest over a canonical field signature (identity.go) —
// diffs the current snapshot against a baseline by identity (diff.go),
// aggregates negative counts along (source, app version, category) slices
// (slice.go), and applies absolute/relative threshold rules to decide whether
// an alert fires (alert.go).
//
// Evaluate (engine.go) ties these together into a Report. Two alerting modes
// exist as explicit configuration: ModeThreshold fires on a slice whose
// negative-count increase crosses a threshold, ModeAnyNewNegative fires on
// any negative record absent from the baseline. The "updated" signal is
// independent of alerting and reports whether the dataset changed at all.
package review
