// Revmon detects changes between runs of a classified app-review pipeline
// and decides whether an operational alert should fire.
//
// It compares a baseline snapshot (the previous run's output; missing file
// means empty baseline) against a freshly fetched snapshot, identifies new
// records by stable UID, aggregates negative sentiment per
// (source, app version, category) slice, applies absolute/relative threshold
// rules, and writes a deterministic markdown or JSON report.
//
// Usage:
//
//	revmon compare baseline.json new_data.json report.md
//	revmon compare baseline.json new_data.json report.md --mode any-new-negative
//	revmon compare baseline.json new_data.json report.md --abs-threshold 5 --update-baseline
//	revmon config init|set|show
//
// Exit code 0 means a report was produced (alert is data, not a failure);
// non-zero is reserved for fatal I/O or parse errors. The updated= and
// alert= signals go to stdout and, when GITHUB_OUTPUT is set, to that file.
package main
