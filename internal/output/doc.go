// Package output formats comparison reports and emits process signals.
//
// Two formats are supported:
//   - markdown — the deterministic delta report (default): header with
//     totals and flags, slice breakdown table, per-slice negative samples,
//     and a capped negative-detail table with escaped cells
//   - json     — the full structured audit report
//
// Use [GetWriter] to obtain a [Writer] for a format string, or
// [WriteReportFile] to render atomically to a file. signals.go emits the
// updated/alert key=value lines consumed by the scheduling workflow.
package output
