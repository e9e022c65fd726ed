package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ishantsinghrawat/reviews-stg/internal/review"
)

// displayTextLen is the rendered truncation length for review text. It is
// independent of the identity-hash truncation length.
const displayTextLen = 200

// maxSamplesPerSlice bounds the bullet samples shown per exceeding slice.
const maxSamplesPerSlice = 5

// MarkdownWriter renders the negative sentiment delta report as markdown.
// Output is deterministic: slices are sorted lexicographically and record
// order follows the input snapshot.
type MarkdownWriter struct {
	MaxRows int
}

func (m *MarkdownWriter) Write(w io.Writer, report *review.Report) error {
	ew := &errWriter{w: w}

	ew.printf("# Negative Sentiment Delta Report\n\n")
	ew.printf("- Total reviews: **%d**\n", report.TotalReviews)
	ew.printf("- Negative reviews: **%d**\n", report.NegativeTotal)
	ew.printf("- Updated: **%s**\n", yesNo(report.Updated))
	ew.printf("- Alert: **%s**\n", yesNo(report.Alert))
	ew.printf("- Mode: `%s`\n", report.Mode)
	ew.printf("- Alert conditions: Δ ≥ %d or Δ%% ≥ %.0f%%\n\n",
		report.Thresholds.Abs, report.Thresholds.Rel*100)

	m.writeBreakdown(ew, report)
	m.writeSamples(ew, report)
	m.writeDetails(ew, report)

	return ew.err
}

func (m *MarkdownWriter) writeBreakdown(ew *errWriter, report *review.Report) {
	ew.printf("## Slice Breakdown\n\n")
	if len(report.Deltas) == 0 {
		ew.printf("No negative reviews in either snapshot.\n\n")
		return
	}
	ew.printf("| Source | App Version | Category | Neg (old) | Neg (new) | Δ | Δ%% |\n")
	ew.printf("|---|---|---|---:|---:|---:|---:|\n")
	for _, d := range report.Deltas {
		ew.printf("| %s | %s | %s | %d | %d | %s | %.1f%% |\n",
			escapeCell(d.Key.Source), escapeCell(d.Key.AppVersion), escapeCell(d.Key.Category),
			d.Prev, d.Curr, formatDelta(d.Delta), d.Rel*100)
	}
	ew.printf("\n")
}

func (m *MarkdownWriter) writeSamples(ew *errWriter, report *review.Report) {
	if len(report.Exceeding) == 0 {
		ew.printf("No slices exceeded thresholds.\n")
		return
	}
	for _, d := range report.Exceeding {
		ew.printf("### %s / %s / %s — new negative samples\n\n",
			escapeCell(d.Key.Source), escapeCell(d.Key.AppVersion), escapeCell(d.Key.Category))
		n := 0
		for _, r := range report.Negatives {
			if r.Source != d.Key.Source || r.AppVersion != d.Key.AppVersion || r.Category != d.Key.Category {
				continue
			}
			text := strings.TrimSpace(strings.ReplaceAll(r.Text, "\n", " "))
			if text == "" {
				continue
			}
			ew.printf("- %s\n", escapeCell(truncateDisplay(text)))
			n++
			if n >= maxSamplesPerSlice {
				break
			}
		}
		if n == 0 {
			ew.printf("_no sample_\n")
		}
		ew.printf("\n")
	}
}

func (m *MarkdownWriter) writeDetails(ew *errWriter, report *review.Report) {
	ew.printf("\n---\n\n### Negative Review Details (latest run)\n\n")

	rows := report.Negatives
	// In threshold mode with at least one exceeding slice, the detail table
	// narrows to the categories that triggered the alert.
	if report.Mode == review.ModeThreshold && len(report.Exceeding) > 0 {
		cats := make(map[string]struct{}, len(report.Exceeding))
		for _, d := range report.Exceeding {
			cats[d.Key.Category] = struct{}{}
		}
		var filtered []review.Record
		for _, r := range rows {
			if _, ok := cats[r.Category]; ok {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	if len(rows) == 0 {
		ew.printf("_(no negative rows to display)_\n")
		return
	}

	ew.printf("| Category | Review | App Version | Date | Rating | Source |\n")
	ew.printf("| --- | --- | --- | --- | --- | --- |\n")
	for i, r := range rows {
		if i >= m.MaxRows {
			break
		}
		ew.printf("| %s | %s | %s | %s | %d | %s |\n",
			escapeCell(r.Category),
			escapeCell(truncateDisplay(r.Text)),
			escapeCell(r.AppVersion),
			escapeCell(r.Date),
			r.Rating,
			escapeCell(r.Source))
	}
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// escapeCell makes a value safe inside a markdown table cell: newlines and
// carriage returns collapse to single spaces and pipes are escaped.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.TrimSpace(s)
}

func truncateDisplay(s string) string {
	runes := []rune(s)
	if len(runes) <= displayTextLen {
		return s
	}
	return string(runes[:displayTextLen]) + "…"
}

func formatDelta(d int) string {
	if d > 0 {
		return fmt.Sprintf("+%d", d)
	}
	return fmt.Sprintf("%d", d)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
