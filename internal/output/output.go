package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ishantsinghrawat/reviews-stg/internal/review"
)

// Writer renders a report in a specific format.
type Writer interface {
	Write(w io.Writer, report *review.Report) error
}

// Options tunes rendering.
type Options struct {
	// MaxRows caps the negative-detail table. Rows beyond the cap are
	// silently omitted; header counts always reflect the uncapped total.
	MaxRows int
}

// DefaultMaxRows is the default detail-table cap.
const DefaultMaxRows = 300

// GetWriter returns a writer for the specified format.
func GetWriter(format string, opts Options) (Writer, error) {
	if opts.MaxRows <= 0 {
		opts.MaxRows = DefaultMaxRows
	}
	switch format {
	case "markdown":
		return &MarkdownWriter{MaxRows: opts.MaxRows}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReportFile renders the report to path atomically: the content is
// written to a temporary file in the target directory and renamed into place
// only on success, so consumers never see a truncated report.
func WriteReportFile(report *review.Report, format, path string, opts Options) error {
	writer, err := GetWriter(format, opts)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".report-*")
	if err != nil {
		return fmt.Errorf("creating temp report: %w", err)
	}
	tmpName := tmp.Name()
	if err := writer.Write(tmp, report); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("rendering report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp report: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("finalizing report %s: %w", path, err)
	}
	return nil
}
