package output

import (
	"fmt"
	"io"
	"os"
)

// FormatSignals renders the two process signals as key=value lines.
func FormatSignals(updated, alert bool) string {
	return fmt.Sprintf("updated=%t\nalert=%t\n", updated, alert)
}

// WriteSignals emits the signals to w (normally stdout).
func WriteSignals(w io.Writer, updated, alert bool) error {
	_, err := io.WriteString(w, FormatSignals(updated, alert))
	return err
}

// AppendSignalsFile appends the signals to the orchestration output file
// (the GITHUB_OUTPUT mechanism). The file is created if absent.
func AppendSignalsFile(path string, updated, alert bool) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening signals file: %w", err)
	}
	defer f.Close()
	if _, err := io.WriteString(f, FormatSignals(updated, alert)); err != nil {
		return fmt.Errorf("appending signals: %w", err)
	}
	return nil
}
