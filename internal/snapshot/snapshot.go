package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/ishantsinghrawat/reviews-stg/internal/review"
)

// Load reads and normalizes a snapshot file. Unreadable files and top-level
// parse errors are returned as errors; individually malformed records are
// skipped with a warning so one bad element never aborts the batch.
func Load(path string, n *review.Normalizer) (review.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return review.Snapshot{}, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	return decode(data, path, n)
}

// LoadBaseline reads the persisted snapshot of the previous run. A missing
// file is not an error: the run proceeds against an empty baseline. A file
// that exists but cannot be parsed is an error, since diffing against
// unknown prior state would be unsafe.
func LoadBaseline(path string, n *review.Normalizer) (review.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", path).Msg("baseline missing, treating as empty")
			return review.Snapshot{}, nil
		}
		return review.Snapshot{}, fmt.Errorf("reading baseline %s: %w", path, err)
	}
	return decode(data, path, n)
}

func decode(data []byte, path string, n *review.Normalizer) (review.Snapshot, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return review.Snapshot{}, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	records := make([]review.Record, 0, len(elems))
	for i, e := range elems {
		var raw review.Raw
		if err := json.Unmarshal(e, &raw); err != nil {
			log.Warn().Str("path", path).Int("index", i).Err(err).
				Msg("skipping malformed record")
			continue
		}
		records = append(records, n.Normalize(raw))
	}
	return review.NewSnapshot(records), nil
}

// Save persists a snapshot as the baseline for the next run. The write is
// atomic: a temporary file in the target directory is renamed into place
// only after a complete, successful write.
func Save(path string, s review.Snapshot) error {
	data, err := json.MarshalIndent(s.Records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("finalizing snapshot %s: %w", path, err)
	}
	return nil
}
