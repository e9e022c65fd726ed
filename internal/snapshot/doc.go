// Package snapshot reads and writes review snapshot files.
//
// Snapshots are UTF-8 JSON arrays of review records. Loading normalizes every
// record through a review.Normalizer and deduplicates by UID. The baseline
// loader is fail-open: a missing file yields an empty snapshot, while a
// present-but-malformed file is an error. Writes are atomic (temp file +
// rename) so a crash mid-run never corrupts the baseline used by the next
// run.
package snapshot
