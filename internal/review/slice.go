package review

import (
	"sort"

	"golang.org/x/sync/errgroup"
)

// Predicate selects which records contribute to slice counts.
type Predicate func(Record) bool

// CountSlices groups matching records by (source, app version, category).
// Keys absent from the result implicitly have count zero.
func CountSlices(records []Record, pred Predicate) map[SliceKey]int {
	if pred == nil {
		pred = IsNegative
	}
	counts := make(map[SliceKey]int)
	for _, r := range records {
		if !pred(r) {
			continue
		}
		counts[SliceKey{Source: r.Source, AppVersion: r.AppVersion, Category: r.Category}]++
	}
	return counts
}

// countSlicePair aggregates both snapshots concurrently. The two maps share
// no state and the callers sort every derived view, so the parallelism is
// never observable in output.
func countSlicePair(baseline, current Snapshot, pred Predicate) (prev, curr map[SliceKey]int) {
	var g errgroup.Group
	g.Go(func() error {
		prev = CountSlices(baseline.Records, pred)
		return nil
	})
	g.Go(func() error {
		curr = CountSlices(current.Records, pred)
		return nil
	})
	_ = g.Wait()
	return prev, curr
}

// SortedSliceKeys returns the union of keys across the given maps in
// lexicographic (source, app version, category) order.
func SortedSliceKeys(maps ...map[SliceKey]int) []SliceKey {
	seen := make(map[SliceKey]struct{})
	var keys []SliceKey
	for _, m := range maps {
		for k := range m {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}
