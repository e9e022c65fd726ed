package review

// NewOnly returns the records of current whose UID is absent from baseline,
// preserving current's order. Runs in O(|current| + |baseline|).
func NewOnly(baseline UIDSet, current Snapshot) []Record {
	var out []Record
	for _, r := range current.Records {
		if _, ok := baseline[UID(r)]; !ok {
			out = append(out, r)
		}
	}
	return out
}
