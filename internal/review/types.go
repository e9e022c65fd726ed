package review

// Sentiment is a canonical sentiment label. Raw labels outside the mapping
// table pass through unchanged, so values other than the three constants can
// occur; they are simply never counted as negative.
type Sentiment string

const (
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentPositive Sentiment = "Positive"
)

// Canonical source names.
const (
	SourceGooglePlay = "Google Play"
	SourceAppStore   = "App Store"
	SourceUnknown    = "Unknown"
)

// Record is a single classified review in canonical form.
type Record struct {
	Source            string    `json:"source"`
	ReviewID          string    `json:"review_id,omitempty"`
	UserName          string    `json:"user_name,omitempty"`
	Title             string    `json:"review_title,omitempty"`
	Rating            int       `json:"rating"`
	Date              string    `json:"review_date,omitempty"`
	AppVersion        string    `json:"app_version"`
	Text              string    `json:"review"`
	Sentiment         Sentiment `json:"sentiment_std"`
	Category          string    `json:"category"`
	DeveloperResponse string    `json:"developer_response,omitempty"`
}

// IsNegative reports whether the record carries canonical negative sentiment.
func IsNegative(r Record) bool {
	return r.Sentiment == SentimentNegative
}

// Raw is an upstream review record before normalization. Rating is untyped
// because upstream adapters emit it as number, string, or null. Both
// sentiment_std and the older sentiment field are accepted; sentiment_std
// wins when present.
type Raw struct {
	Source            string `json:"source"`
	ReviewID          string `json:"review_id"`
	UserName          string `json:"user_name"`
	Title             string `json:"review_title"`
	Rating            any    `json:"rating"`
	Date              string `json:"review_date"`
	AppVersion        string `json:"app_version"`
	Text              string `json:"review"`
	SentimentStd      string `json:"sentiment_std"`
	Sentiment         string `json:"sentiment"`
	Category          string `json:"category"`
	DeveloperResponse string `json:"developer_response"`
}

// Snapshot is an ordered collection of records at one point in time,
// deduplicated by UID with first-seen wins.
type Snapshot struct {
	Records []Record `json:"records"`
}

// NewSnapshot builds a snapshot from records, collapsing duplicate UIDs to
// the first occurrence and preserving input order.
func NewSnapshot(records []Record) Snapshot {
	seen := make(map[string]struct{}, len(records))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		uid := UID(r)
		if _, ok := seen[uid]; ok {
			continue
		}
		seen[uid] = struct{}{}
		out = append(out, r)
	}
	return Snapshot{Records: out}
}

// UIDSet is the set of record identities in a snapshot.
type UIDSet map[string]struct{}

// UIDSet returns the identity set of the snapshot.
func (s Snapshot) UIDSet() UIDSet {
	set := make(UIDSet, len(s.Records))
	for _, r := range s.Records {
		set[UID(r)] = struct{}{}
	}
	return set
}

// Len returns the number of records in the snapshot.
func (s Snapshot) Len() int { return len(s.Records) }

// Negatives returns the records with canonical negative sentiment,
// preserving order.
func (s Snapshot) Negatives() []Record {
	var out []Record
	for _, r := range s.Records {
		if IsNegative(r) {
			out = append(out, r)
		}
	}
	return out
}

// SliceKey aggregates negative counts along (source, app version, category).
type SliceKey struct {
	Source     string `json:"source"`
	AppVersion string `json:"app_version"`
	Category   string `json:"category"`
}

// Less orders keys lexicographically by (source, app version, category).
func (k SliceKey) Less(o SliceKey) bool {
	if k.Source != o.Source {
		return k.Source < o.Source
	}
	if k.AppVersion != o.AppVersion {
		return k.AppVersion < o.AppVersion
	}
	return k.Category < o.Category
}

// SliceDelta is the audited comparison of one slice between two snapshots.
type SliceDelta struct {
	Key       SliceKey `json:"slice"`
	Prev      int      `json:"prev"`
	Curr      int      `json:"curr"`
	Delta     int      `json:"delta"`
	Rel       float64  `json:"rel"`
	Exceeding bool     `json:"exceeding"`
}

// Report is the full audit output of one comparison run.
type Report struct {
	Tool    string `json:"tool"`
	Version string `json:"version"`
	// RunID correlates log lines with a run. It is excluded from rendered
	// output so identical inputs produce byte-identical reports.
	RunID      string     `json:"-"`
	Mode       Mode       `json:"mode"`
	Thresholds Thresholds `json:"thresholds"`

	TotalReviews  int  `json:"totalReviews"`
	NegativeTotal int  `json:"negativeTotal"`
	Alert         bool `json:"alert"`
	Updated       bool `json:"updated"`

	// Deltas covers every slice in prev ∪ curr, sorted by key.
	Deltas []SliceDelta `json:"deltas"`
	// Exceeding is the subset of Deltas that crossed a threshold.
	Exceeding []SliceDelta `json:"exceeding,omitempty"`
	// NewOnly holds current records absent from the baseline, in input order.
	NewOnly []Record `json:"newOnly,omitempty"`
	// NewNegatives is the negative subset of NewOnly.
	NewNegatives []Record `json:"newNegatives,omitempty"`
	// Negatives holds all negative records of the current snapshot. The
	// renderer caps how many are displayed; NegativeTotal stays the
	// uncapped total.
	Negatives []Record `json:"negatives,omitempty"`
}
