package review

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// Defaults applied when upstream fields are missing or invalid.
const (
	DefaultAppVersion = "Unknown"
	DefaultCategory   = "Uncategorized"
)

// DefaultSentimentLabels returns the label mapping table for known raw
// sentiment variants. Keys are matched case-insensitively; LABEL_0/1/2 are
// the positional placeholders emitted by classifier pipelines.
func DefaultSentimentLabels() map[string]Sentiment {
	return map[string]Sentiment{
		"negative": SentimentNegative,
		"label_0":  SentimentNegative,
		"neutral":  SentimentNeutral,
		"label_1":  SentimentNeutral,
		"positive": SentimentPositive,
		"label_2":  SentimentPositive,
	}
}

// Normalizer canonicalizes raw upstream records into the fixed Record
// schema. The label table is fixed at construction.
type Normalizer struct {
	labels map[string]Sentiment
}

// NewNormalizer creates a Normalizer. A nil labels map selects
// DefaultSentimentLabels. Keys are lowercased for case-insensitive lookup.
func NewNormalizer(labels map[string]Sentiment) *Normalizer {
	if labels == nil {
		labels = DefaultSentimentLabels()
	}
	lowered := make(map[string]Sentiment, len(labels))
	for k, v := range labels {
		lowered[strings.ToLower(k)] = v
	}
	return &Normalizer{labels: lowered}
}

// Normalize converts a raw record into canonical form. It never fails:
// missing fields degrade to documented defaults and unknown sentiment labels
// pass through unchanged.
func (n *Normalizer) Normalize(raw Raw) Record {
	sentiment := raw.SentimentStd
	if sentiment == "" {
		sentiment = raw.Sentiment
	}

	return Record{
		Source:            CanonSource(raw.Source),
		ReviewID:          strings.TrimSpace(raw.ReviewID),
		UserName:          n.sanitize(raw.UserName, "user_name"),
		Title:             n.sanitize(raw.Title, "review_title"),
		Rating:            coerceRating(raw.Rating),
		Date:              NormalizeDate(raw.Date),
		AppVersion:        defaultIfBlank(raw.AppVersion, DefaultAppVersion),
		Text:              n.sanitize(raw.Text, "review"),
		Sentiment:         n.CanonSentiment(sentiment),
		Category:          defaultIfBlank(raw.Category, DefaultCategory),
		DeveloperResponse: raw.DeveloperResponse,
	}
}

// CanonSentiment maps a raw sentiment label onto the canonical vocabulary.
// Labels absent from the table are returned unchanged.
func (n *Normalizer) CanonSentiment(raw string) Sentiment {
	if s, ok := n.labels[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return Sentiment(raw)
}

// CanonSource normalizes free-text source names. Anything containing "app"
// and "store" is the App Store, anything containing "google" or "play" is
// Google Play, blank is Unknown, and the rest is kept title-cased.
func CanonSource(s string) string {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToLower(trimmed)
	switch {
	case lower == "":
		return SourceUnknown
	case strings.Contains(lower, "app") && strings.Contains(lower, "store"):
		return SourceAppStore
	case strings.Contains(lower, "google") || strings.Contains(lower, "play"):
		return SourceGooglePlay
	default:
		return titleCase(trimmed)
	}
}

// NormalizeDate coerces a date-like string to YYYY-MM-DD. Full timestamps
// from upstream exports are truncated to the date. Invalid input yields "".
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	formats := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// sanitize strips invalid UTF-8 so downstream hashing and rendering stay
// total. The record is kept; only the bad bytes are dropped.
func (n *Normalizer) sanitize(s, field string) string {
	if utf8.ValidString(s) {
		return s
	}
	log.Warn().Str("field", field).Msg("dropping invalid UTF-8 from record field")
	return strings.ToValidUTF8(s, "")
}

func coerceRating(v any) int {
	switch r := v.(type) {
	case float64:
		return int(r)
	case int:
		return r
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(r)); err == nil {
			return i
		}
	}
	return 0
}

func defaultIfBlank(s, def string) string {
	if trimmed := strings.TrimSpace(s); trimmed != "" {
		return trimmed
	}
	return def
}

func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) && !prevLetter {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}
