package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ishantsinghrawat/reviews-stg/internal/review"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "new.json", `[
		{"source": "Google Play", "review_id": "r1", "review": "crashes a lot",
		 "sentiment_std": "LABEL_0", "category": "Crashes/Bugs", "rating": 1,
		 "app_version": "9.1.0", "review_date": "2025-06-01",
		 "thumbs_up": 14, "country_code": "ca"},
		{"source": "app store", "review": "love it", "sentiment_std": "positive", "rating": "5"}
	]`)

	s, err := Load(path, review.NewNormalizer(nil))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("loaded %d records, want 2 (unknown fields must be ignored)", s.Len())
	}
	r := s.Records[0]
	if r.Sentiment != review.SentimentNegative {
		t.Errorf("Sentiment = %q, want Negative", r.Sentiment)
	}
	if r.Source != review.SourceGooglePlay {
		t.Errorf("Source = %q, want %q", r.Source, review.SourceGooglePlay)
	}
	if s.Records[1].Rating != 5 {
		t.Errorf("Rating = %d, want 5 (string coerced)", s.Records[1].Rating)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"), review.NewNormalizer(nil))
	if err == nil {
		t.Fatal("Load of a missing new snapshot must fail")
	}
}

func TestLoad_MalformedRecordIsolated(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "new.json", `[
		{"source": "Google Play", "review": "ok", "sentiment_std": "neutral"},
		42,
		{"source": "Google Play", "review": "bad", "sentiment_std": "negative"}
	]`)

	s, err := Load(path, review.NewNormalizer(nil))
	if err != nil {
		t.Fatalf("Load error: %v (a malformed element must not abort the batch)", err)
	}
	if s.Len() != 2 {
		t.Errorf("loaded %d records, want 2 with the bad element skipped", s.Len())
	}
}

func TestLoadBaseline_MissingIsEmpty(t *testing.T) {
	s, err := LoadBaseline(filepath.Join(t.TempDir(), "absent.json"), review.NewNormalizer(nil))
	if err != nil {
		t.Fatalf("missing baseline must be fail-open, got error: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("missing baseline loaded %d records, want 0", s.Len())
	}
}

func TestLoadBaseline_MalformedIsFatal(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "baseline.json", `{"not": "an array"`)

	_, err := LoadBaseline(path, review.NewNormalizer(nil))
	if err == nil {
		t.Fatal("malformed baseline must be an error")
	}
	if !strings.Contains(err.Error(), "parsing snapshot") {
		t.Errorf("error = %v, want a parse error", err)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baseline.json")
	norm := review.NewNormalizer(nil)

	s := review.NewSnapshot([]review.Record{
		{Source: review.SourceGooglePlay, ReviewID: "r1", Text: "slow", Rating: 2,
			Sentiment: review.SentimentNegative, AppVersion: "1.0", Category: "Performance/Speed"},
	})
	if err := Save(path, s); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := LoadBaseline(path, norm)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("reloaded %d records, want 1", loaded.Len())
	}
	if review.UID(loaded.Records[0]) != review.UID(s.Records[0]) {
		t.Error("UID changed across a save/load round trip")
	}

	// No temp files left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".snapshot-") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestSave_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "baseline.json", `[{"source": "Google Play", "review_id": "old", "review": "x"}]`)
	norm := review.NewNormalizer(nil)

	s := review.NewSnapshot([]review.Record{
		{Source: review.SourceAppStore, ReviewID: "new", Text: "y", AppVersion: "1.0", Category: "Other"},
	})
	if err := Save(path, s); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	loaded, err := LoadBaseline(path, norm)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if loaded.Len() != 1 || loaded.Records[0].ReviewID != "new" {
		t.Error("Save should replace the previous baseline wholesale")
	}
}
