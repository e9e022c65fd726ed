package review

import "testing"

func TestCanonSentiment(t *testing.T) {
	n := NewNormalizer(nil)
	tests := []struct {
		raw  string
		want Sentiment
	}{
		{"negative", SentimentNegative},
		{"NEGATIVE", SentimentNegative},
		{"Negative", SentimentNegative},
		{"LABEL_0", SentimentNegative},
		{"label_0", SentimentNegative},
		{"neutral", SentimentNeutral},
		{"NEUTRAL", SentimentNeutral},
		{"LABEL_1", SentimentNeutral},
		{"positive", SentimentPositive},
		{"POSITIVE", SentimentPositive},
		{"LABEL_2", SentimentPositive},
		{"mixed", Sentiment("mixed")},
		{"LABEL_9", Sentiment("LABEL_9")},
		{"", Sentiment("")},
	}
	for _, tt := range tests {
		got := n.CanonSentiment(tt.raw)
		if got != tt.want {
			t.Errorf("CanonSentiment(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestCanonSentiment_CustomTable(t *testing.T) {
	n := NewNormalizer(map[string]Sentiment{"BAD": SentimentNegative})
	if got := n.CanonSentiment("bad"); got != SentimentNegative {
		t.Errorf("CanonSentiment(%q) = %q, want %q", "bad", got, SentimentNegative)
	}
	// Custom table replaces the default one entirely
	if got := n.CanonSentiment("negative"); got != Sentiment("negative") {
		t.Errorf("CanonSentiment(%q) = %q, want passthrough", "negative", got)
	}
}

func TestCanonSource(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Google Play", SourceGooglePlay},
		{"google play", SourceGooglePlay},
		{"GOOGLE", SourceGooglePlay},
		{"play store", SourceGooglePlay},
		{"App Store", SourceAppStore},
		{"app store", SourceAppStore},
		{"iOS AppStore", SourceAppStore},
		{"", SourceUnknown},
		{"   ", SourceUnknown},
		{"amazon", "Amazon"},
		{"some site", "Some Site"},
	}
	for _, tt := range tests {
		got := CanonSource(tt.raw)
		if got != tt.want {
			t.Errorf("CanonSource(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"2025-01-02", "2025-01-02"},
		{"2025-01-02T15:04:05Z", "2025-01-02"},
		{"2025-01-02T15:04:05", "2025-01-02"},
		{"2025-01-02 15:04:05", "2025-01-02"},
		{"", ""},
		{"not a date", ""},
		{"2025-13-40", ""},
	}
	for _, tt := range tests {
		got := NormalizeDate(tt.raw)
		if got != tt.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalize_Defaults(t *testing.T) {
	n := NewNormalizer(nil)
	rec := n.Normalize(Raw{Source: "google play", Text: "slow app", SentimentStd: "LABEL_0"})

	if rec.Rating != 0 {
		t.Errorf("Rating = %d, want 0", rec.Rating)
	}
	if rec.AppVersion != DefaultAppVersion {
		t.Errorf("AppVersion = %q, want %q", rec.AppVersion, DefaultAppVersion)
	}
	if rec.Category != DefaultCategory {
		t.Errorf("Category = %q, want %q", rec.Category, DefaultCategory)
	}
	if rec.Sentiment != SentimentNegative {
		t.Errorf("Sentiment = %q, want %q", rec.Sentiment, SentimentNegative)
	}
	if rec.Source != SourceGooglePlay {
		t.Errorf("Source = %q, want %q", rec.Source, SourceGooglePlay)
	}
	if rec.Date != "" {
		t.Errorf("Date = %q, want empty", rec.Date)
	}
}

func TestNormalize_SentimentStdWins(t *testing.T) {
	n := NewNormalizer(nil)
	rec := n.Normalize(Raw{SentimentStd: "positive", Sentiment: "negative"})
	if rec.Sentiment != SentimentPositive {
		t.Errorf("Sentiment = %q, want %q", rec.Sentiment, SentimentPositive)
	}

	rec = n.Normalize(Raw{Sentiment: "negative"})
	if rec.Sentiment != SentimentNegative {
		t.Errorf("fallback Sentiment = %q, want %q", rec.Sentiment, SentimentNegative)
	}
}

func TestNormalize_RatingCoercion(t *testing.T) {
	n := NewNormalizer(nil)
	tests := []struct {
		name string
		raw  any
		want int
	}{
		{"float", float64(4), 4},
		{"string", "5", 5},
		{"string with space", " 3 ", 3},
		{"nil", nil, 0},
		{"garbage", "five", 0},
		{"bool", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := n.Normalize(Raw{Rating: tt.raw})
			if rec.Rating != tt.want {
				t.Errorf("Rating = %d, want %d", rec.Rating, tt.want)
			}
		})
	}
}

func TestNormalize_InvalidUTF8(t *testing.T) {
	n := NewNormalizer(nil)
	rec := n.Normalize(Raw{Text: "ok\xff\xfebytes", SentimentStd: "negative"})
	if rec.Text != "okbytes" {
		t.Errorf("Text = %q, want invalid bytes dropped", rec.Text)
	}
	// UID must still be total over the sanitized record
	uid := UID(rec)
	if uid == "" {
		t.Error("UID should never be empty")
	}
}
