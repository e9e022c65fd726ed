package review

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// HashPrefix marks UIDs derived from content hashing rather than a
// store-native identifier.
const HashPrefix = "hash:"

// hashTextPrefixLen bounds how many runes of review text enter the identity
// signature. Trailing edits beyond this prefix do not change the UID.
const hashTextPrefixLen = 512

// Source tags used in native-ID UIDs.
const (
	tagGooglePlay = "gp"
	tagAppStore   = "as"
	tagOther      = "src"
)

// UID returns a stable identity for a record. Records with a store-native ID
// get "<tag>:<id>"; the rest get a SHA-256 digest over a canonical field
// signature. Identical records always produce identical UIDs, and UID never
// fails: missing fields contribute empty strings.
//
// Known limitation: for hash-derived UIDs, any edit within the hashed text
// prefix changes the identity, so the record is counted as new again on the
// next run.
func UID(r Record) string {
	if id := strings.TrimSpace(r.ReviewID); id != "" {
		return sourceTag(r.Source) + ":" + id
	}
	sig := strings.Join([]string{
		collapseSpace(r.Source),
		collapseSpace(r.UserName),
		collapseSpace(r.Title),
		strconv.Itoa(r.Rating),
		collapseSpace(r.Date),
		collapseSpace(r.AppVersion),
		collapseSpace(truncateRunes(r.Text, hashTextPrefixLen)),
	}, "\x1f")
	sum := sha256.Sum256([]byte(sig))
	return HashPrefix + hex.EncodeToString(sum[:])
}

func sourceTag(source string) string {
	switch source {
	case SourceGooglePlay:
		return tagGooglePlay
	case SourceAppStore:
		return tagAppStore
	default:
		return tagOther
	}
}

// collapseSpace normalizes all runs of whitespace to single spaces and trims
// the ends, so incidental formatting differences don't change identity.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
