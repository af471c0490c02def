package news

import (
	"regexp"
	"time"
)

// recordKeyPattern matches raw record keys: news-YYYYMMDD-NNN
var recordKeyPattern = regexp.MustCompile(`^news-(\d{8})-(\d{3})$`)

// IsRecordKey reports whether a store key names a raw news record.
func IsRecordKey(key string) bool {
	return recordKeyPattern.MatchString(key)
}

// Record is one ingested article, normalized at load time.
type Record struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Link        string    `json:"link"`
	Source      string    `json:"source"`
	Published   string    `json:"published"`
	PublishedAt time.Time `json:"published_at"`
	Category    string    `json:"category"`
	CategoryID  string    `json:"category_id"`
	Country     string    `json:"country,omitempty"`
	RawKey      string    `json:"raw_key"`
}

// CategoryRule is an immutable category definition. The id set is closed;
// OthersID has no keywords and is the classification fallback.
type CategoryRule struct {
	ID       string
	Name     string
	Keywords []string
}

// CountryRule maps a canonical country display name to the substrings
// (names, adjectives, abbreviations) that attribute a record to it.
type CountryRule struct {
	Name     string
	Patterns []string
}
