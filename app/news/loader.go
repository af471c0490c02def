package news

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"github.com/ecowatch/econews/app/store"
)

// publishedLayouts are tried in order when a record's free-text published
// field has to be parsed (only when the key's embedded date is unusable).
var publishedLayouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type envelope struct {
	Value recordPayload `json:"value"`
}

type recordPayload struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Link      string `json:"link"`
	Source    string `json:"source"`
	Published string `json:"published"`
	Category  string `json:"category"`
	Country   string `json:"country"`
}

// Loader reads raw news records from the store and normalizes them.
type Loader struct {
	store      store.Store
	classifier *Classifier
	rules      *Rules
}

func NewLoader(st store.Store, classifier *Classifier, rules *Rules) *Loader {
	return &Loader{store: st, classifier: classifier, rules: rules}
}

// Run returns all news records, newest first. The store is consulted with
// one key scan and one pipelined multi-get. A malformed value skips that
// record only; an unreachable store yields an empty result, never an error.
func (l *Loader) Run(ctx context.Context) []Record {
	keys, err := l.store.ScanKeys(ctx, "news-*")
	if err != nil {
		slog.Warn("Store scan failed, loading no records", "error", err)
		return nil
	}

	matched := make([]string, 0, len(keys))
	for _, key := range keys {
		if IsRecordKey(key) {
			matched = append(matched, key)
		}
	}
	if len(matched) == 0 {
		return nil
	}

	// SCAN order is unspecified, so fix the key order up front; the stable
	// date sort below then makes repeated loads fully deterministic.
	sort.Strings(matched)

	values, err := l.store.FetchValues(ctx, matched)
	if err != nil {
		slog.Warn("Store fetch failed, loading no records", "error", err)
		return nil
	}

	records := make([]Record, 0, len(matched))
	for i, key := range matched {
		raw := values[i]
		if raw == "" {
			continue
		}

		var env envelope
		if err := json.Unmarshal([]byte(raw), &env); err != nil {
			slog.Warn("Skipping malformed record", "key", key, "error", err)
			continue
		}

		records = append(records, l.buildRecord(key, env.Value))
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PublishedAt.After(records[j].PublishedAt)
	})

	return records
}

func (l *Loader) buildRecord(key string, payload recordPayload) Record {
	record := Record{
		ID:        key,
		Title:     payload.Title,
		Summary:   payload.Summary,
		Link:      payload.Link,
		Source:    payload.Source,
		Published: payload.Published,
		RawKey:    key,
	}

	// The stored category is trusted only if it names a declared category.
	if cat, ok := l.rules.ByName(payload.Category); ok {
		record.Category = cat.Name
		record.CategoryID = cat.ID
	} else {
		cat := l.classifier.Classify(payload.Title, payload.Summary)
		record.Category = cat.Name
		record.CategoryID = cat.ID
	}

	if payload.Country != "" {
		record.Country = payload.Country
	} else {
		record.Country = l.classifier.InferCountry(payload.Title, payload.Summary)
	}

	record.PublishedAt = resolvePublishedAt(key, payload.Published)

	return record
}

// resolvePublishedAt prefers the key's embedded YYYYMMDD segment, which is
// authoritative and well-formed by construction; the free-text published
// field is a fallback, and an unparsable date collapses to the zero-time
// sentinel so sorting and window filtering stay total.
func resolvePublishedAt(key, published string) time.Time {
	if m := recordKeyPattern.FindStringSubmatch(key); m != nil {
		if t, err := time.Parse("20060102", m[1]); err == nil {
			return t.UTC()
		}
	}

	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, published); err == nil {
			return t.UTC()
		}
	}

	return time.Time{}
}
