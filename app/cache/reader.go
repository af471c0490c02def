package cache

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ecowatch/econews/app/news"
	"github.com/ecowatch/econews/app/store"
	"github.com/ecowatch/econews/app/trends"
)

// Reader retrieves the last-published snapshots. Reads are total: a store
// failure or an absent slot yields nil, never an error, and callers render
// an empty-but-valid state.
type Reader struct {
	store store.Store
}

func NewReader(st store.Store) *Reader {
	return &Reader{store: st}
}

// Homepage returns the last-published homepage snapshot, or nil when no
// refresh has completed yet.
func (r *Reader) Homepage(ctx context.Context) *HomepageSnapshot {
	fields, err := r.store.HGetAll(ctx, HomepageKey)
	if err != nil {
		slog.Warn("Failed to read homepage snapshot", "error", err)
		return nil
	}
	if len(fields) == 0 {
		return nil
	}

	var snapshot HomepageSnapshot
	if err := json.Unmarshal([]byte(fields[HomepageFieldCategorized]), &snapshot.CategorizedNews); err != nil {
		slog.Warn("Failed to decode categorized news", "error", err)
		return nil
	}
	if err := json.Unmarshal([]byte(fields[HomepageFieldSources]), &snapshot.SortedSources); err != nil {
		slog.Warn("Failed to decode sorted sources", "error", err)
		return nil
	}
	if snapshot.SortedSources == nil {
		snapshot.SortedSources = make([]string, 0)
	}

	return &snapshot
}

// Trends returns the last-published snapshot for the given window, or nil
// when no refresh has completed yet.
func (r *Reader) Trends(ctx context.Context, window Window) *trends.Snapshot {
	raw, err := r.store.Get(ctx, window.slot())
	if err != nil {
		slog.Warn("Failed to read trend snapshot", "window", window, "error", err)
		return nil
	}
	if raw == "" {
		return nil
	}

	var snapshot trends.Snapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		slog.Warn("Failed to decode trend snapshot", "window", window, "error", err)
		return nil
	}
	if snapshot.SampleNews == nil {
		snapshot.SampleNews = make([]news.Record, 0)
	}

	return &snapshot
}
