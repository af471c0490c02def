package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/ecowatch/econews/app/news"
	"github.com/ecowatch/econews/app/store"
	"github.com/ecowatch/econews/app/trends"
)

// Publisher is the sole writer of the published snapshot slots. One
// refresh cycle loads the record set once and derives the homepage
// grouping and both trend snapshots from it, so everything published in a
// cycle is mutually consistent.
type Publisher struct {
	store      store.Store
	loader     *news.Loader
	aggregator *trends.Aggregator
	rules      *news.Rules
}

func NewPublisher(st store.Store, loader *news.Loader, aggregator *trends.Aggregator, rules *news.Rules) *Publisher {
	return &Publisher{
		store:      st,
		loader:     loader,
		aggregator: aggregator,
		rules:      rules,
	}
}

// Refresh recomputes and republishes all snapshot slots. An empty load
// keeps the previous snapshots in place: stale-but-present beats empty.
// Every payload is marshaled before anything is written, and the writes go
// out in one transaction, so a failed cycle never leaves partial state.
func (p *Publisher) Refresh(ctx context.Context) error {
	slog.Info("Cache refresh started")

	records := p.loader.Run(ctx)
	if len(records) == 0 {
		slog.Warn("No news records loaded, keeping previous snapshots")
		return nil
	}

	homepage := p.buildHomepage(records)

	categorizedJSON, err := json.Marshal(homepage.CategorizedNews)
	if err != nil {
		return fmt.Errorf("failed to marshal categorized news: %w", err)
	}
	sourcesJSON, err := json.Marshal(homepage.SortedSources)
	if err != nil {
		return fmt.Errorf("failed to marshal sources: %w", err)
	}

	hashFields := map[string]string{
		HomepageFieldCategorized: string(categorizedJSON),
		HomepageFieldSources:     string(sourcesJSON),
	}

	stringSlots := make(map[string]string, len(Windows()))
	for _, window := range Windows() {
		snapshot := p.aggregator.Run(records, window.Days())
		data, err := json.Marshal(snapshot)
		if err != nil {
			return fmt.Errorf("failed to marshal %s trends: %w", window, err)
		}
		stringSlots[window.slot()] = string(data)
	}

	if err := p.store.PublishSnapshots(ctx, HomepageKey, hashFields, stringSlots); err != nil {
		return fmt.Errorf("refresh cycle abandoned: %w", err)
	}

	slog.Info("Cache refresh completed",
		"records", len(records),
		"sources", len(homepage.SortedSources))

	return nil
}

func (p *Publisher) buildHomepage(records []news.Record) HomepageSnapshot {
	categorized := make(map[string][]news.Record, len(p.rules.Categories))
	for _, cat := range p.rules.Categories {
		categorized[cat.ID] = make([]news.Record, 0)
	}

	sourceSet := make(map[string]struct{})
	for _, record := range records {
		id := record.CategoryID
		if _, ok := categorized[id]; !ok {
			id = news.OthersID
		}
		categorized[id] = append(categorized[id], record)

		if record.Source != "" {
			sourceSet[record.Source] = struct{}{}
		}
	}

	sources := make([]string, 0, len(sourceSet))
	for source := range sourceSet {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	return HomepageSnapshot{
		CategorizedNews: categorized,
		SortedSources:   sources,
	}
}
