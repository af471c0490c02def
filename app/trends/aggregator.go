package trends

import (
	"sort"
	"time"

	"github.com/ecowatch/econews/app/news"
)

const (
	topKeywordLimit = 20
	topCountryLimit = 10
)

// Aggregator computes windowed trend statistics over classified records.
type Aggregator struct {
	rules       *news.Rules
	sampleLimit int

	// Now supplies the aggregation clock. Defaults to time.Now.
	Now func() time.Time
}

func NewAggregator(rules *news.Rules, sampleLimit int) *Aggregator {
	return &Aggregator{
		rules:       rules,
		sampleLimit: sampleLimit,
		Now:         time.Now,
	}
}

// Run filters records to the trailing window and computes keyword, source,
// category and country statistics plus a bounded news sample. The clock is
// read once per call, so all five outputs share one cutoff. An empty
// window yields a zero snapshot, never an error.
func (a *Aggregator) Run(records []news.Record, windowDays int) Snapshot {
	now := a.Now().UTC()
	cutoff := now.Add(-time.Duration(windowDays) * 24 * time.Hour)

	kept := make([]news.Record, 0, len(records))
	for _, record := range records {
		if !record.PublishedAt.Before(cutoff) {
			kept = append(kept, record)
		}
	}

	return Snapshot{
		GeneratedAt:          now,
		TotalNews:            len(kept),
		TopKeywords:          a.topKeywords(kept),
		SourceDistribution:   a.sourceDistribution(kept),
		CategoryDistribution: a.categoryDistribution(kept),
		CountryDistribution:  a.countryDistribution(kept),
		SampleNews:           a.sampleNews(kept),
	}
}

// topKeywords counts filtered tokens across all kept records and returns
// the top entries by count, ties broken by first-encountered order.
func (a *Aggregator) topKeywords(kept []news.Record) []KeywordCount {
	counts := make(map[string]int)
	var order []string

	for _, record := range kept {
		for _, token := range Tokenize(record.Title + " " + record.Summary) {
			if _, excluded := genericWords[token]; excluded {
				continue
			}
			if counts[token] == 0 {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	keywords := make([]KeywordCount, 0, len(order))
	for _, word := range order {
		keywords = append(keywords, KeywordCount{Keyword: word, Count: counts[word]})
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Count > keywords[j].Count
	})

	if len(keywords) > topKeywordLimit {
		keywords = keywords[:topKeywordLimit]
	}

	return keywords
}

func (a *Aggregator) sourceDistribution(kept []news.Record) []SourceCount {
	counts := make(map[string]int)
	for _, record := range kept {
		if record.Source == "" {
			continue
		}
		counts[record.Source]++
	}

	sources := make([]SourceCount, 0, len(counts))
	for source, count := range counts {
		sources = append(sources, SourceCount{Source: source, Count: count})
	}

	sort.Slice(sources, func(i, j int) bool {
		if sources[i].Count != sources[j].Count {
			return sources[i].Count > sources[j].Count
		}
		return sources[i].Source < sources[j].Source
	})

	return sources
}

// categoryDistribution always contains every declared category, including
// zero-count ones, so consumers can render a complete legend.
func (a *Aggregator) categoryDistribution(kept []news.Record) []CategoryCount {
	counts := make(map[string]int, len(a.rules.Categories))
	for _, record := range kept {
		name := record.Category
		if _, ok := a.rules.ByName(name); !ok {
			name = news.OthersName
		}
		counts[name]++
	}

	categories := make([]CategoryCount, 0, len(a.rules.Categories))
	for _, cat := range a.rules.Categories {
		categories = append(categories, CategoryCount{Category: cat.Name, Count: counts[cat.Name]})
	}

	// Stable sort keeps declaration order among equal counts
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Count > categories[j].Count
	})

	return categories
}

func (a *Aggregator) countryDistribution(kept []news.Record) []CountryCount {
	counts := make(map[string]int)
	for _, record := range kept {
		if record.Country == "" {
			continue
		}
		counts[record.Country]++
	}

	countries := make([]CountryCount, 0, len(counts))
	for country, count := range counts {
		countries = append(countries, CountryCount{Country: country, Count: count})
	}

	sort.Slice(countries, func(i, j int) bool {
		if countries[i].Count != countries[j].Count {
			return countries[i].Count > countries[j].Count
		}
		return countries[i].Country < countries[j].Country
	})

	if len(countries) > topCountryLimit {
		countries = countries[:topCountryLimit]
	}

	return countries
}

func (a *Aggregator) sampleNews(kept []news.Record) []news.Record {
	limit := a.sampleLimit
	if limit <= 0 || limit > len(kept) {
		limit = len(kept)
	}

	sample := make([]news.Record, limit)
	copy(sample, kept[:limit])
	return sample
}
