package trends

import (
	"time"

	"github.com/ecowatch/econews/app/news"
)

type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// Snapshot is the fully-computed output of one aggregation run for one
// window. It is recomputed wholesale each refresh cycle and replaces its
// predecessor atomically from the reader's point of view.
type Snapshot struct {
	GeneratedAt          time.Time       `json:"generated_at"`
	TotalNews            int             `json:"total_news"`
	TopKeywords          []KeywordCount  `json:"top_keywords"`
	SourceDistribution   []SourceCount   `json:"source_distribution"`
	CategoryDistribution []CategoryCount `json:"category_distribution"`
	CountryDistribution  []CountryCount  `json:"country_distribution"`
	SampleNews           []news.Record   `json:"sample_news"`
}
