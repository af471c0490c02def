package cache

import (
	"fmt"

	"github.com/ecowatch/econews/app/news"
)

// Snapshot slot names in the store. Each slot is replaced wholesale on
// every publish; there is no partial-field merge.
const (
	HomepageKey              = "cache:homepage"
	HomepageFieldCategorized = "categorized_news_json"
	HomepageFieldSources     = "sorted_sources_json"

	trendSlotPrefix = "cache:trends:"
)

// Window identifies a trend aggregation window.
type Window string

const (
	WindowWeekly  Window = "weekly"
	WindowMonthly Window = "monthly"
)

// Windows lists all published trend windows.
func Windows() []Window {
	return []Window{WindowWeekly, WindowMonthly}
}

// ParseWindow validates a window name from an external caller.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case WindowWeekly, WindowMonthly:
		return Window(s), nil
	}
	return "", fmt.Errorf("invalid period: %s", s)
}

// Days returns the trailing window length.
func (w Window) Days() int {
	if w == WindowMonthly {
		return 30
	}
	return 7
}

func (w Window) slot() string {
	return trendSlotPrefix + string(w)
}

// HomepageSnapshot is the pre-computed homepage view: records bucketed by
// category id (newest first) and the deduplicated, sorted source list.
type HomepageSnapshot struct {
	CategorizedNews map[string][]news.Record `json:"categorized_news"`
	SortedSources   []string                 `json:"sorted_sources"`
}
