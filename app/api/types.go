package api

import (
	"context"
	"time"

	"github.com/ecowatch/econews/app/cache"
	"github.com/ecowatch/econews/app/news"
	"github.com/ecowatch/econews/app/reports"
	"github.com/ecowatch/econews/app/trends"
)

type SnapshotReader interface {
	Homepage(ctx context.Context) *cache.HomepageSnapshot
	Trends(ctx context.Context, window cache.Window) *trends.Snapshot
}

var _ SnapshotReader = (*cache.Reader)(nil)

type ReportReader interface {
	Load(ctx context.Context, period reports.Period, date time.Time) (*reports.Report, error)
}

var _ ReportReader = (*reports.Reader)(nil)

type RefreshTrigger interface {
	TriggerRefresh()
}

type StorePinger interface {
	Ping(ctx context.Context) error
}

type RecordRemover interface {
	Delete(ctx context.Context, key string) (bool, error)
}

type Handler struct {
	snapshots SnapshotReader
	reports   ReportReader
	remover   RecordRemover
	pinger    StorePinger
	scheduler RefreshTrigger
	rules     *news.Rules
}
