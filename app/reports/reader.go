package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ecowatch/econews/app/store"
)

// Period selects which report series to read.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

func Periods() []Period {
	return []Period{PeriodDaily, PeriodWeekly, PeriodMonthly}
}

func ParsePeriod(raw string) (Period, error) {
	for _, period := range Periods() {
		if raw == string(period) {
			return period, nil
		}
	}
	return "", fmt.Errorf("unknown report period: %q", raw)
}

// Report is a pre-generated summary stored by an external writer. Body is
// always valid JSON: object payloads pass through, plain-text payloads are
// carried as a JSON string.
type Report struct {
	ContentType string          `json:"content_type"`
	Body        json.RawMessage `json:"body"`
}

// envelope is the tagged storage format. Older writers stored the payload
// bare, so decoding falls back to sniffing.
type envelope struct {
	ContentType string          `json:"content_type"`
	Body        json.RawMessage `json:"body"`
}

type Reader struct {
	store store.Store
}

func NewReader(st store.Store) *Reader {
	return &Reader{store: st}
}

// Load fetches the report for a period and date. A missing report returns
// (nil, nil); only store failures surface as errors.
func (r *Reader) Load(ctx context.Context, period Period, date time.Time) (*Report, error) {
	key := fmt.Sprintf("%sreport-%s", period, date.Format("20060102"))

	raw, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load report %s: %w", key, err)
	}
	if raw == "" {
		return nil, nil
	}

	report := decode(raw)
	slog.Debug("Report loaded", "key", key, "content_type", report.ContentType)

	return report, nil
}

func decode(raw string) *Report {
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err == nil && env.ContentType != "" && len(env.Body) > 0 {
		return &Report{ContentType: env.ContentType, Body: env.Body}
	}

	// Legacy format: the payload was stored bare
	if json.Valid([]byte(raw)) {
		return &Report{ContentType: "json", Body: json.RawMessage(raw)}
	}

	quoted, _ := json.Marshal(raw)
	return &Report{ContentType: "text", Body: quoted}
}
