package cache

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/ecowatch/econews/app/news"
	"github.com/ecowatch/econews/app/trends"
)

var frozenNow = time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

// fakeStore implements store.Store backed by maps.
type fakeStore struct {
	values     map[string]string
	hashes     map[string]map[string]string
	publishErr error
	publishes  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		values: make(map[string]string),
		hashes: make(map[string]map[string]string),
	}
}

func (f *fakeStore) Ping(ctx context.Context) error { return nil }

func (f *fakeStore) ScanKeys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	for key := range f.values {
		keys = append(keys, key)
	}
	return keys, nil
}

func (f *fakeStore) FetchValues(ctx context.Context, keys []string) ([]string, error) {
	values := make([]string, len(keys))
	for i, key := range keys {
		values[i] = f.values[key]
	}
	return values, nil
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeStore) Set(ctx context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	return f.hashes[key], nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) (bool, error) {
	if _, ok := f.values[key]; !ok {
		return false, nil
	}
	delete(f.values, key)
	return true, nil
}

func (f *fakeStore) PublishSnapshots(ctx context.Context, hashKey string, hashFields map[string]string, stringSlots map[string]string) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.publishes++
	f.hashes[hashKey] = hashFields
	for slot, value := range stringSlots {
		f.values[slot] = value
	}
	return nil
}

func (f *fakeStore) Close() error { return nil }

func newTestPublisher(st *fakeStore) *Publisher {
	rules := news.DefaultRules()
	classifier := news.NewClassifier(rules)
	loader := news.NewLoader(st, classifier, rules)
	aggregator := trends.NewAggregator(rules, 50)
	aggregator.Now = func() time.Time { return frozenNow }
	return NewPublisher(st, loader, aggregator, rules)
}

func seedRecords(st *fakeStore) {
	st.values["news-20240131-000"] = `{"value": {"title": "Solar power milestone", "summary": "", "source": "EcoDaily"}}`
	st.values["news-20240130-000"] = `{"value": {"title": "Wetland conservation", "summary": "", "source": "Green Wire"}}`
}

func TestPublisher_Refresh_WritesAllSlots(t *testing.T) {
	st := newFakeStore()
	seedRecords(st)

	if err := newTestPublisher(st).Refresh(context.Background()); err != nil {
		t.Fatalf("Unexpected refresh error: %v", err)
	}

	fields := st.hashes[HomepageKey]
	if fields == nil {
		t.Fatal("Expected homepage hash to be published")
	}
	if fields[HomepageFieldCategorized] == "" || fields[HomepageFieldSources] == "" {
		t.Error("Expected both homepage fields to be populated")
	}

	for _, window := range Windows() {
		if st.values["cache:trends:"+string(window)] == "" {
			t.Errorf("Expected trend slot for '%s' to be published", window)
		}
	}

	var sources []string
	if err := json.Unmarshal([]byte(fields[HomepageFieldSources]), &sources); err != nil {
		t.Fatalf("Failed to decode sources: %v", err)
	}
	if !reflect.DeepEqual(sources, []string{"EcoDaily", "Green Wire"}) {
		t.Errorf("Expected alphabetically sorted sources, got %v", sources)
	}
}

func TestPublisher_Refresh_HomepageGrouping(t *testing.T) {
	st := newFakeStore()
	seedRecords(st)

	if err := newTestPublisher(st).Refresh(context.Background()); err != nil {
		t.Fatalf("Unexpected refresh error: %v", err)
	}

	var categorized map[string][]news.Record
	if err := json.Unmarshal([]byte(st.hashes[HomepageKey][HomepageFieldCategorized]), &categorized); err != nil {
		t.Fatalf("Failed to decode categorized news: %v", err)
	}

	// Every declared category id has a bucket, populated or not
	if len(categorized) != 8 {
		t.Errorf("Expected 8 category buckets, got %d", len(categorized))
	}
	if len(categorized["renewable_energy"]) != 1 {
		t.Errorf("Expected 1 renewable energy record, got %d", len(categorized["renewable_energy"]))
	}
	if len(categorized["biodiversity"]) != 1 {
		t.Errorf("Expected 1 biodiversity record, got %d", len(categorized["biodiversity"]))
	}
	if len(categorized["pollution"]) != 0 {
		t.Errorf("Expected empty pollution bucket, got %d records", len(categorized["pollution"]))
	}
}

func TestPublisher_Refresh_EmptyLoadKeepsPriorSnapshots(t *testing.T) {
	st := newFakeStore()
	st.hashes[HomepageKey] = map[string]string{
		HomepageFieldCategorized: `{"others": []}`,
		HomepageFieldSources:     `["Old Source"]`,
	}
	st.values["cache:trends:weekly"] = `{"total_news": 7}`

	if err := newTestPublisher(st).Refresh(context.Background()); err != nil {
		t.Fatalf("Unexpected refresh error: %v", err)
	}

	if st.publishes != 0 {
		t.Error("Expected no publish when the loader returns nothing")
	}
	if st.hashes[HomepageKey][HomepageFieldSources] != `["Old Source"]` {
		t.Error("Expected prior homepage snapshot to remain intact")
	}
	if st.values["cache:trends:weekly"] != `{"total_news": 7}` {
		t.Error("Expected prior trend snapshot to remain intact")
	}
}

func TestPublisher_Refresh_PublishFailureSurfaces(t *testing.T) {
	st := newFakeStore()
	seedRecords(st)
	st.publishErr = errors.New("connection reset")

	if err := newTestPublisher(st).Refresh(context.Background()); err == nil {
		t.Error("Expected refresh error when publish fails")
	}
	if st.hashes[HomepageKey] != nil {
		t.Error("Expected cache to remain untouched after publish failure")
	}
}

func TestPublisher_Refresh_Idempotent(t *testing.T) {
	st := newFakeStore()
	seedRecords(st)
	publisher := newTestPublisher(st)

	if err := publisher.Refresh(context.Background()); err != nil {
		t.Fatalf("Unexpected refresh error: %v", err)
	}
	firstHash := map[string]string{}
	for field, value := range st.hashes[HomepageKey] {
		firstHash[field] = value
	}
	firstWeekly := st.values["cache:trends:weekly"]
	firstMonthly := st.values["cache:trends:monthly"]

	if err := publisher.Refresh(context.Background()); err != nil {
		t.Fatalf("Unexpected refresh error: %v", err)
	}

	// With no data change and a frozen clock, republished snapshots are
	// byte-for-byte identical.
	if !reflect.DeepEqual(firstHash, st.hashes[HomepageKey]) {
		t.Error("Expected homepage snapshot to be identical across refreshes")
	}
	if st.values["cache:trends:weekly"] != firstWeekly {
		t.Error("Expected weekly snapshot to be identical across refreshes")
	}
	if st.values["cache:trends:monthly"] != firstMonthly {
		t.Error("Expected monthly snapshot to be identical across refreshes")
	}
}
