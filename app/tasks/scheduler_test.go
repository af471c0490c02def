package tasks

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type fakeRefresher struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (f *fakeRefresher) Refresh(ctx context.Context) error {
	f.calls.Add(1)
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return nil
}

func TestScheduler_TriggerRefresh(t *testing.T) {
	refresher := &fakeRefresher{started: make(chan struct{}, 1)}
	scheduler := NewScheduler(refresher, time.Hour)

	scheduler.TriggerRefresh()

	select {
	case <-refresher.started:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected triggered refresh to run")
	}

	if refresher.calls.Load() != 1 {
		t.Errorf("Expected 1 refresh call, got %d", refresher.calls.Load())
	}
}

func TestScheduler_SkipsOverlappingRuns(t *testing.T) {
	refresher := &fakeRefresher{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	scheduler := NewScheduler(refresher, time.Hour)

	scheduler.TriggerRefresh()

	// Wait until the first run is in flight, then trigger again
	select {
	case <-refresher.started:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected first refresh to start")
	}

	scheduler.TriggerRefresh()
	time.Sleep(100 * time.Millisecond)
	close(refresher.release)

	// Give the skipped trigger a moment to (not) run
	time.Sleep(100 * time.Millisecond)

	if got := refresher.calls.Load(); got != 1 {
		t.Errorf("Expected overlapping trigger to be skipped, got %d calls", got)
	}
}

func TestScheduler_StartRunsEagerly(t *testing.T) {
	refresher := &fakeRefresher{started: make(chan struct{}, 1)}
	scheduler := NewScheduler(refresher, time.Hour)

	if err := scheduler.Start(); err != nil {
		t.Fatalf("Unexpected start error: %v", err)
	}
	defer scheduler.Stop()

	select {
	case <-refresher.started:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected an eager refresh at startup")
	}
}
