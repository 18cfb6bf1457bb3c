package history

import (
	"testing"
	"time"

	"github.com/dreschagin/vitals-dashboard/internal/application/dto"
)

func TestLatestSnapshot_NilBeforeFirstPublication(t *testing.T) {
	store := NewLatestSnapshot()

	if got := store.Get(); got != nil {
		t.Errorf("Get() before first Set = %v, want nil", got)
	}
}

func TestLatestSnapshot_SetReplacesWhole(t *testing.T) {
	store := NewLatestSnapshot()

	first := &dto.VitalSnapshotDTO{Timestamp: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)}
	second := &dto.VitalSnapshotDTO{Timestamp: time.Date(2026, 8, 25, 12, 0, 2, 0, time.UTC)}

	store.Set(first)
	if got := store.Get(); got != first {
		t.Error("Get() should return the published snapshot")
	}

	store.Set(second)
	if got := store.Get(); got != second {
		t.Error("Get() should return the latest snapshot after replacement")
	}
}

func TestLatestSnapshot_ConcurrentReaders(t *testing.T) {
	store := NewLatestSnapshot()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			store.Set(&dto.VitalSnapshotDTO{Timestamp: time.Now()})
		}
	}()

	for i := 0; i < 1000; i++ {
		snapshot := store.Get()
		if snapshot != nil && snapshot.Timestamp.IsZero() {
			t.Fatal("reader observed a partially initialized snapshot")
		}
	}
	<-done
}
