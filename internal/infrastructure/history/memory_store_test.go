package history

import (
	"testing"
	"time"

	"github.com/dreschagin/vitals-dashboard/internal/domain/valueobject"
)

func mustSample(t *testing.T, offset int, value float64) valueobject.VitalSample {
	t.Helper()

	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	sample, err := valueobject.NewVitalSample(base.Add(time.Duration(offset)*time.Second), value)
	if err != nil {
		t.Fatalf("NewVitalSample failed: %v", err)
	}
	return sample
}

func TestNewMemoryHistoryStore_RejectsNonPositiveCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		if _, err := NewMemoryHistoryStore(capacity); err == nil {
			t.Errorf("NewMemoryHistoryStore(%d) should return error", capacity)
		}
	}
}

func TestMemoryHistoryStore_AppendRespectsCapacity(t *testing.T) {
	store, err := NewMemoryHistoryStore(3)
	if err != nil {
		t.Fatalf("NewMemoryHistoryStore failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		store.Append(valueobject.HeartRate, mustSample(t, i, float64(60+i)))
		if got := store.Len(valueobject.HeartRate); got > store.Capacity() {
			t.Fatalf("after append %d: Len = %d exceeds capacity %d", i, got, store.Capacity())
		}
	}

	if got := store.Len(valueobject.HeartRate); got != 3 {
		t.Errorf("Len = %d, want 3", got)
	}
}

func TestMemoryHistoryStore_EvictsOldestFirst(t *testing.T) {
	store, err := NewMemoryHistoryStore(3)
	if err != nil {
		t.Fatalf("NewMemoryHistoryStore failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		store.Append(valueobject.SpO2, mustSample(t, i, float64(90+i)))
	}

	snapshot := store.Snapshot(valueobject.SpO2)
	want := []float64{92, 93, 94}
	if len(snapshot) != len(want) {
		t.Fatalf("Snapshot length = %d, want %d", len(snapshot), len(want))
	}
	for i, sample := range snapshot {
		if sample.Value() != want[i] {
			t.Errorf("snapshot[%d] = %v, want %v", i, sample.Value(), want[i])
		}
	}
}

func TestMemoryHistoryStore_SnapshotOrderedOldToNew(t *testing.T) {
	store, err := NewMemoryHistoryStore(20)
	if err != nil {
		t.Fatalf("NewMemoryHistoryStore failed: %v", err)
	}

	for i := 0; i < 20; i++ {
		store.Append(valueobject.MeanArterialPressure, mustSample(t, i, 85))
	}

	snapshot := store.Snapshot(valueobject.MeanArterialPressure)
	for i := 1; i < len(snapshot); i++ {
		if !snapshot[i].Timestamp().After(snapshot[i-1].Timestamp()) {
			t.Fatalf("snapshot timestamps not strictly increasing at index %d", i)
		}
	}
}

func TestMemoryHistoryStore_SnapshotIsIndependentCopy(t *testing.T) {
	store, err := NewMemoryHistoryStore(5)
	if err != nil {
		t.Fatalf("NewMemoryHistoryStore failed: %v", err)
	}

	store.Append(valueobject.HeartRate, mustSample(t, 0, 72))
	first := store.Snapshot(valueobject.HeartRate)

	store.Append(valueobject.HeartRate, mustSample(t, 1, 75))

	if len(first) != 1 {
		t.Errorf("earlier snapshot mutated: length = %d, want 1", len(first))
	}
}

func TestMemoryHistoryStore_BuffersAreIndependent(t *testing.T) {
	store, err := NewMemoryHistoryStore(5)
	if err != nil {
		t.Fatalf("NewMemoryHistoryStore failed: %v", err)
	}

	store.Append(valueobject.HeartRate, mustSample(t, 0, 72))

	if got := store.Len(valueobject.SpO2); got != 0 {
		t.Errorf("SpO2 buffer length = %d, want 0", got)
	}
	if got := store.Len(valueobject.MeanArterialPressure); got != 0 {
		t.Errorf("MAP buffer length = %d, want 0", got)
	}
}
