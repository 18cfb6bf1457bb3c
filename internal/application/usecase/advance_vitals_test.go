package usecase

import (
	"context"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/dreschagin/vitals-dashboard/internal/application/dto"
	"github.com/dreschagin/vitals-dashboard/internal/domain/service"
	"github.com/dreschagin/vitals-dashboard/internal/domain/valueobject"
	"github.com/dreschagin/vitals-dashboard/pkg/logger"
)

type mockHistoryRepository struct {
	capacity int
	buffers  map[valueobject.VitalType][]valueobject.VitalSample
}

func newMockHistoryRepository(capacity int) *mockHistoryRepository {
	return &mockHistoryRepository{
		capacity: capacity,
		buffers:  make(map[valueobject.VitalType][]valueobject.VitalSample),
	}
}

func (m *mockHistoryRepository) Append(metric valueobject.VitalType, sample valueobject.VitalSample) {
	buf := append(m.buffers[metric], sample)
	if len(buf) > m.capacity {
		buf = buf[1:]
	}
	m.buffers[metric] = buf
}

func (m *mockHistoryRepository) Snapshot(metric valueobject.VitalType) []valueobject.VitalSample {
	buf := m.buffers[metric]
	out := make([]valueobject.VitalSample, len(buf))
	copy(out, buf)
	return out
}

func (m *mockHistoryRepository) Len(metric valueobject.VitalType) int {
	return len(m.buffers[metric])
}

func (m *mockHistoryRepository) Capacity() int {
	return m.capacity
}

type mockSnapshotStore struct {
	snapshot *dto.VitalSnapshotDTO
	setCalls int
}

func (m *mockSnapshotStore) Set(snapshot *dto.VitalSnapshotDTO) {
	m.snapshot = snapshot
	m.setCalls++
}

func (m *mockSnapshotStore) Get() *dto.VitalSnapshotDTO {
	return m.snapshot
}

type mockNotificationService struct {
	snapshots []*dto.VitalSnapshotDTO
	alerts    []*dto.AlertDTO
}

func (m *mockNotificationService) Broadcast(snapshot *dto.VitalSnapshotDTO) {
	m.snapshots = append(m.snapshots, snapshot)
}

func (m *mockNotificationService) BroadcastAlert(alert *dto.AlertDTO) {
	m.alerts = append(m.alerts, alert)
}

func (m *mockNotificationService) ClientCount() int {
	return len(m.snapshots)
}

func newTestAdvanceUseCase(t *testing.T, numerator, denominator int) (*AdvanceVitalsUseCase, *mockSnapshotStore, *mockNotificationService, *mockHistoryRepository) {
	t.Helper()

	table := valueobject.DefaultRangeTable()
	odds, err := service.NewAnomalyOdds(numerator, denominator)
	if err != nil {
		t.Fatalf("NewAnomalyOdds failed: %v", err)
	}

	history := newMockHistoryRepository(20)
	store := &mockSnapshotStore{}
	notifier := &mockNotificationService{}

	uc := NewAdvanceVitalsUseCase(
		service.NewVitalGenerator(table, odds, rand.NewSource(42)),
		service.NewMAPCalculator(),
		service.NewVitalClassifier(table),
		history,
		store,
		notifier,
		nil,
		nil,
		logger.New("error"),
	)

	return uc, store, notifier, history
}

func TestAdvanceVitalsUseCase_ExecutePublishesSnapshot(t *testing.T) {
	uc, store, notifier, history := newTestAdvanceUseCase(t, 0, 5)
	at := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	snapshot, err := uc.Execute(context.Background(), at)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if store.setCalls != 1 {
		t.Errorf("store Set calls = %d, want 1", store.setCalls)
	}
	if store.snapshot != snapshot {
		t.Error("published snapshot should match returned snapshot")
	}
	if len(notifier.snapshots) != 1 {
		t.Errorf("broadcast count = %d, want 1", len(notifier.snapshots))
	}

	if !snapshot.Timestamp.Equal(at) {
		t.Errorf("snapshot timestamp = %v, want %v", snapshot.Timestamp, at)
	}
	for name, vital := range map[string]*dto.VitalDTO{
		"heart_rate":             snapshot.HeartRate,
		"spo2":                   snapshot.SpO2,
		"systolic_bp":            snapshot.SystolicBP,
		"diastolic_bp":           snapshot.DiastolicBP,
		"temperature":            snapshot.Temperature,
		"mean_arterial_pressure": snapshot.MeanArterialPressure,
	} {
		if vital == nil {
			t.Fatalf("snapshot %s is nil", name)
		}
	}

	wantMAP := snapshot.DiastolicBP.Value + (snapshot.SystolicBP.Value-snapshot.DiastolicBP.Value)/3
	if math.Abs(snapshot.MeanArterialPressure.Value-wantMAP) > 1e-9 {
		t.Errorf("MAP = %v, want %v derived from published pressures", snapshot.MeanArterialPressure.Value, wantMAP)
	}

	for _, metric := range valueobject.TrackedMetrics() {
		if got := history.Len(metric); got != 1 {
			t.Errorf("history %q length = %d, want 1", metric, got)
		}
	}
}

func TestAdvanceVitalsUseCase_HistoriesShareTickTimestamp(t *testing.T) {
	uc, _, _, history := newTestAdvanceUseCase(t, 1, 5)
	at := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	if _, err := uc.Execute(context.Background(), at); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for _, metric := range valueobject.TrackedMetrics() {
		samples := history.Snapshot(metric)
		if len(samples) != 1 {
			t.Fatalf("history %q length = %d, want 1", metric, len(samples))
		}
		if !samples[0].Timestamp().Equal(at) {
			t.Errorf("history %q timestamp = %v, want %v", metric, samples[0].Timestamp(), at)
		}
	}
}

func TestAdvanceVitalsUseCase_SnapshotIncludesHistoryUpToTick(t *testing.T) {
	uc, _, _, _ := newTestAdvanceUseCase(t, 1, 5)
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	var last *dto.VitalSnapshotDTO
	for i := 0; i < 5; i++ {
		snapshot, err := uc.Execute(context.Background(), base.Add(time.Duration(i)*2*time.Second))
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		last = snapshot

		if len(snapshot.HeartRateHistory) != i+1 {
			t.Errorf("tick %d: heart rate history length = %d, want %d", i, len(snapshot.HeartRateHistory), i+1)
		}
	}

	newest := last.HeartRateHistory[len(last.HeartRateHistory)-1]
	if !newest.Timestamp.Equal(last.Timestamp) {
		t.Error("newest history point should carry the current tick timestamp")
	}
	if newest.Value != last.HeartRate.Value {
		t.Error("newest history point should match the current heart rate")
	}
}

func TestAdvanceVitalsUseCase_AlertsOnAbnormalVitals(t *testing.T) {
	uc, _, notifier, _ := newTestAdvanceUseCase(t, 1, 1)

	if _, err := uc.Execute(context.Background(), time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(notifier.alerts) != 5 {
		t.Fatalf("alert count = %d, want 5 with certain anomaly odds", len(notifier.alerts))
	}
	for _, alert := range notifier.alerts {
		if alert.ID == "" || alert.Message == "" || alert.Unit == "" {
			t.Errorf("alert for %q is missing fields: %+v", alert.Vital, alert)
		}
	}
}

func TestAdvanceVitalsUseCase_NoAlertsWhenAllNormal(t *testing.T) {
	uc, _, notifier, _ := newTestAdvanceUseCase(t, 0, 5)

	if _, err := uc.Execute(context.Background(), time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(notifier.alerts) != 0 {
		t.Errorf("alert count = %d, want 0 with zero anomaly odds", len(notifier.alerts))
	}
}

func TestAdvanceVitalsUseCase_SummaryStableWhenAllNormal(t *testing.T) {
	uc, store, _, _ := newTestAdvanceUseCase(t, 0, 5)

	if _, err := uc.Execute(context.Background(), time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	summary := store.snapshot.Summary
	if summary.TotalVitals != 4 {
		t.Errorf("TotalVitals = %d, want 4 (blood pressure pair counts once)", summary.TotalVitals)
	}
	if summary.AbnormalCount != 0 || summary.HasAbnormal || summary.OverallStatus != "stable" {
		t.Errorf("summary = %+v, want stable with zero abnormal", summary)
	}
}

func TestAdvanceVitalsUseCase_WarmupFillsStoreWithoutBroadcast(t *testing.T) {
	uc, store, notifier, history := newTestAdvanceUseCase(t, 1, 5)

	if err := uc.Warmup(context.Background(), time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Warmup failed: %v", err)
	}

	if store.snapshot == nil {
		t.Error("Warmup should publish the snapshot to the store")
	}
	if len(notifier.snapshots) != 0 || len(notifier.alerts) != 0 {
		t.Error("Warmup should not broadcast anything")
	}
	for _, metric := range valueobject.TrackedMetrics() {
		if got := history.Len(metric); got != 1 {
			t.Errorf("history %q length = %d, want 1 after warmup", metric, got)
		}
	}
}
