package service

import (
	"math"
	"testing"
	"time"

	"github.com/dreschagin/vitals-dashboard/internal/domain/valueobject"
)

func mustSamples(t *testing.T, values ...float64) []valueobject.VitalSample {
	t.Helper()

	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	samples := make([]valueobject.VitalSample, 0, len(values))
	for i, v := range values {
		sample, err := valueobject.NewVitalSample(base.Add(time.Duration(i)*time.Second), v)
		if err != nil {
			t.Fatalf("NewVitalSample failed: %v", err)
		}
		samples = append(samples, sample)
	}
	return samples
}

func TestSampleAggregator_CalculateAverage(t *testing.T) {
	aggregator := NewSampleAggregator()

	avg, err := aggregator.CalculateAverage(mustSamples(t, 60, 70, 80))
	if err != nil {
		t.Fatalf("CalculateAverage failed: %v", err)
	}
	if math.Abs(avg-70) > 1e-9 {
		t.Errorf("CalculateAverage = %v, want 70", avg)
	}

	if _, err := aggregator.CalculateAverage(nil); err == nil {
		t.Error("CalculateAverage on empty history should return error")
	}
}

func TestSampleAggregator_CalculateMinMax(t *testing.T) {
	aggregator := NewSampleAggregator()
	samples := mustSamples(t, 72, 58, 101, 88)

	min, err := aggregator.CalculateMin(samples)
	if err != nil {
		t.Fatalf("CalculateMin failed: %v", err)
	}
	if min != 58 {
		t.Errorf("CalculateMin = %v, want 58", min)
	}

	max, err := aggregator.CalculateMax(samples)
	if err != nil {
		t.Fatalf("CalculateMax failed: %v", err)
	}
	if max != 101 {
		t.Errorf("CalculateMax = %v, want 101", max)
	}

	if _, err := aggregator.CalculateMin(nil); err == nil {
		t.Error("CalculateMin on empty history should return error")
	}
	if _, err := aggregator.CalculateMax(nil); err == nil {
		t.Error("CalculateMax on empty history should return error")
	}
}

func TestSampleAggregator_CountAbnormal(t *testing.T) {
	aggregator := NewSampleAggregator()
	classifier := NewVitalClassifier(valueobject.DefaultRangeTable())

	samples := mustSamples(t, 72, 58, 101, 88, 140)

	got := aggregator.CountAbnormal(classifier, valueobject.HeartRate, samples)
	if got != 3 {
		t.Errorf("CountAbnormal = %d, want 3", got)
	}
}
