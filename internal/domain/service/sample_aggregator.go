package service

import (
	"errors"

	"github.com/dreschagin/vitals-dashboard/internal/domain/valueobject"
)

// SampleAggregator предоставляет сервисы для агрегации истории показателей (Domain Service)
// Содержит бизнес-логику, которая не принадлежит одной конкретной сущности
type SampleAggregator struct{}

// NewSampleAggregator создает новый SampleAggregator
func NewSampleAggregator() *SampleAggregator {
	return &SampleAggregator{}
}

// CalculateAverage вычисляет среднее значение по истории
func (a *SampleAggregator) CalculateAverage(samples []valueobject.VitalSample) (float64, error) {
	if len(samples) == 0 {
		return 0, errors.New("no samples to aggregate")
	}

	var sum float64
	for _, s := range samples {
		sum += s.Value()
	}

	return sum / float64(len(samples)), nil
}

// CalculateMin находит минимальное значение в истории
func (a *SampleAggregator) CalculateMin(samples []valueobject.VitalSample) (float64, error) {
	if len(samples) == 0 {
		return 0, errors.New("no samples to aggregate")
	}

	min := samples[0].Value()
	for _, s := range samples[1:] {
		if val := s.Value(); val < min {
			min = val
		}
	}

	return min, nil
}

// CalculateMax находит максимальное значение в истории
func (a *SampleAggregator) CalculateMax(samples []valueobject.VitalSample) (float64, error) {
	if len(samples) == 0 {
		return 0, errors.New("no samples to aggregate")
	}

	max := samples[0].Value()
	for _, s := range samples[1:] {
		if val := s.Value(); val > max {
			max = val
		}
	}

	return max, nil
}

// CountAbnormal считает аномальные значения в истории метрики
func (a *SampleAggregator) CountAbnormal(
	classifier *VitalClassifier,
	metric valueobject.VitalType,
	samples []valueobject.VitalSample,
) int {
	count := 0
	for _, s := range samples {
		if classifier.Classify(metric, s.Value()).IsAbnormal() {
			count++
		}
	}
	return count
}
