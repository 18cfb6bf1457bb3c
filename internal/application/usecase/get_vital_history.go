package usecase

import (
	"context"
	"fmt"

	"github.com/dreschagin/vitals-dashboard/internal/application/dto"
	"github.com/dreschagin/vitals-dashboard/internal/domain/repository"
	"github.com/dreschagin/vitals-dashboard/internal/domain/service"
	"github.com/dreschagin/vitals-dashboard/internal/domain/valueobject"
	"github.com/dreschagin/vitals-dashboard/pkg/logger"
)

// GetVitalHistoryUseCase возвращает историю одной отслеживаемой метрики с агрегатами
type GetVitalHistoryUseCase struct {
	history    repository.HistoryRepository
	aggregator *service.SampleAggregator
	classifier *service.VitalClassifier
	logger     *logger.Logger
}

// NewGetVitalHistoryUseCase создает новый use case
func NewGetVitalHistoryUseCase(
	history repository.HistoryRepository,
	aggregator *service.SampleAggregator,
	classifier *service.VitalClassifier,
	logger *logger.Logger,
) *GetVitalHistoryUseCase {
	return &GetVitalHistoryUseCase{
		history:    history,
		aggregator: aggregator,
		classifier: classifier,
		logger:     logger,
	}
}

// Execute выполняет получение истории метрики
func (uc *GetVitalHistoryUseCase) Execute(_ context.Context, metric valueobject.VitalType) (*dto.VitalHistoryDTO, error) {
	if err := metric.Validate(); err != nil {
		return nil, fmt.Errorf("invalid metric: %w", err)
	}
	if !metric.IsTracked() {
		return nil, fmt.Errorf("metric %q has no history", metric)
	}

	samples := uc.history.Snapshot(metric)
	uc.logger.Debug("Fetched vital history", "metric", metric.String(), "count", len(samples))

	if len(samples) == 0 {
		return &dto.VitalHistoryDTO{
			Metric:  metric.String(),
			Unit:    dto.UnitFor(metric),
			Samples: []dto.SampleDTO{},
		}, nil
	}

	// Буфер уже упорядочен от старых к новым: сортировка не нужна
	avg, _ := uc.aggregator.CalculateAverage(samples)
	min, _ := uc.aggregator.CalculateMin(samples)
	max, _ := uc.aggregator.CalculateMax(samples)

	// У производного MAP нет собственного диапазона: аномалии не считаем
	abnormalCount := 0
	if uc.classifier.CanClassify(metric) {
		abnormalCount = uc.aggregator.CountAbnormal(uc.classifier, metric, samples)
	}

	return &dto.VitalHistoryDTO{
		Metric:        metric.String(),
		Unit:          dto.UnitFor(metric),
		Samples:       dto.ToSampleDTOs(samples),
		Average:       avg,
		Min:           min,
		Max:           max,
		AbnormalCount: abnormalCount,
	}, nil
}
