package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/dreschagin/vitals-dashboard/internal/application/dto"
	"github.com/dreschagin/vitals-dashboard/internal/application/port"
	"github.com/dreschagin/vitals-dashboard/internal/domain/entity"
	"github.com/dreschagin/vitals-dashboard/internal/domain/repository"
	"github.com/dreschagin/vitals-dashboard/internal/domain/service"
	"github.com/dreschagin/vitals-dashboard/internal/domain/valueobject"
	"github.com/dreschagin/vitals-dashboard/pkg/logger"
)

// AdvanceVitalsUseCase координирует один такт симуляции: генерацию показателей,
// расчет MAP, пополнение истории и атомарную публикацию snapshot
type AdvanceVitalsUseCase struct {
	generator  *service.VitalGenerator
	calculator *service.MAPCalculator
	classifier *service.VitalClassifier
	history    repository.HistoryRepository
	store      port.SnapshotStore
	notifier   port.NotificationService
	events     port.EventPublisher // может быть nil если NATS выключен
	cache      port.SnapshotCache  // может быть nil если Redis выключен
	logger     *logger.Logger
}

// NewAdvanceVitalsUseCase создает новый use case
func NewAdvanceVitalsUseCase(
	generator *service.VitalGenerator,
	calculator *service.MAPCalculator,
	classifier *service.VitalClassifier,
	history repository.HistoryRepository,
	store port.SnapshotStore,
	notifier port.NotificationService,
	events port.EventPublisher,
	cache port.SnapshotCache,
	logger *logger.Logger,
) *AdvanceVitalsUseCase {
	return &AdvanceVitalsUseCase{
		generator:  generator,
		calculator: calculator,
		classifier: classifier,
		history:    history,
		store:      store,
		notifier:   notifier,
		events:     events,
		cache:      cache,
		logger:     logger,
	}
}

// Execute выполняет один такт и публикует результат
func (uc *AdvanceVitalsUseCase) Execute(ctx context.Context, at time.Time) (*dto.VitalSnapshotDTO, error) {
	snapshot, reading, err := uc.advance(at)
	if err != nil {
		return nil, err
	}

	// Публикуем snapshot одним целым: текущие значения и истории вместе
	uc.store.Set(snapshot)
	uc.notifier.Broadcast(snapshot)
	uc.logger.Debug("Snapshot broadcasted to clients",
		"client_count", uc.notifier.ClientCount(),
		"overall_status", snapshot.Summary.OverallStatus)

	uc.checkAndSendAlerts(ctx, reading)
	uc.mirrorToCache(snapshot)

	return snapshot, nil
}

// Warmup выполняет один такт без рассылки: используется на фазе Seeding,
// чтобы заполнить историю до показа первого кадра. Snapshot кладется
// только в store, поэтому pull-доступ работает сразу после посева
func (uc *AdvanceVitalsUseCase) Warmup(_ context.Context, at time.Time) error {
	snapshot, _, err := uc.advance(at)
	if err != nil {
		return err
	}

	uc.store.Set(snapshot)
	return nil
}

// advance выполняет общую часть такта: генерация, MAP, история, сборка snapshot
func (uc *AdvanceVitalsUseCase) advance(at time.Time) (*dto.VitalSnapshotDTO, *entity.VitalsReading, error) {
	// 1. Генерируем свежие значения всех показателей
	reading, err := uc.generator.Generate(at)
	if err != nil {
		uc.logger.Error("Failed to generate vitals", err)
		return nil, nil, fmt.Errorf("failed to generate vitals: %w", err)
	}

	// 2. Выводим MAP из фактически сгенерированной пары давлений
	mapValue := uc.calculator.Compute(reading.SystolicBP(), reading.DiastolicBP())

	// 3. Пополняем истории отслеживаемых метрик одним timestamp
	if err := uc.appendHistory(reading, mapValue); err != nil {
		return nil, nil, err
	}

	// 4. Собираем snapshot из текущих значений и копий историй
	snapshot := dto.NewVitalSnapshotDTO(reading, mapValue, uc.classifier, dto.Histories{
		HeartRate: uc.history.Snapshot(valueobject.HeartRate),
		SpO2:      uc.history.Snapshot(valueobject.SpO2),
		MAP:       uc.history.Snapshot(valueobject.MeanArterialPressure),
	})

	return snapshot, reading, nil
}

// appendHistory добавляет значения такта в буферы трех отслеживаемых метрик
func (uc *AdvanceVitalsUseCase) appendHistory(reading *entity.VitalsReading, mapValue float64) error {
	tracked := map[valueobject.VitalType]float64{
		valueobject.HeartRate:            reading.HeartRate(),
		valueobject.SpO2:                 reading.SpO2(),
		valueobject.MeanArterialPressure: mapValue,
	}

	for _, metric := range valueobject.TrackedMetrics() {
		sample, err := valueobject.NewVitalSample(reading.CollectedAt(), tracked[metric])
		if err != nil {
			return fmt.Errorf("failed to build %s sample: %w", metric, err)
		}
		uc.history.Append(metric, sample)
	}

	return nil
}

// checkAndSendAlerts рассылает alerts по аномальным показателям такта
func (uc *AdvanceVitalsUseCase) checkAndSendAlerts(ctx context.Context, reading *entity.VitalsReading) {
	abnormal := map[valueobject.VitalType]float64{}

	for vital, value := range map[valueobject.VitalType]float64{
		valueobject.HeartRate:   reading.HeartRate(),
		valueobject.SpO2:        reading.SpO2(),
		valueobject.SystolicBP:  reading.SystolicBP(),
		valueobject.DiastolicBP: reading.DiastolicBP(),
		valueobject.Temperature: reading.Temperature(),
	} {
		if uc.classifier.Classify(vital, value).IsAbnormal() {
			abnormal[vital] = value
		}
	}

	for vital, value := range abnormal {
		message := fmt.Sprintf("%s is out of normal range: %.1f %s", vital.String(), value, dto.UnitFor(vital))
		alert := dto.NewAlertDTO(vital, value, reading.CollectedAt(), message)

		uc.notifier.BroadcastAlert(alert)
		uc.logger.Warn("Abnormal vital detected", "vital", vital.String(), "value", value)

		if uc.events != nil {
			subject := "vitals.anomaly." + vital.String()
			if err := uc.events.PublishEvent(ctx, subject, alert); err != nil {
				// Такт не должен падать из-за брокера
				uc.logger.Warn("Failed to publish anomaly event", "subject", subject, "error", err.Error())
			}
		}
	}
}

// mirrorToCache асинхронно отражает snapshot во внешний кеш
func (uc *AdvanceVitalsUseCase) mirrorToCache(snapshot *dto.VitalSnapshotDTO) {
	if uc.cache == nil {
		return
	}

	go func() {
		if err := uc.cache.SetLatest(context.Background(), snapshot); err != nil {
			uc.logger.Warn("Failed to mirror snapshot to cache", "error", err.Error())
		}
	}()
}
