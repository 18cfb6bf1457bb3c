package usecase

import (
	"context"
	"errors"

	"github.com/dreschagin/vitals-dashboard/internal/application/dto"
	"github.com/dreschagin/vitals-dashboard/internal/application/port"
	"github.com/dreschagin/vitals-dashboard/pkg/logger"
)

// ErrNoSnapshot возвращается до первой публикации snapshot
var ErrNoSnapshot = errors.New("no snapshot published yet")

// GetCurrentVitalsUseCase возвращает последний опубликованный snapshot
type GetCurrentVitalsUseCase struct {
	store  port.SnapshotStore
	cache  port.SnapshotCache // может быть nil если Redis выключен
	logger *logger.Logger
}

// NewGetCurrentVitalsUseCase создает новый use case
func NewGetCurrentVitalsUseCase(
	store port.SnapshotStore,
	cache port.SnapshotCache,
	logger *logger.Logger,
) *GetCurrentVitalsUseCase {
	return &GetCurrentVitalsUseCase{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// Execute выполняет получение текущего snapshot
func (uc *GetCurrentVitalsUseCase) Execute(ctx context.Context) (*dto.VitalSnapshotDTO, error) {
	if snapshot := uc.store.Get(); snapshot != nil {
		return snapshot, nil
	}

	// До первой публикации пробуем внешний кеш
	if uc.cache != nil {
		snapshot, err := uc.cache.GetLatest(ctx)
		if err == nil && snapshot != nil {
			uc.logger.Debug("Serving snapshot from cache")
			return snapshot, nil
		}
	}

	return nil, ErrNoSnapshot
}
