package history

import (
	"sync/atomic"

	"github.com/dreschagin/vitals-dashboard/internal/application/dto"
)

// LatestSnapshot хранит последний опубликованный snapshot целиком.
// Реализует интерфейс port.SnapshotStore: замена всегда атомарна,
// читатель видит либо прошлый такт, либо новый — никогда смесь
type LatestSnapshot struct {
	current atomic.Pointer[dto.VitalSnapshotDTO]
}

// NewLatestSnapshot создает пустое хранилище (nil до первой публикации)
func NewLatestSnapshot() *LatestSnapshot {
	return &LatestSnapshot{}
}

// Set заменяет текущий snapshot
func (l *LatestSnapshot) Set(snapshot *dto.VitalSnapshotDTO) {
	l.current.Store(snapshot)
}

// Get возвращает последний snapshot или nil
func (l *LatestSnapshot) Get() *dto.VitalSnapshotDTO {
	return l.current.Load()
}
