package history

import (
	"errors"
	"sync"

	"github.com/dreschagin/vitals-dashboard/internal/domain/valueobject"
)

// MemoryHistoryStore хранит ограниченные FIFO-буферы истории показателей в памяти.
// Реализует интерфейс repository.HistoryRepository.
//
// Пишет сюда только планировщик, но HTTP-слой читает конкурентно,
// поэтому доступ защищен RWMutex. Данные живут вместе с процессом.
type MemoryHistoryStore struct {
	mu       sync.RWMutex
	capacity int
	buffers  map[valueobject.VitalType][]valueobject.VitalSample
}

// NewMemoryHistoryStore создает хранилище с заданной емкостью буферов.
// Неположительная емкость — ошибка конфигурации, отклоняется сразу
func NewMemoryHistoryStore(capacity int) (*MemoryHistoryStore, error) {
	if capacity <= 0 {
		return nil, errors.New("history capacity must be positive")
	}

	buffers := make(map[valueobject.VitalType][]valueobject.VitalSample, len(valueobject.TrackedMetrics()))
	for _, metric := range valueobject.TrackedMetrics() {
		buffers[metric] = make([]valueobject.VitalSample, 0, capacity+1)
	}

	return &MemoryHistoryStore{
		capacity: capacity,
		buffers:  buffers,
	}, nil
}

// Append добавляет sample в конец буфера; при переполнении вытесняет
// ровно один самый старый элемент, так что len <= capacity после каждого вызова
func (s *MemoryHistoryStore) Append(metric valueobject.VitalType, sample valueobject.VitalSample) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := append(s.buffers[metric], sample)
	if len(buf) > s.capacity {
		// Сдвигаем на месте, чтобы не растить подлежащий массив
		buf = append(buf[:0], buf[1:]...)
	}
	s.buffers[metric] = buf
}

// Snapshot возвращает копию буфера от старых к новым
func (s *MemoryHistoryStore) Snapshot(metric valueobject.VitalType) []valueobject.VitalSample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	buf := s.buffers[metric]
	snapshot := make([]valueobject.VitalSample, len(buf))
	copy(snapshot, buf)
	return snapshot
}

// Len возвращает текущую длину буфера метрики
func (s *MemoryHistoryStore) Len(metric valueobject.VitalType) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.buffers[metric])
}

// Capacity возвращает настроенную емкость буферов
func (s *MemoryHistoryStore) Capacity() int {
	return s.capacity
}
