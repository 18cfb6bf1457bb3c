package repository

import (
	"github.com/dreschagin/vitals-dashboard/internal/domain/valueobject"
)

// HistoryRepository определяет интерфейс скользящей истории показателей (Port)
// Реализация будет в Infrastructure слое
type HistoryRepository interface {
	// Append добавляет sample в конец буфера метрики; если после добавления
	// буфер превышает capacity, вытесняется ровно один самый старый элемент
	Append(metric valueobject.VitalType, sample valueobject.VitalSample)

	// Snapshot возвращает копию буфера метрики от старых к новым.
	// Копия не обновляется после возврата
	Snapshot(metric valueobject.VitalType) []valueobject.VitalSample

	// Len возвращает текущую длину буфера метрики
	Len(metric valueobject.VitalType) int

	// Capacity возвращает настроенную емкость буферов
	Capacity() int
}
