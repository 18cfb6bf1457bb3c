package port

import "github.com/dreschagin/vitals-dashboard/internal/application/dto"

// SnapshotStore хранит последний опубликованный snapshot для pull-доступа (Port)
// Планировщик пишет сюда один раз за такт; HTTP-слой только читает
type SnapshotStore interface {
	// Set заменяет текущий snapshot целиком
	Set(snapshot *dto.VitalSnapshotDTO)

	// Get возвращает последний опубликованный snapshot или nil до первой публикации
	Get() *dto.VitalSnapshotDTO
}
