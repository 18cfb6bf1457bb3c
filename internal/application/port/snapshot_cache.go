package port

import (
	"context"

	"github.com/dreschagin/vitals-dashboard/internal/application/dto"
)

// SnapshotCache defines the interface for mirroring the latest snapshot
// into an external cache (Port). Optional: a nil cache disables mirroring
type SnapshotCache interface {
	// SetLatest stores the most recent snapshot
	SetLatest(ctx context.Context, snapshot *dto.VitalSnapshotDTO) error

	// GetLatest retrieves the most recent snapshot
	GetLatest(ctx context.Context) (*dto.VitalSnapshotDTO, error)

	// Close closes the cache connection
	Close() error
}
