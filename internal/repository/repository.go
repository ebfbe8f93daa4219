package repository

import (
	"context"
	"errors"

	"vennsets/internal/domain"
)

// ErrRunNotFound is returned when a run ID is not in the archive
var ErrRunNotFound = errors.New("run not found")

// RunArchive stores completed runs for later inspection
type RunArchive interface {
	// Write operations
	SaveRun(ctx context.Context, rec *domain.RunRecord, result *domain.RelationResult) error
	DeleteRun(ctx context.Context, id string) error

	// Read operations
	ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error)
	GetRun(ctx context.Context, id string) (*domain.RunRecord, error)
	RunMembers(ctx context.Context, id string, kind domain.OutputKind) ([]string, error)

	// Close releases resources
	Close() error
}
