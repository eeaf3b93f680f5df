package health

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, rec *Record) error
	GetOwned(ctx context.Context, id, userID uuid.UUID) (*Record, error)
	// ListByUser returns one page plus the total matching count.
	// Empty recordType means all types.
	ListByUser(ctx context.Context, userID uuid.UUID, recordType RecordType, limit, offset int) ([]*Record, int, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
