package refdata

import (
	"context"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	List(ctx context.Context, limit, offset int) ([]*Doctor, int, error)
}

type LocationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Location, error)
	List(ctx context.Context, limit, offset int) ([]*Location, int, error)
}
