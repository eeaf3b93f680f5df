package contact

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, ct *Contact) error
	GetOwned(ctx context.Context, id, userID uuid.UUID) (*Contact, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Contact, error)
	Update(ctx context.Context, ct *Contact) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
