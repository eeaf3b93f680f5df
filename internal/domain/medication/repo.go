package medication

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, m *Medication) error
	GetOwned(ctx context.Context, id, userID uuid.UUID) (*Medication, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Medication, error)
	Update(ctx context.Context, m *Medication) error
	SetReminder(ctx context.Context, id, userID uuid.UUID, reminder bool) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
