package appointment

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract for appointments. Implementations
// must back the slot tuple with a storage-level uniqueness constraint and
// report a violated constraint as ErrSlotTaken; the service's availability
// pre-check is only a fast path, never the guarantee.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetOwned(ctx context.Context, id, userID uuid.UUID) (*Appointment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Appointment, error)
	// UpdateSchedule overwrites doctor, location, date and time in place,
	// scoped to the owning user. Missing or foreign rows are ErrNotFound.
	UpdateSchedule(ctx context.Context, a *Appointment) error
	SetConfirmed(ctx context.Context, id, userID uuid.UUID, confirmed bool) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	// SlotTaken reports whether any appointment occupies the exact
	// (doctor, location, date, time) tuple.
	SlotTaken(ctx context.Context, doctorID, locationID uuid.UUID, date, tm string) (bool, error)
}
