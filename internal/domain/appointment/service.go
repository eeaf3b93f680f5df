package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/OdairGSoares/care-idosos-sub000/internal/domain/refdata"
)

var (
	// ErrNotFound covers a missing appointment, one owned by another
	// user and an unknown doctor or location reference. Callers cannot
	// tell the cases apart.
	ErrNotFound = errors.New("appointment not found")

	// ErrSlotTaken means another appointment already holds the same
	// doctor, location, date and time.
	ErrSlotTaken = errors.New("slot already taken")

	// ErrInvalidInput covers malformed dates and times.
	ErrInvalidInput = errors.New("invalid appointment input")
)

// ReferenceData is the slice of the reference catalog the scheduler
// needs. *refdata.Service satisfies it.
type ReferenceData interface {
	GetDoctor(ctx context.Context, id uuid.UUID) (*refdata.Doctor, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*refdata.Location, error)
}

type Service struct {
	repo   Repository
	ref    ReferenceData
	logger zerolog.Logger
}

func NewService(repo Repository, ref ReferenceData, logger zerolog.Logger) *Service {
	return &Service{repo: repo, ref: ref, logger: logger}
}

// CreateInput carries everything needed to book a new appointment.
type CreateInput struct {
	DoctorID   uuid.UUID
	LocationID uuid.UUID
	Date       string
	Time       string
}

// RescheduleInput moves an existing appointment. Absent doctor or
// location keep their current value.
type RescheduleInput struct {
	DoctorID   *uuid.UUID
	LocationID *uuid.UUID
	Date       string
	Time       string
}

func (s *Service) resolveRefs(ctx context.Context, doctorID, locationID uuid.UUID) (*refdata.Doctor, *refdata.Location, error) {
	doc, err := s.ref.GetDoctor(ctx, doctorID)
	if err != nil {
		if errors.Is(err, refdata.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: unknown doctor", ErrNotFound)
		}
		return nil, nil, fmt.Errorf("resolve doctor: %w", err)
	}
	loc, err := s.ref.GetLocation(ctx, locationID)
	if err != nil {
		if errors.Is(err, refdata.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: unknown location", ErrNotFound)
		}
		return nil, nil, fmt.Errorf("resolve location: %w", err)
	}
	return doc, loc, nil
}

func validateSlot(date, tm string) error {
	if !validDate(date) {
		return fmt.Errorf("%w: bad date %q", ErrInvalidInput, date)
	}
	if !validTime(tm) {
		return fmt.Errorf("%w: bad time %q", ErrInvalidInput, tm)
	}
	return nil
}

// Create books a new appointment for userID. The slot check is a fast
// path only; the unique index on the slot columns settles races.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, in CreateInput) (*Detail, error) {
	if err := validateSlot(in.Date, in.Time); err != nil {
		return nil, err
	}
	doc, loc, err := s.resolveRefs(ctx, in.DoctorID, in.LocationID)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.SlotTaken(ctx, in.DoctorID, in.LocationID, in.Date, in.Time)
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}
	if taken {
		return nil, ErrSlotTaken
	}

	a := &Appointment{
		UserID:     userID,
		DoctorID:   in.DoctorID,
		LocationID: in.LocationID,
		Date:       in.Date,
		Time:       in.Time,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.logger.Info().
		Str("op", "appointment.create").
		Str("appointment_id", a.ID.String()).
		Str("user_id", userID.String()).
		Msg("appointment booked")

	return NewDetail(a, doc, loc), nil
}

// Get returns one of the caller's appointments with doctor and
// location names resolved.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Detail, error) {
	a, err := s.repo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return s.toDetail(ctx, a)
}

// List returns every appointment of userID ordered by date then time.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Detail, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	out := make([]*Detail, 0, len(items))
	for _, a := range items {
		d, err := s.toDetail(ctx, a)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Reschedule moves an appointment to a new slot. Rescheduling onto the
// slot the appointment already occupies is a no-op.
func (s *Service) Reschedule(ctx context.Context, userID, id uuid.UUID, in RescheduleInput) (*Detail, error) {
	if err := validateSlot(in.Date, in.Time); err != nil {
		return nil, err
	}
	a, err := s.repo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	doctorID, locationID := a.DoctorID, a.LocationID
	if in.DoctorID != nil {
		doctorID = *in.DoctorID
	}
	if in.LocationID != nil {
		locationID = *in.LocationID
	}

	doc, loc, err := s.resolveRefs(ctx, doctorID, locationID)
	if err != nil {
		return nil, err
	}

	same := doctorID == a.DoctorID && locationID == a.LocationID &&
		in.Date == a.Date && in.Time == a.Time
	if same {
		return NewDetail(a, doc, loc), nil
	}

	taken, err := s.repo.SlotTaken(ctx, doctorID, locationID, in.Date, in.Time)
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}
	if taken {
		return nil, ErrSlotTaken
	}

	a.DoctorID, a.LocationID = doctorID, locationID
	a.Date, a.Time = in.Date, in.Time
	if err := s.repo.UpdateSchedule(ctx, a); err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrSlotTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("reschedule appointment: %w", err)
	}

	s.logger.Info().
		Str("op", "appointment.reschedule").
		Str("appointment_id", id.String()).
		Str("user_id", userID.String()).
		Msg("appointment moved")

	return NewDetail(a, doc, loc), nil
}

// SetConfirmed flips the confirmation flag and returns the updated
// appointment. Confirming twice is a no-op.
func (s *Service) SetConfirmed(ctx context.Context, userID, id uuid.UUID, confirmed bool) (*Detail, error) {
	if err := s.repo.SetConfirmed(ctx, id, userID, confirmed); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("op", "appointment.confirm").
		Str("appointment_id", id.String()).
		Str("user_id", userID.String()).
		Bool("confirmed", confirmed).
		Msg("appointment confirmation updated")

	return s.Get(ctx, userID, id)
}

// Cancel removes one of the caller's appointments.
func (s *Service) Cancel(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.logger.Info().
		Str("op", "appointment.cancel").
		Str("appointment_id", id.String()).
		Str("user_id", userID.String()).
		Msg("appointment cancelled")
	return nil
}

// toDetail resolves names for a read. A reference row that has gone
// missing leaves the name fields empty rather than failing the read;
// any other refdata failure propagates.
func (s *Service) toDetail(ctx context.Context, a *Appointment) (*Detail, error) {
	doc, err := s.ref.GetDoctor(ctx, a.DoctorID)
	if err != nil {
		if !errors.Is(err, refdata.ErrNotFound) {
			return nil, fmt.Errorf("resolve doctor: %w", err)
		}
		doc = nil
	}
	loc, err := s.ref.GetLocation(ctx, a.LocationID)
	if err != nil {
		if !errors.Is(err, refdata.ErrNotFound) {
			return nil, fmt.Errorf("resolve location: %w", err)
		}
		loc = nil
	}
	return NewDetail(a, doc, loc), nil
}
