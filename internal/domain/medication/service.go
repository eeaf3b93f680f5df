package medication

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrNotFound     = errors.New("medication not found")
	ErrInvalidInput = errors.New("invalid medication input")
)

type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

type Input struct {
	Name         string
	Dosage       string
	ScheduleTime string
	Reminder     bool
}

func (in *Input) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Dosage = strings.TrimSpace(in.Dosage)
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if t, err := time.Parse(timeLayout, in.ScheduleTime); err != nil || t.Format(timeLayout) != in.ScheduleTime {
		return fmt.Errorf("%w: bad schedule time %q", ErrInvalidInput, in.ScheduleTime)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, in Input) (*Medication, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	m := &Medication{
		UserID:       userID,
		Name:         in.Name,
		Dosage:       in.Dosage,
		ScheduleTime: in.ScheduleTime,
		Reminder:     in.Reminder,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create medication: %w", err)
	}
	s.logger.Info().
		Str("op", "medication.create").
		Str("medication_id", m.ID.String()).
		Str("user_id", userID.String()).
		Msg("medication added")
	return m, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Medication, error) {
	return s.repo.GetOwned(ctx, id, userID)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Medication, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	if items == nil {
		items = []*Medication{}
	}
	return items, nil
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, in Input) (*Medication, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	m := &Medication{
		ID:           id,
		UserID:       userID,
		Name:         in.Name,
		Dosage:       in.Dosage,
		ScheduleTime: in.ScheduleTime,
		Reminder:     in.Reminder,
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("op", "medication.update").
		Str("medication_id", id.String()).
		Str("user_id", userID.String()).
		Msg("medication updated")
	return s.repo.GetOwned(ctx, id, userID)
}

// SetReminder flips only the reminder flag, leaving the dose untouched.
func (s *Service) SetReminder(ctx context.Context, userID, id uuid.UUID, reminder bool) (*Medication, error) {
	if err := s.repo.SetReminder(ctx, id, userID, reminder); err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("op", "medication.reminder").
		Str("medication_id", id.String()).
		Str("user_id", userID.String()).
		Bool("reminder", reminder).
		Msg("medication reminder updated")
	return s.repo.GetOwned(ctx, id, userID)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.logger.Info().
		Str("op", "medication.delete").
		Str("medication_id", id.String()).
		Str("user_id", userID.String()).
		Msg("medication removed")
	return nil
}
