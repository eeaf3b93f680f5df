package health

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
	ErrNotFound     = errors.New("health record not found")
	ErrInvalidInput = errors.New("invalid health record input")
)

type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

type Input struct {
	Type  RecordType
	Value string
	Unit  string
	Date  string
	Time  string
}

func canonical(s, layout string) bool {
	t, err := time.Parse(layout, s)
	return err == nil && t.Format(layout) == s
}

func (in *Input) validate() error {
	in.Value = strings.TrimSpace(in.Value)
	in.Unit = strings.TrimSpace(in.Unit)
	if !validType(in.Type) {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidInput, in.Type)
	}
	if in.Value == "" {
		return fmt.Errorf("%w: value is required", ErrInvalidInput)
	}
	if !canonical(in.Date, dateLayout) {
		return fmt.Errorf("%w: bad date %q", ErrInvalidInput, in.Date)
	}
	if !canonical(in.Time, timeLayout) {
		return fmt.Errorf("%w: bad time %q", ErrInvalidInput, in.Time)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, in Input) (*Record, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	rec := &Record{
		UserID: userID,
		Type:   in.Type,
		Value:  in.Value,
		Unit:   in.Unit,
		Date:   in.Date,
		Time:   in.Time,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create health record: %w", err)
	}
	s.logger.Info().
		Str("op", "health.create").
		Str("record_id", rec.ID.String()).
		Str("user_id", userID.String()).
		Str("type", string(rec.Type)).
		Msg("health record added")
	return rec, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Record, error) {
	return s.repo.GetOwned(ctx, id, userID)
}

// List returns one page of the caller's records, newest first. An
// empty recordType returns all types; an unknown one is rejected.
func (s *Service) List(ctx context.Context, userID uuid.UUID, recordType RecordType, limit, offset int) ([]*Record, int, error) {
	if recordType != "" && !validType(recordType) {
		return nil, 0, fmt.Errorf("%w: unknown type %q", ErrInvalidInput, recordType)
	}
	items, total, err := s.repo.ListByUser(ctx, userID, recordType, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list health records: %w", err)
	}
	if items == nil {
		items = []*Record{}
	}
	return items, total, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.logger.Info().
		Str("op", "health.delete").
		Str("record_id", id.String()).
		Str("user_id", userID.String()).
		Msg("health record removed")
	return nil
}
