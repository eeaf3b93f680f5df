package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrNotFound     = errors.New("contact not found")
	ErrInvalidInput = errors.New("invalid contact input")
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
	Phone        string
	Relationship string
}

func (in *Input) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Relationship = strings.TrimSpace(in.Relationship)
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, in Input) (*Contact, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	ct := &Contact{
		UserID:       userID,
		Name:         in.Name,
		Phone:        in.Phone,
		Relationship: in.Relationship,
	}
	if err := s.repo.Create(ctx, ct); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	s.logger.Info().
		Str("op", "contact.create").
		Str("contact_id", ct.ID.String()).
		Str("user_id", userID.String()).
		Msg("contact added")
	return ct, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Contact, error) {
	return s.repo.GetOwned(ctx, id, userID)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Contact, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	if items == nil {
		items = []*Contact{}
	}
	return items, nil
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, in Input) (*Contact, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	ct := &Contact{
		ID:           id,
		UserID:       userID,
		Name:         in.Name,
		Phone:        in.Phone,
		Relationship: in.Relationship,
	}
	if err := s.repo.Update(ctx, ct); err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("op", "contact.update").
		Str("contact_id", id.String()).
		Str("user_id", userID.String()).
		Msg("contact updated")
	return s.repo.GetOwned(ctx, id, userID)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.logger.Info().
		Str("op", "contact.delete").
		Str("contact_id", id.String()).
		Str("user_id", userID.String()).
		Msg("contact removed")
	return nil
}
