package refdata

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a doctor or location id does not resolve.
var ErrNotFound = errors.New("reference record not found")

type Service struct {
	doctors   DoctorRepository
	locations LocationRepository
}

func NewService(doctors DoctorRepository, locations LocationRepository) *Service {
	return &Service{doctors: doctors, locations: locations}
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.List(ctx, limit, offset)
}

func (s *Service) GetLocation(ctx context.Context, id uuid.UUID) (*Location, error) {
	return s.locations.GetByID(ctx, id)
}

func (s *Service) ListLocations(ctx context.Context, limit, offset int) ([]*Location, int, error) {
	return s.locations.List(ctx, limit, offset)
}
