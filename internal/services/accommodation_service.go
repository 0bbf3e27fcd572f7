package services

import (
	"context"
	"fmt"

	"tripline/internal/models/db_models"
	"tripline/internal/repositories"
	"tripline/pkg/utils"
)

type AccommodationServiceInterface interface {
	GetByID(ctx context.Context, accommodationID uint) (*db_models.Accommodation, error)
	GetList(ctx context.Context) ([]db_models.Accommodation, error)
	Create(ctx context.Context, accommodation *db_models.Accommodation) (*db_models.Accommodation, error)
	Update(ctx context.Context, accommodation *db_models.Accommodation) error
	Delete(ctx context.Context, accommodationID uint) error
}

type AccommodationService struct {
	accRepo  repositories.AccommodationRepository
	cityRepo repositories.CityRepository
}

func NewAccommodationService(accRepo repositories.AccommodationRepository, cityRepo repositories.CityRepository) AccommodationServiceInterface {
	return &AccommodationService{accRepo: accRepo, cityRepo: cityRepo}
}

func (s *AccommodationService) GetByID(ctx context.Context, accommodationID uint) (*db_models.Accommodation, error) {
	acc, err := s.accRepo.GetByID(ctx, accommodationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if acc == nil {
		return nil, utils.ErrAccommodationNotFound
	}
	return acc, nil
}

func (s *AccommodationService) GetList(ctx context.Context) ([]db_models.Accommodation, error) {
	accs, err := s.accRepo.GetList(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return accs, nil
}

func (s *AccommodationService) Create(ctx context.Context, accommodation *db_models.Accommodation) (*db_models.Accommodation, error) {
	if err := accommodation.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireCity(ctx, accommodation.CityID); err != nil {
		return nil, err
	}
	created, err := s.accRepo.Add(ctx, accommodation)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return created, nil
}

func (s *AccommodationService) Update(ctx context.Context, accommodation *db_models.Accommodation) error {
	if err := accommodation.Validate(); err != nil {
		return err
	}
	if err := s.requireCity(ctx, accommodation.CityID); err != nil {
		return err
	}
	return s.accRepo.Update(ctx, accommodation)
}

func (s *AccommodationService) Delete(ctx context.Context, accommodationID uint) error {
	return s.accRepo.Delete(ctx, accommodationID)
}

func (s *AccommodationService) requireCity(ctx context.Context, cityID uint) error {
	city, err := s.cityRepo.GetByID(ctx, cityID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if city == nil {
		return utils.ErrCityNotFound
	}
	return nil
}
