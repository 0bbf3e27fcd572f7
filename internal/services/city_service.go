package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tripline/internal/models/db_models"
	"tripline/internal/repositories"
	"tripline/pkg/utils"
)

type CityServiceInterface interface {
	GetByID(ctx context.Context, cityID uint) (*db_models.City, error)
	GetList(ctx context.Context) ([]db_models.City, error)
	Create(ctx context.Context, name string) (*db_models.City, error)
	Rename(ctx context.Context, cityID uint, name string) (*db_models.City, error)
	Delete(ctx context.Context, cityID uint) error
}

type CityService struct {
	cityRepo repositories.CityRepository
	logger   *zap.Logger
}

func NewCityService(cityRepo repositories.CityRepository, logger *zap.Logger) CityServiceInterface {
	return &CityService{cityRepo: cityRepo, logger: logger}
}

func (s *CityService) GetByID(ctx context.Context, cityID uint) (*db_models.City, error) {
	city, err := s.cityRepo.GetByID(ctx, cityID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}
	return city, nil
}

func (s *CityService) GetList(ctx context.Context) ([]db_models.City, error) {
	cities, err := s.cityRepo.GetList(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return cities, nil
}

func (s *CityService) Create(ctx context.Context, name string) (*db_models.City, error) {
	city := &db_models.City{Name: name}
	if err := city.Validate(); err != nil {
		return nil, err
	}
	created, err := s.cityRepo.Add(ctx, city)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *CityService) Rename(ctx context.Context, cityID uint, name string) (*db_models.City, error) {
	city := &db_models.City{ID: cityID, Name: name}
	if err := city.Validate(); err != nil {
		return nil, err
	}
	if err := s.cityRepo.Update(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

// Delete removes a city system-wide: every route leg touching it (across all
// travels), then every directory leg referencing it, then the city row. The
// whole cascade runs in one storage transaction, so a failure partway leaves
// the route legs in place.
func (s *CityService) Delete(ctx context.Context, cityID uint) error {
	city, err := s.cityRepo.GetByID(ctx, cityID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if city == nil {
		return utils.ErrCityNotFound
	}

	legsRemoved, err := s.cityRepo.DeleteCascade(ctx, cityID)
	if err != nil {
		if errors.Is(err, utils.ErrCityNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	if s.logger != nil {
		s.logger.Info("city removed with cascade",
			zap.Uint("city_id", cityID),
			zap.Int64("route_legs_removed", legsRemoved),
		)
	}
	return nil
}
