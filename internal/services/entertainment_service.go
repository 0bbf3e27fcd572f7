package services

import (
	"context"
	"fmt"

	"tripline/internal/models/db_models"
	"tripline/internal/repositories"
	"tripline/pkg/utils"
)

type EntertainmentServiceInterface interface {
	GetByID(ctx context.Context, entertainmentID uint) (*db_models.Entertainment, error)
	GetList(ctx context.Context) ([]db_models.Entertainment, error)
	Create(ctx context.Context, entertainment *db_models.Entertainment) (*db_models.Entertainment, error)
	Update(ctx context.Context, entertainment *db_models.Entertainment) error
	Delete(ctx context.Context, entertainmentID uint) error
}

type EntertainmentService struct {
	entRepo  repositories.EntertainmentRepository
	cityRepo repositories.CityRepository
}

func NewEntertainmentService(entRepo repositories.EntertainmentRepository, cityRepo repositories.CityRepository) EntertainmentServiceInterface {
	return &EntertainmentService{entRepo: entRepo, cityRepo: cityRepo}
}

func (s *EntertainmentService) GetByID(ctx context.Context, entertainmentID uint) (*db_models.Entertainment, error) {
	ent, err := s.entRepo.GetByID(ctx, entertainmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if ent == nil {
		return nil, utils.ErrEntertainmentNotFound
	}
	return ent, nil
}

func (s *EntertainmentService) GetList(ctx context.Context) ([]db_models.Entertainment, error) {
	ents, err := s.entRepo.GetList(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return ents, nil
}

func (s *EntertainmentService) Create(ctx context.Context, entertainment *db_models.Entertainment) (*db_models.Entertainment, error) {
	if err := entertainment.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireCity(ctx, entertainment.CityID); err != nil {
		return nil, err
	}
	created, err := s.entRepo.Add(ctx, entertainment)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return created, nil
}

func (s *EntertainmentService) Update(ctx context.Context, entertainment *db_models.Entertainment) error {
	if err := entertainment.Validate(); err != nil {
		return err
	}
	if err := s.requireCity(ctx, entertainment.CityID); err != nil {
		return err
	}
	return s.entRepo.Update(ctx, entertainment)
}

func (s *EntertainmentService) Delete(ctx context.Context, entertainmentID uint) error {
	return s.entRepo.Delete(ctx, entertainmentID)
}

func (s *EntertainmentService) requireCity(ctx context.Context, cityID uint) error {
	city, err := s.cityRepo.GetByID(ctx, cityID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if city == nil {
		return utils.ErrCityNotFound
	}
	return nil
}
