package services

import (
	"context"
	"fmt"

	"tripline/internal/models/db_models"
	"tripline/internal/repositories"
	"tripline/pkg/utils"
)

// DirectoryServiceInterface is the administrative surface over the leg
// directory. The path engine consumes the repository's lookup contract
// directly; this service exists for the maintenance CRUD.
type DirectoryServiceInterface interface {
	GetByID(ctx context.Context, legID uint) (*db_models.DirectoryLeg, error)
	GetList(ctx context.Context) ([]db_models.DirectoryLeg, error)
	Create(ctx context.Context, leg *db_models.DirectoryLeg) (*db_models.DirectoryLeg, error)
	Update(ctx context.Context, leg *db_models.DirectoryLeg) error
	Delete(ctx context.Context, legID uint) error
	Lookup(ctx context.Context, fromCityID, toCityID uint, transport db_models.Transport) (*db_models.DirectoryLeg, error)
	ChangeTransport(ctx context.Context, legID uint, newTransport db_models.Transport) (*db_models.DirectoryLeg, error)
}

type DirectoryService struct {
	dirRepo repositories.DirectoryRepository
}

func NewDirectoryService(dirRepo repositories.DirectoryRepository) DirectoryServiceInterface {
	return &DirectoryService{dirRepo: dirRepo}
}

func (s *DirectoryService) GetByID(ctx context.Context, legID uint) (*db_models.DirectoryLeg, error) {
	leg, err := s.dirRepo.GetByID(ctx, legID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if leg == nil {
		return nil, utils.ErrDirectoryLegNotFound
	}
	return leg, nil
}

func (s *DirectoryService) GetList(ctx context.Context) ([]db_models.DirectoryLeg, error) {
	legs, err := s.dirRepo.GetList(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return legs, nil
}

func (s *DirectoryService) Create(ctx context.Context, leg *db_models.DirectoryLeg) (*db_models.DirectoryLeg, error) {
	if err := leg.Validate(); err != nil {
		return nil, err
	}
	created, err := s.dirRepo.Add(ctx, leg)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *DirectoryService) Update(ctx context.Context, leg *db_models.DirectoryLeg) error {
	if err := leg.Validate(); err != nil {
		return err
	}
	return s.dirRepo.Update(ctx, leg)
}

func (s *DirectoryService) Delete(ctx context.Context, legID uint) error {
	return s.dirRepo.Delete(ctx, legID)
}

func (s *DirectoryService) Lookup(ctx context.Context, fromCityID, toCityID uint, transport db_models.Transport) (*db_models.DirectoryLeg, error) {
	if !transport.Valid() {
		return nil, fmt.Errorf("%w: unknown transport %q", utils.ErrInvalidInput, transport)
	}
	leg, err := s.dirRepo.LookupByCities(ctx, fromCityID, toCityID, transport)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if leg == nil {
		return nil, utils.ErrDirectoryLegNotFound
	}
	return leg, nil
}

func (s *DirectoryService) ChangeTransport(ctx context.Context, legID uint, newTransport db_models.Transport) (*db_models.DirectoryLeg, error) {
	if !newTransport.Valid() {
		return nil, fmt.Errorf("%w: unknown transport %q", utils.ErrInvalidInput, newTransport)
	}
	leg, err := s.dirRepo.ChangeTransport(ctx, legID, newTransport)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if leg == nil {
		return nil, utils.ErrDirectoryLegNotFound
	}
	return leg, nil
}
