package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "tripline/internal/models/db_models"
	"tripline/pkg/utils"
)

// DirectoryRepository is the lookup table of precomputed city-to-city legs.
// LookupByCities is an exact match on the (departure, arrival, transport)
// triple; there is no fallback to a reversed pair or another mode.
type DirectoryRepository interface {
	GetByID(ctx context.Context, legID uint) (*dbm.DirectoryLeg, error)
	GetList(ctx context.Context) ([]dbm.DirectoryLeg, error)
	Add(ctx context.Context, leg *dbm.DirectoryLeg) (*dbm.DirectoryLeg, error)
	Update(ctx context.Context, leg *dbm.DirectoryLeg) error
	Delete(ctx context.Context, legID uint) error
	LookupByCities(ctx context.Context, fromCityID, toCityID uint, transport dbm.Transport) (*dbm.DirectoryLeg, error)
	ChangeTransport(ctx context.Context, legID uint, newTransport dbm.Transport) (*dbm.DirectoryLeg, error)
}

type directoryRepository struct {
	db *gorm.DB
}

func NewDirectoryRepository(db *gorm.DB) DirectoryRepository {
	return &directoryRepository{db: db}
}

func (r *directoryRepository) GetByID(ctx context.Context, legID uint) (*dbm.DirectoryLeg, error) {
	var leg dbm.DirectoryLeg
	err := r.db.WithContext(ctx).
		Preload("DepartureCity").
		Preload("ArrivalCity").
		First(&leg, legID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &leg, nil
}

func (r *directoryRepository) GetList(ctx context.Context) ([]dbm.DirectoryLeg, error) {
	var legs []dbm.DirectoryLeg
	err := r.db.WithContext(ctx).
		Preload("DepartureCity").
		Preload("ArrivalCity").
		Order("id").
		Find(&legs).Error
	if err != nil {
		return nil, err
	}
	return legs, nil
}

func (r *directoryRepository) Add(ctx context.Context, leg *dbm.DirectoryLeg) (*dbm.DirectoryLeg, error) {
	if err := r.db.WithContext(ctx).Create(leg).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, utils.ErrDuplicateEntry
		}
		return nil, err
	}
	return leg, nil
}

func (r *directoryRepository) Update(ctx context.Context, leg *dbm.DirectoryLeg) error {
	res := r.db.WithContext(ctx).Model(&dbm.DirectoryLeg{}).
		Where("id = ?", leg.ID).
		Updates(map[string]interface{}{
			"transport":         leg.Transport,
			"fare":              leg.Fare,
			"distance":          leg.Distance,
			"departure_city_id": leg.DepartureCityID,
			"arrival_city_id":   leg.ArrivalCityID,
		})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return utils.ErrDuplicateEntry
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrDirectoryLegNotFound
	}
	return nil
}

func (r *directoryRepository) Delete(ctx context.Context, legID uint) error {
	res := r.db.WithContext(ctx).Delete(&dbm.DirectoryLeg{}, legID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrDirectoryLegNotFound
	}
	return nil
}

func (r *directoryRepository) LookupByCities(ctx context.Context, fromCityID, toCityID uint, transport dbm.Transport) (*dbm.DirectoryLeg, error) {
	var leg dbm.DirectoryLeg
	err := r.db.WithContext(ctx).
		Preload("DepartureCity").
		Preload("ArrivalCity").
		Where("departure_city_id = ? AND arrival_city_id = ? AND transport = ?", fromCityID, toCityID, transport).
		Order("id").
		First(&leg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &leg, nil
}

// ChangeTransport resolves the existing leg's city pair and re-runs the
// triple lookup under the new transport.
func (r *directoryRepository) ChangeTransport(ctx context.Context, legID uint, newTransport dbm.Transport) (*dbm.DirectoryLeg, error) {
	existing, err := r.GetByID(ctx, legID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	return r.LookupByCities(ctx, existing.DepartureCityID, existing.ArrivalCityID, newTransport)
}
