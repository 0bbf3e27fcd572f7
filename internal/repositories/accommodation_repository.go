package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "tripline/internal/models/db_models"
	"tripline/pkg/utils"
)

type AccommodationRepository interface {
	GetByID(ctx context.Context, accommodationID uint) (*dbm.Accommodation, error)
	GetList(ctx context.Context) ([]dbm.Accommodation, error)
	Add(ctx context.Context, accommodation *dbm.Accommodation) (*dbm.Accommodation, error)
	Update(ctx context.Context, accommodation *dbm.Accommodation) error
	Delete(ctx context.Context, accommodationID uint) error
}

type accommodationRepository struct {
	db *gorm.DB
}

func NewAccommodationRepository(db *gorm.DB) AccommodationRepository {
	return &accommodationRepository{db: db}
}

func (r *accommodationRepository) GetByID(ctx context.Context, accommodationID uint) (*dbm.Accommodation, error) {
	var acc dbm.Accommodation
	err := r.db.WithContext(ctx).Preload("City").First(&acc, accommodationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &acc, nil
}

func (r *accommodationRepository) GetList(ctx context.Context) ([]dbm.Accommodation, error) {
	var accs []dbm.Accommodation
	err := r.db.WithContext(ctx).Preload("City").Order("id").Find(&accs).Error
	if err != nil {
		return nil, err
	}
	return accs, nil
}

func (r *accommodationRepository) Add(ctx context.Context, accommodation *dbm.Accommodation) (*dbm.Accommodation, error) {
	if err := r.db.WithContext(ctx).Omit("City").Create(accommodation).Error; err != nil {
		return nil, err
	}
	return accommodation, nil
}

func (r *accommodationRepository) Update(ctx context.Context, accommodation *dbm.Accommodation) error {
	res := r.db.WithContext(ctx).Model(&dbm.Accommodation{}).
		Where("id = ?", accommodation.ID).
		Updates(map[string]interface{}{
			"name":      accommodation.Name,
			"type":      accommodation.Type,
			"address":   accommodation.Address,
			"price":     accommodation.Price,
			"rating":    accommodation.Rating,
			"check_in":  accommodation.CheckIn,
			"check_out": accommodation.CheckOut,
			"city_id":   accommodation.CityID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrAccommodationNotFound
	}
	return nil
}

func (r *accommodationRepository) Delete(ctx context.Context, accommodationID uint) error {
	res := r.db.WithContext(ctx).Delete(&dbm.Accommodation{}, accommodationID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrAccommodationNotFound
	}
	return nil
}
