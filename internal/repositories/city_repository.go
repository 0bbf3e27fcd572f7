package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "tripline/internal/models/db_models"
	"tripline/pkg/utils"
)

type CityRepository interface {
	GetByID(ctx context.Context, cityID uint) (*dbm.City, error)
	GetList(ctx context.Context) ([]dbm.City, error)
	Add(ctx context.Context, city *dbm.City) (*dbm.City, error)
	Update(ctx context.Context, city *dbm.City) error
	Delete(ctx context.Context, cityID uint) error
	DeleteCascade(ctx context.Context, cityID uint) (int64, error)
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) GetByID(ctx context.Context, cityID uint) (*dbm.City, error) {
	var city dbm.City
	err := r.db.WithContext(ctx).First(&city, cityID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) GetList(ctx context.Context) ([]dbm.City, error) {
	var cities []dbm.City
	err := r.db.WithContext(ctx).Order("id").Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *cityRepository) Add(ctx context.Context, city *dbm.City) (*dbm.City, error) {
	if err := r.db.WithContext(ctx).Create(city).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, utils.ErrDuplicateEntry
		}
		return nil, err
	}
	return city, nil
}

func (r *cityRepository) Update(ctx context.Context, city *dbm.City) error {
	res := r.db.WithContext(ctx).Model(&dbm.City{}).
		Where("id = ?", city.ID).
		Update("name", city.Name)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return utils.ErrDuplicateEntry
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrCityNotFound
	}
	return nil
}

func (r *cityRepository) Delete(ctx context.Context, cityID uint) error {
	res := r.db.WithContext(ctx).Delete(&dbm.City{}, cityID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrCityNotFound
	}
	return nil
}

// DeleteCascade removes the city system-wide in one transaction: every route
// leg built on a directory leg touching the city, then those directory legs,
// then the city row. A failure anywhere rolls the whole removal back. Returns
// the number of route legs removed.
func (r *cityRepository) DeleteCascade(ctx context.Context, cityID uint) (int64, error) {
	var legsRemoved int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		touching := tx.Model(&dbm.DirectoryLeg{}).
			Select("id").
			Where("departure_city_id = ? OR arrival_city_id = ?", cityID, cityID)

		res := tx.Where("directory_leg_id IN (?)", touching).Delete(&dbm.RouteLeg{})
		if res.Error != nil {
			return res.Error
		}
		legsRemoved = res.RowsAffected

		if err := tx.Where("departure_city_id = ? OR arrival_city_id = ?", cityID, cityID).
			Delete(&dbm.DirectoryLeg{}).Error; err != nil {
			return err
		}

		res = tx.Delete(&dbm.City{}, cityID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrCityNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return legsRemoved, nil
}
