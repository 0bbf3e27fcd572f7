package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "tripline/internal/models/db_models"
	"tripline/pkg/utils"
)

type EntertainmentRepository interface {
	GetByID(ctx context.Context, entertainmentID uint) (*dbm.Entertainment, error)
	GetList(ctx context.Context) ([]dbm.Entertainment, error)
	Add(ctx context.Context, entertainment *dbm.Entertainment) (*dbm.Entertainment, error)
	Update(ctx context.Context, entertainment *dbm.Entertainment) error
	Delete(ctx context.Context, entertainmentID uint) error
}

type entertainmentRepository struct {
	db *gorm.DB
}

func NewEntertainmentRepository(db *gorm.DB) EntertainmentRepository {
	return &entertainmentRepository{db: db}
}

func (r *entertainmentRepository) GetByID(ctx context.Context, entertainmentID uint) (*dbm.Entertainment, error) {
	var ent dbm.Entertainment
	err := r.db.WithContext(ctx).Preload("City").First(&ent, entertainmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ent, nil
}

func (r *entertainmentRepository) GetList(ctx context.Context) ([]dbm.Entertainment, error) {
	var ents []dbm.Entertainment
	err := r.db.WithContext(ctx).Preload("City").Order("id").Find(&ents).Error
	if err != nil {
		return nil, err
	}
	return ents, nil
}

func (r *entertainmentRepository) Add(ctx context.Context, entertainment *dbm.Entertainment) (*dbm.Entertainment, error) {
	if err := r.db.WithContext(ctx).Omit("City").Create(entertainment).Error; err != nil {
		return nil, err
	}
	return entertainment, nil
}

func (r *entertainmentRepository) Update(ctx context.Context, entertainment *dbm.Entertainment) error {
	res := r.db.WithContext(ctx).Model(&dbm.Entertainment{}).
		Where("id = ?", entertainment.ID).
		Updates(map[string]interface{}{
			"duration_hours": entertainment.DurationHours,
			"address":        entertainment.Address,
			"event_name":     entertainment.EventName,
			"event_time":     entertainment.EventTime,
			"city_id":        entertainment.CityID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrEntertainmentNotFound
	}
	return nil
}

func (r *entertainmentRepository) Delete(ctx context.Context, entertainmentID uint) error {
	res := r.db.WithContext(ctx).Delete(&dbm.Entertainment{}, entertainmentID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrEntertainmentNotFound
	}
	return nil
}
