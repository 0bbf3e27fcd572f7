package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "tripline/internal/models/db_models"
	"tripline/pkg/utils"
)

type TravelRepository interface {
	GetByID(ctx context.Context, travelID uint) (*dbm.Travel, error)
	GetList(ctx context.Context) ([]dbm.Travel, error)
	Add(ctx context.Context, travel *dbm.Travel) (*dbm.Travel, error)
	UpdateStatus(ctx context.Context, travelID uint, status dbm.TravelStatus) error
	Delete(ctx context.Context, travelID uint) error

	LinkUsers(ctx context.Context, travelID uint, userIDs []uint) error
	LinkEntertainments(ctx context.Context, travelID uint, entertainmentIDs []uint) error
	LinkAccommodations(ctx context.Context, travelID uint, accommodationIDs []uint) error

	GetUsersByTravel(ctx context.Context, travelID uint) ([]dbm.User, error)
	GetEntertainmentsByTravel(ctx context.Context, travelID uint) ([]dbm.Entertainment, error)
	GetAccommodationsByTravel(ctx context.Context, travelID uint) ([]dbm.Accommodation, error)
	GetTravelsForUser(ctx context.Context, userID uint, status dbm.TravelStatus) ([]dbm.Travel, error)
	Search(ctx context.Context, userID uint, status dbm.TravelStatus) ([]dbm.Travel, error)
	GetTravelByRouteLeg(ctx context.Context, legID uint) (*dbm.Travel, error)
}

type travelRepository struct {
	db *gorm.DB
}

func NewTravelRepository(db *gorm.DB) TravelRepository {
	return &travelRepository{db: db}
}

func (r *travelRepository) GetByID(ctx context.Context, travelID uint) (*dbm.Travel, error) {
	var travel dbm.Travel
	err := r.db.WithContext(ctx).
		Preload("Users").
		Preload("Entertainments").
		Preload("Accommodations").
		First(&travel, travelID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &travel, nil
}

func (r *travelRepository) GetList(ctx context.Context) ([]dbm.Travel, error) {
	var travels []dbm.Travel
	err := r.db.WithContext(ctx).
		Preload("Users").
		Preload("Entertainments").
		Preload("Accommodations").
		Order("id").
		Find(&travels).Error
	if err != nil {
		return nil, err
	}
	return travels, nil
}

func (r *travelRepository) Add(ctx context.Context, travel *dbm.Travel) (*dbm.Travel, error) {
	if err := travel.Validate(); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Create(travel).Error; err != nil {
		return nil, err
	}
	return travel, nil
}

func (r *travelRepository) UpdateStatus(ctx context.Context, travelID uint, status dbm.TravelStatus) error {
	res := r.db.WithContext(ctx).Model(&dbm.Travel{}).
		Where("id = ?", travelID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrTravelNotFound
	}
	return nil
}

// Delete removes the travel, its route legs and its link rows in one
// transaction. Legs die with their travel.
func (r *travelRepository) Delete(ctx context.Context, travelID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("travel_id = ?", travelID).Delete(&dbm.RouteLeg{}).Error; err != nil {
			return err
		}
		travel := dbm.Travel{ID: travelID}
		for _, assoc := range []string{"Users", "Entertainments", "Accommodations"} {
			if err := tx.Model(&travel).Association(assoc).Clear(); err != nil {
				return err
			}
		}
		res := tx.Delete(&dbm.Travel{}, travelID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrTravelNotFound
		}
		return nil
	})
}

func (r *travelRepository) LinkUsers(ctx context.Context, travelID uint, userIDs []uint) error {
	users := make([]dbm.User, 0, len(userIDs))
	for _, id := range userIDs {
		users = append(users, dbm.User{ID: id})
	}
	travel := dbm.Travel{ID: travelID}
	return r.db.WithContext(ctx).Model(&travel).Association("Users").Replace(users)
}

func (r *travelRepository) LinkEntertainments(ctx context.Context, travelID uint, entertainmentIDs []uint) error {
	items := make([]dbm.Entertainment, 0, len(entertainmentIDs))
	for _, id := range entertainmentIDs {
		items = append(items, dbm.Entertainment{ID: id})
	}
	travel := dbm.Travel{ID: travelID}
	return r.db.WithContext(ctx).Model(&travel).Association("Entertainments").Replace(items)
}

func (r *travelRepository) LinkAccommodations(ctx context.Context, travelID uint, accommodationIDs []uint) error {
	items := make([]dbm.Accommodation, 0, len(accommodationIDs))
	for _, id := range accommodationIDs {
		items = append(items, dbm.Accommodation{ID: id})
	}
	travel := dbm.Travel{ID: travelID}
	return r.db.WithContext(ctx).Model(&travel).Association("Accommodations").Replace(items)
}

func (r *travelRepository) GetUsersByTravel(ctx context.Context, travelID uint) ([]dbm.User, error) {
	travel, err := r.GetByID(ctx, travelID)
	if err != nil || travel == nil {
		return nil, err
	}
	return travel.Users, nil
}

func (r *travelRepository) GetEntertainmentsByTravel(ctx context.Context, travelID uint) ([]dbm.Entertainment, error) {
	travel, err := r.GetByID(ctx, travelID)
	if err != nil || travel == nil {
		return nil, err
	}
	return travel.Entertainments, nil
}

func (r *travelRepository) GetAccommodationsByTravel(ctx context.Context, travelID uint) ([]dbm.Accommodation, error) {
	travel, err := r.GetByID(ctx, travelID)
	if err != nil || travel == nil {
		return nil, err
	}
	return travel.Accommodations, nil
}

func (r *travelRepository) GetTravelsForUser(ctx context.Context, userID uint, status dbm.TravelStatus) ([]dbm.Travel, error) {
	var travels []dbm.Travel
	err := r.db.WithContext(ctx).
		Preload("Users").
		Preload("Entertainments").
		Preload("Accommodations").
		Joins("JOIN travel_users ON travel_users.travel_id = travels.id").
		Where("travel_users.user_id = ? AND travels.status = ?", userID, status).
		Order("travels.id").
		Find(&travels).Error
	if err != nil {
		return nil, err
	}
	return travels, nil
}

// Search filters travels by optional criteria. A zero userID matches travels
// regardless of participants, an empty status matches every status.
func (r *travelRepository) Search(ctx context.Context, userID uint, status dbm.TravelStatus) ([]dbm.Travel, error) {
	q := r.db.WithContext(ctx).
		Model(&dbm.Travel{}).
		Preload("Users").
		Preload("Entertainments").
		Preload("Accommodations")
	if userID != 0 {
		q = q.Joins("JOIN travel_users ON travel_users.travel_id = travels.id").
			Where("travel_users.user_id = ?", userID)
	}
	if status != "" {
		q = q.Where("travels.status = ?", status)
	}

	var travels []dbm.Travel
	if err := q.Order("travels.id").Find(&travels).Error; err != nil {
		return nil, err
	}
	return travels, nil
}

func (r *travelRepository) GetTravelByRouteLeg(ctx context.Context, legID uint) (*dbm.Travel, error) {
	var leg dbm.RouteLeg
	err := r.db.WithContext(ctx).First(&leg, legID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.GetByID(ctx, leg.TravelID)
}
