package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "tripline/internal/models/db_models"
	"tripline/pkg/utils"
)

// RouteLegRepository is the leg store. GetOrderedByTravel is the canonical
// "current path" read: legs of one travel sorted by start time ascending with
// the directory leg and its cities preloaded. Transaction hands the caller a
// repository bound to a single database transaction so a multi-step
// structural edit commits or rolls back as one unit.
type RouteLegRepository interface {
	Transaction(ctx context.Context, fn func(RouteLegRepository) error) error

	Add(ctx context.Context, leg *dbm.RouteLeg) (*dbm.RouteLeg, error)
	Update(ctx context.Context, leg *dbm.RouteLeg) error
	Remove(ctx context.Context, legID uint) error
	RemoveByTravel(ctx context.Context, travelID uint) error

	GetByID(ctx context.Context, legID uint) (*dbm.RouteLeg, error)
	GetList(ctx context.Context) ([]dbm.RouteLeg, error)
	GetOrderedByTravel(ctx context.Context, travelID uint) ([]dbm.RouteLeg, error)
	GetByCity(ctx context.Context, cityID uint) ([]dbm.RouteLeg, error)
	GetByCategory(ctx context.Context, category dbm.LegCategory) ([]dbm.RouteLeg, error)
	GetByUserStatusCategory(ctx context.Context, userID uint, status dbm.TravelStatus, category dbm.LegCategory) ([]dbm.RouteLeg, error)
}

type routeLegRepository struct {
	db *gorm.DB
}

func NewRouteLegRepository(db *gorm.DB) RouteLegRepository {
	return &routeLegRepository{db: db}
}

func (r *routeLegRepository) Transaction(ctx context.Context, fn func(RouteLegRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&routeLegRepository{db: tx})
	})
}

func (r *routeLegRepository) Add(ctx context.Context, leg *dbm.RouteLeg) (*dbm.RouteLeg, error) {
	if err := leg.Validate(); err != nil {
		return nil, err
	}
	// Do not let gorm upsert the preloaded associations.
	if err := r.db.WithContext(ctx).Omit("DirectoryLeg").Create(leg).Error; err != nil {
		return nil, err
	}
	return leg, nil
}

func (r *routeLegRepository) Update(ctx context.Context, leg *dbm.RouteLeg) error {
	if err := leg.Validate(); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&dbm.RouteLeg{}).
		Where("id = ?", leg.ID).
		Updates(map[string]interface{}{
			"directory_leg_id": leg.DirectoryLegID,
			"start_time":       leg.StartTime,
			"end_time":         leg.EndTime,
			"category":         leg.Category,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrRouteLegNotFound
	}
	return nil
}

func (r *routeLegRepository) Remove(ctx context.Context, legID uint) error {
	res := r.db.WithContext(ctx).Delete(&dbm.RouteLeg{}, legID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrRouteLegNotFound
	}
	return nil
}

func (r *routeLegRepository) RemoveByTravel(ctx context.Context, travelID uint) error {
	return r.db.WithContext(ctx).
		Where("travel_id = ?", travelID).
		Delete(&dbm.RouteLeg{}).Error
}

func (r *routeLegRepository) GetByID(ctx context.Context, legID uint) (*dbm.RouteLeg, error) {
	var leg dbm.RouteLeg
	err := r.db.WithContext(ctx).
		Preload("DirectoryLeg").
		Preload("DirectoryLeg.DepartureCity").
		Preload("DirectoryLeg.ArrivalCity").
		First(&leg, legID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &leg, nil
}

func (r *routeLegRepository) GetList(ctx context.Context) ([]dbm.RouteLeg, error) {
	var legs []dbm.RouteLeg
	err := r.db.WithContext(ctx).
		Preload("DirectoryLeg").
		Preload("DirectoryLeg.DepartureCity").
		Preload("DirectoryLeg.ArrivalCity").
		Order("id").
		Find(&legs).Error
	if err != nil {
		return nil, err
	}
	return legs, nil
}

// GetOrderedByTravel returns the travel's legs sorted by start time, with ID
// as a tiebreaker so equal start times still come back in a stable order.
func (r *routeLegRepository) GetOrderedByTravel(ctx context.Context, travelID uint) ([]dbm.RouteLeg, error) {
	var legs []dbm.RouteLeg
	err := r.db.WithContext(ctx).
		Preload("DirectoryLeg").
		Preload("DirectoryLeg.DepartureCity").
		Preload("DirectoryLeg.ArrivalCity").
		Where("travel_id = ?", travelID).
		Order("start_time, id").
		Find(&legs).Error
	if err != nil {
		return nil, err
	}
	return legs, nil
}

// GetByCity returns every leg, across all travels, whose directory leg
// departs from or arrives at the city. Used for system-wide cleanup when a
// city is removed.
func (r *routeLegRepository) GetByCity(ctx context.Context, cityID uint) ([]dbm.RouteLeg, error) {
	var legs []dbm.RouteLeg
	err := r.db.WithContext(ctx).
		Preload("DirectoryLeg").
		Preload("DirectoryLeg.DepartureCity").
		Preload("DirectoryLeg.ArrivalCity").
		Joins("JOIN directory_legs ON directory_legs.id = route_legs.directory_leg_id").
		Where("directory_legs.departure_city_id = ? OR directory_legs.arrival_city_id = ?", cityID, cityID).
		Find(&legs).Error
	if err != nil {
		return nil, err
	}
	return legs, nil
}

func (r *routeLegRepository) GetByCategory(ctx context.Context, category dbm.LegCategory) ([]dbm.RouteLeg, error) {
	var legs []dbm.RouteLeg
	err := r.db.WithContext(ctx).
		Preload("DirectoryLeg").
		Preload("DirectoryLeg.DepartureCity").
		Preload("DirectoryLeg.ArrivalCity").
		Where("category = ?", category).
		Order("start_time, id").
		Find(&legs).Error
	if err != nil {
		return nil, err
	}
	return legs, nil
}

func (r *routeLegRepository) GetByUserStatusCategory(ctx context.Context, userID uint, status dbm.TravelStatus, category dbm.LegCategory) ([]dbm.RouteLeg, error) {
	var legs []dbm.RouteLeg
	err := r.db.WithContext(ctx).
		Preload("DirectoryLeg").
		Preload("DirectoryLeg.DepartureCity").
		Preload("DirectoryLeg.ArrivalCity").
		Joins("JOIN travels ON travels.id = route_legs.travel_id").
		Joins("JOIN travel_users ON travel_users.travel_id = travels.id").
		Where("travel_users.user_id = ? AND travels.status = ? AND route_legs.category = ?", userID, status, category).
		Order("route_legs.start_time, route_legs.id").
		Find(&legs).Error
	if err != nil {
		return nil, err
	}
	return legs, nil
}
