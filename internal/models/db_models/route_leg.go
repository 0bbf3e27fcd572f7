package db_models

import (
	"fmt"
	"time"

	"tripline/pkg/utils"
)

// RouteLeg is one scheduled segment of a travel's itinerary. Its city pair is
// inherited from the referenced DirectoryLeg; the leg itself only carries the
// schedule and the category tag. Legs are never repositioned in place: a
// transport change swaps the directory reference, structural edits delete and
// insert legs.
type RouteLeg struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	DirectoryLegID uint        `gorm:"not null" json:"directory_leg_id"`
	TravelID       uint        `gorm:"not null;index" json:"travel_id"`
	StartTime      time.Time   `gorm:"not null;index" json:"start_time"`
	EndTime        time.Time   `gorm:"not null" json:"end_time"`
	Category       LegCategory `gorm:"type:varchar(16);not null" json:"category"`

	DirectoryLeg *DirectoryLeg `gorm:"foreignKey:DirectoryLegID" json:"directory_leg,omitempty"`
}

// NewRouteLeg builds a leg and rejects invariant violations before anything
// reaches storage: both references present, end after start, known category.
func NewRouteLeg(directoryLegID, travelID uint, start, end time.Time, category LegCategory) (*RouteLeg, error) {
	leg := &RouteLeg{
		DirectoryLegID: directoryLegID,
		TravelID:       travelID,
		StartTime:      start,
		EndTime:        end,
		Category:       category,
	}
	if err := leg.Validate(); err != nil {
		return nil, err
	}
	return leg, nil
}

func (r *RouteLeg) Validate() error {
	if r.DirectoryLegID == 0 {
		return fmt.Errorf("%w: route leg requires a directory leg reference", utils.ErrInvariantViolation)
	}
	if r.TravelID == 0 {
		return fmt.Errorf("%w: route leg requires a travel reference", utils.ErrInvariantViolation)
	}
	if !r.EndTime.After(r.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", utils.ErrInvariantViolation)
	}
	if !r.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", utils.ErrInvariantViolation, r.Category)
	}
	return nil
}

// DepartureCityID and ArrivalCityID read through to the directory leg; zero
// when the reference is not loaded.
func (r *RouteLeg) DepartureCityID() uint {
	if r.DirectoryLeg == nil {
		return 0
	}
	return r.DirectoryLeg.DepartureCityID
}

func (r *RouteLeg) ArrivalCityID() uint {
	if r.DirectoryLeg == nil {
		return 0
	}
	return r.DirectoryLeg.ArrivalCityID
}

func (r *RouteLeg) TouchesCity(cityID uint) bool {
	return r.DepartureCityID() == cityID || r.ArrivalCityID() == cityID
}
