package db_models

import (
	"fmt"

	"tripline/pkg/utils"
)

// DirectoryLeg is a precomputed fare/distance record between an ordered city
// pair for one transport mode. The unique index keeps at most one leg per
// (departure, arrival, transport) triple.
type DirectoryLeg struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Transport       Transport `gorm:"type:varchar(16);not null;uniqueIndex:idx_directory_triple,priority:3" json:"transport"`
	Fare            int       `gorm:"not null" json:"fare"`
	Distance        int       `gorm:"not null" json:"distance"`
	DepartureCityID uint      `gorm:"not null;uniqueIndex:idx_directory_triple,priority:1" json:"departure_city_id"`
	ArrivalCityID   uint      `gorm:"not null;uniqueIndex:idx_directory_triple,priority:2" json:"arrival_city_id"`

	DepartureCity *City `gorm:"foreignKey:DepartureCityID" json:"departure_city,omitempty"`
	ArrivalCity   *City `gorm:"foreignKey:ArrivalCityID" json:"arrival_city,omitempty"`
}

func (d *DirectoryLeg) Validate() error {
	if !d.Transport.Valid() {
		return fmt.Errorf("%w: unknown transport %q", utils.ErrInvariantViolation, d.Transport)
	}
	if d.Fare <= 0 {
		return fmt.Errorf("%w: fare must be positive", utils.ErrInvariantViolation)
	}
	if d.Distance <= 0 {
		return fmt.Errorf("%w: distance must be positive", utils.ErrInvariantViolation)
	}
	if d.DepartureCityID == 0 || d.ArrivalCityID == 0 {
		return fmt.Errorf("%w: both cities are required", utils.ErrInvariantViolation)
	}
	return nil
}
