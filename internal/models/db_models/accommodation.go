package db_models

import (
	"fmt"
	"time"

	"tripline/pkg/utils"
)

type Accommodation struct {
	ID       uint              `gorm:"primaryKey" json:"id"`
	Name     string            `gorm:"not null" json:"name"`
	Type     AccommodationType `gorm:"type:varchar(16);not null" json:"type"`
	Address  string            `gorm:"not null" json:"address"`
	Price    int               `gorm:"not null" json:"price"`
	// Rating is 1..5 once rated; 0 marks an accommodation nobody has
	// rated yet, which is how an omitted rating arrives from the API.
	Rating   int               `json:"rating"`
	CheckIn  time.Time         `gorm:"not null" json:"check_in"`
	CheckOut time.Time         `gorm:"not null" json:"check_out"`
	CityID   uint              `gorm:"not null" json:"city_id"`

	City *City `gorm:"foreignKey:CityID" json:"city,omitempty"`
}

func (a *Accommodation) Validate() error {
	if a.Name == "" || a.Address == "" {
		return fmt.Errorf("%w: name and address must not be empty", utils.ErrInvariantViolation)
	}
	if !a.Type.Valid() {
		return fmt.Errorf("%w: unknown accommodation type %q", utils.ErrInvariantViolation, a.Type)
	}
	if a.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", utils.ErrInvariantViolation)
	}
	if a.Rating < 0 || a.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", utils.ErrInvariantViolation)
	}
	if !a.CheckOut.After(a.CheckIn) {
		return fmt.Errorf("%w: check-out must be after check-in", utils.ErrInvariantViolation)
	}
	return nil
}
