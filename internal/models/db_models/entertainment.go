package db_models

import (
	"fmt"
	"time"

	"tripline/pkg/utils"
)

type Entertainment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	DurationHours int       `gorm:"not null" json:"duration_hours"`
	Address       string    `gorm:"not null" json:"address"`
	EventName     EventType `gorm:"type:varchar(32);not null" json:"event_name"`
	EventTime     time.Time `gorm:"not null" json:"event_time"`
	CityID        uint      `gorm:"not null" json:"city_id"`

	City *City `gorm:"foreignKey:CityID" json:"city,omitempty"`
}

func (e *Entertainment) Validate() error {
	if e.DurationHours <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of hours", utils.ErrInvariantViolation)
	}
	if e.Address == "" {
		return fmt.Errorf("%w: address must not be empty", utils.ErrInvariantViolation)
	}
	if !e.EventName.Valid() {
		return fmt.Errorf("%w: unknown event type %q", utils.ErrInvariantViolation, e.EventName)
	}
	return nil
}
