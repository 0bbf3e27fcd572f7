package db_models

import (
	"fmt"

	"tripline/pkg/utils"
)

// Travel owns its route legs by foreign key from RouteLeg; participants,
// entertainments and accommodations are link tables.
type Travel struct {
	ID     uint         `gorm:"primaryKey" json:"id"`
	Status TravelStatus `gorm:"type:varchar(16);not null" json:"status"`

	Users          []User          `gorm:"many2many:travel_users" json:"users,omitempty"`
	Entertainments []Entertainment `gorm:"many2many:travel_entertainments" json:"entertainments,omitempty"`
	Accommodations []Accommodation `gorm:"many2many:travel_accommodations" json:"accommodations,omitempty"`
}

func (t *Travel) Validate() error {
	if !t.Status.Valid() {
		return fmt.Errorf("%w: unknown travel status %q", utils.ErrInvariantViolation, t.Status)
	}
	if len(t.Users) == 0 {
		return fmt.Errorf("%w: travel requires at least one participant", utils.ErrInvariantViolation)
	}
	return nil
}
