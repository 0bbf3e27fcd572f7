package db_models

import (
	"fmt"

	"tripline/pkg/utils"
)

const MaxCityNameLength = 50

type City struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}

func (c *City) Validate() error {
	if len(c.Name) < 1 || len(c.Name) > MaxCityNameLength {
		return fmt.Errorf("%w: city name must be 1-%d characters", utils.ErrInvariantViolation, MaxCityNameLength)
	}
	return nil
}
