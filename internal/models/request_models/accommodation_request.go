package request_models

import "time"

type AccommodationRequest struct {
	Name     string    `json:"name" binding:"required"`
	Type     string    `json:"type" binding:"required"`
	Address  string    `json:"address" binding:"required"`
	Price    int       `json:"price" binding:"required,gt=0"`
	Rating   int       `json:"rating" binding:"gte=0,lte=5"`
	CheckIn  time.Time `json:"check_in" binding:"required"`
	CheckOut time.Time `json:"check_out" binding:"required"`
	CityID   uint      `json:"city_id" binding:"required"`
}
