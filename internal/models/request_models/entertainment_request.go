package request_models

import "time"

type EntertainmentRequest struct {
	DurationHours int       `json:"duration_hours" binding:"required,gt=0"`
	Address       string    `json:"address" binding:"required"`
	EventName     string    `json:"event_name" binding:"required"`
	EventTime     time.Time `json:"event_time" binding:"required"`
	CityID        uint      `json:"city_id" binding:"required"`
}
