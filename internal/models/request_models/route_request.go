package request_models

import "time"

type CreateRouteLegRequest struct {
	DirectoryLegID uint      `json:"directory_leg_id" binding:"required"`
	TravelID       uint      `json:"travel_id" binding:"required"`
	StartTime      time.Time `json:"start_time" binding:"required"`
	EndTime        time.Time `json:"end_time" binding:"required"`
	Category       string    `json:"category" binding:"required"`
}

type InsertCityRequest struct {
	TravelID  uint   `json:"travel_id" binding:"required"`
	NewCityID uint   `json:"new_city_id" binding:"required"`
	AfterCity uint   `json:"after_city_id" binding:"required"`
	Transport string `json:"transport" binding:"required"`
}

type DeleteCityFromRouteRequest struct {
	TravelID uint `json:"travel_id" binding:"required"`
	CityID   uint `json:"city_id" binding:"required"`
}

type ChangeTransportRequest struct {
	DirectoryLegID uint   `json:"directory_leg_id" binding:"required"`
	NewTransport   string `json:"new_transport" binding:"required"`
}

type ExtendLegRequest struct {
	NewEndTime time.Time `json:"new_end_time" binding:"required"`
}
