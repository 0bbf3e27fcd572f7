package response_models

import "time"

// RouteLegView is the denormalized per-leg shape returned to callers: fare,
// distance, transport and both city names resolved from the directory leg.
// Contiguous reports whether the previous leg's arrival city equals this
// leg's departure city; the first leg of a path is always contiguous.
// Disconnected legs are reported, never rejected.
type RouteLegView struct {
	ID                uint      `json:"id"`
	TravelID          uint      `json:"travel_id"`
	DirectoryLegID    uint      `json:"directory_leg_id"`
	DepartureCityID   uint      `json:"departure_city_id"`
	DepartureCityName string    `json:"departure_city_name"`
	ArrivalCityID     uint      `json:"arrival_city_id"`
	ArrivalCityName   string    `json:"arrival_city_name"`
	Transport         string    `json:"transport"`
	Fare              int       `json:"fare"`
	Distance          int       `json:"distance"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	Category          string    `json:"category"`
	Contiguous        bool      `json:"contiguous"`
}
