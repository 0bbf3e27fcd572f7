package request_models

type DirectoryChangeTransportRequest struct {
	NewTransport string `json:"new_transport" binding:"required"`
}

type DirectoryLegRequest struct {
	Transport       string `json:"transport" binding:"required"`
	Fare            int    `json:"fare" binding:"required,gt=0"`
	Distance        int    `json:"distance" binding:"required,gt=0"`
	DepartureCityID uint   `json:"departure_city_id" binding:"required"`
	ArrivalCityID   uint   `json:"arrival_city_id" binding:"required"`
}
