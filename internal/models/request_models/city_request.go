package request_models

type CityRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}
