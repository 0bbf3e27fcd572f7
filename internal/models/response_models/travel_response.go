package response_models

type TravelResponse struct {
	ID               uint   `json:"id"`
	Status           string `json:"status"`
	UserIDs          []uint `json:"user_ids"`
	EntertainmentIDs []uint `json:"entertainment_ids"`
	AccommodationIDs []uint `json:"accommodation_ids"`
}
