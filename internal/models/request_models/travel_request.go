package request_models

type CreateTravelRequest struct {
	UserIDs []uint `json:"user_ids" binding:"required,min=1"`
}

type LinkIDsRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

type JoinTravelRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}
