package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripline/internal/models/db_models"
	"tripline/internal/models/request_models"
	"tripline/internal/services"
	"tripline/pkg/utils"
)

type TravelController struct {
	travelService services.TravelServiceInterface
}

func NewTravelController(travelService services.TravelServiceInterface) *TravelController {
	return &TravelController{
		travelService: travelService,
	}
}

// CreateTravel godoc
// @Summary Create a travel
// @Description Start a travel in progress with its initial participants
// @Tags Travel
// @Accept json
// @Produce json
// @Param request body request_models.CreateTravelRequest true "Participant user IDs"
// @Success 200 {object} db_models.Travel
// @Security BearerAuth
// @Router /travels [post]
func (t *TravelController) CreateTravel(c *gin.Context) {
	var req request_models.CreateTravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "At least one user ID is required")
		return
	}

	travel, err := t.travelService.Create(c.Request.Context(), req.UserIDs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, travel, "Travel created successfully")
}

// GetTravelByID godoc
// @Summary Get a travel by ID
// @Tags Travel
// @Produce json
// @Param travelId path int true "Travel ID"
// @Success 200 {object} db_models.Travel
// @Security BearerAuth
// @Router /travels/{travelId} [get]
func (t *TravelController) GetTravelByID(c *gin.Context) {
	travelID, err := strconv.Atoi(c.Param("travelId"))
	if err != nil || travelID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid travel ID")
		return
	}

	travel, err := t.travelService.GetByID(c.Request.Context(), uint(travelID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, travel, "Travel fetched successfully")
}

// GetTravels godoc
// @Summary List all travels
// @Tags Travel
// @Produce json
// @Success 200 {array} db_models.Travel
// @Security BearerAuth
// @Router /travels [get]
func (t *TravelController) GetTravels(c *gin.Context) {
	travels, err := t.travelService.GetList(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, travels, "Travels fetched successfully")
}

// DeleteTravel godoc
// @Summary Delete a travel
// @Description Delete a travel with its route legs and association links
// @Tags Travel
// @Produce json
// @Param travelId path int true "Travel ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /travels/{travelId} [delete]
func (t *TravelController) DeleteTravel(c *gin.Context) {
	travelID, err := strconv.Atoi(c.Param("travelId"))
	if err != nil || travelID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid travel ID")
		return
	}

	if err := t.travelService.Delete(c.Request.Context(), uint(travelID)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Travel deleted successfully")
}

// CompleteTravel godoc
// @Summary Complete a travel
// @Description Move a travel from in progress to completed
// @Tags Travel
// @Produce json
// @Param travelId path int true "Travel ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /travels/{travelId}/complete [put]
func (t *TravelController) CompleteTravel(c *gin.Context) {
	travelID, err := strconv.Atoi(c.Param("travelId"))
	if err != nil || travelID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid travel ID")
		return
	}

	if err := t.travelService.Complete(c.Request.Context(), uint(travelID)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Travel completed successfully")
}

// CancelTravel godoc
// @Summary Cancel a travel
// @Description Move a travel from in progress to cancelled
// @Tags Travel
// @Produce json
// @Param travelId path int true "Travel ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /travels/{travelId}/cancel [put]
func (t *TravelController) CancelTravel(c *gin.Context) {
	travelID, err := strconv.Atoi(c.Param("travelId"))
	if err != nil || travelID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid travel ID")
		return
	}

	if err := t.travelService.Cancel(c.Request.Context(), uint(travelID)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Travel cancelled successfully")
}

// LinkUsers godoc
// @Summary Replace a travel's participants
// @Tags Travel
// @Accept json
// @Produce json
// @Param travelId path int true "Travel ID"
// @Param request body request_models.LinkIDsRequest true "User IDs"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /travels/{travelId}/users [put]
func (t *TravelController) LinkUsers(c *gin.Context) {
	travelID, err := strconv.Atoi(c.Param("travelId"))
	if err != nil || travelID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid travel ID")
		return
	}

	var req request_models.LinkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "User IDs are required")
		return
	}

	if err := t.travelService.LinkUsers(c.Request.Context(), uint(travelID), req.IDs); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Travel users updated successfully")
}

// LinkEntertainments godoc
// @Summary Replace a travel's entertainments
// @Tags Travel
// @Accept json
// @Produce json
// @Param travelId path int true "Travel ID"
// @Param request body request_models.LinkIDsRequest true "Entertainment IDs"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /travels/{travelId}/entertainments [put]
func (t *TravelController) LinkEntertainments(c *gin.Context) {
	travelID, err := strconv.Atoi(c.Param("travelId"))
	if err != nil || travelID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid travel ID")
		return
	}

	var req request_models.LinkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Entertainment IDs are required")
		return
	}

	if err := t.travelService.LinkEntertainments(c.Request.Context(), uint(travelID), req.IDs); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Travel entertainments updated successfully")
}

// LinkAccommodations godoc
// @Summary Replace a travel's accommodations
// @Tags Travel
// @Accept json
// @Produce json
// @Param travelId path int true "Travel ID"
// @Param request body request_models.LinkIDsRequest true "Accommodation IDs"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /travels/{travelId}/accommodations [put]
func (t *TravelController) LinkAccommodations(c *gin.Context) {
	travelID, err := strconv.Atoi(c.Param("travelId"))
	if err != nil || travelID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid travel ID")
		return
	}

	var req request_models.LinkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Accommodation IDs are required")
		return
	}

	if err := t.travelService.LinkAccommodations(c.Request.Context(), uint(travelID), req.IDs); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Travel accommodations updated successfully")
}

// GetTravelUsers godoc
// @Summary Get a travel's participants
// @Tags Travel
// @Produce json
// @Param travelId path int true "Travel ID"
// @Success 200 {array} db_models.User
// @Security BearerAuth
// @Router /travels/{travelId}/users [get]
func (t *TravelController) GetTravelUsers(c *gin.Context) {
	travelID, err := strconv.Atoi(c.Param("travelId"))
	if err != nil || travelID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid travel ID")
		return
	}

	users, err := t.travelService.GetUsersByTravel(c.Request.Context(), uint(travelID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Travel users fetched successfully")
}

// GetTravelEntertainments godoc
// @Summary Get a travel's entertainments
// @Tags Travel
// @Produce json
// @Param travelId path int true "Travel ID"
// @Success 200 {array} db_models.Entertainment
// @Security BearerAuth
// @Router /travels/{travelId}/entertainments [get]
func (t *TravelController) GetTravelEntertainments(c *gin.Context) {
	travelID, err := strconv.Atoi(c.Param("travelId"))
	if err != nil || travelID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid travel ID")
		return
	}

	ents, err := t.travelService.GetEntertainmentsByTravel(c.Request.Context(), uint(travelID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ents, "Travel entertainments fetched successfully")
}

// GetTravelAccommodations godoc
// @Summary Get a travel's accommodations
// @Tags Travel
// @Produce json
// @Param travelId path int true "Travel ID"
// @Success 200 {array} db_models.Accommodation
// @Security BearerAuth
// @Router /travels/{travelId}/accommodations [get]
func (t *TravelController) GetTravelAccommodations(c *gin.Context) {
	travelID, err := strconv.Atoi(c.Param("travelId"))
	if err != nil || travelID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid travel ID")
		return
	}

	accs, err := t.travelService.GetAccommodationsByTravel(c.Request.Context(), uint(travelID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, accs, "Travel accommodations fetched successfully")
}

// GetMyTravels godoc
// @Summary List the authenticated user's travels
// @Tags Travel
// @Produce json
// @Param status query string false "Travel status" default(in_progress)
// @Success 200 {array} response_models.TravelResponse
// @Security BearerAuth
// @Router /travels/my [get]
func (t *TravelController) GetMyTravels(c *gin.Context) {
	userID, err := strconv.Atoi(c.GetString("user_id"))
	if err != nil || userID < 1 {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	status := c.DefaultQuery("status", string(db_models.TravelInProgress))

	travels, err := t.travelService.GetTravelsForUser(c.Request.Context(), uint(userID), db_models.TravelStatus(status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, travels, "Travels fetched successfully")
}

// SearchTravels godoc
// @Summary Search travels
// @Description Filter travels by participant and status; both filters are optional
// @Tags Travel
// @Produce json
// @Param user query int false "Participant user ID"
// @Param status query string false "Travel status"
// @Success 200 {array} response_models.TravelResponse
// @Security BearerAuth
// @Router /travels/search [get]
func (t *TravelController) SearchTravels(c *gin.Context) {
	var userID int
	if raw := c.Query("user"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
			return
		}
		userID = parsed
	}

	status := c.Query("status")

	travels, err := t.travelService.Search(c.Request.Context(), uint(userID), db_models.TravelStatus(status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, travels, "Travels fetched successfully")
}

// GetTravelByRouteLeg godoc
// @Summary Get the travel owning a route leg
// @Tags Travel
// @Produce json
// @Param legId path int true "Route leg ID"
// @Success 200 {object} db_models.Travel
// @Security BearerAuth
// @Router /travels/by-leg/{legId} [get]
func (t *TravelController) GetTravelByRouteLeg(c *gin.Context) {
	legID, err := strconv.Atoi(c.Param("legId"))
	if err != nil || legID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid route leg ID")
		return
	}

	travel, err := t.travelService.GetTravelByRouteLeg(c.Request.Context(), uint(legID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, travel, "Travel fetched successfully")
}

// JoinTravel godoc
// @Summary Join the travel owning a route leg
// @Description Add the authenticated user to the travel and re-tag the leg as user-built
// @Tags Travel
// @Produce json
// @Param legId path int true "Route leg ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /travels/join/{legId} [post]
func (t *TravelController) JoinTravel(c *gin.Context) {
	legID, err := strconv.Atoi(c.Param("legId"))
	if err != nil || legID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid route leg ID")
		return
	}

	userID, err := strconv.Atoi(c.GetString("user_id"))
	if err != nil || userID < 1 {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	if err := t.travelService.JoinTravel(c.Request.Context(), uint(legID), uint(userID)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Joined travel successfully")
}
