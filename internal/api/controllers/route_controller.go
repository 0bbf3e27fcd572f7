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

type RouteController struct {
	routeService services.RouteServiceInterface
}

func NewRouteController(routeService services.RouteServiceInterface) *RouteController {
	return &RouteController{
		routeService: routeService,
	}
}

// GetOrderedPath godoc
// @Summary Get a travel's route
// @Description Fetch the travel's route legs ordered by start time
// @Tags Route
// @Accept json
// @Produce json
// @Param travelId path int true "Travel ID"
// @Success 200 {array} response_models.RouteLegView
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/travel/{travelId} [get]
func (r *RouteController) GetOrderedPath(c *gin.Context) {
	travelID, err := strconv.Atoi(c.Param("travelId"))
	if err != nil || travelID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid travel ID")
		return
	}

	path, err := r.routeService.GetOrderedPath(c.Request.Context(), uint(travelID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, path, "Route fetched successfully")
}

// InsertCity godoc
// @Summary Insert a city into a route
// @Description Splice a new city into the travel's route next to an existing city
// @Tags Route
// @Accept json
// @Produce json
// @Param request body request_models.InsertCityRequest true "Travel ID, new city, anchor city, transport"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/insert-city [post]
func (r *RouteController) InsertCity(c *gin.Context) {
	var req request_models.InsertCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "TravelID, NewCityID, AfterCityID and Transport are required")
		return
	}

	err := r.routeService.InsertCityBetween(
		c.Request.Context(),
		req.TravelID,
		req.NewCityID,
		req.AfterCity,
		db_models.Transport(req.Transport),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "City inserted into route successfully")
}

// DeleteCity godoc
// @Summary Delete a city from a route
// @Description Remove every route leg touching the city and bridge the gap when the city was interior
// @Tags Route
// @Accept json
// @Produce json
// @Param request body request_models.DeleteCityFromRouteRequest true "Travel ID, city ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/delete-city [post]
func (r *RouteController) DeleteCity(c *gin.Context) {
	var req request_models.DeleteCityFromRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "TravelID and CityID are required")
		return
	}

	err := r.routeService.DeleteCityFromRoute(c.Request.Context(), req.TravelID, req.CityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "City deleted from route successfully")
}

// ChangeTransport godoc
// @Summary Change a route leg's transport
// @Description Swap the leg's directory reference for the same city pair under another transport mode
// @Tags Route
// @Accept json
// @Produce json
// @Param legId path int true "Route leg ID"
// @Param request body request_models.ChangeTransportRequest true "Current directory leg ID, new transport"
// @Success 200 {object} response_models.RouteLegView
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/{legId}/change-transport [put]
func (r *RouteController) ChangeTransport(c *gin.Context) {
	legID, err := strconv.Atoi(c.Param("legId"))
	if err != nil || legID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid route leg ID")
		return
	}

	var req request_models.ChangeTransportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "DirectoryLegID and NewTransport are required")
		return
	}

	view, err := r.routeService.ChangeTransport(
		c.Request.Context(),
		req.DirectoryLegID,
		uint(legID),
		db_models.Transport(req.NewTransport),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Transport changed successfully")
}

// CreateLeg godoc
// @Summary Create a route leg
// @Tags Route
// @Accept json
// @Produce json
// @Param request body request_models.CreateRouteLegRequest true "Directory leg, travel, times, category"
// @Success 200 {object} db_models.RouteLeg
// @Security BearerAuth
// @Router /routes [post]
func (r *RouteController) CreateLeg(c *gin.Context) {
	var req request_models.CreateRouteLegRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "DirectoryLegID, TravelID, StartTime, EndTime and Category are required")
		return
	}

	leg, err := r.routeService.Create(
		c.Request.Context(),
		req.DirectoryLegID,
		req.TravelID,
		req.StartTime,
		req.EndTime,
		db_models.LegCategory(req.Category),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, leg, "Route leg created successfully")
}

// GetLegByID godoc
// @Summary Get a route leg by ID
// @Tags Route
// @Produce json
// @Param legId path int true "Route leg ID"
// @Success 200 {object} db_models.RouteLeg
// @Security BearerAuth
// @Router /routes/{legId} [get]
func (r *RouteController) GetLegByID(c *gin.Context) {
	legID, err := strconv.Atoi(c.Param("legId"))
	if err != nil || legID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid route leg ID")
		return
	}

	leg, err := r.routeService.GetByID(c.Request.Context(), uint(legID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, leg, "Route leg fetched successfully")
}

// GetLegs godoc
// @Summary List all route legs
// @Tags Route
// @Produce json
// @Success 200 {array} db_models.RouteLeg
// @Security BearerAuth
// @Router /routes [get]
func (r *RouteController) GetLegs(c *gin.Context) {
	legs, err := r.routeService.GetList(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, legs, "Route legs fetched successfully")
}

// DeleteLeg godoc
// @Summary Delete a route leg
// @Tags Route
// @Produce json
// @Param legId path int true "Route leg ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/{legId} [delete]
func (r *RouteController) DeleteLeg(c *gin.Context) {
	legID, err := strconv.Atoi(c.Param("legId"))
	if err != nil || legID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid route leg ID")
		return
	}

	if err := r.routeService.Delete(c.Request.Context(), uint(legID)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Route leg deleted successfully")
}

// ExtendLeg godoc
// @Summary Extend a route leg's stay
// @Description Push the leg's end time out; the new end must be after the current one
// @Tags Route
// @Accept json
// @Produce json
// @Param legId path int true "Route leg ID"
// @Param request body request_models.ExtendLegRequest true "New end time"
// @Success 200 {object} db_models.RouteLeg
// @Security BearerAuth
// @Router /routes/{legId}/extend [put]
func (r *RouteController) ExtendLeg(c *gin.Context) {
	legID, err := strconv.Atoi(c.Param("legId"))
	if err != nil || legID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid route leg ID")
		return
	}

	var req request_models.ExtendLegRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "NewEndTime is required")
		return
	}

	leg, err := r.routeService.ExtendLeg(c.Request.Context(), uint(legID), req.NewEndTime)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, leg, "Route leg extended successfully")
}

// GetLegsByCategory godoc
// @Summary List route legs by category
// @Tags Route
// @Produce json
// @Param category path string true "Leg category" Enums(authored, recommended, own)
// @Success 200 {array} response_models.RouteLegView
// @Security BearerAuth
// @Router /routes/category/{category} [get]
func (r *RouteController) GetLegsByCategory(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		utils.RespondError(c, http.StatusBadRequest, "Category is required")
		return
	}

	legs, err := r.routeService.GetByCategory(c.Request.Context(), db_models.LegCategory(category))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, legs, "Route legs fetched successfully")
}

// GetLegsForUser godoc
// @Summary List the authenticated user's route legs
// @Description Fetch route legs filtered by travel status and leg category
// @Tags Route
// @Produce json
// @Param status query string false "Travel status" default(in_progress)
// @Param category query string false "Leg category" default(own)
// @Success 200 {array} response_models.RouteLegView
// @Security BearerAuth
// @Router /routes/my [get]
func (r *RouteController) GetLegsForUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.GetString("user_id"))
	if err != nil || userID < 1 {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	status := c.DefaultQuery("status", string(db_models.TravelInProgress))
	category := c.DefaultQuery("category", string(db_models.CategoryOwn))

	legs, err := r.routeService.GetForUser(
		c.Request.Context(),
		uint(userID),
		db_models.TravelStatus(status),
		db_models.LegCategory(category),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, legs, "Route legs fetched successfully")
}
