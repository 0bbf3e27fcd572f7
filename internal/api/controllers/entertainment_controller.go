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

type EntertainmentController struct {
	entertainmentService services.EntertainmentServiceInterface
}

func NewEntertainmentController(entertainmentService services.EntertainmentServiceInterface) *EntertainmentController {
	return &EntertainmentController{
		entertainmentService: entertainmentService,
	}
}

// GetEntertainments godoc
// @Summary List all entertainments
// @Tags Entertainment
// @Produce json
// @Success 200 {array} db_models.Entertainment
// @Router /entertainments [get]
func (e *EntertainmentController) GetEntertainments(c *gin.Context) {
	ents, err := e.entertainmentService.GetList(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ents, "Entertainments fetched successfully")
}

// GetEntertainmentByID godoc
// @Summary Get an entertainment by ID
// @Tags Entertainment
// @Produce json
// @Param entertainmentId path int true "Entertainment ID"
// @Success 200 {object} db_models.Entertainment
// @Failure 404 {object} utils.APIResponse
// @Router /entertainments/{entertainmentId} [get]
func (e *EntertainmentController) GetEntertainmentByID(c *gin.Context) {
	entID, err := strconv.Atoi(c.Param("entertainmentId"))
	if err != nil || entID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid entertainment ID")
		return
	}

	ent, err := e.entertainmentService.GetByID(c.Request.Context(), uint(entID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ent, "Entertainment fetched successfully")
}

// CreateEntertainment godoc
// @Summary Create an entertainment
// @Tags Entertainment
// @Accept json
// @Produce json
// @Param request body request_models.EntertainmentRequest true "Event details"
// @Success 200 {object} db_models.Entertainment
// @Security BearerAuth
// @Router /entertainments [post]
func (e *EntertainmentController) CreateEntertainment(c *gin.Context) {
	var req request_models.EntertainmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Duration, address, event name, event time and city are required")
		return
	}

	ent, err := e.entertainmentService.Create(c.Request.Context(), &db_models.Entertainment{
		DurationHours: req.DurationHours,
		Address:       req.Address,
		EventName:     db_models.EventType(req.EventName),
		EventTime:     req.EventTime,
		CityID:        req.CityID,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ent, "Entertainment created successfully")
}

// UpdateEntertainment godoc
// @Summary Update an entertainment
// @Tags Entertainment
// @Accept json
// @Produce json
// @Param entertainmentId path int true "Entertainment ID"
// @Param request body request_models.EntertainmentRequest true "Event details"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /entertainments/{entertainmentId} [put]
func (e *EntertainmentController) UpdateEntertainment(c *gin.Context) {
	entID, err := strconv.Atoi(c.Param("entertainmentId"))
	if err != nil || entID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid entertainment ID")
		return
	}

	var req request_models.EntertainmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Duration, address, event name, event time and city are required")
		return
	}

	err = e.entertainmentService.Update(c.Request.Context(), &db_models.Entertainment{
		ID:            uint(entID),
		DurationHours: req.DurationHours,
		Address:       req.Address,
		EventName:     db_models.EventType(req.EventName),
		EventTime:     req.EventTime,
		CityID:        req.CityID,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Entertainment updated successfully")
}

// DeleteEntertainment godoc
// @Summary Delete an entertainment
// @Tags Entertainment
// @Produce json
// @Param entertainmentId path int true "Entertainment ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /entertainments/{entertainmentId} [delete]
func (e *EntertainmentController) DeleteEntertainment(c *gin.Context) {
	entID, err := strconv.Atoi(c.Param("entertainmentId"))
	if err != nil || entID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid entertainment ID")
		return
	}

	if err := e.entertainmentService.Delete(c.Request.Context(), uint(entID)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Entertainment deleted successfully")
}
