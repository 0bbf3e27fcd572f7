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

type DirectoryController struct {
	directoryService services.DirectoryServiceInterface
}

func NewDirectoryController(directoryService services.DirectoryServiceInterface) *DirectoryController {
	return &DirectoryController{
		directoryService: directoryService,
	}
}

// GetDirectoryLegs godoc
// @Summary List all directory legs
// @Tags Directory
// @Produce json
// @Success 200 {array} db_models.DirectoryLeg
// @Router /directory [get]
func (d *DirectoryController) GetDirectoryLegs(c *gin.Context) {
	legs, err := d.directoryService.GetList(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, legs, "Directory legs fetched successfully")
}

// GetDirectoryLegByID godoc
// @Summary Get a directory leg by ID
// @Tags Directory
// @Produce json
// @Param legId path int true "Directory leg ID"
// @Success 200 {object} db_models.DirectoryLeg
// @Failure 404 {object} utils.APIResponse
// @Router /directory/{legId} [get]
func (d *DirectoryController) GetDirectoryLegByID(c *gin.Context) {
	legID, err := strconv.Atoi(c.Param("legId"))
	if err != nil || legID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid directory leg ID")
		return
	}

	leg, err := d.directoryService.GetByID(c.Request.Context(), uint(legID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, leg, "Directory leg fetched successfully")
}

// CreateDirectoryLeg godoc
// @Summary Create a directory leg
// @Description Register a city pair under a transport mode with its fare and distance
// @Tags Directory
// @Accept json
// @Produce json
// @Param request body request_models.DirectoryLegRequest true "Cities, transport, fare, distance"
// @Success 200 {object} db_models.DirectoryLeg
// @Security BearerAuth
// @Router /directory [post]
func (d *DirectoryController) CreateDirectoryLeg(c *gin.Context) {
	var req request_models.DirectoryLegRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cities, transport, fare and distance are required")
		return
	}

	leg, err := d.directoryService.Create(c.Request.Context(), &db_models.DirectoryLeg{
		Transport:       db_models.Transport(req.Transport),
		Fare:            req.Fare,
		Distance:        req.Distance,
		DepartureCityID: req.DepartureCityID,
		ArrivalCityID:   req.ArrivalCityID,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, leg, "Directory leg created successfully")
}

// UpdateDirectoryLeg godoc
// @Summary Update a directory leg
// @Tags Directory
// @Accept json
// @Produce json
// @Param legId path int true "Directory leg ID"
// @Param request body request_models.DirectoryLegRequest true "Cities, transport, fare, distance"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /directory/{legId} [put]
func (d *DirectoryController) UpdateDirectoryLeg(c *gin.Context) {
	legID, err := strconv.Atoi(c.Param("legId"))
	if err != nil || legID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid directory leg ID")
		return
	}

	var req request_models.DirectoryLegRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cities, transport, fare and distance are required")
		return
	}

	err = d.directoryService.Update(c.Request.Context(), &db_models.DirectoryLeg{
		ID:              uint(legID),
		Transport:       db_models.Transport(req.Transport),
		Fare:            req.Fare,
		Distance:        req.Distance,
		DepartureCityID: req.DepartureCityID,
		ArrivalCityID:   req.ArrivalCityID,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Directory leg updated successfully")
}

// DeleteDirectoryLeg godoc
// @Summary Delete a directory leg
// @Tags Directory
// @Produce json
// @Param legId path int true "Directory leg ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /directory/{legId} [delete]
func (d *DirectoryController) DeleteDirectoryLeg(c *gin.Context) {
	legID, err := strconv.Atoi(c.Param("legId"))
	if err != nil || legID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid directory leg ID")
		return
	}

	if err := d.directoryService.Delete(c.Request.Context(), uint(legID)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Directory leg deleted successfully")
}

// LookupDirectoryLeg godoc
// @Summary Look up a directory leg by cities and transport
// @Tags Directory
// @Produce json
// @Param from query int true "Departure city ID"
// @Param to query int true "Arrival city ID"
// @Param transport query string true "Transport mode"
// @Success 200 {object} db_models.DirectoryLeg
// @Failure 404 {object} utils.APIResponse
// @Router /directory/lookup [get]
func (d *DirectoryController) LookupDirectoryLeg(c *gin.Context) {
	from, err := strconv.Atoi(c.Query("from"))
	if err != nil || from < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid departure city ID")
		return
	}
	to, err := strconv.Atoi(c.Query("to"))
	if err != nil || to < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid arrival city ID")
		return
	}
	transport := c.Query("transport")
	if transport == "" {
		utils.RespondError(c, http.StatusBadRequest, "Transport is required")
		return
	}

	leg, err := d.directoryService.Lookup(c.Request.Context(), uint(from), uint(to), db_models.Transport(transport))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, leg, "Directory leg fetched successfully")
}

// ChangeTransport godoc
// @Summary Find the same city pair under another transport
// @Tags Directory
// @Accept json
// @Produce json
// @Param legId path int true "Directory leg ID"
// @Param request body request_models.DirectoryChangeTransportRequest true "New transport"
// @Success 200 {object} db_models.DirectoryLeg
// @Failure 404 {object} utils.APIResponse
// @Router /directory/{legId}/change-transport [put]
func (d *DirectoryController) ChangeTransport(c *gin.Context) {
	legID, err := strconv.Atoi(c.Param("legId"))
	if err != nil || legID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid directory leg ID")
		return
	}

	var req request_models.DirectoryChangeTransportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "NewTransport is required")
		return
	}

	leg, err := d.directoryService.ChangeTransport(c.Request.Context(), uint(legID), db_models.Transport(req.NewTransport))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, leg, "Directory leg fetched successfully")
}
