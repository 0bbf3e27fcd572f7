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

type AccommodationController struct {
	accommodationService services.AccommodationServiceInterface
}

func NewAccommodationController(accommodationService services.AccommodationServiceInterface) *AccommodationController {
	return &AccommodationController{
		accommodationService: accommodationService,
	}
}

// GetAccommodations godoc
// @Summary List all accommodations
// @Tags Accommodation
// @Produce json
// @Success 200 {array} db_models.Accommodation
// @Router /accommodations [get]
func (a *AccommodationController) GetAccommodations(c *gin.Context) {
	accs, err := a.accommodationService.GetList(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, accs, "Accommodations fetched successfully")
}

// GetAccommodationByID godoc
// @Summary Get an accommodation by ID
// @Tags Accommodation
// @Produce json
// @Param accommodationId path int true "Accommodation ID"
// @Success 200 {object} db_models.Accommodation
// @Failure 404 {object} utils.APIResponse
// @Router /accommodations/{accommodationId} [get]
func (a *AccommodationController) GetAccommodationByID(c *gin.Context) {
	accID, err := strconv.Atoi(c.Param("accommodationId"))
	if err != nil || accID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid accommodation ID")
		return
	}

	acc, err := a.accommodationService.GetByID(c.Request.Context(), uint(accID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, acc, "Accommodation fetched successfully")
}

// CreateAccommodation godoc
// @Summary Create an accommodation
// @Tags Accommodation
// @Accept json
// @Produce json
// @Param request body request_models.AccommodationRequest true "Accommodation details"
// @Success 200 {object} db_models.Accommodation
// @Security BearerAuth
// @Router /accommodations [post]
func (a *AccommodationController) CreateAccommodation(c *gin.Context) {
	var req request_models.AccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name, type, address, price, check-in, check-out and city are required")
		return
	}

	acc, err := a.accommodationService.Create(c.Request.Context(), &db_models.Accommodation{
		Name:     req.Name,
		Type:     db_models.AccommodationType(req.Type),
		Address:  req.Address,
		Price:    req.Price,
		Rating:   req.Rating,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		CityID:   req.CityID,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, acc, "Accommodation created successfully")
}

// UpdateAccommodation godoc
// @Summary Update an accommodation
// @Tags Accommodation
// @Accept json
// @Produce json
// @Param accommodationId path int true "Accommodation ID"
// @Param request body request_models.AccommodationRequest true "Accommodation details"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accommodations/{accommodationId} [put]
func (a *AccommodationController) UpdateAccommodation(c *gin.Context) {
	accID, err := strconv.Atoi(c.Param("accommodationId"))
	if err != nil || accID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid accommodation ID")
		return
	}

	var req request_models.AccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name, type, address, price, check-in, check-out and city are required")
		return
	}

	err = a.accommodationService.Update(c.Request.Context(), &db_models.Accommodation{
		ID:       uint(accID),
		Name:     req.Name,
		Type:     db_models.AccommodationType(req.Type),
		Address:  req.Address,
		Price:    req.Price,
		Rating:   req.Rating,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		CityID:   req.CityID,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Accommodation updated successfully")
}

// DeleteAccommodation godoc
// @Summary Delete an accommodation
// @Tags Accommodation
// @Produce json
// @Param accommodationId path int true "Accommodation ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accommodations/{accommodationId} [delete]
func (a *AccommodationController) DeleteAccommodation(c *gin.Context) {
	accID, err := strconv.Atoi(c.Param("accommodationId"))
	if err != nil || accID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid accommodation ID")
		return
	}

	if err := a.accommodationService.Delete(c.Request.Context(), uint(accID)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Accommodation deleted successfully")
}
