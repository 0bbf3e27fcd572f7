package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripline/internal/models/request_models"
	"tripline/internal/services"
	"tripline/pkg/utils"
)

type CityController struct {
	cityService services.CityServiceInterface
}

func NewCityController(cityService services.CityServiceInterface) *CityController {
	return &CityController{
		cityService: cityService,
	}
}

// GetCities godoc
// @Summary List all cities
// @Tags City
// @Produce json
// @Success 200 {array} db_models.City
// @Router /cities [get]
func (ct *CityController) GetCities(c *gin.Context) {
	cities, err := ct.cityService.GetList(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

// GetCityByID godoc
// @Summary Get a city by ID
// @Tags City
// @Produce json
// @Param cityId path int true "City ID"
// @Success 200 {object} db_models.City
// @Failure 404 {object} utils.APIResponse
// @Router /cities/{cityId} [get]
func (ct *CityController) GetCityByID(c *gin.Context) {
	cityID, err := strconv.Atoi(c.Param("cityId"))
	if err != nil || cityID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid city ID")
		return
	}

	city, err := ct.cityService.GetByID(c.Request.Context(), uint(cityID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, city, "City fetched successfully")
}

// CreateCity godoc
// @Summary Create a city
// @Tags City
// @Accept json
// @Produce json
// @Param request body request_models.CityRequest true "City name"
// @Success 200 {object} db_models.City
// @Security BearerAuth
// @Router /cities [post]
func (ct *CityController) CreateCity(c *gin.Context) {
	var req request_models.CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name is required and must be 1-50 characters")
		return
	}

	city, err := ct.cityService.Create(c.Request.Context(), req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, city, "City created successfully")
}

// UpdateCity godoc
// @Summary Rename a city
// @Tags City
// @Accept json
// @Produce json
// @Param cityId path int true "City ID"
// @Param request body request_models.CityRequest true "City name"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cities/{cityId} [put]
func (ct *CityController) UpdateCity(c *gin.Context) {
	cityID, err := strconv.Atoi(c.Param("cityId"))
	if err != nil || cityID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid city ID")
		return
	}

	var req request_models.CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name is required and must be 1-50 characters")
		return
	}

	city, err := ct.cityService.Rename(c.Request.Context(), uint(cityID), req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, city, "City updated successfully")
}

// DeleteCity godoc
// @Summary Delete a city
// @Description Delete a city together with its directory legs and every route leg built on them
// @Tags City
// @Produce json
// @Param cityId path int true "City ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cities/{cityId} [delete]
func (ct *CityController) DeleteCity(c *gin.Context) {
	cityID, err := strconv.Atoi(c.Param("cityId"))
	if err != nil || cityID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid city ID")
		return
	}

	if err := ct.cityService.Delete(c.Request.Context(), uint(cityID)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "City deleted successfully")
}
