package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripline/internal/models/request_models"
	"tripline/internal/models/response_models"
	"tripline/internal/services"
	"tripline/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{
		userService: userService,
	}
}

// SignUp godoc
// @Summary Register a new account
// @Tags User
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account details"
// @Success 200 {object} response_models.UserResponse
// @Failure 409 {object} utils.APIResponse
// @Router /users/signup [post]
func (u *UserController) SignUp(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Full name, email, login and password are required")
		return
	}

	user, err := u.userService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "Account created successfully")
}

// Login godoc
// @Summary Log in and get a bearer token
// @Tags User
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login and password"
// @Success 200 {object} response_models.TokenResponse
// @Failure 401 {object} utils.APIResponse
// @Router /users/login [post]
func (u *UserController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Login and password are required")
		return
	}

	token, err := u.userService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.TokenResponse{Token: token}, "Logged in successfully")
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags User
// @Produce json
// @Success 200 {object} response_models.UserResponse
// @Security BearerAuth
// @Router /users/me [get]
func (u *UserController) GetProfile(c *gin.Context) {
	userID, err := strconv.Atoi(c.GetString("user_id"))
	if err != nil || userID < 1 {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	user, err := u.userService.GetByID(c.Request.Context(), uint(userID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "Profile fetched successfully")
}

// GetUsers godoc
// @Summary List all users
// @Tags User
// @Produce json
// @Success 200 {array} response_models.UserResponse
// @Security BearerAuth
// @Router /users [get]
func (u *UserController) GetUsers(c *gin.Context) {
	users, err := u.userService.GetList(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}

// GetUserByID godoc
// @Summary Get a user by ID
// @Tags User
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} response_models.UserResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{userId} [get]
func (u *UserController) GetUserByID(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil || userID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := u.userService.GetByID(c.Request.Context(), uint(userID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User fetched successfully")
}
