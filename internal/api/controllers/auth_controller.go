package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"roadtrip/internal/models/request_models"
	"roadtrip/internal/services"
	"roadtrip/pkg/utils"
)

type AuthController struct {
	userService services.UserServiceInterface
}

func NewAuthController(userService services.UserServiceInterface) *AuthController {
	return &AuthController{userService: userService}
}

// Login godoc
// @Summary Login or create a user
// @Description Passwordless login: an existing email is refreshed, a new one gets an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name and email are required")
		return
	}

	user, err := a.userService.LoginOrCreateUser(c.Request.Context(), req.Name, req.Email, req.ProfilePictureURL)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	uid, err := uuid.Parse(user.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := utils.CreateToken(uid)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondSuccess(c, gin.H{"user": user, "token": token}, "Login successful")
}

// GetUser godoc
// @Summary Get a user by id
// @Tags Auth
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/auth/user/{id} [get]
func (a *AuthController) GetUser(c *gin.Context) {
	user, err := a.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "")
}
