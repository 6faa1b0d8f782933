package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kristian-01/nine27-mobile/middleware"
	"github.com/Kristian-01/nine27-mobile/pkg/response"
	"github.com/Kristian-01/nine27-mobile/services"
)

type AuthController struct {
	authService AuthServiceAPI
}

func NewAuthController(authService AuthServiceAPI) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles POST /auth/register.
func (ac *AuthController) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	result, svcErr := ac.authService.Register(c.Request.Context(), &req)
	if svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.Created(c, "Registered successfully", result)
}

// Login handles POST /auth/login.
func (ac *AuthController) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	result, svcErr := ac.authService.Login(c.Request.Context(), &req)
	if svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.OK(c, "Logged in successfully", result)
}

// Profile handles GET /auth/profile.
func (ac *AuthController) Profile(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, svcErr := ac.authService.Profile(c.Request.Context(), userID)
	if svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.OK(c, "", user)
}

// UpdateProfile handles PUT /auth/profile.
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	user, svcErr := ac.authService.UpdateProfile(c.Request.Context(), userID, &req)
	if svcErr != nil {
		response.Error(c, svcErr.StatusCode, svcErr.Message)
		return
	}

	response.OK(c, "Profile updated successfully", user)
}
