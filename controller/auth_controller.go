package controller

import (
	"context"
	"net/http"

	"noticeboard-backend/middelware"
	"noticeboard-backend/models"
	"noticeboard-backend/services"
	"noticeboard-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthController struct {
	ctx         context.Context
	authService services.AuthServiceInterface
	jwtManager  *middelware.JWTManager
	logger      logger.Logger
	validator   *validator.Validate
}

func NewAuthController(ctx context.Context, authService services.AuthServiceInterface, jwtManager *middelware.JWTManager, logger logger.Logger) *AuthController {
	return &AuthController{
		ctx:         ctx,
		authService: authService,
		jwtManager:  jwtManager,
		logger:      logger,
		validator:   validator.New(),
	}
}

// Login handles POST /auth/login
// @Summary Authenticate a console account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.APIResponse "Login successful"
// @Failure 401 {object} models.APIResponse "Invalid email or password"
// @Router /auth/login [post]
func (h *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondBadRequest(c, formatValidationErrors(err))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Account")
		return
	}

	respondData(c, http.StatusOK, "Login successful", result)
}

// Logout handles POST /auth/logout
// @Summary Revoke the current token
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Logout successful"
// @Router /auth/logout [post]
func (h *AuthController) Logout(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		respondBadRequest(c, "missing token claims")
		return
	}

	h.jwtManager.RevokeToken(claims)
	respondData(c, http.StatusOK, "Logout successful", nil)
}

// ChangePassword handles POST /auth/change-password
// @Summary Change the current account's password
// @Description The confirmation must match and the new password must be at
// @Description least 8 characters; both rules run before any storage access
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ChangePasswordRequest true "Change password request"
// @Success 200 {object} models.APIResponse "Password changed successfully"
// @Failure 400 {object} models.APIResponse "Password rules violated"
// @Router /auth/change-password [post]
func (h *AuthController) ChangePassword(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		respondBadRequest(c, "missing token claims")
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondBadRequest(c, formatValidationErrors(err))
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), claims.AdminID, &req); err != nil {
		respondError(c, err, "Account")
		return
	}

	respondData(c, http.StatusOK, "Password changed successfully", nil)
}

// Profile handles GET /profile
// @Summary Get the current account's profile
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Profile retrieved successfully"
// @Router /profile [get]
func (h *AuthController) Profile(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		respondBadRequest(c, "missing token claims")
		return
	}

	admin, err := h.authService.Profile(c.Request.Context(), claims.AdminID)
	if err != nil {
		respondError(c, err, "Account")
		return
	}

	respondData(c, http.StatusOK, "Profile retrieved successfully", admin)
}

// UpdateProfile handles PUT /profile
// @Summary Update the current account's profile
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AdminPatch true "Profile update"
// @Success 200 {object} models.APIResponse "Profile updated successfully"
// @Router /profile [put]
func (h *AuthController) UpdateProfile(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		respondBadRequest(c, "missing token claims")
		return
	}

	var patch models.AdminPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.validator.Struct(&patch); err != nil {
		respondBadRequest(c, formatValidationErrors(err))
		return
	}

	admin, err := h.authService.UpdateProfile(c.Request.Context(), claims.AdminID, &patch)
	if err != nil {
		respondError(c, err, "Account")
		return
	}

	respondData(c, http.StatusOK, "Profile updated successfully", admin)
}
