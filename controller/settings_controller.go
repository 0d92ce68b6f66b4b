package controller

import (
	"context"
	"net/http"

	"noticeboard-backend/models"
	"noticeboard-backend/services"
	"noticeboard-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// SettingsController serves the org console settings page. Settings are a
// projection of the organization's contact fields, so it delegates to the
// organization service.
type SettingsController struct {
	ctx                 context.Context
	organizationService services.OrganizationServiceInterface
	logger              logger.Logger
	validator           *validator.Validate
}

func NewSettingsController(ctx context.Context, organizationService services.OrganizationServiceInterface, logger logger.Logger) *SettingsController {
	return &SettingsController{
		ctx:                 ctx,
		organizationService: organizationService,
		logger:              logger,
		validator:           validator.New(),
	}
}

// Get handles GET /settings?orgId=
// @Summary Get an organization's settings
// @Tags Settings
// @Security BearerAuth
// @Produce json
// @Param orgId query string true "Organization id"
// @Success 200 {object} models.APIResponse "Settings retrieved successfully"
// @Failure 404 {object} models.APIResponse "Organization not found"
// @Router /settings [get]
func (h *SettingsController) Get(c *gin.Context) {
	orgID := c.Query("orgId")
	if orgID == "" {
		respondBadRequest(c, "orgId query parameter is required")
		return
	}

	settings, err := h.organizationService.GetSettings(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err, "Organization")
		return
	}

	respondData(c, http.StatusOK, "Settings retrieved successfully", settings)
}

// Update handles PUT /settings?orgId=
// @Summary Update an organization's settings
// @Tags Settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param orgId query string true "Organization id"
// @Param request body models.OrgSettings true "Settings update"
// @Success 200 {object} models.APIResponse "Settings updated successfully"
// @Failure 404 {object} models.APIResponse "Organization not found"
// @Router /settings [put]
func (h *SettingsController) Update(c *gin.Context) {
	orgID := c.Query("orgId")
	if orgID == "" {
		respondBadRequest(c, "orgId query parameter is required")
		return
	}

	var req models.OrgSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondBadRequest(c, formatValidationErrors(err))
		return
	}

	if err := h.organizationService.UpdateSettings(c.Request.Context(), orgID, &req); err != nil {
		respondError(c, err, "Organization")
		return
	}

	respondData(c, http.StatusOK, "Settings updated successfully", nil)
}
