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

type OrganizationController struct {
	ctx                 context.Context
	organizationService services.OrganizationServiceInterface
	logger              logger.Logger
	validator           *validator.Validate
}

func NewOrganizationController(ctx context.Context, organizationService services.OrganizationServiceInterface, logger logger.Logger) *OrganizationController {
	return &OrganizationController{
		ctx:                 ctx,
		organizationService: organizationService,
		logger:              logger,
		validator:           validator.New(),
	}
}

// List handles GET /organizations
// @Summary Get all organizations
// @Tags Organization Management
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Organizations retrieved successfully"
// @Router /organizations [get]
func (h *OrganizationController) List(c *gin.Context) {
	organizations, err := h.organizationService.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list organizations:", err)
		respondError(c, err, "Organization")
		return
	}

	respondData(c, http.StatusOK, "Organizations retrieved successfully", organizations)
}

// Get handles GET /organizations/:id
// @Summary Get an organization by id
// @Tags Organization Management
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Organization retrieved successfully"
// @Failure 404 {object} models.APIResponse "Organization not found"
// @Router /organizations/{id} [get]
func (h *OrganizationController) Get(c *gin.Context) {
	organization, err := h.organizationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Organization")
		return
	}

	respondData(c, http.StatusOK, "Organization retrieved successfully", organization)
}

// Create handles POST /organizations
// @Summary Create a new organization
// @Tags Organization Management
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.Organization true "Create organization request"
// @Success 201 {object} models.APIResponse "Organization created successfully"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid organization data"
// @Router /organizations [post]
func (h *OrganizationController) Create(c *gin.Context) {
	var req models.Organization
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondBadRequest(c, formatValidationErrors(err))
		return
	}

	organization, err := h.organizationService.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to create organization:", err)
		respondError(c, err, "Organization")
		return
	}

	respondData(c, http.StatusCreated, "Organization created successfully", organization)
}

// Update handles PUT /organizations/:id
// @Summary Update an organization
// @Description Partial update: absent fields keep their stored values
// @Tags Organization Management
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "Organization updated successfully"
// @Failure 404 {object} models.APIResponse "Organization not found"
// @Router /organizations/{id} [put]
func (h *OrganizationController) Update(c *gin.Context) {
	var patch models.OrganizationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.validator.Struct(&patch); err != nil {
		respondBadRequest(c, formatValidationErrors(err))
		return
	}

	organization, err := h.organizationService.Update(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		respondError(c, err, "Organization")
		return
	}

	respondData(c, http.StatusOK, "Organization updated successfully", organization)
}

// Delete handles DELETE /organizations/:id
// @Summary Delete an organization
// @Tags Organization Management
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Organization deleted successfully"
// @Failure 404 {object} models.APIResponse "Organization not found"
// @Router /organizations/{id} [delete]
func (h *OrganizationController) Delete(c *gin.Context) {
	if err := h.organizationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Organization")
		return
	}

	respondData(c, http.StatusOK, "Organization deleted successfully", nil)
}
