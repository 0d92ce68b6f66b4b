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

type MemberController struct {
	ctx           context.Context
	memberService services.MemberServiceInterface
	logger        logger.Logger
	validator     *validator.Validate
}

func NewMemberController(ctx context.Context, memberService services.MemberServiceInterface, logger logger.Logger) *MemberController {
	return &MemberController{
		ctx:           ctx,
		memberService: memberService,
		logger:        logger,
		validator:     validator.New(),
	}
}

// List handles GET /members?organizationId=
// @Summary Get members, optionally narrowed to one organization
// @Tags Member Management
// @Security BearerAuth
// @Produce json
// @Param organizationId query string false "Filter by organization id"
// @Success 200 {object} models.APIResponse "Members retrieved successfully"
// @Router /members [get]
func (h *MemberController) List(c *gin.Context) {
	members, err := h.memberService.List(c.Request.Context(), c.Query("organizationId"))
	if err != nil {
		h.logger.Error("Failed to list members:", err)
		respondError(c, err, "Member")
		return
	}

	respondData(c, http.StatusOK, "Members retrieved successfully", members)
}

// Get handles GET /members/:id
// @Summary Get a member by id
// @Tags Member Management
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Member retrieved successfully"
// @Failure 404 {object} models.APIResponse "Member not found"
// @Router /members/{id} [get]
func (h *MemberController) Get(c *gin.Context) {
	member, err := h.memberService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Member")
		return
	}

	respondData(c, http.StatusOK, "Member retrieved successfully", member)
}

// Create handles POST /members
// @Summary Add a member to an organization
// @Description organizationId must reference an existing organization
// @Tags Member Management
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.Member true "Create member request"
// @Success 201 {object} models.APIResponse "Member created successfully"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid member data"
// @Router /members [post]
func (h *MemberController) Create(c *gin.Context) {
	var req models.Member
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondBadRequest(c, formatValidationErrors(err))
		return
	}

	member, err := h.memberService.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to create member:", err)
		respondError(c, err, "Member")
		return
	}

	respondData(c, http.StatusCreated, "Member created successfully", member)
}

// Update handles PUT /members/:id
// @Summary Update a member
// @Description Partial update: absent fields keep their stored values
// @Tags Member Management
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "Member updated successfully"
// @Failure 404 {object} models.APIResponse "Member not found"
// @Router /members/{id} [put]
func (h *MemberController) Update(c *gin.Context) {
	var patch models.MemberPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.validator.Struct(&patch); err != nil {
		respondBadRequest(c, formatValidationErrors(err))
		return
	}

	member, err := h.memberService.Update(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		respondError(c, err, "Member")
		return
	}

	respondData(c, http.StatusOK, "Member updated successfully", member)
}

// Delete handles DELETE /members/:id
// @Summary Remove a member
// @Tags Member Management
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Member deleted successfully"
// @Failure 404 {object} models.APIResponse "Member not found"
// @Router /members/{id} [delete]
func (h *MemberController) Delete(c *gin.Context) {
	if err := h.memberService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Member")
		return
	}

	respondData(c, http.StatusOK, "Member deleted successfully", nil)
}
