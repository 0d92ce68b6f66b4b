package controller

import (
	"context"
	"net/http"

	"noticeboard-backend/services"
	"noticeboard-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	ctx              context.Context
	analyticsService services.AnalyticsServiceInterface
	logger           logger.Logger
}

func NewAnalyticsController(ctx context.Context, analyticsService services.AnalyticsServiceInterface, logger logger.Logger) *AnalyticsController {
	return &AnalyticsController{
		ctx:              ctx,
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// KPIs handles GET /analytics/kpis
// @Summary Get dashboard headline figures
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "KPIs retrieved successfully"
// @Router /analytics/kpis [get]
func (h *AnalyticsController) KPIs(c *gin.Context) {
	kpis, err := h.analyticsService.KPIs(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to compute KPIs:", err)
		respondError(c, err, "Analytics")
		return
	}

	respondData(c, http.StatusOK, "KPIs retrieved successfully", kpis)
}

// MessageVolume handles GET /analytics/message-volume
// @Summary Get weekly message volume
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Message volume retrieved successfully"
// @Router /analytics/message-volume [get]
func (h *AnalyticsController) MessageVolume(c *gin.Context) {
	volume, err := h.analyticsService.MessageVolume(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to compute message volume:", err)
		respondError(c, err, "Analytics")
		return
	}

	respondData(c, http.StatusOK, "Message volume retrieved successfully", volume)
}

// MessagesPerOrg handles GET /analytics/messages-per-org
// @Summary Get message counts per organization
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Per-organization counts retrieved successfully"
// @Router /analytics/messages-per-org [get]
func (h *AnalyticsController) MessagesPerOrg(c *gin.Context) {
	perOrg, err := h.analyticsService.MessagesPerOrg(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to compute per-org counts:", err)
		respondError(c, err, "Analytics")
		return
	}

	respondData(c, http.StatusOK, "Per-organization counts retrieved successfully", perOrg)
}

// Activities handles GET /analytics/activities
// @Summary Get the activity feed, newest first
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Activities retrieved successfully"
// @Router /analytics/activities [get]
func (h *AnalyticsController) Activities(c *gin.Context) {
	activities, err := h.analyticsService.Activities(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list activities:", err)
		respondError(c, err, "Analytics")
		return
	}

	respondData(c, http.StatusOK, "Activities retrieved successfully", activities)
}

// Stats handles GET /analytics/stats?organizationId=
// @Summary Get the org console headline block
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param organizationId query string true "Organization id"
// @Success 200 {object} models.APIResponse "Stats retrieved successfully"
// @Router /analytics/stats [get]
func (h *AnalyticsController) Stats(c *gin.Context) {
	stats, err := h.analyticsService.Stats(c.Request.Context(), c.Query("organizationId"))
	if err != nil {
		h.logger.Error("Failed to compute stats:", err)
		respondError(c, err, "Analytics")
		return
	}

	respondData(c, http.StatusOK, "Stats retrieved successfully", stats)
}
