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

type MessageController struct {
	ctx            context.Context
	messageService services.MessageServiceInterface
	logger         logger.Logger
	validator      *validator.Validate
}

func NewMessageController(ctx context.Context, messageService services.MessageServiceInterface, logger logger.Logger) *MessageController {
	return &MessageController{
		ctx:            ctx,
		messageService: messageService,
		logger:         logger,
		validator:      validator.New(),
	}
}

// List handles GET /messages?organizationId=
// @Summary Get messages, optionally narrowed to one organization
// @Tags Message Management
// @Security BearerAuth
// @Produce json
// @Param organizationId query string false "Filter by organization id"
// @Success 200 {object} models.APIResponse "Messages retrieved successfully"
// @Router /messages [get]
func (h *MessageController) List(c *gin.Context) {
	messages, err := h.messageService.List(c.Request.Context(), c.Query("organizationId"))
	if err != nil {
		h.logger.Error("Failed to list messages:", err)
		respondError(c, err, "Message")
		return
	}

	respondData(c, http.StatusOK, "Messages retrieved successfully", messages)
}

// Recent handles GET /messages/recent?organizationId=&period=
// @Summary Get messages sent inside a time window
// @Description period is one of 1day, 7days, month, year; month and year use
// @Description calendar arithmetic, not fixed durations
// @Tags Message Management
// @Security BearerAuth
// @Produce json
// @Param organizationId query string false "Filter by organization id"
// @Param period query string true "Window token"
// @Success 200 {object} models.APIResponse "Messages retrieved successfully"
// @Failure 400 {object} models.APIResponse "Unknown period token"
// @Router /messages/recent [get]
func (h *MessageController) Recent(c *gin.Context) {
	window, err := h.messageService.Recent(c.Request.Context(), c.Query("organizationId"), c.Query("period"))
	if err != nil {
		respondError(c, err, "Message")
		return
	}

	respondData(c, http.StatusOK, "Messages retrieved successfully", window)
}

// Get handles GET /messages/:id
// @Summary Get a message by id
// @Tags Message Management
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Message retrieved successfully"
// @Failure 404 {object} models.APIResponse "Message not found"
// @Router /messages/{id} [get]
func (h *MessageController) Get(c *gin.Context) {
	message, err := h.messageService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Message")
		return
	}

	respondData(c, http.StatusOK, "Message retrieved successfully", message)
}

// Send handles POST /messages
// @Summary Send a notice to an organization's members
// @Description type selects the field set: announcement carries title/place/
// @Description time/content, funeral carries place/address/deathType/content
// @Tags Message Management
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.Message true "Send message request"
// @Success 201 {object} models.APIResponse "Message sent successfully"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid message data"
// @Router /messages [post]
func (h *MessageController) Send(c *gin.Context) {
	var req models.Message
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondBadRequest(c, formatValidationErrors(err))
		return
	}

	message, err := h.messageService.Send(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to send message:", err)
		respondError(c, err, "Message")
		return
	}

	respondData(c, http.StatusCreated, "Message sent successfully", message)
}

// Delete handles DELETE /messages/:id
// @Summary Delete a message
// @Tags Message Management
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Message deleted successfully"
// @Failure 404 {object} models.APIResponse "Message not found"
// @Router /messages/{id} [delete]
func (h *MessageController) Delete(c *gin.Context) {
	if err := h.messageService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Message")
		return
	}

	respondData(c, http.StatusOK, "Message deleted successfully", nil)
}
