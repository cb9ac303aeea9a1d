package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/workpulse/hr_management_app/internal/core/ports/services"
	"github.com/workpulse/hr_management_app/internal/dto"
	"github.com/workpulse/hr_management_app/internal/middleware"
)

// notificationHandler handles HTTP requests for stored notifications.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

// newNotificationHandler creates a new notificationHandler.
func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{
		notificationService: ns,
	}
}

// registerNotificationRoutes registers all notification-related routes.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.POST("/:id/read", h.markRead)
	}
}

// listNotifications godoc
// @Summary List notifications
// @Description Retrieves the authenticated employee's notifications, newest first, with token pagination.
// @Tags notifications
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListNotificationsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query params for list notifications", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error(), Code: CodeValidation})
		return
	}

	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	notifications, nextToken, err := h.notificationService.ListNotifications(c.Request.Context(), actorID, params.Limit, params.NextToken)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list notifications")
		return
	}

	c.JSON(http.StatusOK, dto.ToListNotificationsResponse(notifications, nextToken))
}

// markRead godoc
// @Summary Mark a notification as read
// @Description Flags one of the authenticated employee's notifications as read.
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 204 "Notification marked as read"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *notificationHandler) markRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	notificationID := c.Param("id")

	actorID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), notificationID, actorID); err != nil {
		respondWithError(c, logger, err, "Failed to mark notification as read")
		return
	}

	c.Status(http.StatusNoContent)
}
