package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/docflow/internal/application"
	"github.com/linskybing/docflow/pkg/response"
)

type NotificationHandler struct {
	svc *application.NotificationService
}

func NewNotificationHandler(svc *application.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// ListNotifications godoc
// @Summary List the caller's notifications, newest first
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Param unread query bool false "Only unread"
// @Success 200 {array} notification.Notification
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	list, err := h.svc.ListNotifications(actor.ID, c.Query("unread") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Notification not found"
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := requestActor(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.MarkRead(id, actor.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Notification marked as read"})
}
