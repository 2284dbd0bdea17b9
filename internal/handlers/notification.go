package handlers

import (
	"auctions/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	service *services.AuctionService
}

func NewNotificationHandler(service *services.AuctionService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.service.ListNotifications(c.Request.Context(), currentUser(c))
	if err != nil {
		RenderServiceError(c, "Notifications", err)
		return
	}

	Render(c, http.StatusOK, "notification/list.html", gin.H{
		"Title":         "Notifications",
		"Notifications": notifications,
		"Active":        "notifications",
	})
}

func (h *NotificationHandler) Read(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.MarkNotificationRead(c.Request.Context(), currentUser(c), id); err != nil {
		RenderServiceError(c, "ReadNotification", err)
		return
	}
	c.Redirect(http.StatusFound, "/notifications")
}

func (h *NotificationHandler) ReadAll(c *gin.Context) {
	if err := h.service.MarkAllNotificationsRead(c.Request.Context(), currentUser(c)); err != nil {
		RenderServiceError(c, "ReadAllNotifications", err)
		return
	}
	c.Redirect(http.StatusFound, "/notifications")
}
