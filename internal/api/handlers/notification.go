package handlers

import (
	"net/http"

	"fitness-community-backend/internal/auth"
	"fitness-community-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NotificationHandler handles HTTP requests for notifications
type NotificationHandler struct {
	service service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// CreateNotification creates a notification for a user
// @Summary Create a notification
// @Description Create a notification for a user
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body service.CreateNotificationRequest true "Notification data"
// @Success 201 {object} service.NotificationResponse "Successfully created notification"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /v1/notifications [post]
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req service.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "added": false, "error": err.Error()})
		return
	}

	actor, _ := auth.GetUsername(c)
	notification, err := h.service.Create(&req, actor)
	if err != nil {
		fail(c, err, "added")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"self": self(c), "added": true, "notification": notification})
}

// MarkNotificationViewed marks a notification as viewed
// @Summary Mark notification viewed
// @Description Mark a notification as viewed. Only the recipient may mark it.
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} service.NotificationResponse "Successfully updated notification"
// @Failure 403 {object} ErrorResponse "Not the recipient"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Security BearerAuth
// @Router /v1/notifications/{id}/viewed [put]
func (h *NotificationHandler) MarkNotificationViewed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "updated": false, "error": "Invalid notification ID"})
		return
	}

	actor, _ := auth.GetUsername(c)
	notification, err := h.service.MarkViewed(id, actor)
	if err != nil {
		fail(c, err, "updated")
		return
	}

	c.JSON(http.StatusOK, gin.H{"self": self(c), "updated": true, "notification": notification})
}

// DeleteNotification soft-deletes a notification
// @Summary Delete notification
// @Description Delete a notification. Only the recipient may delete it.
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted notification"
// @Failure 403 {object} ErrorResponse "Not the recipient"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Security BearerAuth
// @Router /v1/notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "deleted": false, "error": "Invalid notification ID"})
		return
	}

	actor, _ := auth.GetUsername(c)
	if err := h.service.Delete(id, actor); err != nil {
		fail(c, err, "deleted")
		return
	}

	c.JSON(http.StatusOK, gin.H{"self": self(c), "deleted": true})
}
