package handlers

import (
	"net/http"

	"fitness-community-backend/internal/auth"
	"fitness-community-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MessageHandler handles HTTP requests for group messages
type MessageHandler struct {
	service service.MessageServiceInterface
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(service service.MessageServiceInterface) *MessageHandler {
	return &MessageHandler{service: service}
}

// CreateMessage posts a message to a group's board
// @Summary Post a group message
// @Description Post a message to a group's board as the authenticated user
// @Tags messages
// @Accept json
// @Produce json
// @Param message body service.CreateMessageRequest true "Message data"
// @Success 201 {object} service.MessageResponse "Successfully posted message"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /v1/messages [post]
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	username, _ := auth.GetUsername(c)

	var req service.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "added": false, "error": err.Error()})
		return
	}

	message, err := h.service.Create(username, &req)
	if err != nil {
		fail(c, err, "added")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"self": self(c), "added": true, "message": message})
}

// DeleteMessage soft-deletes a group message
// @Summary Delete message
// @Description Delete a group message. Only the message's author may delete it.
// @Tags messages
// @Produce json
// @Param id path string true "Message ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted message"
// @Failure 403 {object} ErrorResponse "Not the message author"
// @Failure 404 {object} ErrorResponse "Message not found"
// @Security BearerAuth
// @Router /v1/messages/{id} [delete]
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "deleted": false, "error": "Invalid message ID"})
		return
	}

	actor, _ := auth.GetUsername(c)
	if err := h.service.Delete(id, actor); err != nil {
		fail(c, err, "deleted")
		return
	}

	c.JSON(http.StatusOK, gin.H{"self": self(c), "deleted": true})
}
