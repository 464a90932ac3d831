package handlers

import (
	"net/http"

	"fitness-community-backend/internal/auth"
	"fitness-community-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CommentHandler handles HTTP requests for exercise log comments
type CommentHandler struct {
	service service.CommentServiceInterface
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(service service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{service: service}
}

// CreateComment adds a comment to an exercise log
// @Summary Comment on an exercise log
// @Description Add a comment to an exercise log as the authenticated user
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body service.CreateCommentRequest true "Comment data"
// @Success 201 {object} service.CommentResponse "Successfully added comment"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Log not found"
// @Security BearerAuth
// @Router /v1/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	username, _ := auth.GetUsername(c)

	var req service.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "added": false, "error": err.Error()})
		return
	}

	comment, err := h.service.Create(username, &req)
	if err != nil {
		fail(c, err, "added")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"self": self(c), "added": true, "comment": comment})
}

// DeleteComment soft-deletes a comment
// @Summary Delete comment
// @Description Delete a comment. Only the comment's author may delete it.
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted comment"
// @Failure 403 {object} ErrorResponse "Not the comment author"
// @Failure 404 {object} ErrorResponse "Comment not found"
// @Security BearerAuth
// @Router /v1/comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "deleted": false, "error": "Invalid comment ID"})
		return
	}

	actor, _ := auth.GetUsername(c)
	if err := h.service.Delete(id, actor); err != nil {
		fail(c, err, "deleted")
		return
	}

	c.JSON(http.StatusOK, gin.H{"self": self(c), "deleted": true})
}
