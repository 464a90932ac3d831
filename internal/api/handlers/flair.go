package handlers

import (
	"net/http"

	"fitness-community-backend/internal/auth"
	apperrors "fitness-community-backend/internal/errors"
	"fitness-community-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FlairHandler handles HTTP requests for profile flair
type FlairHandler struct {
	service service.FlairServiceInterface
}

// NewFlairHandler creates a new flair handler
func NewFlairHandler(service service.FlairServiceInterface) *FlairHandler {
	return &FlairHandler{service: service}
}

// CreateFlair adds flair to a user's profile
// @Summary Add profile flair
// @Description Add a flair entry to the authenticated user's profile
// @Tags flair
// @Accept json
// @Produce json
// @Param flair body service.CreateFlairRequest true "Flair data"
// @Success 201 {object} service.FlairResponse "Successfully added flair"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Not the profile owner"
// @Security BearerAuth
// @Router /v1/flair [post]
func (h *FlairHandler) CreateFlair(c *gin.Context) {
	var req service.CreateFlairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "added": false, "error": err.Error()})
		return
	}

	actor, _ := auth.GetUsername(c)
	if actor != req.Username {
		fail(c, apperrors.NewAuthorizationError(actor, req.Username), "added")
		return
	}

	flair, err := h.service.Create(&req, actor)
	if err != nil {
		fail(c, err, "added")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"self": self(c), "added": true, "flair": flair})
}

// DeleteFlair soft-deletes a flair entry
// @Summary Delete flair
// @Description Delete a flair entry from a profile
// @Tags flair
// @Produce json
// @Param id path string true "Flair ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted flair"
// @Failure 400 {object} ErrorResponse "Invalid flair ID"
// @Security BearerAuth
// @Router /v1/flair/{id} [delete]
func (h *FlairHandler) DeleteFlair(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "deleted": false, "error": "Invalid flair ID"})
		return
	}

	actor, _ := auth.GetUsername(c)
	if err := h.service.Delete(id, actor); err != nil {
		fail(c, err, "deleted")
		return
	}

	c.JSON(http.StatusOK, gin.H{"self": self(c), "deleted": true})
}
