package handlers

import (
	"net/http"
	"strconv"

	"fitness-community-backend/internal/auth"
	"fitness-community-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LogHandler handles HTTP requests for exercise logs
type LogHandler struct {
	service        service.LogServiceInterface
	commentService service.CommentServiceInterface
}

// NewLogHandler creates a new log handler
func NewLogHandler(service service.LogServiceInterface, commentService service.CommentServiceInterface) *LogHandler {
	return &LogHandler{
		service:        service,
		commentService: commentService,
	}
}

// CreateLog records a new exercise log
// @Summary Record an exercise log
// @Description Record an exercise log for the authenticated user. Mileage and pace are derived server-side.
// @Tags logs
// @Accept json
// @Produce json
// @Param log body service.CreateLogRequest true "Exercise log data"
// @Success 201 {object} service.LogResponse "Successfully recorded log"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /v1/logs [post]
func (h *LogHandler) CreateLog(c *gin.Context) {
	username, _ := auth.GetUsername(c)

	var req service.CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "added": false, "error": err.Error()})
		return
	}

	log, err := h.service.Create(username, &req)
	if err != nil {
		fail(c, err, "added")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"self": self(c), "added": true, "log": log})
}

// GetLogs retrieves all exercise logs
// @Summary List exercise logs
// @Description Get all exercise logs, newest first, with pagination
// @Tags logs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(25)
// @Success 200 {object} service.LogListResponse "Successfully retrieved logs"
// @Security BearerAuth
// @Router /v1/logs [get]
func (h *LogHandler) GetLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "25"))

	logs, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}

// GetLog retrieves an exercise log by ID
// @Summary Get exercise log by ID
// @Description Get a specific exercise log with its comments
// @Tags logs
// @Produce json
// @Param id path string true "Log ID (UUID)"
// @Success 200 {object} service.LogResponse "Successfully retrieved log"
// @Failure 400 {object} ErrorResponse "Invalid log ID"
// @Failure 404 {object} ErrorResponse "Log not found"
// @Security BearerAuth
// @Router /v1/logs/{id} [get]
func (h *LogHandler) GetLog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "error": "Invalid log ID"})
		return
	}

	log, err := h.service.GetByID(id)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, log)
}

// UpdateLog updates an exercise log
// @Summary Update exercise log
// @Description Update an exercise log. Only the log's owner may update it.
// @Tags logs
// @Accept json
// @Produce json
// @Param id path string true "Log ID (UUID)"
// @Param log body service.UpdateLogRequest true "Updated log data"
// @Success 200 {object} service.LogResponse "Successfully updated log"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Not the log owner"
// @Failure 404 {object} ErrorResponse "Log not found"
// @Security BearerAuth
// @Router /v1/logs/{id} [put]
func (h *LogHandler) UpdateLog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "updated": false, "error": "Invalid log ID"})
		return
	}

	var req service.UpdateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "updated": false, "error": err.Error()})
		return
	}

	actor, _ := auth.GetUsername(c)
	log, err := h.service.Update(id, &req, actor)
	if err != nil {
		fail(c, err, "updated")
		return
	}

	c.JSON(http.StatusOK, gin.H{"self": self(c), "updated": true, "log": log})
}

// DeleteLog soft-deletes an exercise log
// @Summary Delete exercise log
// @Description Delete an exercise log. Only the log's owner may delete it.
// @Tags logs
// @Produce json
// @Param id path string true "Log ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted log"
// @Failure 403 {object} ErrorResponse "Not the log owner"
// @Failure 404 {object} ErrorResponse "Log not found"
// @Security BearerAuth
// @Router /v1/logs/{id} [delete]
func (h *LogHandler) DeleteLog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "deleted": false, "error": "Invalid log ID"})
		return
	}

	actor, _ := auth.GetUsername(c)
	if err := h.service.Delete(id, actor); err != nil {
		fail(c, err, "deleted")
		return
	}

	c.JSON(http.StatusOK, gin.H{"self": self(c), "deleted": true})
}

// GetLogComments retrieves the comments on an exercise log
// @Summary Get log comments
// @Description Get the comments on an exercise log, oldest first
// @Tags logs
// @Produce json
// @Param id path string true "Log ID (UUID)"
// @Success 200 {array} service.CommentResponse "Successfully retrieved comments"
// @Failure 400 {object} ErrorResponse "Invalid log ID"
// @Security BearerAuth
// @Router /v1/logs/{id}/comments [get]
func (h *LogHandler) GetLogComments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "error": "Invalid log ID"})
		return
	}

	comments, err := h.commentService.GetByLog(id)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comments)
}
