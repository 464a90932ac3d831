package handlers

import (
	"net/http"
	"strconv"

	"fitness-community-backend/internal/auth"
	"fitness-community-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GroupHandler handles HTTP requests for groups
type GroupHandler struct {
	service        service.GroupServiceInterface
	statsService   service.StatsServiceInterface
	messageService service.MessageServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(service service.GroupServiceInterface, statsService service.StatsServiceInterface, messageService service.MessageServiceInterface) *GroupHandler {
	return &GroupHandler{
		service:        service,
		statsService:   statsService,
		messageService: messageService,
	}
}

// CreateGroup creates a new group
// @Summary Create a new group
// @Description Create a new group
// @Tags groups
// @Accept json
// @Produce json
// @Param group body service.CreateGroupRequest true "Group data"
// @Success 201 {object} service.GroupResponse "Successfully created group"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Group name already taken"
// @Security BearerAuth
// @Router /v1/groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req service.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "added": false, "error": err.Error()})
		return
	}

	actor, _ := auth.GetUsername(c)
	group, err := h.service.Create(&req, actor)
	if err != nil {
		fail(c, err, "added")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"self": self(c), "added": true, "group": group})
}

// GetGroups retrieves all groups
// @Summary List groups
// @Description Get all groups with pagination
// @Tags groups
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(25)
// @Success 200 {object} service.GroupListResponse "Successfully retrieved groups"
// @Security BearerAuth
// @Router /v1/groups [get]
func (h *GroupHandler) GetGroups(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "25"))

	groups, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetGroup retrieves a group by name
// @Summary Get group by name
// @Description Get a specific group by its name
// @Tags groups
// @Produce json
// @Param name path string true "Group name"
// @Success 200 {object} service.GroupResponse "Successfully retrieved group"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /v1/groups/{name} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	name := c.Param("name")

	group, err := h.service.GetByName(name)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, group)
}

// UpdateGroup updates a group
// @Summary Update group
// @Description Update a group's title, description, and week-start
// @Tags groups
// @Accept json
// @Produce json
// @Param name path string true "Group name"
// @Param group body service.UpdateGroupRequest true "Updated group data"
// @Success 200 {object} service.GroupResponse "Successfully updated group"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /v1/groups/{name} [put]
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	name := c.Param("name")

	var req service.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "updated": false, "error": err.Error()})
		return
	}

	actor, _ := auth.GetUsername(c)
	group, err := h.service.Update(name, &req, actor)
	if err != nil {
		fail(c, err, "updated")
		return
	}

	c.JSON(http.StatusOK, gin.H{"self": self(c), "updated": true, "group": group})
}

// GetGroupMembers retrieves a group's members
// @Summary Get group members
// @Description Get the live members of a group
// @Tags groups
// @Produce json
// @Param name path string true "Group name"
// @Success 200 {array} service.GroupMemberResponse "Successfully retrieved members"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /v1/groups/{name}/members [get]
func (h *GroupHandler) GetGroupMembers(c *gin.Context) {
	name := c.Param("name")

	members, err := h.service.GetMembers(name)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetGroupStatistics compiles a group's exercise statistics
// @Summary Get group statistics
// @Description Compile the group's aggregate mileage and feel statistics using the group's week-start
// @Tags groups
// @Produce json
// @Param name path string true "Group name"
// @Success 200 {object} service.StatsResponse "Successfully compiled statistics"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /v1/groups/{name}/statistics [get]
func (h *GroupHandler) GetGroupStatistics(c *gin.Context) {
	name := c.Param("name")

	stats, err := h.statsService.CompileGroupStats(name)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetGroupLeaderboard compiles a group's mileage leaderboard
// @Summary Get group leaderboard
// @Description Rank the group's live members by mileage over an optional interval (week, month, year)
// @Tags groups
// @Produce json
// @Param name path string true "Group name"
// @Param interval query string false "Time interval (week, month, year)"
// @Success 200 {object} service.LeaderboardResponse "Successfully compiled leaderboard"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /v1/groups/{name}/leaderboard [get]
func (h *GroupHandler) GetGroupLeaderboard(c *gin.Context) {
	name := c.Param("name")
	interval := c.Query("interval")

	leaderboard, err := h.statsService.CompileLeaderboard(name, interval)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, leaderboard)
}

// GetGroupMessages retrieves a group's message feed
// @Summary Get group messages
// @Description Get a group's messages, newest first, with pagination
// @Tags groups
// @Produce json
// @Param name path string true "Group name"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(25)
// @Success 200 {object} service.MessageListResponse "Successfully retrieved messages"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /v1/groups/{name}/messages [get]
func (h *GroupHandler) GetGroupMessages(c *gin.Context) {
	name := c.Param("name")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "25"))

	messages, err := h.messageService.GetByGroup(name, page, pageSize)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}
