package handlers

import (
	"net/http"
	"strconv"

	"fitness-community-backend/internal/auth"
	"fitness-community-backend/internal/database/models"
	apperrors "fitness-community-backend/internal/errors"
	"fitness-community-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	service           service.UserServiceInterface
	membershipService service.MembershipServiceInterface
	statsService      service.StatsServiceInterface
	logService        service.LogServiceInterface
	flairService      service.FlairServiceInterface
	notifService      service.NotificationServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	service service.UserServiceInterface,
	membershipService service.MembershipServiceInterface,
	statsService service.StatsServiceInterface,
	logService service.LogServiceInterface,
	flairService service.FlairServiceInterface,
	notifService service.NotificationServiceInterface,
) *UserHandler {
	return &UserHandler{
		service:           service,
		membershipService: membershipService,
		statsService:      statsService,
		logService:        logService,
		flairService:      flairService,
		notifService:      notifService,
	}
}

// CreateUser registers a new user
// @Summary Register a new user
// @Description Register a new user with a valid activation code
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User registration data"
// @Success 201 {object} service.UserResponse "Successfully registered user"
// @Failure 400 {object} ErrorResponse "Invalid request body or activation code"
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Router /v1/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "added": false, "error": err.Error()})
		return
	}

	user, err := h.service.Create(&req)
	if err != nil {
		fail(c, err, "added")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"self": self(c), "added": true, "user": user})
}

// GetUsers retrieves all users
// @Summary List users
// @Description Get all users with pagination
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.UserListResponse "Successfully retrieved users"
// @Security BearerAuth
// @Router /v1/users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	users, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser retrieves a user by username
// @Summary Get user by username
// @Description Get a specific user's profile
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} service.UserResponse "Successfully retrieved user"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /v1/users/{username} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	username := c.Param("username")

	user, err := h.service.GetByUsername(username)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser updates a user's profile
// @Summary Update user
// @Description Update a user's profile. Users may only update their own profile.
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param user body service.UpdateUserRequest true "Updated profile data"
// @Success 200 {object} service.UserResponse "Successfully updated user"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Not the profile owner"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /v1/users/{username} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	username := c.Param("username")
	actor, _ := auth.GetUsername(c)
	if actor != username {
		fail(c, apperrors.NewAuthorizationError(actor, username), "updated")
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "updated": false, "error": err.Error()})
		return
	}

	user, err := h.service.Update(username, &req, actor)
	if err != nil {
		fail(c, err, "updated")
		return
	}

	c.JSON(http.StatusOK, gin.H{"self": self(c), "updated": true, "user": user})
}

// DeleteUser soft-deletes a user account
// @Summary Delete user
// @Description Delete a user account. Users may only delete their own account.
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} map[string]interface{} "Successfully deleted user"
// @Failure 403 {object} ErrorResponse "Not the account owner"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /v1/users/{username} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	username := c.Param("username")
	actor, _ := auth.GetUsername(c)
	if actor != username {
		fail(c, apperrors.NewAuthorizationError(actor, username), "deleted")
		return
	}

	if err := h.service.Delete(username, actor); err != nil {
		fail(c, err, "deleted")
		return
	}

	c.JSON(http.StatusOK, gin.H{"self": self(c), "deleted": true})
}

// GetUserStatistics compiles a user's exercise statistics
// @Summary Get user statistics
// @Description Compile mileage and feel statistics across all-time, year, month, and week windows
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} service.StatsResponse "Successfully compiled statistics"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /v1/users/{username}/statistics [get]
func (h *UserHandler) GetUserStatistics(c *gin.Context) {
	username := c.Param("username")

	stats, err := h.statsService.CompileUserStats(username)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetUserLogs retrieves a user's exercise logs
// @Summary Get a user's exercise logs
// @Description Get a user's exercise logs, newest first, with pagination
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(25)
// @Success 200 {object} service.LogListResponse "Successfully retrieved logs"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /v1/users/{username}/logs [get]
func (h *UserHandler) GetUserLogs(c *gin.Context) {
	username := c.Param("username")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "25"))

	logs, err := h.logService.GetByUsername(username, page, pageSize)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}

// GetUserMemberships retrieves a user's team and group memberships
// @Summary Get user memberships
// @Description Get a user's team memberships with nested group memberships
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} service.MembershipsResponse "Successfully retrieved memberships"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /v1/users/{username}/memberships [get]
func (h *UserHandler) GetUserMemberships(c *gin.Context) {
	username := c.Param("username")

	memberships, err := h.membershipService.GetUserMemberships(username)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, memberships)
}

// UpdateUserMemberships applies a batch of membership joins and leaves
// @Summary Update user memberships
// @Description Apply a batch of team and group joins and leaves atomically. Users may only update their own memberships.
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param memberships body service.UpdateMembershipsRequest true "Membership changes"
// @Success 200 {object} service.MembershipsResponse "Successfully updated memberships"
// @Failure 400 {object} ErrorResponse "Invalid request or failed transition"
// @Failure 403 {object} ErrorResponse "Not the membership owner"
// @Security BearerAuth
// @Router /v1/users/{username}/memberships [put]
func (h *UserHandler) UpdateUserMemberships(c *gin.Context) {
	username := c.Param("username")
	actor, _ := auth.GetUsername(c)
	if actor != username {
		fail(c, apperrors.NewAuthorizationError(actor, username), "updated")
		return
	}

	var req service.UpdateMembershipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "updated": false, "error": err.Error()})
		return
	}

	memberships, err := h.membershipService.UpdateUserMemberships(username, &req)
	if err != nil {
		fail(c, err, "updated")
		return
	}

	c.JSON(http.StatusOK, gin.H{"self": self(c), "updated": true, "memberships": memberships})
}

// UpdateWeekStart changes a user's week-start preference
// @Summary Update week start
// @Description Change the day a user's weekly statistics window begins on
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param body body object true "Week start (monday or sunday)"
// @Success 200 {object} service.UserResponse "Successfully updated week start"
// @Failure 400 {object} ErrorResponse "Invalid week start"
// @Failure 403 {object} ErrorResponse "Not the profile owner"
// @Security BearerAuth
// @Router /v1/users/{username}/week-start [put]
func (h *UserHandler) UpdateWeekStart(c *gin.Context) {
	username := c.Param("username")
	actor, _ := auth.GetUsername(c)
	if actor != username {
		fail(c, apperrors.NewAuthorizationError(actor, username), "updated")
		return
	}

	var req struct {
		WeekStart models.WeekStart `json:"week_start" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "updated": false, "error": err.Error()})
		return
	}

	user, err := h.service.UpdateWeekStart(username, req.WeekStart, actor)
	if err != nil {
		fail(c, err, "updated")
		return
	}

	c.JSON(http.StatusOK, gin.H{"self": self(c), "updated": true, "user": user})
}

// GetUserFlair retrieves a user's profile flair
// @Summary Get user flair
// @Description Get the flair entries shown on a user's profile
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} service.FlairResponse "Successfully retrieved flair"
// @Security BearerAuth
// @Router /v1/users/{username}/flair [get]
func (h *UserHandler) GetUserFlair(c *gin.Context) {
	username := c.Param("username")

	flair, err := h.flairService.GetByUsername(username)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, flair)
}

// GetUserNotifications retrieves a user's recent notifications
// @Summary Get user notifications
// @Description Get a user's notifications from the past two weeks, newest first. Users may only read their own notifications.
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} service.NotificationResponse "Successfully retrieved notifications"
// @Failure 403 {object} ErrorResponse "Not the notification owner"
// @Security BearerAuth
// @Router /v1/users/{username}/notifications [get]
func (h *UserHandler) GetUserNotifications(c *gin.Context) {
	username := c.Param("username")
	actor, _ := auth.GetUsername(c)
	if actor != username {
		fail(c, apperrors.NewAuthorizationError(actor, username), "retrieved")
		return
	}

	notifications, err := h.notifService.GetByUsername(username)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// ChangePassword replaces a user's password
// @Summary Change password
// @Description Replace a user's password. Users may only change their own password.
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param body body object true "New password"
// @Success 200 {object} map[string]interface{} "Successfully changed password"
// @Failure 400 {object} ErrorResponse "Password too short"
// @Failure 403 {object} ErrorResponse "Not the account owner"
// @Security BearerAuth
// @Router /v1/users/{username}/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	username := c.Param("username")
	actor, _ := auth.GetUsername(c)
	if actor != username {
		fail(c, apperrors.NewAuthorizationError(actor, username), "updated")
		return
	}

	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "updated": false, "error": err.Error()})
		return
	}

	if err := h.service.ChangePassword(username, req.Password, actor); err != nil {
		fail(c, err, "updated")
		return
	}

	c.JSON(http.StatusOK, gin.H{"self": self(c), "updated": true})
}
