package handlers

import (
	"net/http"
	"strconv"

	"fitness-community-backend/internal/auth"
	"fitness-community-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for teams
type TeamHandler struct {
	service service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(service service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{service: service}
}

// CreateTeam creates a new team
// @Summary Create a new team
// @Description Create a new team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Team name already taken"
// @Security BearerAuth
// @Router /v1/teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "added": false, "error": err.Error()})
		return
	}

	actor, _ := auth.GetUsername(c)
	team, err := h.service.Create(&req, actor)
	if err != nil {
		fail(c, err, "added")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"self": self(c), "added": true, "team": team})
}

// GetTeams retrieves all teams
// @Summary List teams
// @Description Get all teams with pagination
// @Tags teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(25)
// @Success 200 {object} service.TeamListResponse "Successfully retrieved teams"
// @Security BearerAuth
// @Router /v1/teams [get]
func (h *TeamHandler) GetTeams(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "25"))

	teams, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeam retrieves a team by name
// @Summary Get team by name
// @Description Get a specific team by its name
// @Tags teams
// @Produce json
// @Param name path string true "Team name"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /v1/teams/{name} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	name := c.Param("name")

	team, err := h.service.GetByName(name)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, team)
}

// SearchTeams searches for teams by name or title
// @Summary Search teams
// @Description Find teams whose name or title matches the query
// @Tags teams
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Maximum number of results" default(10)
// @Success 200 {array} service.TeamResponse "Successfully retrieved teams"
// @Failure 400 {object} ErrorResponse "Missing query parameter"
// @Security BearerAuth
// @Router /v1/teams/search [get]
func (h *TeamHandler) SearchTeams(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "error": "q parameter is required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	teams, err := h.service.Search(query, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeamGroups retrieves the groups attached to a team
// @Summary Get team groups
// @Description Get the groups attached to a team
// @Tags teams
// @Produce json
// @Param name path string true "Team name"
// @Success 200 {array} service.GroupResponse "Successfully retrieved groups"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /v1/teams/{name}/groups [get]
func (h *TeamHandler) GetTeamGroups(c *gin.Context) {
	name := c.Param("name")

	groups, err := h.service.GetGroups(name)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, groups)
}
