package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitness-community-backend/internal/database/models"
	apperrors "fitness-community-backend/internal/errors"
	mocks "fitness-community-backend/internal/mocks/servicemocks"
	"fitness-community-backend/internal/repository"
	"fitness-community-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GroupHandlerTestSuite tests the GroupHandler
type GroupHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	ctrl         *gomock.Controller
	mockService  *mocks.MockGroupServiceInterface
	mockStats    *mocks.MockStatsServiceInterface
	mockMessages *mocks.MockMessageServiceInterface
	handler      *GroupHandler
}

// SetupSuite sets up the test suite
func (suite *GroupHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *GroupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGroupServiceInterface(suite.ctrl)
	suite.mockStats = mocks.NewMockStatsServiceInterface(suite.ctrl)
	suite.mockMessages = mocks.NewMockMessageServiceInterface(suite.ctrl)
	suite.handler = NewGroupHandler(suite.mockService, suite.mockStats, suite.mockMessages)

	suite.router = gin.New()

	v1 := suite.router.Group("/v1")
	v1.Use(func(c *gin.Context) {
		c.Set("username", "mcurie")
		c.Next()
	})
	{
		groups := v1.Group("/groups")
		{
			groups.GET("", suite.handler.GetGroups)
			groups.POST("", suite.handler.CreateGroup)
			groups.GET("/:name", suite.handler.GetGroup)
			groups.PUT("/:name", suite.handler.UpdateGroup)
			groups.GET("/:name/members", suite.handler.GetGroupMembers)
			groups.GET("/:name/statistics", suite.handler.GetGroupStatistics)
			groups.GET("/:name/leaderboard", suite.handler.GetGroupLeaderboard)
			groups.GET("/:name/messages", suite.handler.GetGroupMessages)
		}
	}
}

// TearDownTest cleans up after each test
func (suite *GroupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateGroup tests creating a new group
func (suite *GroupHandlerTestSuite) TestCreateGroup() {
	request := service.CreateGroupRequest{
		GroupName:  "distance",
		GroupTitle: "Distance Squad",
	}

	expectedResponse := &service.GroupResponse{
		GroupName:  "distance",
		GroupTitle: "Distance Squad",
		WeekStart:  models.WeekStartMonday,
	}

	suite.mockService.EXPECT().
		Create(gomock.Any(), "mcurie").
		Return(expectedResponse, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/v1/groups", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), true, response["added"])

	group := response["group"].(map[string]interface{})
	assert.Equal(suite.T(), "distance", group["group_name"])
	assert.Equal(suite.T(), "monday", group["week_start"])
}

// TestCreateGroupDuplicateName tests creating a group with a taken name
func (suite *GroupHandlerTestSuite) TestCreateGroupDuplicateName() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), "mcurie").
		Return(nil, apperrors.ErrGroupExists)

	body, _ := json.Marshal(service.CreateGroupRequest{GroupName: "distance", GroupTitle: "Distance Squad"})
	req := httptest.NewRequest(http.MethodPost, "/v1/groups", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestGetGroups tests listing groups with pagination
func (suite *GroupHandlerTestSuite) TestGetGroups() {
	expectedResponse := &service.GroupListResponse{
		Groups: []service.GroupResponse{
			{GroupName: "distance", GroupTitle: "Distance Squad"},
			{GroupName: "sprints", GroupTitle: "Sprint Squad"},
		},
		Total:    2,
		Page:     1,
		PageSize: 25,
	}

	suite.mockService.EXPECT().
		GetAll(1, 25).
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/groups", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.GroupListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Groups, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
}

// TestGetGroup tests retrieving a group by name
func (suite *GroupHandlerTestSuite) TestGetGroup() {
	expectedResponse := &service.GroupResponse{
		GroupName:  "distance",
		GroupTitle: "Distance Squad",
		WeekStart:  models.WeekStartSunday,
	}

	suite.mockService.EXPECT().
		GetByName("distance").
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/groups/distance", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.GroupResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "distance", response.GroupName)
	assert.Equal(suite.T(), models.WeekStartSunday, response.WeekStart)
}

// TestGetGroupNotFound tests retrieving a missing group
func (suite *GroupHandlerTestSuite) TestGetGroupNotFound() {
	suite.mockService.EXPECT().
		GetByName("no-such-group").
		Return(nil, apperrors.ErrGroupNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/groups/no-such-group", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestUpdateGroup tests updating a group
func (suite *GroupHandlerTestSuite) TestUpdateGroup() {
	request := service.UpdateGroupRequest{
		GroupTitle: "Distance Crew",
		WeekStart:  models.WeekStartSunday,
	}

	expectedResponse := &service.GroupResponse{
		GroupName:  "distance",
		GroupTitle: "Distance Crew",
		WeekStart:  models.WeekStartSunday,
	}

	suite.mockService.EXPECT().
		Update("distance", gomock.Any(), "mcurie").
		Return(expectedResponse, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPut, "/v1/groups/distance", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), true, response["updated"])
}

// TestGetGroupMembers tests listing a group's members
func (suite *GroupHandlerTestSuite) TestGetGroupMembers() {
	expectedMembers := []service.GroupMemberResponse{
		{
			Username:  "mcurie",
			FirstName: "Marie",
			LastName:  "Curie",
			Status:    models.MembershipStatusAccepted,
			UserRole:  models.MembershipRoleAdmin,
		},
		{
			Username:  "pdirac",
			FirstName: "Paul",
			LastName:  "Dirac",
			Status:    models.MembershipStatusAccepted,
			UserRole:  models.MembershipRoleUser,
		},
	}

	suite.mockService.EXPECT().
		GetMembers("distance").
		Return(expectedMembers, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/groups/distance/members", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []service.GroupMemberResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, len(response))
	assert.Equal(suite.T(), models.MembershipRoleAdmin, response[0].UserRole)
}

// TestGetGroupStatistics tests compiling a group's statistics
func (suite *GroupHandlerTestSuite) TestGetGroupStatistics() {
	expectedResponse := &service.StatsResponse{
		MilesAllTime:  540,
		MilesPastWeek: 42.5,
	}

	suite.mockStats.EXPECT().
		CompileGroupStats("distance").
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/groups/distance/statistics", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 540.0, response.MilesAllTime)
}

// TestGetGroupLeaderboard tests compiling a group's leaderboard
func (suite *GroupHandlerTestSuite) TestGetGroupLeaderboard() {
	expectedResponse := &service.LeaderboardResponse{
		GroupName: "distance",
		Interval:  "week",
		Ranks: []repository.LeaderboardEntry{
			{Username: "mcurie", Miles: 42.5},
			{Username: "pdirac", Miles: 30},
		},
	}

	suite.mockStats.EXPECT().
		CompileLeaderboard("distance", "week").
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/groups/distance/leaderboard?interval=week", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.LeaderboardResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, len(response.Ranks))
	assert.Equal(suite.T(), "mcurie", response.Ranks[0].Username)
}

// TestGetGroupMessages tests the group message feed
func (suite *GroupHandlerTestSuite) TestGetGroupMessages() {
	expectedResponse := &service.MessageListResponse{
		Messages: []service.MessageResponse{
			{Username: "mcurie", GroupName: "distance", Content: "Long run Saturday?"},
		},
		Total:    1,
		Page:     1,
		PageSize: 25,
	}

	suite.mockMessages.EXPECT().
		GetByGroup("distance", 1, 25).
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/groups/distance/messages", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.MessageListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, len(response.Messages))
}

// Run the test suite
func TestGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GroupHandlerTestSuite))
}
