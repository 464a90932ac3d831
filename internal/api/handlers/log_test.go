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
	"fitness-community-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LogHandlerTestSuite tests the LogHandler
type LogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	ctrl         *gomock.Controller
	mockService  *mocks.MockLogServiceInterface
	mockComments *mocks.MockCommentServiceInterface
	handler      *LogHandler
}

// SetupSuite sets up the test suite
func (suite *LogHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *LogHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockLogServiceInterface(suite.ctrl)
	suite.mockComments = mocks.NewMockCommentServiceInterface(suite.ctrl)
	suite.handler = NewLogHandler(suite.mockService, suite.mockComments)

	suite.router = gin.New()

	v1 := suite.router.Group("/v1")
	v1.Use(func(c *gin.Context) {
		c.Set("username", "mcurie")
		c.Next()
	})
	{
		logs := v1.Group("/logs")
		{
			logs.POST("", suite.handler.CreateLog)
			logs.GET("", suite.handler.GetLogs)
			logs.GET("/:id", suite.handler.GetLog)
			logs.PUT("/:id", suite.handler.UpdateLog)
			logs.DELETE("/:id", suite.handler.DeleteLog)
			logs.GET("/:id/comments", suite.handler.GetLogComments)
		}
	}
}

// TearDownTest cleans up after each test
func (suite *LogHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateLog tests recording an exercise log
func (suite *LogHandlerTestSuite) TestCreateLog() {
	logID := uuid.New()

	request := service.CreateLogRequest{
		Name:     "Morning Run",
		Date:     "2025-04-12",
		Type:     models.ExerciseTypeRun,
		Distance: 5,
		Metric:   models.MetricMiles,
		Time:     "00:40:00",
		Feel:     6,
	}

	expectedResponse := &service.LogResponse{
		ID:       logID,
		Username: "mcurie",
		Name:     "Morning Run",
		Date:     "2025-04-12",
		Type:     models.ExerciseTypeRun,
		Distance: 5,
		Metric:   models.MetricMiles,
		Miles:    5,
		Time:     "00:40:00",
		Pace:     "00:08:00",
		Feel:     6,
	}

	suite.mockService.EXPECT().
		Create("mcurie", gomock.Any()).
		Return(expectedResponse, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/v1/logs", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), true, response["added"])

	log := response["log"].(map[string]interface{})
	assert.Equal(suite.T(), "00:08:00", log["pace"])
	assert.Equal(suite.T(), 5.0, log["miles"])
}

// TestCreateLogInvalidFeel tests the feel bounds
func (suite *LogHandlerTestSuite) TestCreateLogInvalidFeel() {
	suite.mockService.EXPECT().
		Create("mcurie", gomock.Any()).
		Return(nil, apperrors.ErrInvalidFeel)

	body, _ := json.Marshal(service.CreateLogRequest{
		Name: "Morning Run",
		Date: "2025-04-12",
		Type: models.ExerciseTypeRun,
		Feel: 11,
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/logs", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetLog tests retrieving a log by ID
func (suite *LogHandlerTestSuite) TestGetLog() {
	logID := uuid.New()

	expectedResponse := &service.LogResponse{
		ID:       logID,
		Username: "mcurie",
		Name:     "Track Workout",
	}

	suite.mockService.EXPECT().
		GetByID(logID).
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/logs/"+logID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.LogResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), logID, response.ID)
	assert.Equal(suite.T(), "Track Workout", response.Name)
}

// TestGetLogNotFound tests retrieving a missing log
func (suite *LogHandlerTestSuite) TestGetLogNotFound() {
	logID := uuid.New()

	suite.mockService.EXPECT().
		GetByID(logID).
		Return(nil, apperrors.ErrLogNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/logs/"+logID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestGetLogInvalidUUID tests a malformed log ID
func (suite *LogHandlerTestSuite) TestGetLogInvalidUUID() {
	req := httptest.NewRequest(http.MethodGet, "/v1/logs/not-a-uuid", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestUpdateLogNotOwner tests updating another user's log
func (suite *LogHandlerTestSuite) TestUpdateLogNotOwner() {
	logID := uuid.New()

	suite.mockService.EXPECT().
		Update(logID, gomock.Any(), "mcurie").
		Return(nil, apperrors.NewAuthorizationError("mcurie", "someoneelse"))

	body, _ := json.Marshal(service.UpdateLogRequest{
		Name: "Morning Run",
		Date: "2025-04-12",
		Type: models.ExerciseTypeRun,
		Feel: 6,
	})
	req := httptest.NewRequest(http.MethodPut, "/v1/logs/"+logID.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestDeleteLog tests deleting a log
func (suite *LogHandlerTestSuite) TestDeleteLog() {
	logID := uuid.New()

	suite.mockService.EXPECT().
		Delete(logID, "mcurie").
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/logs/"+logID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), true, response["deleted"])
}

// TestGetLogComments tests listing a log's comments
func (suite *LogHandlerTestSuite) TestGetLogComments() {
	logID := uuid.New()

	expectedComments := []service.CommentResponse{
		{ID: uuid.New(), Username: "pdirac", LogID: logID, Content: "Nice pace!"},
	}

	suite.mockComments.EXPECT().
		GetByLog(logID).
		Return(expectedComments, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/logs/"+logID.String()+"/comments", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []service.CommentResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, len(response))
	assert.Equal(suite.T(), "Nice pace!", response[0].Content)
}

// Run the test suite
func TestLogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LogHandlerTestSuite))
}
