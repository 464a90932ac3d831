package service

import (
	"testing"

	"fitness-community-backend/internal/database/models"
	apperrors "fitness-community-backend/internal/errors"
	"fitness-community-backend/internal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// LogServiceTestSuite tests the LogService
type LogServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockLogRepositoryInterface
	mockUserRepo *mocks.MockUserRepositoryInterface
	service      *LogService
}

// SetupTest sets up each individual test
func (suite *LogServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockLogRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.service = NewLogService(suite.mockRepo, suite.mockUserRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *LogServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validCreateLogRequest() *CreateLogRequest {
	return &CreateLogRequest{
		Name:     "Morning Run",
		Date:     "2025-04-12",
		Type:     models.ExerciseTypeRun,
		Distance: 5,
		Metric:   models.MetricMiles,
		Time:     "00:40:00",
		Feel:     6,
	}
}

// TestCreate tests recording a log with derived mileage and pace
func (suite *LogServiceTestSuite) TestCreate() {
	suite.mockUserRepo.EXPECT().Exists("mcurie").Return(true, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	response, err := suite.service.Create("mcurie", validCreateLogRequest())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "mcurie", response.Username)
	assert.Equal(suite.T(), 5.0, response.Miles)
	assert.Equal(suite.T(), "00:08:00", response.Pace)
}

// TestCreateKilometers tests the kilometer-to-mile conversion
func (suite *LogServiceTestSuite) TestCreateKilometers() {
	suite.mockUserRepo.EXPECT().Exists("mcurie").Return(true, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	req := validCreateLogRequest()
	req.Distance = 10
	req.Metric = models.MetricKilometers
	req.Time = ""

	response, err := suite.service.Create("mcurie", req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 6.21, response.Miles)
	assert.Equal(suite.T(), "", response.Pace)
}

// TestCreateDefaultMetric tests that a missing metric defaults to miles
func (suite *LogServiceTestSuite) TestCreateDefaultMetric() {
	suite.mockUserRepo.EXPECT().Exists("mcurie").Return(true, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	req := validCreateLogRequest()
	req.Metric = ""

	response, err := suite.service.Create("mcurie", req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MetricMiles, response.Metric)
	assert.Equal(suite.T(), 5.0, response.Miles)
}

// TestCreateInvalidType tests an unrecognized exercise type
func (suite *LogServiceTestSuite) TestCreateInvalidType() {
	req := validCreateLogRequest()
	req.Type = "skydiving"

	_, err := suite.service.Create("mcurie", req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidExerciseType)
}

// TestCreateInvalidFeel tests the feel bounds
func (suite *LogServiceTestSuite) TestCreateInvalidFeel() {
	for _, feel := range []int{-1, 11, 100} {
		req := validCreateLogRequest()
		req.Feel = feel

		_, err := suite.service.Create("mcurie", req)

		assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidFeel)
	}
}

// TestCreateInvalidDate tests a malformed date
func (suite *LogServiceTestSuite) TestCreateInvalidDate() {
	req := validCreateLogRequest()
	req.Date = "04/12/2025"

	_, err := suite.service.Create("mcurie", req)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateInvalidDuration tests a malformed time string
func (suite *LogServiceTestSuite) TestCreateInvalidDuration() {
	req := validCreateLogRequest()
	req.Time = "00:99:00"

	_, err := suite.service.Create("mcurie", req)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateUnknownUser tests logging for a nonexistent user
func (suite *LogServiceTestSuite) TestCreateUnknownUser() {
	suite.mockUserRepo.EXPECT().Exists("ghost").Return(false, nil)

	_, err := suite.service.Create("ghost", validCreateLogRequest())

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestGetByIDNotFound tests retrieving a missing log
func (suite *LogServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByID(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrLogNotFound)
}

// TestUpdateNotOwner tests updating a log owned by someone else
func (suite *LogServiceTestSuite) TestUpdateNotOwner() {
	id := uuid.New()
	existing := &models.ExerciseLog{Username: "pdirac"}
	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)

	req := &UpdateLogRequest{
		Name:     "Morning Run",
		Date:     "2025-04-12",
		Type:     models.ExerciseTypeRun,
		Distance: 5,
		Feel:     6,
	}
	_, err := suite.service.Update(id, req, "mcurie")

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestDeleteNotOwner tests deleting a log owned by someone else
func (suite *LogServiceTestSuite) TestDeleteNotOwner() {
	id := uuid.New()
	existing := &models.ExerciseLog{Username: "pdirac"}
	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)

	err := suite.service.Delete(id, "mcurie")

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestGetByUsernameNormalizesPagination tests the pagination clamps
func (suite *LogServiceTestSuite) TestGetByUsernameNormalizesPagination() {
	suite.mockUserRepo.EXPECT().Exists("mcurie").Return(true, nil)
	suite.mockRepo.EXPECT().GetByUsername("mcurie", 25, 0).Return(nil, int64(0), nil)

	response, err := suite.service.GetByUsername("mcurie", -3, 5000)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.Page)
	assert.Equal(suite.T(), 25, response.PageSize)
}

// Run the test suite
func TestLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LogServiceTestSuite))
}

func TestToMiles(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		metric   models.Metric
		expected float64
	}{
		{"miles pass through", 5, models.MetricMiles, 5},
		{"kilometers convert", 10, models.MetricKilometers, 6.21},
		{"meters convert", 1600, models.MetricMeters, 0.99},
		{"zero distance", 0, models.MetricKilometers, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toMiles(tt.distance, tt.metric))
		})
	}
}

func TestComputePace(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		miles    float64
		expected string
	}{
		{"even pace", "00:40:00", 5, "00:08:00"},
		{"rounded pace", "00:41:00", 5, "00:08:12"},
		{"over an hour per mile", "03:00:00", 2, "01:30:00"},
		{"no duration", "", 5, ""},
		{"no mileage", "00:40:00", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, computePace(tt.duration, tt.miles))
		})
	}
}

func TestParseDuration(t *testing.T) {
	total, err := parseDuration("01:02:03")
	assert.NoError(t, err)
	assert.Equal(t, 3723, total)

	for _, bad := range []string{"1:2", "aa:bb:cc", "00:60:00", "00:00:60"} {
		_, err := parseDuration(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}
