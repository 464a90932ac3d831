//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"fitness-community-backend/internal/database/models"
	"fitness-community-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LogRepositoryTestSuite tests the LogRepository
type LogRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LogRepository
	userRepo      *UserRepository
	groupRepo     *GroupRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *LogRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewLogRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.groupRepo = NewGroupRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *LogRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LogRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *LogRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *LogRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))
	return user
}

// addGroupMember inserts an accepted membership directly
func (suite *LogRepositoryTestSuite) addGroupMember(group *models.Group, username string, status models.MembershipStatus) {
	member := &models.GroupMember{
		Username: username,
		GroupID:  group.ID,
		Status:   status,
		UserRole: models.MembershipRoleUser,
	}
	suite.NoError(suite.baseTestSuite.DB.Create(member).Error)
}

// TestCreateAndGetByID tests creating and retrieving a log
func (suite *LogRepositoryTestSuite) TestCreateAndGetByID() {
	user := suite.createUser()
	log := suite.factories.Log.Create(user.Username)
	log.StampCreate(user.Username)

	err := suite.repo.Create(log)
	suite.NoError(err)
	suite.NotEqual("", log.ID.String())

	found, err := suite.repo.GetByID(log.ID)
	suite.NoError(err)
	suite.Equal(log.Name, found.Name)
	suite.Equal(models.ExerciseTypeRun, found.Type)
	suite.Equal(5.0, found.Miles)
}

// TestGetByIDNotFound tests retrieving a log that does not exist
func (suite *LogRepositoryTestSuite) TestGetByIDNotFound() {
	log := suite.factories.Log.Create("nobody")
	_, err := suite.repo.GetByID(log.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByUsername tests listing logs newest first with pagination
func (suite *LogRepositoryTestSuite) TestGetByUsername() {
	user := suite.createUser()
	older := suite.factories.Log.OnDate(user.Username, time.Now().AddDate(0, 0, -7))
	newer := suite.factories.Log.OnDate(user.Username, time.Now())
	suite.NoError(suite.repo.Create(older))
	suite.NoError(suite.repo.Create(newer))

	logs, total, err := suite.repo.GetByUsername(user.Username, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(logs, 2)
	suite.Equal(newer.ID, logs[0].ID)
	suite.Equal(older.ID, logs[1].ID)

	// Second page
	logs, total, err = suite.repo.GetByUsername(user.Username, 1, 1)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(logs, 1)
	suite.Equal(older.ID, logs[0].ID)
}

// TestDelete tests that deleted logs disappear from queries
func (suite *LogRepositoryTestSuite) TestDelete() {
	user := suite.createUser()
	log := suite.factories.Log.Create(user.Username)
	suite.NoError(suite.repo.Create(log))

	err := suite.repo.Delete(log.ID, user.Username)
	suite.NoError(err)

	_, err = suite.repo.GetByID(log.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestMileageSum tests the mileage rollup with type and date filters
func (suite *LogRepositoryTestSuite) TestMileageSum() {
	user := suite.createUser()

	run := suite.factories.Log.WithMiles(user.Username, 3.0)
	suite.NoError(suite.repo.Create(run))

	bikeRide := suite.factories.Log.WithMiles(user.Username, 10.0)
	bikeRide.Type = models.ExerciseTypeBike
	suite.NoError(suite.repo.Create(bikeRide))

	oldRun := suite.factories.Log.OnDate(user.Username, time.Now().AddDate(-1, 0, 0))
	oldRun.Miles = 2.0
	suite.NoError(suite.repo.Create(oldRun))

	total, err := suite.repo.MileageSum(user.Username, nil, nil)
	suite.NoError(err)
	suite.Equal(15.0, total)

	runType := models.ExerciseTypeRun
	runTotal, err := suite.repo.MileageSum(user.Username, &runType, nil)
	suite.NoError(err)
	suite.Equal(5.0, runTotal)

	since := time.Now().AddDate(0, -1, 0)
	recentTotal, err := suite.repo.MileageSum(user.Username, nil, &since)
	suite.NoError(err)
	suite.Equal(13.0, recentTotal)
}

// TestMileageSumNoLogs tests that an empty window sums to zero
func (suite *LogRepositoryTestSuite) TestMileageSumNoLogs() {
	user := suite.createUser()

	total, err := suite.repo.MileageSum(user.Username, nil, nil)
	suite.NoError(err)
	suite.Equal(0.0, total)
}

// TestFeelAverage tests the feel rollup
func (suite *LogRepositoryTestSuite) TestFeelAverage() {
	user := suite.createUser()

	first := suite.factories.Log.Create(user.Username)
	first.Feel = 4
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Log.Create(user.Username)
	second.Feel = 8
	suite.NoError(suite.repo.Create(second))

	avg, err := suite.repo.FeelAverage(user.Username, nil)
	suite.NoError(err)
	suite.Equal(6.0, avg)
}

// TestGroupMileageSum tests that group rollups only count accepted
// live members.
func (suite *LogRepositoryTestSuite) TestGroupMileageSum() {
	group := suite.factories.Group.Create()
	suite.NoError(suite.groupRepo.Create(group))

	accepted := suite.createUser()
	pending := suite.createUser()
	outsider := suite.createUser()
	suite.addGroupMember(group, accepted.Username, models.MembershipStatusAccepted)
	suite.addGroupMember(group, pending.Username, models.MembershipStatusPending)

	suite.NoError(suite.repo.Create(suite.factories.Log.WithMiles(accepted.Username, 6.0)))
	suite.NoError(suite.repo.Create(suite.factories.Log.WithMiles(pending.Username, 4.0)))
	suite.NoError(suite.repo.Create(suite.factories.Log.WithMiles(outsider.Username, 9.0)))

	total, err := suite.repo.GroupMileageSum(group.ID, nil, nil)
	suite.NoError(err)
	suite.Equal(6.0, total)
}

// TestGroupFeelAverage tests the group feel rollup
func (suite *LogRepositoryTestSuite) TestGroupFeelAverage() {
	group := suite.factories.Group.Create()
	suite.NoError(suite.groupRepo.Create(group))

	member := suite.createUser()
	suite.addGroupMember(group, member.Username, models.MembershipStatusAccepted)

	log := suite.factories.Log.Create(member.Username)
	log.Feel = 9
	suite.NoError(suite.repo.Create(log))

	avg, err := suite.repo.GroupFeelAverage(group.ID, nil)
	suite.NoError(err)
	suite.Equal(9.0, avg)
}

// TestLeaderboard tests ranking by total miles, most first
func (suite *LogRepositoryTestSuite) TestLeaderboard() {
	group := suite.factories.Group.Create()
	suite.NoError(suite.groupRepo.Create(group))

	leader := suite.createUser()
	runnerUp := suite.createUser()
	suite.addGroupMember(group, leader.Username, models.MembershipStatusAccepted)
	suite.addGroupMember(group, runnerUp.Username, models.MembershipStatusAccepted)

	suite.NoError(suite.repo.Create(suite.factories.Log.WithMiles(leader.Username, 12.0)))
	bikeRide := suite.factories.Log.WithMiles(leader.Username, 8.0)
	bikeRide.Type = models.ExerciseTypeBike
	suite.NoError(suite.repo.Create(bikeRide))
	suite.NoError(suite.repo.Create(suite.factories.Log.WithMiles(runnerUp.Username, 5.0)))

	entries, err := suite.repo.Leaderboard(group.ID, nil)
	suite.NoError(err)
	suite.Len(entries, 2)
	suite.Equal(leader.Username, entries[0].Username)
	suite.Equal(20.0, entries[0].Miles)
	suite.Equal(12.0, entries[0].RunMiles)
	suite.Equal(runnerUp.Username, entries[1].Username)
	suite.Equal(5.0, entries[1].Miles)
}

// TestLeaderboardEmptyGroup tests a group with no accepted members
func (suite *LogRepositoryTestSuite) TestLeaderboardEmptyGroup() {
	group := suite.factories.Group.Create()
	suite.NoError(suite.groupRepo.Create(group))

	entries, err := suite.repo.Leaderboard(group.ID, nil)
	suite.NoError(err)
	suite.Len(entries, 0)
}

// Run the test suite
func TestLogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LogRepositoryTestSuite))
}
