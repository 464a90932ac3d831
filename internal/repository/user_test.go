//go:build integration
// +build integration

package repository

import (
	"testing"

	"fitness-community-backend/internal/database/models"
	"fitness-community-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByUsername tests creating and retrieving a user
func (suite *UserRepositoryTestSuite) TestCreateAndGetByUsername() {
	user := suite.factories.User.Create()
	user.StampCreate(user.Username)

	err := suite.repo.Create(user)
	suite.NoError(err)
	suite.NotEqual("", user.ID.String())

	found, err := suite.repo.GetByUsername(user.Username)
	suite.NoError(err)
	suite.Equal(user.Email, found.Email)
	suite.Equal(models.WeekStartMonday, found.WeekStart)
}

// TestCreateDuplicateUsername tests the unique constraint on username
func (suite *UserRepositoryTestSuite) TestCreateDuplicateUsername() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	duplicate := suite.factories.User.WithUsername(user.Username)
	err := suite.repo.Create(duplicate)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByUsernameNotFound tests retrieving a missing user
func (suite *UserRepositoryTestSuite) TestGetByUsernameNotFound() {
	_, err := suite.repo.GetByUsername("ghost")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByEmail tests looking a user up by email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail(user.Email)
	suite.NoError(err)
	suite.Equal(user.Username, found.Username)
}

// TestUpdate tests persisting field changes
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	user.Location = "Boston"
	user.WeekStart = models.WeekStartSunday
	user.StampUpdate(user.Username)
	suite.NoError(suite.repo.Update(user))

	found, err := suite.repo.GetByUsername(user.Username)
	suite.NoError(err)
	suite.Equal("Boston", found.Location)
	suite.Equal(models.WeekStartSunday, found.WeekStart)
}

// TestDelete tests that deleted users disappear from lookups
func (suite *UserRepositoryTestSuite) TestDelete() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	err := suite.repo.Delete(user.Username, user.Username)
	suite.NoError(err)

	_, err = suite.repo.GetByUsername(user.Username)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	exists, err := suite.repo.Exists(user.Username)
	suite.NoError(err)
	suite.False(exists)
}

// TestExists tests the existence check
func (suite *UserRepositoryTestSuite) TestExists() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	exists, err := suite.repo.Exists(user.Username)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists("ghost")
	suite.NoError(err)
	suite.False(exists)
}

// Run the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
