package service

import (
	"testing"
	"time"

	"fitness-community-backend/internal/database/models"
	apperrors "fitness-community-backend/internal/errors"
	"fitness-community-backend/internal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserServiceTestSuite tests the UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *mocks.MockUserRepositoryInterface
	codeRepo *mocks.MockCodeRepositoryInterface
	service  *UserService
}

// SetupTest runs before each test
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.codeRepo = mocks.NewMockCodeRepositoryInterface(suite.ctrl)
	suite.service = NewUserService(suite.repo, suite.codeRepo, validator.New())
}

// TearDownTest runs after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validCreateUserRequest() *CreateUserRequest {
	return &CreateUserRequest{
		Username:       "mcurie",
		FirstName:      "Marie",
		LastName:       "Curie",
		Email:          "mcurie@example.com",
		Password:       "radium1898",
		ActivationCode: "AB12CD34",
	}
}

// TestCreate tests registering a new user with a valid activation code
func (suite *UserServiceTestSuite) TestCreate() {
	req := validCreateUserRequest()

	suite.repo.EXPECT().GetByUsername("mcurie").Return(nil, gorm.ErrRecordNotFound)
	suite.codeRepo.EXPECT().GetActivationCode("AB12CD34").Return(&models.ActivationCode{
		ActivationCode: "AB12CD34",
		Expiration:     time.Now().Add(24 * time.Hour),
	}, nil)

	var created *models.User
	suite.repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		created = u
		return nil
	})
	suite.codeRepo.EXPECT().DeleteActivationCode("AB12CD34", "mcurie").Return(nil)

	resp, err := suite.service.Create(req)
	suite.NoError(err)
	suite.Equal("mcurie", resp.Username)
	suite.Equal(models.WeekStartMonday, resp.WeekStart)
	suite.True(resp.Activated)

	// The stored password is a bcrypt hash, never the plaintext
	suite.NotEqual("radium1898", created.Password)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("radium1898")))
}

// TestCreateDuplicateUsername tests registering a taken username
func (suite *UserServiceTestSuite) TestCreateDuplicateUsername() {
	req := validCreateUserRequest()

	suite.repo.EXPECT().GetByUsername("mcurie").Return(&models.User{Username: "mcurie"}, nil)

	_, err := suite.service.Create(req)
	suite.ErrorIs(err, apperrors.ErrUserExists)
}

// TestCreateUnknownActivationCode tests registering with a bad code
func (suite *UserServiceTestSuite) TestCreateUnknownActivationCode() {
	req := validCreateUserRequest()

	suite.repo.EXPECT().GetByUsername("mcurie").Return(nil, gorm.ErrRecordNotFound)
	suite.codeRepo.EXPECT().GetActivationCode("AB12CD34").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Create(req)
	suite.ErrorIs(err, apperrors.ErrActivationCodeNotFound)
}

// TestCreateExpiredActivationCode tests registering with a stale code
func (suite *UserServiceTestSuite) TestCreateExpiredActivationCode() {
	req := validCreateUserRequest()

	suite.repo.EXPECT().GetByUsername("mcurie").Return(nil, gorm.ErrRecordNotFound)
	suite.codeRepo.EXPECT().GetActivationCode("AB12CD34").Return(&models.ActivationCode{
		ActivationCode: "AB12CD34",
		Expiration:     time.Now().Add(-time.Hour),
	}, nil)

	_, err := suite.service.Create(req)
	suite.ErrorIs(err, apperrors.ErrActivationCodeExpired)
}

// TestCreateShortPassword tests the password length floor
func (suite *UserServiceTestSuite) TestCreateShortPassword() {
	req := validCreateUserRequest()
	req.Password = "short"

	_, err := suite.service.Create(req)
	suite.Error(err)

	var fieldErrs validator.ValidationErrors
	suite.ErrorAs(err, &fieldErrs)
}

// TestGetByUsernameNotFound tests looking up a missing user
func (suite *UserServiceTestSuite) TestGetByUsernameNotFound() {
	suite.repo.EXPECT().GetByUsername("ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByUsername("ghost")
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestUpdate tests updating profile fields
func (suite *UserServiceTestSuite) TestUpdate() {
	req := &UpdateUserRequest{
		FirstName: "Marie",
		LastName:  "Curie",
		Location:  "Paris",
	}

	suite.repo.EXPECT().GetByUsername("mcurie").Return(&models.User{
		Username:  "mcurie",
		FirstName: "M",
		LastName:  "C",
		Email:     "mcurie@example.com",
		WeekStart: models.WeekStartMonday,
	}, nil)
	suite.repo.EXPECT().Update(gomock.Any()).DoAndReturn(func(u *models.User) error {
		suite.Equal("Paris", u.Location)
		suite.Equal("mcurie@example.com", u.Email)
		suite.Equal("mcurie", u.UpdatedBy)
		return nil
	})

	resp, err := suite.service.Update("mcurie", req, "mcurie")
	suite.NoError(err)
	suite.Equal("Paris", resp.Location)
}

// TestUpdateInvalidWeekStart tests rejecting an unrecognized week-start
func (suite *UserServiceTestSuite) TestUpdateInvalidWeekStart() {
	friday := models.WeekStart("friday")
	req := &UpdateUserRequest{
		FirstName: "Marie",
		LastName:  "Curie",
		WeekStart: &friday,
	}

	_, err := suite.service.Update("mcurie", req, "mcurie")
	suite.ErrorIs(err, apperrors.ErrInvalidWeekStart)
}

// TestUpdateWeekStart tests the dedicated week-start setter
func (suite *UserServiceTestSuite) TestUpdateWeekStart() {
	suite.repo.EXPECT().GetByUsername("mcurie").Return(&models.User{
		Username:  "mcurie",
		WeekStart: models.WeekStartMonday,
	}, nil)
	suite.repo.EXPECT().Update(gomock.Any()).DoAndReturn(func(u *models.User) error {
		suite.Equal(models.WeekStartSunday, u.WeekStart)
		return nil
	})

	resp, err := suite.service.UpdateWeekStart("mcurie", models.WeekStartSunday, "mcurie")
	suite.NoError(err)
	suite.Equal(models.WeekStartSunday, resp.WeekStart)
}

// TestDeleteNotFound tests deleting a missing user
func (suite *UserServiceTestSuite) TestDeleteNotFound() {
	suite.repo.EXPECT().Exists("ghost").Return(false, nil)

	err := suite.service.Delete("ghost", "ghost")
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestChangePassword tests replacing the password hash
func (suite *UserServiceTestSuite) TestChangePassword() {
	suite.repo.EXPECT().GetByUsername("mcurie").Return(&models.User{
		Username: "mcurie",
		Password: "old-hash",
	}, nil)
	suite.repo.EXPECT().Update(gomock.Any()).DoAndReturn(func(u *models.User) error {
		suite.NoError(bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("polonium1898")))
		return nil
	})

	err := suite.service.ChangePassword("mcurie", "polonium1898", "mcurie")
	suite.NoError(err)
}

// TestChangePasswordTooShort tests the password length floor
func (suite *UserServiceTestSuite) TestChangePasswordTooShort() {
	err := suite.service.ChangePassword("mcurie", "short", "mcurie")
	suite.ErrorIs(err, apperrors.ErrPasswordTooShort)
}

// Run the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
