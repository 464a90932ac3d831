package service

import (
	"context"
	"net/http"
	"net/http/httptest"
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

// CodeServiceTestSuite tests the CodeService
type CodeServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	repo        *mocks.MockCodeRepositoryInterface
	userRepo    *mocks.MockUserRepositoryInterface
	emailServer *httptest.Server
	service     *CodeService
}

// SetupTest runs before each test
func (suite *CodeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockCodeRepositoryInterface(suite.ctrl)
	suite.userRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	suite.emailServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result": true}`))
	}))

	email := NewEmailClient(suite.emailServer.URL, 5*time.Second)
	suite.service = NewCodeService(suite.repo, suite.userRepo, email, validator.New())
}

// TearDownTest runs after each test
func (suite *CodeServiceTestSuite) TearDownTest() {
	suite.emailServer.Close()
	suite.ctrl.Finish()
}

// TestCreateActivationCode tests issuing an invite code
func (suite *CodeServiceTestSuite) TestCreateActivationCode() {
	var stored *models.ActivationCode
	suite.repo.EXPECT().CreateActivationCode(gomock.Any()).DoAndReturn(func(code *models.ActivationCode) error {
		stored = code
		return nil
	})

	resp, err := suite.service.CreateActivationCode(context.Background(), &CreateActivationCodeRequest{
		Email: "invitee@example.com",
	}, "mcurie")
	suite.NoError(err)
	suite.Len(resp.ActivationCode, 8)
	suite.Equal("invitee@example.com", resp.Email)
	suite.Equal(stored.ActivationCode, resp.ActivationCode)
	suite.Equal("mcurie", stored.CreatedBy)
	suite.True(stored.Expiration.After(time.Now()))
}

// TestCreateActivationCodeInvalidEmail tests rejecting a bad address
func (suite *CodeServiceTestSuite) TestCreateActivationCodeInvalidEmail() {
	_, err := suite.service.CreateActivationCode(context.Background(), &CreateActivationCodeRequest{
		Email: "not-an-email",
	}, "mcurie")

	var fieldErrs validator.ValidationErrors
	suite.ErrorAs(err, &fieldErrs)
}

// TestCreateActivationCodeEmailDown tests the email function failing
func (suite *CodeServiceTestSuite) TestCreateActivationCodeEmailDown() {
	suite.emailServer.Close()
	suite.repo.EXPECT().CreateActivationCode(gomock.Any()).Return(nil)

	_, err := suite.service.CreateActivationCode(context.Background(), &CreateActivationCodeRequest{
		Email: "invitee@example.com",
	}, "mcurie")
	suite.ErrorIs(err, apperrors.ErrEmailSendFailed)
}

// TestGetActivationCodeExpired tests an expired code lookup
func (suite *CodeServiceTestSuite) TestGetActivationCodeExpired() {
	suite.repo.EXPECT().GetActivationCode("AB12CD34").Return(&models.ActivationCode{
		ActivationCode: "AB12CD34",
		Expiration:     time.Now().Add(-time.Minute),
	}, nil)

	_, err := suite.service.GetActivationCode("AB12CD34")
	suite.ErrorIs(err, apperrors.ErrActivationCodeExpired)
}

// TestDeleteActivationCodeNotFound tests revoking a missing code
func (suite *CodeServiceTestSuite) TestDeleteActivationCodeNotFound() {
	suite.repo.EXPECT().GetActivationCode("ZZZZZZZZ").Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.DeleteActivationCode("ZZZZZZZZ", "mcurie")
	suite.ErrorIs(err, apperrors.ErrActivationCodeNotFound)
}

// TestRequestPasswordResetByEmail tests the lookup falling through from
// username to email.
func (suite *CodeServiceTestSuite) TestRequestPasswordResetByEmail() {
	user := &models.User{
		Username:  "mcurie",
		FirstName: "Marie",
		Email:     "mcurie@example.com",
	}
	suite.userRepo.EXPECT().GetByUsername("mcurie@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.userRepo.EXPECT().GetByEmail("mcurie@example.com").Return(user, nil)

	suite.repo.EXPECT().CreateForgotPassword(gomock.Any()).DoAndReturn(func(code *models.ForgotPassword) error {
		suite.Equal("mcurie", code.Username)
		suite.Len(code.ForgotCode, 8)
		return nil
	})

	err := suite.service.RequestPasswordReset(context.Background(), "mcurie@example.com")
	suite.NoError(err)
}

// TestRequestPasswordResetUnknownUser tests an identifier matching nothing
func (suite *CodeServiceTestSuite) TestRequestPasswordResetUnknownUser() {
	suite.userRepo.EXPECT().GetByUsername("ghost").Return(nil, gorm.ErrRecordNotFound)
	suite.userRepo.EXPECT().GetByEmail("ghost").Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.RequestPasswordReset(context.Background(), "ghost")
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestResetPassword tests redeeming a forgot-password code
func (suite *CodeServiceTestSuite) TestResetPassword() {
	suite.repo.EXPECT().GetForgotPassword("FP98XY76").Return(&models.ForgotPassword{
		ForgotCode: "FP98XY76",
		Username:   "mcurie",
		Expiration: time.Now().Add(time.Hour),
	}, nil)
	suite.userRepo.EXPECT().GetByUsername("mcurie").Return(&models.User{
		Username: "mcurie",
		Password: "old-hash",
	}, nil)
	suite.userRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(u *models.User) error {
		suite.NoError(bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("polonium1898")))
		return nil
	})
	suite.repo.EXPECT().DeleteForgotPassword("FP98XY76", "mcurie").Return(nil)

	err := suite.service.ResetPassword(&ResetPasswordRequest{
		ForgotCode: "FP98XY76",
		Password:   "polonium1898",
	})
	suite.NoError(err)
}

// TestResetPasswordExpired tests redeeming a stale code
func (suite *CodeServiceTestSuite) TestResetPasswordExpired() {
	suite.repo.EXPECT().GetForgotPassword("FP98XY76").Return(&models.ForgotPassword{
		ForgotCode: "FP98XY76",
		Username:   "mcurie",
		Expiration: time.Now().Add(-time.Minute),
	}, nil)

	err := suite.service.ResetPassword(&ResetPasswordRequest{
		ForgotCode: "FP98XY76",
		Password:   "polonium1898",
	})
	suite.ErrorIs(err, apperrors.ErrForgotPasswordExpired)
}

// TestRandomCode tests the code alphabet and length
func (suite *CodeServiceTestSuite) TestRandomCode() {
	code, err := randomCode()
	suite.NoError(err)
	suite.Len(code, 8)
	for _, c := range code {
		suite.Contains(codeAlphabet, string(c))
	}
}

// Run the test suite
func TestCodeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CodeServiceTestSuite))
}
