package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"fitness-community-backend/internal/database/models"
	apperrors "fitness-community-backend/internal/errors"
	"fitness-community-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	codeLength    = 8
	codeAlphabet  = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	activationTTL = 14 * 24 * time.Hour
	forgotCodeTTL = 2 * time.Hour
)

// CodeService handles activation codes and the forgot-password flow
type CodeService struct {
	repo      repository.CodeRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	email     *EmailClient
	validator *validator.Validate
}

// NewCodeService creates a new code service
func NewCodeService(repo repository.CodeRepositoryInterface, userRepo repository.UserRepositoryInterface, email *EmailClient, validator *validator.Validate) *CodeService {
	return &CodeService{
		repo:      repo,
		userRepo:  userRepo,
		email:     email,
		validator: validator,
	}
}

// CreateActivationCodeRequest represents the request to issue an invite
type CreateActivationCodeRequest struct {
	Email   string     `json:"email" validate:"required,email,max=50"`
	GroupID *uuid.UUID `json:"group_id,omitempty"`
}

// ActivationCodeResponse represents an issued activation code
type ActivationCodeResponse struct {
	ActivationCode string     `json:"activation_code"`
	Email          string     `json:"email"`
	GroupID        *uuid.UUID `json:"group_id,omitempty"`
	Expiration     string     `json:"expiration"`
}

// ResetPasswordRequest represents the request to redeem a forgot-password code
type ResetPasswordRequest struct {
	ForgotCode string `json:"forgot_code" validate:"required,len=8"`
	Password   string `json:"password" validate:"required,min=8"`
}

// CreateActivationCode issues an activation code for an invited email
// address and sends the invite email.
func (s *CodeService) CreateActivationCode(ctx context.Context, req *CreateActivationCodeRequest, actor string) (*ActivationCodeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	code, err := randomCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate activation code: %w", err)
	}

	activation := &models.ActivationCode{
		ActivationCode: code,
		Email:          req.Email,
		GroupID:        req.GroupID,
		Expiration:     time.Now().Add(activationTTL),
	}
	activation.StampCreate(actor)

	if err := s.repo.CreateActivationCode(activation); err != nil {
		return nil, fmt.Errorf("failed to create activation code: %w", err)
	}

	if err := s.email.SendActivation(ctx, req.Email, code); err != nil {
		return nil, err
	}

	return &ActivationCodeResponse{
		ActivationCode: activation.ActivationCode,
		Email:          activation.Email,
		GroupID:        activation.GroupID,
		Expiration:     activation.Expiration.Format(time.RFC3339),
	}, nil
}

// GetActivationCode looks up an activation code and verifies it has not
// expired.
func (s *CodeService) GetActivationCode(code string) (*ActivationCodeResponse, error) {
	activation, err := s.repo.GetActivationCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivationCodeNotFound
		}
		return nil, fmt.Errorf("failed to get activation code: %w", err)
	}
	if activation.Expiration.Before(time.Now()) {
		return nil, apperrors.ErrActivationCodeExpired
	}

	return &ActivationCodeResponse{
		ActivationCode: activation.ActivationCode,
		Email:          activation.Email,
		GroupID:        activation.GroupID,
		Expiration:     activation.Expiration.Format(time.RFC3339),
	}, nil
}

// DeleteActivationCode revokes an activation code
func (s *CodeService) DeleteActivationCode(code, actor string) error {
	if _, err := s.repo.GetActivationCode(code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrActivationCodeNotFound
		}
		return fmt.Errorf("failed to get activation code: %w", err)
	}
	if err := s.repo.DeleteActivationCode(code, actor); err != nil {
		return fmt.Errorf("failed to delete activation code: %w", err)
	}
	return nil
}

// RequestPasswordReset issues a forgot-password code for a user and sends
// the reset email. The lookup accepts a username or an email address.
func (s *CodeService) RequestPasswordReset(ctx context.Context, identifier string) error {
	user, err := s.userRepo.GetByUsername(identifier)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = s.userRepo.GetByEmail(identifier)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	code, err := randomCode()
	if err != nil {
		return fmt.Errorf("failed to generate forgot-password code: %w", err)
	}

	forgot := &models.ForgotPassword{
		ForgotCode: code,
		Username:   user.Username,
		Expiration: time.Now().Add(forgotCodeTTL),
	}
	forgot.StampCreate(user.Username)

	if err := s.repo.CreateForgotPassword(forgot); err != nil {
		return fmt.Errorf("failed to create forgot-password code: %w", err)
	}

	return s.email.SendForgotPassword(ctx, user.Email, user.FirstName, code)
}

// ResetPassword redeems a forgot-password code and replaces the user's
// password. The code is consumed on success.
func (s *CodeService) ResetPassword(req *ResetPasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	forgot, err := s.repo.GetForgotPassword(req.ForgotCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrForgotPasswordNotFound
		}
		return fmt.Errorf("failed to get forgot-password code: %w", err)
	}
	if forgot.Expiration.Before(time.Now()) {
		return apperrors.ErrForgotPasswordExpired
	}

	user, err := s.userRepo.GetByUsername(forgot.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.Password = string(hashed)
	user.StampUpdate(user.Username)
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.repo.DeleteForgotPassword(req.ForgotCode, user.Username); err != nil {
		return fmt.Errorf("failed to consume forgot-password code: %w", err)
	}
	return nil
}

// randomCode generates an 8-character code from an alphabet without the
// easily confused characters.
func randomCode() (string, error) {
	buf := make([]byte, codeLength)
	size := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf), nil
}
