package service

import (
	"errors"
	"fmt"
	"time"

	"fitness-community-backend/internal/database/models"
	apperrors "fitness-community-backend/internal/errors"
	"fitness-community-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles business logic for user accounts
type UserService struct {
	repo      repository.UserRepositoryInterface
	codeRepo  repository.CodeRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, codeRepo repository.CodeRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		codeRepo:  codeRepo,
		validator: validator,
	}
}

// CreateUserRequest represents the request to register a new user
type CreateUserRequest struct {
	Username       string `json:"username" validate:"required,min=1,max=20"`
	FirstName      string `json:"first" validate:"required,max=30"`
	LastName       string `json:"last" validate:"required,max=30"`
	Email          string `json:"email" validate:"required,email,max=50"`
	Password       string `json:"password" validate:"required,min=8"`
	ActivationCode string `json:"activation_code" validate:"required,len=8"`
}

// UpdateUserRequest represents the request to update a user's profile
type UpdateUserRequest struct {
	FirstName     string            `json:"first" validate:"required,max=30"`
	LastName      string            `json:"last" validate:"required,max=30"`
	Email         string            `json:"email" validate:"omitempty,email,max=50"`
	ClassYear     *int              `json:"class_year,omitempty"`
	Location      string            `json:"location" validate:"max=50"`
	FavoriteEvent string            `json:"favorite_event" validate:"max=20"`
	Description   string            `json:"description"`
	WeekStart     *models.WeekStart `json:"week_start,omitempty"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	Username      string           `json:"username"`
	FirstName     string           `json:"first"`
	LastName      string           `json:"last"`
	Email         string           `json:"email"`
	ClassYear     *int             `json:"class_year,omitempty"`
	Location      string           `json:"location"`
	FavoriteEvent string           `json:"favorite_event"`
	Description   string           `json:"description"`
	WeekStart     models.WeekStart `json:"week_start"`
	Activated     bool             `json:"activated"`
	CreatedAt     string           `json:"member_since"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create registers a new user. A valid, unexpired activation code is
// required; the code is consumed (soft-deleted) on success and the new
// account starts activated with the monday week-start default.
func (s *UserService) Create(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByUsername(req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	code, err := s.codeRepo.GetActivationCode(req.ActivationCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivationCodeNotFound
		}
		return nil, fmt.Errorf("failed to look up activation code: %w", err)
	}
	if code.Expiration.Before(time.Now()) {
		return nil, apperrors.ErrActivationCodeExpired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashed),
		WeekStart: models.WeekStartMonday,
		Activated: true,
	}
	user.StampCreate(req.Username)

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.codeRepo.DeleteActivationCode(req.ActivationCode, req.Username); err != nil {
		return nil, fmt.Errorf("failed to consume activation code: %w", err)
	}

	return s.toResponse(user), nil
}

// GetByUsername retrieves a user by username
func (s *UserService) GetByUsername(username string) (*UserResponse, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return s.toResponse(user), nil
}

// GetAll retrieves users with pagination
func (s *UserService) GetAll(page, pageSize int) (*UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	users, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = *s.toResponse(&user)
	}

	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a user's profile. The acting user is stamped into the
// update audit fields; week_start changes are validated against the two
// recognized literals.
func (s *UserService) Update(username string, req *UpdateUserRequest, actor string) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.WeekStart != nil && !req.WeekStart.IsValid() {
		return nil, apperrors.ErrInvalidWeekStart
	}

	user, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if req.Email != "" {
		user.Email = req.Email
	}
	user.ClassYear = req.ClassYear
	user.Location = req.Location
	user.FavoriteEvent = req.FavoriteEvent
	user.Description = req.Description
	if req.WeekStart != nil {
		user.WeekStart = *req.WeekStart
	}
	user.StampUpdate(actor)

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.toResponse(user), nil
}

// UpdateWeekStart changes only the user's week-start preference.
func (s *UserService) UpdateWeekStart(username string, weekStart models.WeekStart, actor string) (*UserResponse, error) {
	if !weekStart.IsValid() {
		return nil, apperrors.ErrInvalidWeekStart
	}

	user, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.WeekStart = weekStart
	user.StampUpdate(actor)

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update week start: %w", err)
	}

	return s.toResponse(user), nil
}

// Delete soft-deletes a user account
func (s *UserService) Delete(username, actor string) error {
	exists, err := s.repo.Exists(username)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return apperrors.ErrUserNotFound
	}

	if err := s.repo.Delete(username, actor); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// ChangePassword replaces a user's password hash.
func (s *UserService) ChangePassword(username, newPassword, actor string) error {
	if len(newPassword) < 8 {
		return apperrors.ErrPasswordTooShort
	}

	user, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.Password = string(hashed)
	user.StampUpdate(actor)

	if err := s.repo.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *UserService) toResponse(user *models.User) *UserResponse {
	return &UserResponse{
		Username:      user.Username,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		ClassYear:     user.ClassYear,
		Location:      user.Location,
		FavoriteEvent: user.FavoriteEvent,
		Description:   user.Description,
		WeekStart:     user.WeekStart,
		Activated:     user.Activated,
		CreatedAt:     user.CreatedAt.Format(time.RFC3339),
	}
}
