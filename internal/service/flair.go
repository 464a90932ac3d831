package service

import (
	"fmt"

	"fitness-community-backend/internal/database/models"
	apperrors "fitness-community-backend/internal/errors"
	"fitness-community-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FlairService handles business logic for profile flair
type FlairService struct {
	repo      *repository.FlairRepository
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewFlairService creates a new flair service
func NewFlairService(repo *repository.FlairRepository, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *FlairService {
	return &FlairService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateFlairRequest represents the request to add flair to a profile
type CreateFlairRequest struct {
	Username string `json:"username" validate:"required,max=20"`
	Flair    string `json:"flair" validate:"required,max=50"`
}

// FlairResponse represents the response for flair operations
type FlairResponse struct {
	ID       uuid.UUID `json:"flair_id"`
	Username string    `json:"username"`
	Flair    string    `json:"flair"`
}

// Create adds a flair entry to a user's profile
func (s *FlairService) Create(req *CreateFlairRequest, actor string) (*FlairResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	exists, err := s.userRepo.Exists(req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}

	flair := &models.Flair{
		Username: req.Username,
		Flair:    req.Flair,
	}
	flair.StampCreate(actor)

	if err := s.repo.Create(flair); err != nil {
		return nil, fmt.Errorf("failed to create flair: %w", err)
	}

	return &FlairResponse{ID: flair.ID, Username: flair.Username, Flair: flair.Flair}, nil
}

// GetByUsername retrieves a user's flair entries
func (s *FlairService) GetByUsername(username string) ([]FlairResponse, error) {
	entries, err := s.repo.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to get flair: %w", err)
	}

	responses := make([]FlairResponse, len(entries))
	for i, entry := range entries {
		responses[i] = FlairResponse{ID: entry.ID, Username: entry.Username, Flair: entry.Flair}
	}
	return responses, nil
}

// Delete soft-deletes a flair entry
func (s *FlairService) Delete(id uuid.UUID, actor string) error {
	if err := s.repo.Delete(id, actor); err != nil {
		return fmt.Errorf("failed to delete flair: %w", err)
	}
	return nil
}
