package service

import (
	"errors"
	"fmt"
	"time"

	"fitness-community-backend/internal/database/models"
	apperrors "fitness-community-backend/internal/errors"
	"fitness-community-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentService handles business logic for exercise log comments
type CommentService struct {
	repo      *repository.CommentRepository
	logRepo   repository.LogRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewCommentService creates a new comment service
func NewCommentService(repo *repository.CommentRepository, logRepo repository.LogRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *CommentService {
	return &CommentService{
		repo:      repo,
		logRepo:   logRepo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateCommentRequest represents the request to comment on a log
type CreateCommentRequest struct {
	LogID   uuid.UUID `json:"log_id" validate:"required"`
	Content string    `json:"content" validate:"required,max=1000"`
}

// CommentResponse represents the response for comment operations
type CommentResponse struct {
	ID        uuid.UUID `json:"comment_id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first"`
	LastName  string    `json:"last"`
	LogID     uuid.UUID `json:"log_id"`
	Time      string    `json:"time"`
	Content   string    `json:"content"`
}

// Create adds a comment to an exercise log. The commenter's display name
// is denormalized onto the comment at write time.
func (s *CommentService) Create(username string, req *CreateCommentRequest) (*CommentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if _, err := s.logRepo.GetByID(req.LogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLogNotFound
		}
		return nil, fmt.Errorf("failed to get log: %w", err)
	}

	comment := &models.Comment{
		Username:  username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		LogID:     req.LogID,
		Time:      time.Now(),
		Content:   req.Content,
	}
	comment.StampCreate(username)

	if err := s.repo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return commentToResponse(comment), nil
}

// GetByLog retrieves the comments on an exercise log, oldest first
func (s *CommentService) GetByLog(logID uuid.UUID) ([]CommentResponse, error) {
	comments, err := s.repo.GetByLogID(logID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	responses := make([]CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = *commentToResponse(&comment)
	}
	return responses, nil
}

// Delete soft-deletes a comment. Only the comment's author may delete it.
func (s *CommentService) Delete(id uuid.UUID, actor string) error {
	comment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return fmt.Errorf("failed to get comment: %w", err)
	}
	if comment.Username != actor {
		return apperrors.NewAuthorizationError(actor, comment.Username)
	}

	if err := s.repo.Delete(id, actor); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func commentToResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        comment.ID,
		Username:  comment.Username,
		FirstName: comment.FirstName,
		LastName:  comment.LastName,
		LogID:     comment.LogID,
		Time:      comment.Time.Format(time.RFC3339),
		Content:   comment.Content,
	}
}
