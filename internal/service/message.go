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

// MessageService handles business logic for group message boards
type MessageService struct {
	repo      *repository.MessageRepository
	groupRepo repository.GroupRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewMessageService creates a new message service
func NewMessageService(repo *repository.MessageRepository, groupRepo repository.GroupRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *MessageService {
	return &MessageService{
		repo:      repo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateMessageRequest represents the request to post a group message
type CreateMessageRequest struct {
	GroupName string `json:"group_name" validate:"required,max=20"`
	Content   string `json:"content" validate:"required,max=1000"`
}

// MessageResponse represents the response for message operations
type MessageResponse struct {
	ID        uuid.UUID `json:"message_id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first"`
	LastName  string    `json:"last"`
	GroupName string    `json:"group_name"`
	Time      string    `json:"time"`
	Content   string    `json:"content"`
}

// MessageListResponse represents a paginated group message feed
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create posts a message to a group's board. The poster's display name
// is denormalized onto the message at write time.
func (s *MessageService) Create(username string, req *CreateMessageRequest) (*MessageResponse, error) {
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

	if _, err := s.groupRepo.GetByName(req.GroupName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	message := &models.Message{
		Username:  username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		GroupName: req.GroupName,
		Time:      time.Now(),
		Content:   req.Content,
	}
	message.StampCreate(username)

	if err := s.repo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return s.toResponse(message), nil
}

// GetByGroup retrieves a group's messages, newest first
func (s *MessageService) GetByGroup(groupName string, page, pageSize int) (*MessageListResponse, error) {
	if _, err := s.groupRepo.GetByName(groupName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	page, pageSize = normalizePage(page, pageSize)
	messages, total, err := s.repo.GetByGroupName(groupName, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	responses := make([]MessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = *s.toResponse(&message)
	}

	return &MessageListResponse{
		Messages: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Delete soft-deletes a message. Only the message's author may delete it.
func (s *MessageService) Delete(id uuid.UUID, actor string) error {
	message, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMessageNotFound
		}
		return fmt.Errorf("failed to get message: %w", err)
	}
	if message.Username != actor {
		return apperrors.NewAuthorizationError(actor, message.Username)
	}

	if err := s.repo.Delete(id, actor); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

func (s *MessageService) toResponse(message *models.Message) *MessageResponse {
	return &MessageResponse{
		ID:        message.ID,
		Username:  message.Username,
		FirstName: message.FirstName,
		LastName:  message.LastName,
		GroupName: message.GroupName,
		Time:      message.Time.Format(time.RFC3339),
		Content:   message.Content,
	}
}
