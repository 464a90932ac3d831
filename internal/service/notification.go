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

// NotificationService handles business logic for user notifications
type NotificationService struct {
	repo      *repository.NotificationRepository
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo *repository.NotificationRepository, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *NotificationService {
	return &NotificationService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateNotificationRequest represents the request to create a notification
type CreateNotificationRequest struct {
	Username    string `json:"username" validate:"required,max=20"`
	Link        string `json:"link" validate:"max=127"`
	Description string `json:"description" validate:"required"`
}

// NotificationResponse represents the response for notification operations
type NotificationResponse struct {
	ID          uuid.UUID `json:"notification_id"`
	Username    string    `json:"username"`
	Time        string    `json:"time"`
	Link        string    `json:"link"`
	Viewed      bool      `json:"viewed"`
	Description string    `json:"description"`
}

// Create creates a notification for a user
func (s *NotificationService) Create(req *CreateNotificationRequest, actor string) (*NotificationResponse, error) {
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

	notification := &models.Notification{
		Username:    req.Username,
		Time:        time.Now(),
		Link:        req.Link,
		Description: req.Description,
	}
	notification.StampCreate(actor)

	if err := s.repo.Create(notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return s.toResponse(notification), nil
}

// GetByUsername retrieves a user's recent notifications, newest first
func (s *NotificationService) GetByUsername(username string) ([]NotificationResponse, error) {
	notifications, err := s.repo.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	responses := make([]NotificationResponse, len(notifications))
	for i, notification := range notifications {
		responses[i] = *s.toResponse(&notification)
	}
	return responses, nil
}

// MarkViewed marks a notification as viewed. Only the recipient may
// mark their own notifications.
func (s *NotificationService) MarkViewed(id uuid.UUID, actor string) (*NotificationResponse, error) {
	notification, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	if notification.Username != actor {
		return nil, apperrors.NewAuthorizationError(actor, notification.Username)
	}

	notification.Viewed = true
	notification.StampUpdate(actor)

	if err := s.repo.Update(notification); err != nil {
		return nil, fmt.Errorf("failed to update notification: %w", err)
	}

	return s.toResponse(notification), nil
}

// Delete soft-deletes a notification. Only the recipient may delete it.
func (s *NotificationService) Delete(id uuid.UUID, actor string) error {
	notification, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to get notification: %w", err)
	}
	if notification.Username != actor {
		return apperrors.NewAuthorizationError(actor, notification.Username)
	}

	if err := s.repo.Delete(id, actor); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}

func (s *NotificationService) toResponse(notification *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:          notification.ID,
		Username:    notification.Username,
		Time:        notification.Time.Format(time.RFC3339),
		Link:        notification.Link,
		Viewed:      notification.Viewed,
		Description: notification.Description,
	}
}
