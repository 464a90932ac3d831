package repository

import (
	"time"

	"fitness-community-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// GetByUsername retrieves a user's notifications from the past two weeks,
// newest first.
func (r *NotificationRepository) GetByUsername(username string) ([]models.Notification, error) {
	var notifications []models.Notification
	cutoff := time.Now().AddDate(0, 0, -14)
	err := r.db.Where("username = ? AND time >= ?", username, cutoff).
		Order("time DESC").
		Find(&notifications).Error
	return notifications, err
}

// Update updates a notification
func (r *NotificationRepository) Update(notification *models.Notification) error {
	return r.db.Save(notification).Error
}

// Delete soft-deletes a notification, stamping the deletion audit fields.
func (r *NotificationRepository) Delete(id uuid.UUID, actor string) error {
	return r.db.Model(&models.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"deleted_at":  time.Now(),
			"deleted_by":  actor,
			"deleted_app": models.AppName,
		}).Error
}
