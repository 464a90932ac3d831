package repository

import (
	"time"

	"fitness-community-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageRepository handles database operations for group message feeds
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create creates a new message
func (r *MessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// GetByID retrieves a message by ID
func (r *MessageRepository) GetByID(id uuid.UUID) (*models.Message, error) {
	var message models.Message
	err := r.db.First(&message, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// GetByGroupName retrieves a group's messages, newest first, with pagination
func (r *MessageRepository) GetByGroupName(groupName string, limit, offset int) ([]models.Message, int64, error) {
	var messages []models.Message
	var total int64

	if err := r.db.Model(&models.Message{}).Where("group_name = ?", groupName).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("group_name = ?", groupName).
		Order("time DESC").
		Limit(limit).Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// Update updates a message
func (r *MessageRepository) Update(message *models.Message) error {
	return r.db.Save(message).Error
}

// Delete soft-deletes a message, stamping the deletion audit fields.
func (r *MessageRepository) Delete(id uuid.UUID, actor string) error {
	return r.db.Model(&models.Message{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"deleted_at":  time.Now(),
			"deleted_by":  actor,
			"deleted_app": models.AppName,
		}).Error
}
