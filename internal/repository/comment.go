package repository

import (
	"time"

	"fitness-community-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository handles database operations for log comments
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment
func (r *CommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByLogID retrieves all comments on an exercise log, oldest first
func (r *CommentRepository) GetByLogID(logID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("log_id = ?", logID).Order("time").Find(&comments).Error
	return comments, err
}

// Update updates a comment
func (r *CommentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// Delete soft-deletes a comment, stamping the deletion audit fields.
func (r *CommentRepository) Delete(id uuid.UUID, actor string) error {
	return r.db.Model(&models.Comment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"deleted_at":  time.Now(),
			"deleted_by":  actor,
			"deleted_app": models.AppName,
		}).Error
}
