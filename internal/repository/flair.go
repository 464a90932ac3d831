package repository

import (
	"time"

	"fitness-community-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FlairRepository handles database operations for user flair
type FlairRepository struct {
	db *gorm.DB
}

// NewFlairRepository creates a new flair repository
func NewFlairRepository(db *gorm.DB) *FlairRepository {
	return &FlairRepository{db: db}
}

// Create creates a new flair entry
func (r *FlairRepository) Create(flair *models.Flair) error {
	return r.db.Create(flair).Error
}

// GetByUsername retrieves all flair for a user
func (r *FlairRepository) GetByUsername(username string) ([]models.Flair, error) {
	var flair []models.Flair
	err := r.db.Where("username = ?", username).Find(&flair).Error
	return flair, err
}

// Delete soft-deletes a flair entry, stamping the deletion audit fields.
func (r *FlairRepository) Delete(id uuid.UUID, actor string) error {
	return r.db.Model(&models.Flair{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"deleted_at":  time.Now(),
			"deleted_by":  actor,
			"deleted_app": models.AppName,
		}).Error
}
