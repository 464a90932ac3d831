package repository

import (
	"time"

	"fitness-community-backend/internal/database/models"

	"gorm.io/gorm"
)

// CodeRepository handles database operations for activation codes and
// forgot-password codes.
type CodeRepository struct {
	db *gorm.DB
}

// NewCodeRepository creates a new code repository
func NewCodeRepository(db *gorm.DB) *CodeRepository {
	return &CodeRepository{db: db}
}

// CreateActivationCode creates a new activation code
func (r *CodeRepository) CreateActivationCode(code *models.ActivationCode) error {
	return r.db.Create(code).Error
}

// GetActivationCode retrieves a live activation code
func (r *CodeRepository) GetActivationCode(code string) (*models.ActivationCode, error) {
	var activation models.ActivationCode
	err := r.db.First(&activation, "activation_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &activation, nil
}

// DeleteActivationCode soft-deletes an activation code. Consumed codes go
// through here as well so the audit trail records who used them.
func (r *CodeRepository) DeleteActivationCode(code, actor string) error {
	return r.db.Model(&models.ActivationCode{}).
		Where("activation_code = ?", code).
		Updates(map[string]interface{}{
			"deleted_at":  time.Now(),
			"deleted_by":  actor,
			"deleted_app": models.AppName,
		}).Error
}

// CreateForgotPassword creates a new forgot-password code
func (r *CodeRepository) CreateForgotPassword(code *models.ForgotPassword) error {
	return r.db.Create(code).Error
}

// GetForgotPassword retrieves a live forgot-password code
func (r *CodeRepository) GetForgotPassword(code string) (*models.ForgotPassword, error) {
	var forgot models.ForgotPassword
	err := r.db.First(&forgot, "forgot_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &forgot, nil
}

// GetForgotPasswordByUsername retrieves a user's unexpired forgot-password codes
func (r *CodeRepository) GetForgotPasswordByUsername(username string) ([]models.ForgotPassword, error) {
	var codes []models.ForgotPassword
	err := r.db.Where("username = ? AND expiration >= ?", username, time.Now()).Find(&codes).Error
	return codes, err
}

// DeleteForgotPassword soft-deletes a forgot-password code
func (r *CodeRepository) DeleteForgotPassword(code, actor string) error {
	return r.db.Model(&models.ForgotPassword{}).
		Where("forgot_code = ?", code).
		Updates(map[string]interface{}{
			"deleted_at":  time.Now(),
			"deleted_by":  actor,
			"deleted_app": models.AppName,
		}).Error
}
