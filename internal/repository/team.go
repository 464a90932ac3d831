package repository

import (
	"fitness-community-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByName retrieves a team by its unique name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams with pagination
func (r *TeamRepository) GetAll(limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	if err := r.db.Model(&models.Team{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("title").Limit(limit).Offset(offset).Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// Search searches for teams by name or title
func (r *TeamRepository) Search(query string, limit int) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Where("name ILIKE ? OR title ILIKE ?", "%"+query+"%", "%"+query+"%").
		Order("title").
		Limit(limit).
		Find(&teams).Error
	return teams, err
}

// Exists checks if a live team row exists for the name.
func (r *TeamRepository) Exists(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}
