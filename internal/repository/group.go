package repository

import (
	"fitness-community-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create creates a new group
func (r *GroupRepository) Create(group *models.Group) error {
	return r.db.Create(group).Error
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(id uuid.UUID) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByName retrieves a group by its unique group name
func (r *GroupRepository) GetByName(groupName string) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "group_name = ?", groupName).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByTeam retrieves the groups belonging to a team
func (r *GroupRepository) GetByTeam(teamName string) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.
		Joins("JOIN teamgroups ON groups.group_name = teamgroups.group_name").
		Where("teamgroups.team_name = ? AND teamgroups.deleted_at IS NULL", teamName).
		Order("groups.group_title").
		Find(&groups).Error
	return groups, err
}

// GetAll retrieves all groups with pagination
func (r *GroupRepository) GetAll(limit, offset int) ([]models.Group, int64, error) {
	var groups []models.Group
	var total int64

	if err := r.db.Model(&models.Group{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("group_title").Limit(limit).Offset(offset).Find(&groups).Error
	if err != nil {
		return nil, 0, err
	}

	return groups, total, nil
}

// Update updates a group
func (r *GroupRepository) Update(group *models.Group) error {
	return r.db.Save(group).Error
}

// GetMembers retrieves the live memberships of a group with user details preloaded
func (r *GroupRepository) GetMembers(groupID uuid.UUID) ([]models.GroupMember, error) {
	var members []models.GroupMember
	err := r.db.Preload("User").
		Where("group_id = ?", groupID).
		Find(&members).Error
	return members, err
}
