package service

import (
	"errors"
	"fmt"

	"fitness-community-backend/internal/database/models"
	apperrors "fitness-community-backend/internal/errors"
	"fitness-community-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// GroupService handles business logic for groups
type GroupService struct {
	repo      repository.GroupRepositoryInterface
	validator *validator.Validate
}

// NewGroupService creates a new group service
func NewGroupService(repo repository.GroupRepositoryInterface, validator *validator.Validate) *GroupService {
	return &GroupService{
		repo:      repo,
		validator: validator,
	}
}

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	GroupName   string           `json:"group_name" validate:"required,max=20"`
	GroupTitle  string           `json:"group_title" validate:"required,max=50"`
	Description string           `json:"description"`
	WeekStart   models.WeekStart `json:"week_start"`
}

// UpdateGroupRequest represents the request to update a group
type UpdateGroupRequest struct {
	GroupTitle  string           `json:"group_title" validate:"required,max=50"`
	Description string           `json:"description"`
	WeekStart   models.WeekStart `json:"week_start"`
}

// GroupResponse represents the response for group operations
type GroupResponse struct {
	ID          string           `json:"id"`
	GroupName   string           `json:"group_name"`
	GroupTitle  string           `json:"group_title"`
	Description string           `json:"description"`
	WeekStart   models.WeekStart `json:"week_start"`
}

// GroupListResponse represents a paginated list of groups
type GroupListResponse struct {
	Groups   []GroupResponse `json:"groups"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// GroupMemberResponse represents one member of a group
type GroupMemberResponse struct {
	Username  string                  `json:"username"`
	FirstName string                  `json:"first"`
	LastName  string                  `json:"last"`
	Status    models.MembershipStatus `json:"status"`
	UserRole  models.MembershipRole   `json:"user"`
}

// Create creates a new group
func (s *GroupService) Create(req *CreateGroupRequest, actor string) (*GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	weekStart := req.WeekStart
	if weekStart == "" {
		weekStart = models.WeekStartMonday
	}
	if !weekStart.IsValid() {
		return nil, apperrors.ErrInvalidWeekStart
	}

	existing, err := s.repo.GetByName(req.GroupName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing group: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrGroupExists
	}

	group := &models.Group{
		GroupName:   req.GroupName,
		GroupTitle:  req.GroupTitle,
		Description: req.Description,
		WeekStart:   weekStart,
	}
	group.StampCreate(actor)

	if err := s.repo.Create(group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return s.toResponse(group), nil
}

// GetByName retrieves a group by its name
func (s *GroupService) GetByName(groupName string) (*GroupResponse, error) {
	group, err := s.repo.GetByName(groupName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return s.toResponse(group), nil
}

// GetByTeam retrieves the groups attached to a team
func (s *GroupService) GetByTeam(teamName string) ([]GroupResponse, error) {
	groups, err := s.repo.GetByTeam(teamName)
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}

	responses := make([]GroupResponse, len(groups))
	for i, group := range groups {
		responses[i] = *s.toResponse(&group)
	}
	return responses, nil
}

// GetAll retrieves groups with pagination
func (s *GroupService) GetAll(page, pageSize int) (*GroupListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)
	groups, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}

	responses := make([]GroupResponse, len(groups))
	for i, group := range groups {
		responses[i] = *s.toResponse(&group)
	}

	return &GroupListResponse{
		Groups:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a group's title, description, and week-start
func (s *GroupService) Update(groupName string, req *UpdateGroupRequest, actor string) (*GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.WeekStart != "" && !req.WeekStart.IsValid() {
		return nil, apperrors.ErrInvalidWeekStart
	}

	group, err := s.repo.GetByName(groupName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	group.GroupTitle = req.GroupTitle
	group.Description = req.Description
	if req.WeekStart != "" {
		group.WeekStart = req.WeekStart
	}
	group.StampUpdate(actor)

	if err := s.repo.Update(group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return s.toResponse(group), nil
}

// GetMembers retrieves a group's live members
func (s *GroupService) GetMembers(groupName string) ([]GroupMemberResponse, error) {
	group, err := s.repo.GetByName(groupName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	members, err := s.repo.GetMembers(group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}

	responses := make([]GroupMemberResponse, len(members))
	for i, member := range members {
		responses[i] = GroupMemberResponse{
			Username:  member.Username,
			FirstName: member.User.FirstName,
			LastName:  member.User.LastName,
			Status:    member.Status,
			UserRole:  member.UserRole,
		}
	}
	return responses, nil
}

func (s *GroupService) toResponse(group *models.Group) *GroupResponse {
	return &GroupResponse{
		ID:          group.ID.String(),
		GroupName:   group.GroupName,
		GroupTitle:  group.GroupTitle,
		Description: group.Description,
		WeekStart:   group.WeekStart,
	}
}
