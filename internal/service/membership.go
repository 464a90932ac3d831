package service

import (
	"fmt"

	apperrors "fitness-community-backend/internal/errors"
	"fitness-community-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// MembershipService handles business logic for team and group memberships
type MembershipService struct {
	repo      repository.MembershipRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewMembershipService creates a new membership service
func NewMembershipService(repo repository.MembershipRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *MembershipService {
	return &MembershipService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// GroupChange identifies a group within a team for join and leave requests
type GroupChange struct {
	TeamName  string `json:"team_name" validate:"required"`
	GroupName string `json:"group_name" validate:"required"`
}

// UpdateMembershipsRequest represents a batch membership transition
type UpdateMembershipsRequest struct {
	TeamsJoined  []string      `json:"teams_joined"`
	TeamsLeft    []string      `json:"teams_left"`
	GroupsJoined []GroupChange `json:"groups_joined"`
	GroupsLeft   []GroupChange `json:"groups_left"`
}

// MembershipsResponse represents a user's current memberships
type MembershipsResponse struct {
	Username string                             `json:"username"`
	Teams    []repository.TeamMembershipDetails `json:"teams"`
}

// GetUserMemberships retrieves a user's team memberships with the group
// memberships nested under each team.
func (s *MembershipService) GetUserMemberships(username string) (*MembershipsResponse, error) {
	exists, err := s.userRepo.Exists(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}

	teams, err := s.repo.GetUserMemberships(username)
	if err != nil {
		return nil, fmt.Errorf("failed to get memberships: %w", err)
	}

	return &MembershipsResponse{Username: username, Teams: teams}, nil
}

// UpdateUserMemberships applies a batch of joins and leaves in one
// transaction. Any failure, a nonexistent team or group included, rolls
// the whole batch back and surfaces as ErrMembershipUpdateFailed.
func (s *MembershipService) UpdateUserMemberships(username string, req *UpdateMembershipsRequest) (*MembershipsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	exists, err := s.userRepo.Exists(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}

	groupsJoined := make([]repository.GroupRef, len(req.GroupsJoined))
	for i, change := range req.GroupsJoined {
		groupsJoined[i] = repository.GroupRef{TeamName: change.TeamName, GroupName: change.GroupName}
	}
	groupsLeft := make([]repository.GroupRef, len(req.GroupsLeft))
	for i, change := range req.GroupsLeft {
		groupsLeft[i] = repository.GroupRef{TeamName: change.TeamName, GroupName: change.GroupName}
	}

	if ok := s.repo.UpdateUserMemberships(username, req.TeamsJoined, req.TeamsLeft, groupsJoined, groupsLeft); !ok {
		return nil, apperrors.ErrMembershipUpdateFailed
	}

	teams, err := s.repo.GetUserMemberships(username)
	if err != nil {
		return nil, fmt.Errorf("failed to get memberships: %w", err)
	}

	return &MembershipsResponse{Username: username, Teams: teams}, nil
}

// AcceptTeamMembership promotes a pending team membership to accepted
func (s *MembershipService) AcceptTeamMembership(username, teamName, actor string) error {
	if err := s.repo.AcceptTeamMembership(username, teamName, actor); err != nil {
		return fmt.Errorf("failed to accept team membership: %w", err)
	}
	return nil
}

// AcceptGroupMembership promotes a pending group membership to accepted
func (s *MembershipService) AcceptGroupMembership(username, groupName, actor string) error {
	if err := s.repo.AcceptGroupMembership(username, groupName, actor); err != nil {
		return fmt.Errorf("failed to accept group membership: %w", err)
	}
	return nil
}
