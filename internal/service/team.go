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

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	groupRepo repository.GroupRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, groupRepo repository.GroupRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		groupRepo: groupRepo,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name  string `json:"name" validate:"required,max=31"`
	Title string `json:"title" validate:"required,max=127"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new team
func (s *TeamService) Create(req *CreateTeamRequest, actor string) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	exists, err := s.repo.Exists(req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing team: %w", err)
	}
	if exists {
		return nil, apperrors.ErrTeamExists
	}

	team := &models.Team{
		Name:  req.Name,
		Title: req.Title,
	}
	team.StampCreate(actor)

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return &TeamResponse{Name: team.Name, Title: team.Title}, nil
}

// GetByName retrieves a team by name
func (s *TeamService) GetByName(name string) (*TeamResponse, error) {
	team, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return &TeamResponse{Name: team.Name, Title: team.Title}, nil
}

// GetAll retrieves teams with pagination
func (s *TeamService) GetAll(page, pageSize int) (*TeamListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)
	teams, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = TeamResponse{Name: team.Name, Title: team.Title}
	}

	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Search finds teams whose name or title matches the query
func (s *TeamService) Search(query string, limit int) ([]TeamResponse, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}

	teams, err := s.repo.Search(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = TeamResponse{Name: team.Name, Title: team.Title}
	}
	return responses, nil
}

// GetGroups retrieves the groups attached to a team
func (s *TeamService) GetGroups(teamName string) ([]GroupResponse, error) {
	exists, err := s.repo.Exists(teamName)
	if err != nil {
		return nil, fmt.Errorf("failed to check team: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrTeamNotFound
	}

	groups, err := s.groupRepo.GetByTeam(teamName)
	if err != nil {
		return nil, fmt.Errorf("failed to get team groups: %w", err)
	}

	responses := make([]GroupResponse, len(groups))
	for i, group := range groups {
		responses[i] = GroupResponse{
			ID:          group.ID.String(),
			GroupName:   group.GroupName,
			GroupTitle:  group.GroupTitle,
			Description: group.Description,
			WeekStart:   group.WeekStart,
		}
	}
	return responses, nil
}
