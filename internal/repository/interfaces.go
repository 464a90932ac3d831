package repository

import (
	"time"

	"fitness-community-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(username, actor string) error
	Exists(username string) (bool, error)
}

// LogRepositoryInterface defines the interface for exercise log repository
// operations, including the statistics aggregates.
type LogRepositoryInterface interface {
	Create(log *models.ExerciseLog) error
	GetByID(id uuid.UUID) (*models.ExerciseLog, error)
	GetByUsername(username string, limit, offset int) ([]models.ExerciseLog, int64, error)
	GetAll(limit, offset int) ([]models.ExerciseLog, int64, error)
	Update(log *models.ExerciseLog) error
	Delete(id uuid.UUID, actor string) error
	MileageSum(username string, exerciseType *models.ExerciseType, since *time.Time) (float64, error)
	FeelAverage(username string, since *time.Time) (float64, error)
	GroupMileageSum(groupID uuid.UUID, exerciseType *models.ExerciseType, since *time.Time) (float64, error)
	GroupFeelAverage(groupID uuid.UUID, since *time.Time) (float64, error)
	Leaderboard(groupID uuid.UUID, since *time.Time) ([]LeaderboardEntry, error)
}

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	Create(group *models.Group) error
	GetByID(id uuid.UUID) (*models.Group, error)
	GetByName(groupName string) (*models.Group, error)
	GetByTeam(teamName string) ([]models.Group, error)
	GetAll(limit, offset int) ([]models.Group, int64, error)
	Update(group *models.Group) error
	GetMembers(groupID uuid.UUID) ([]models.GroupMember, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByName(name string) (*models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	Search(query string, limit int) ([]models.Team, error)
	Exists(name string) (bool, error)
}

// CodeRepositoryInterface defines the interface for activation code and
// forgot-password code repository operations.
type CodeRepositoryInterface interface {
	CreateActivationCode(code *models.ActivationCode) error
	GetActivationCode(code string) (*models.ActivationCode, error)
	DeleteActivationCode(code, actor string) error
	CreateForgotPassword(code *models.ForgotPassword) error
	GetForgotPassword(code string) (*models.ForgotPassword, error)
	GetForgotPasswordByUsername(username string) ([]models.ForgotPassword, error)
	DeleteForgotPassword(code, actor string) error
}

// MembershipRepositoryInterface defines the interface for the membership
// transition handler and membership reads.
type MembershipRepositoryInterface interface {
	GetTeamMembership(username, teamName string) (*models.TeamMember, error)
	GetGroupMembership(username, groupName string) (*models.GroupMember, error)
	GetUserMemberships(username string) ([]TeamMembershipDetails, error)
	UpdateUserMemberships(username string, teamsJoined, teamsLeft []string, groupsJoined, groupsLeft []GroupRef) bool
	AcceptTeamMembership(username, teamName, actor string) error
	AcceptGroupMembership(username, groupName, actor string) error
}
