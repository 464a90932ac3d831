package service

import (
	"context"

	"fitness-community-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user operations
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*UserResponse, error)
	GetByUsername(username string) (*UserResponse, error)
	GetAll(page, pageSize int) (*UserListResponse, error)
	Update(username string, req *UpdateUserRequest, actor string) (*UserResponse, error)
	UpdateWeekStart(username string, weekStart models.WeekStart, actor string) (*UserResponse, error)
	Delete(username, actor string) error
	ChangePassword(username, newPassword, actor string) error
}

// LogServiceInterface defines the interface for exercise log operations
type LogServiceInterface interface {
	Create(username string, req *CreateLogRequest) (*LogResponse, error)
	GetByID(id uuid.UUID) (*LogResponse, error)
	GetByUsername(username string, page, pageSize int) (*LogListResponse, error)
	GetAll(page, pageSize int) (*LogListResponse, error)
	Update(id uuid.UUID, req *UpdateLogRequest, actor string) (*LogResponse, error)
	Delete(id uuid.UUID, actor string) error
}

// GroupServiceInterface defines the interface for group operations
type GroupServiceInterface interface {
	Create(req *CreateGroupRequest, actor string) (*GroupResponse, error)
	GetByName(groupName string) (*GroupResponse, error)
	GetAll(page, pageSize int) (*GroupListResponse, error)
	GetByTeam(teamName string) ([]GroupResponse, error)
	Update(groupName string, req *UpdateGroupRequest, actor string) (*GroupResponse, error)
	GetMembers(groupName string) ([]GroupMemberResponse, error)
}

// TeamServiceInterface defines the interface for team operations
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest, actor string) (*TeamResponse, error)
	GetByName(name string) (*TeamResponse, error)
	GetAll(page, pageSize int) (*TeamListResponse, error)
	Search(query string, limit int) ([]TeamResponse, error)
	GetGroups(teamName string) ([]GroupResponse, error)
}

// MembershipServiceInterface defines the interface for membership operations
type MembershipServiceInterface interface {
	GetUserMemberships(username string) (*MembershipsResponse, error)
	UpdateUserMemberships(username string, req *UpdateMembershipsRequest) (*MembershipsResponse, error)
	AcceptTeamMembership(username, teamName, actor string) error
	AcceptGroupMembership(username, groupName, actor string) error
}

// StatsServiceInterface defines the interface for statistics compilation
type StatsServiceInterface interface {
	CompileUserStats(username string) (*StatsResponse, error)
	CompileGroupStats(groupName string) (*StatsResponse, error)
	CompileLeaderboard(groupName, interval string) (*LeaderboardResponse, error)
}

// CommentServiceInterface defines the interface for comment operations
type CommentServiceInterface interface {
	Create(username string, req *CreateCommentRequest) (*CommentResponse, error)
	GetByLog(logID uuid.UUID) ([]CommentResponse, error)
	Delete(id uuid.UUID, actor string) error
}

// NotificationServiceInterface defines the interface for notification operations
type NotificationServiceInterface interface {
	Create(req *CreateNotificationRequest, actor string) (*NotificationResponse, error)
	GetByUsername(username string) ([]NotificationResponse, error)
	MarkViewed(id uuid.UUID, actor string) (*NotificationResponse, error)
	Delete(id uuid.UUID, actor string) error
}

// MessageServiceInterface defines the interface for group message operations
type MessageServiceInterface interface {
	Create(username string, req *CreateMessageRequest) (*MessageResponse, error)
	GetByGroup(groupName string, page, pageSize int) (*MessageListResponse, error)
	Delete(id uuid.UUID, actor string) error
}

// FlairServiceInterface defines the interface for flair operations
type FlairServiceInterface interface {
	Create(req *CreateFlairRequest, actor string) (*FlairResponse, error)
	GetByUsername(username string) ([]FlairResponse, error)
	Delete(id uuid.UUID, actor string) error
}

// CodeServiceInterface defines the interface for activation and
// forgot-password code operations
type CodeServiceInterface interface {
	CreateActivationCode(ctx context.Context, req *CreateActivationCodeRequest, actor string) (*ActivationCodeResponse, error)
	GetActivationCode(code string) (*ActivationCodeResponse, error)
	DeleteActivationCode(code, actor string) error
	RequestPasswordReset(ctx context.Context, identifier string) error
	ResetPassword(req *ResetPasswordRequest) error
}
