package repository

import (
	"fmt"
	"time"

	"fitness-community-backend/internal/database"
	"fitness-community-backend/internal/database/models"

	"gorm.io/gorm"
)

// MembershipRepository handles the team/group membership tables, including
// the batched join/leave transition flow.
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// GroupRef identifies a group by the team it belongs to and its name.
type GroupRef struct {
	TeamName  string `json:"team_name" validate:"required"`
	GroupName string `json:"group_name" validate:"required"`
}

// TeamMembershipDetails is a user's team membership with the group
// memberships belonging to that team nested under it.
type TeamMembershipDetails struct {
	TeamName string                   `json:"team_name"`
	Title    string                   `json:"title"`
	Status   models.MembershipStatus  `json:"status"`
	UserRole models.MembershipRole    `json:"user"`
	Groups   []GroupMembershipDetails `json:"groups"`
}

// GroupMembershipDetails is a user's membership in one of a team's groups.
type GroupMembershipDetails struct {
	GroupName  string                  `json:"group_name"`
	GroupTitle string                  `json:"group_title"`
	Status     models.MembershipStatus `json:"status"`
	UserRole   models.MembershipRole   `json:"user"`
}

// GetTeamMembership retrieves a user's live membership in a team.
func (r *MembershipRepository) GetTeamMembership(username, teamName string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "username = ? AND team_name = ?", username, teamName).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetGroupMembership retrieves a user's live membership in a group by name.
func (r *MembershipRepository) GetGroupMembership(username, groupName string) (*models.GroupMember, error) {
	var member models.GroupMember
	err := r.db.
		Joins("JOIN groups ON groupmembers.group_id = groups.id").
		Where("groupmembers.username = ? AND groups.group_name = ?", username, groupName).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetUserMemberships returns a user's team memberships with each team's
// group memberships nested beneath it.
func (r *MembershipRepository) GetUserMemberships(username string) ([]TeamMembershipDetails, error) {
	var teamMembers []models.TeamMember
	if err := r.db.Preload("Team").
		Where("username = ?", username).
		Find(&teamMembers).Error; err != nil {
		return nil, err
	}

	details := make([]TeamMembershipDetails, 0, len(teamMembers))
	for _, tm := range teamMembers {
		detail := TeamMembershipDetails{
			TeamName: tm.TeamName,
			Title:    tm.Team.Title,
			Status:   tm.Status,
			UserRole: tm.UserRole,
			Groups:   []GroupMembershipDetails{},
		}

		// Group memberships scoped to the groups of this team.
		var rows []struct {
			GroupName  string
			GroupTitle string
			Status     models.MembershipStatus
			UserRole   models.MembershipRole
		}
		err := r.db.Table("groupmembers").
			Select("groups.group_name, groups.group_title, groupmembers.status, groupmembers.user_role").
			Joins("JOIN groups ON groupmembers.group_id = groups.id").
			Joins("JOIN teamgroups ON groups.group_name = teamgroups.group_name").
			Where("groupmembers.username = ? AND teamgroups.team_name = ?", username, tm.TeamName).
			Where("groupmembers.deleted_at IS NULL AND groups.deleted_at IS NULL AND teamgroups.deleted_at IS NULL").
			Order("groups.group_title").
			Scan(&rows).Error
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			detail.Groups = append(detail.Groups, GroupMembershipDetails{
				GroupName:  row.GroupName,
				GroupTitle: row.GroupTitle,
				Status:     row.Status,
				UserRole:   row.UserRole,
			})
		}

		details = append(details, detail)
	}

	return details, nil
}

// UpdateUserMemberships applies a batch of team joins/leaves and group
// joins/leaves for a user as one transaction. Joins insert pending
// memberships with the user role; leaves soft-delete the matching live
// rows. The whole batch commits atomically: a nonexistent team or group
// anywhere in it rolls everything back and the method reports false.
func (r *MembershipRepository) UpdateUserMemberships(username string, teamsJoined, teamsLeft []string, groupsJoined, groupsLeft []GroupRef) bool {
	return database.SafeCommit(r.db, func(tx *gorm.DB) error {
		now := time.Now()

		for _, teamName := range teamsJoined {
			member := &models.TeamMember{
				Username: username,
				TeamName: teamName,
				Status:   models.MembershipStatusPending,
				UserRole: models.MembershipRoleUser,
			}
			member.StampCreate(username)
			if err := tx.Create(member).Error; err != nil {
				return err
			}
		}

		for _, teamName := range teamsLeft {
			if err := tx.Model(&models.TeamMember{}).
				Where("username = ? AND team_name = ?", username, teamName).
				Updates(map[string]interface{}{
					"deleted_at":  now,
					"deleted_by":  username,
					"deleted_app": models.AppName,
				}).Error; err != nil {
				return err
			}
		}

		for _, ref := range groupsJoined {
			group, err := findGroupInTeam(tx, ref)
			if err != nil {
				return err
			}
			member := &models.GroupMember{
				Username: username,
				GroupID:  group.ID,
				Status:   models.MembershipStatusPending,
				UserRole: models.MembershipRoleUser,
			}
			member.StampCreate(username)
			if err := tx.Create(member).Error; err != nil {
				return err
			}
		}

		for _, ref := range groupsLeft {
			group, err := findGroupInTeam(tx, ref)
			if err != nil {
				return err
			}
			if err := tx.Model(&models.GroupMember{}).
				Where("username = ? AND group_id = ?", username, group.ID).
				Updates(map[string]interface{}{
					"deleted_at":  now,
					"deleted_by":  username,
					"deleted_app": models.AppName,
				}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// findGroupInTeam resolves a (team, group) pair to the group row, erroring
// when the group does not exist or does not belong to the team.
func findGroupInTeam(tx *gorm.DB, ref GroupRef) (*models.Group, error) {
	var group models.Group
	err := tx.
		Joins("JOIN teamgroups ON groups.group_name = teamgroups.group_name").
		Where("groups.group_name = ? AND teamgroups.team_name = ? AND teamgroups.deleted_at IS NULL",
			ref.GroupName, ref.TeamName).
		First(&group).Error
	if err != nil {
		return nil, fmt.Errorf("group %s in team %s: %w", ref.GroupName, ref.TeamName, err)
	}
	return &group, nil
}

// AcceptTeamMembership transitions a pending team membership to accepted.
func (r *MembershipRepository) AcceptTeamMembership(username, teamName, actor string) error {
	return r.db.Model(&models.TeamMember{}).
		Where("username = ? AND team_name = ? AND status = ?", username, teamName, models.MembershipStatusPending).
		Updates(map[string]interface{}{
			"status":      models.MembershipStatusAccepted,
			"updated_by":  actor,
			"updated_app": models.AppName,
		}).Error
}

// AcceptGroupMembership transitions a pending group membership to accepted.
func (r *MembershipRepository) AcceptGroupMembership(username, groupName, actor string) error {
	return r.db.Exec(`
		UPDATE groupmembers SET status = ?, updated_by = ?, updated_app = ?
		WHERE username = ? AND deleted_at IS NULL AND status = ?
		AND group_id IN (SELECT id FROM groups WHERE group_name = ? AND deleted_at IS NULL)
	`, models.MembershipStatusAccepted, actor, models.AppName,
		username, models.MembershipStatusPending, groupName).Error
}
