package models

import "github.com/google/uuid"

// GroupMember is a (user, group) membership pair with the same
// status/role lifecycle as TeamMember.
type GroupMember struct {
	AuditModel
	Username string           `json:"username" gorm:"not null;size:20;index" validate:"required"`
	GroupID  uuid.UUID        `json:"group_id" gorm:"type:uuid;not null;index" validate:"required"`
	Status   MembershipStatus `json:"status" gorm:"type:varchar(10);not null;default:'pending'"`
	UserRole MembershipRole   `json:"user" gorm:"column:user_role;type:varchar(10);not null;default:'user'"`

	// Relationships
	User  User  `json:"-" gorm:"foreignKey:Username;references:Username"`
	Group Group `json:"-" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GroupMember
func (GroupMember) TableName() string {
	return "groupmembers"
}
