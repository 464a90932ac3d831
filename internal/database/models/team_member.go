package models

// TeamMember is a (user, team) membership pair. Rows created through the
// membership transition flow start pending with the user role; promoting
// them is a separate administrative action.
type TeamMember struct {
	AuditModel
	Username string           `json:"username" gorm:"not null;size:20;index" validate:"required"`
	TeamName string           `json:"team_name" gorm:"column:team_name;not null;size:31;index" validate:"required"`
	Status   MembershipStatus `json:"status" gorm:"type:varchar(10);not null;default:'pending'"`
	UserRole MembershipRole   `json:"user" gorm:"column:user_role;type:varchar(10);not null;default:'user'"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:Username;references:Username"`
	Team Team `json:"-" gorm:"foreignKey:TeamName;references:Name"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "teammembers"
}
