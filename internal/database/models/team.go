package models

// Team represents a college or club team, the top level of the group
// hierarchy.
type Team struct {
	AuditModel
	Name  string `json:"name" gorm:"uniqueIndex;not null;size:31" validate:"required,max=31"`
	Title string `json:"title" gorm:"not null;size:127" validate:"required,max=127"`

	// Relationships
	TeamGroups []TeamGroup  `json:"team_groups,omitempty" gorm:"foreignKey:TeamName;references:Name"`
	Members    []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamName;references:Name"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
