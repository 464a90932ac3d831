package models

// TeamGroup joins a group to the team it belongs to.
type TeamGroup struct {
	AuditModel
	TeamName  string `json:"team_name" gorm:"column:team_name;not null;size:31;uniqueIndex:idx_teamgroups_pair" validate:"required"`
	GroupName string `json:"group_name" gorm:"column:group_name;not null;size:20;uniqueIndex:idx_teamgroups_pair" validate:"required"`

	// Relationships
	Team  Team  `json:"-" gorm:"foreignKey:TeamName;references:Name"`
	Group Group `json:"-" gorm:"foreignKey:GroupName;references:GroupName"`
}

// TableName returns the table name for TeamGroup
func (TeamGroup) TableName() string {
	return "teamgroups"
}
