package models

// Group represents a training group. Groups belong to zero or more teams
// through the TeamGroup join relation. The group's week_start preference
// parametrizes group-level statistics.
type Group struct {
	AuditModel
	GroupName   string    `json:"group_name" gorm:"column:group_name;uniqueIndex;not null;size:20" validate:"required,max=20"`
	GroupTitle  string    `json:"group_title" gorm:"column:group_title;not null;size:50" validate:"required,max=50"`
	Description string    `json:"description" gorm:"type:text"`
	WeekStart   WeekStart `json:"week_start" gorm:"column:week_start;type:varchar(10);not null;default:'monday'"`

	// Relationships
	Members    []GroupMember `json:"members,omitempty" gorm:"foreignKey:GroupID"`
	TeamGroups []TeamGroup   `json:"team_groups,omitempty" gorm:"foreignKey:GroupName;references:GroupName"`
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}
