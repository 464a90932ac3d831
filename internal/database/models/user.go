package models

// User represents a registered athlete. The username is the identity every
// other table keys on, so it carries a full unique index rather than a
// partial one; referencing tables declare foreign keys against it.
type User struct {
	AuditModel
	Username      string    `json:"username" gorm:"uniqueIndex;not null;size:20" validate:"required,min=1,max=20"`
	FirstName     string    `json:"first" gorm:"column:first;not null;size:30" validate:"required,max=30"`
	LastName      string    `json:"last" gorm:"column:last;not null;size:30" validate:"required,max=30"`
	Email         string    `json:"email" gorm:"size:50" validate:"omitempty,email,max=50"`
	Password      string    `json:"-" gorm:"not null;size:255"`
	ClassYear     *int      `json:"class_year,omitempty" gorm:"column:class_year"`
	Location      string    `json:"location" gorm:"size:50"`
	FavoriteEvent string    `json:"favorite_event" gorm:"column:favorite_event;size:20"`
	Description   string    `json:"description" gorm:"type:text"`
	WeekStart     WeekStart `json:"week_start" gorm:"column:week_start;type:varchar(10);not null;default:'monday'"`
	Activated     bool      `json:"activated" gorm:"default:false"`
	EmailUpdates  bool      `json:"email_updates" gorm:"default:true"`

	// Relationships
	Logs         []ExerciseLog `json:"logs,omitempty" gorm:"foreignKey:Username;references:Username"`
	GroupMembers []GroupMember `json:"group_members,omitempty" gorm:"foreignKey:Username;references:Username"`
	TeamMembers  []TeamMember  `json:"team_members,omitempty" gorm:"foreignKey:Username;references:Username"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
