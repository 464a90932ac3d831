package models

// Flair is a short honorific displayed next to a user's name.
type Flair struct {
	AuditModel
	Username string `json:"username" gorm:"not null;size:20;index" validate:"required"`
	Flair    string `json:"flair" gorm:"size:50" validate:"required,max=50"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:Username;references:Username"`
}

// TableName returns the table name for Flair
func (Flair) TableName() string {
	return "flair"
}
