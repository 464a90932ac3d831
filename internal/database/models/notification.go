package models

import "time"

// Notification is an in-app alert for a user, e.g. a new comment or a
// group membership acceptance.
type Notification struct {
	AuditModel
	Username    string    `json:"username" gorm:"not null;size:20;index" validate:"required"`
	Time        time.Time `json:"time" gorm:"not null"`
	Link        string    `json:"link" gorm:"size:127"`
	Viewed      bool      `json:"viewed" gorm:"not null;default:false"`
	Description string    `json:"description" gorm:"type:text"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
