package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a remark left on another athlete's exercise log.
type Comment struct {
	AuditModel
	Username  string    `json:"username" gorm:"not null;size:20;index" validate:"required"`
	FirstName string    `json:"first" gorm:"column:first;not null;size:30"`
	LastName  string    `json:"last" gorm:"column:last;not null;size:30"`
	LogID     uuid.UUID `json:"log_id" gorm:"type:uuid;not null;index" validate:"required"`
	Time      time.Time `json:"time" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text"`

	// Relationships
	Log ExerciseLog `json:"-" gorm:"foreignKey:LogID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
