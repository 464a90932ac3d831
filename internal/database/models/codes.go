package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivationCode is an invite code a new user must present at registration.
// Codes optionally place the new user into a group.
type ActivationCode struct {
	AuditModel
	ActivationCode string     `json:"activation_code" gorm:"column:activation_code;uniqueIndex;not null;size:8" validate:"required,len=8"`
	Email          string     `json:"email" gorm:"size:50" validate:"omitempty,email,max=50"`
	GroupID        *uuid.UUID `json:"group_id,omitempty" gorm:"type:uuid;index"`
	Expiration     time.Time  `json:"expiration_date" gorm:"not null"`
}

// TableName returns the table name for ActivationCode
func (ActivationCode) TableName() string {
	return "codes"
}

// ForgotPassword is a short-lived code for resetting a forgotten password.
type ForgotPassword struct {
	AuditModel
	ForgotCode string    `json:"forgot_code" gorm:"column:forgot_code;uniqueIndex;not null;size:8" validate:"required,len=8"`
	Username   string    `json:"username" gorm:"not null;size:20;index" validate:"required"`
	Expiration time.Time `json:"expiration_date" gorm:"not null"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:Username;references:Username"`
}

// TableName returns the table name for ForgotPassword
func (ForgotPassword) TableName() string {
	return "forgotpassword"
}
