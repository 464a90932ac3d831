package models

import "time"

// Message is a post on a group's message feed.
type Message struct {
	AuditModel
	Username  string    `json:"username" gorm:"not null;size:20;index" validate:"required"`
	FirstName string    `json:"first" gorm:"column:first;not null;size:30"`
	LastName  string    `json:"last" gorm:"column:last;not null;size:30"`
	GroupName string    `json:"group_name" gorm:"column:group_name;not null;size:20;index" validate:"required"`
	Time      time.Time `json:"time" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text"`
}

// TableName returns the table name for Message
func (Message) TableName() string {
	return "messages"
}
