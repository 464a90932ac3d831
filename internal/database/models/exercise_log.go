package models

import "time"

// ExerciseLog represents a single logged exercise session. Miles is computed
// from the recorded distance and metric when the log is created or updated;
// all statistics aggregate over it rather than the raw distance.
type ExerciseLog struct {
	AuditModel
	Username    string       `json:"username" gorm:"not null;size:20;index" validate:"required"`
	Name        string       `json:"name" gorm:"not null;size:40" validate:"required,max=40"`
	Location    string       `json:"location" gorm:"size:50"`
	Date        time.Time    `json:"date" gorm:"type:date;not null;index" validate:"required"`
	Type        ExerciseType `json:"type" gorm:"type:varchar(10);not null;default:'run'" validate:"required"`
	Distance    float64      `json:"distance" gorm:"type:decimal(6,2)"`
	Metric      Metric       `json:"metric" gorm:"type:varchar(10);default:'miles'"`
	Miles       float64      `json:"miles" gorm:"type:decimal(6,2);not null"`
	Time        string       `json:"time" gorm:"size:8"` // hh:mm:ss
	Pace        string       `json:"pace" gorm:"size:8"` // per-mile hh:mm:ss
	Feel        int          `json:"feel" gorm:"not null;default:6" validate:"min=1,max=10"`
	Description string       `json:"description" gorm:"type:text"`

	// Relationships
	User     User      `json:"-" gorm:"foreignKey:Username;references:Username"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:LogID"`
}

// TableName returns the table name for ExerciseLog
func (ExerciseLog) TableName() string {
	return "logs"
}
