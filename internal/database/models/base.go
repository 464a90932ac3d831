package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppName is the application identifier stamped into audit columns for every
// row the API creates or modifies.
const AppName = "fitness-community-api"

// AuditModel provides common fields for all mutable tables: a UUID primary
// key, soft deletion, and the created/updated/deleted audit triples. The
// actor fields are always set by the service layer, never inferred here.
type AuditModel struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt  time.Time      `json:"created_at"`
	CreatedBy  string         `json:"created_by" gorm:"size:40"`
	CreatedApp string         `json:"created_app" gorm:"size:40"`
	UpdatedAt  time.Time      `json:"updated_at"`
	UpdatedBy  string         `json:"updated_by" gorm:"size:40"`
	UpdatedApp string         `json:"updated_app" gorm:"size:40"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
	DeletedBy  string         `json:"deleted_by,omitempty" gorm:"size:40"`
	DeletedApp string         `json:"deleted_app,omitempty" gorm:"size:40"`
}

// BeforeCreate sets the UUID if not already set
func (base *AuditModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// StampCreate fills the creation audit triple.
func (base *AuditModel) StampCreate(actor string) {
	base.CreatedBy = actor
	base.CreatedApp = AppName
	base.UpdatedBy = actor
	base.UpdatedApp = AppName
}

// StampUpdate fills the update audit triple.
func (base *AuditModel) StampUpdate(actor string) {
	base.UpdatedBy = actor
	base.UpdatedApp = AppName
}
