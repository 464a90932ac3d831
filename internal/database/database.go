package database

import (
	"fmt"
	"time"

	"fitness-community-backend/internal/database/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipAutoMigrate bool
}

// normalizeOptions fills in defaults for unset fields. The zero value
// keeps schema migration enabled.
func normalizeOptions(opts *Options) *Options {
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	return opts
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	opts = normalizeOptions(opts)

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (used by AuditModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	// AutoMigrate all models. Order matters only for foreign keys: referenced
	// tables first.
	if !opts.SkipAutoMigrate {
		all := []interface{}{
			&models.User{},
			&models.Team{},
			&models.Group{},
			&models.TeamGroup{},
			&models.TeamMember{},
			&models.GroupMember{},
			&models.ExerciseLog{},
			&models.Comment{},
			&models.Notification{},
			&models.Message{},
			&models.Flair{},
			&models.ActivationCode{},
			&models.ForgotPassword{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}

// SafeCommit runs fn inside a transaction and converts any failure into a
// boolean. GORM rolls the transaction back when fn returns an error, so
// callers never see a half-applied batch; the underlying error is only
// logged, matching the uniform "did it stick?" contract every mutating
// operation shares.
func SafeCommit(db *gorm.DB, fn func(tx *gorm.DB) error) bool {
	if err := db.Transaction(fn); err != nil {
		logrus.WithError(err).Error("transaction rolled back")
		return false
	}
	return true
}
