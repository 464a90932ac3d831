package repository

import (
	"time"

	"fitness-community-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogRepository handles database operations for exercise logs, including the
// aggregate queries behind user and group statistics.
type LogRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new exercise log repository
func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

// Create creates a new exercise log
func (r *LogRepository) Create(log *models.ExerciseLog) error {
	return r.db.Create(log).Error
}

// GetByID retrieves an exercise log by ID
func (r *LogRepository) GetByID(id uuid.UUID) (*models.ExerciseLog, error) {
	var log models.ExerciseLog
	err := r.db.First(&log, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// GetByUsername retrieves a user's exercise logs, newest first, with pagination
func (r *LogRepository) GetByUsername(username string, limit, offset int) ([]models.ExerciseLog, int64, error) {
	var logs []models.ExerciseLog
	var total int64

	if err := r.db.Model(&models.ExerciseLog{}).Where("username = ?", username).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("username = ?", username).
		Order("date DESC, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// GetAll retrieves all exercise logs, newest first, with pagination
func (r *LogRepository) GetAll(limit, offset int) ([]models.ExerciseLog, int64, error) {
	var logs []models.ExerciseLog
	var total int64

	if err := r.db.Model(&models.ExerciseLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("date DESC, created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// Update updates an exercise log
func (r *LogRepository) Update(log *models.ExerciseLog) error {
	return r.db.Save(log).Error
}

// Delete soft-deletes an exercise log, stamping the deletion audit fields.
func (r *LogRepository) Delete(id uuid.UUID, actor string) error {
	return r.db.Model(&models.ExerciseLog{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"deleted_at":  time.Now(),
			"deleted_by":  actor,
			"deleted_app": models.AppName,
		}).Error
}

// MileageSum returns the total miles a user logged since the given date.
// A nil since means all-time; a nil exerciseType sums every type. Null
// aggregates (no matching rows) coerce to 0.
func (r *LogRepository) MileageSum(username string, exerciseType *models.ExerciseType, since *time.Time) (float64, error) {
	query := r.db.Model(&models.ExerciseLog{}).
		Select("COALESCE(SUM(miles), 0)").
		Where("username = ?", username)
	if exerciseType != nil {
		query = query.Where("type = ?", *exerciseType)
	}
	if since != nil {
		query = query.Where("date >= ?", *since)
	}

	var total float64
	err := query.Scan(&total).Error
	return total, err
}

// FeelAverage returns the average feel rating of a user's logs since the
// given date, 0 when the user has no matching logs.
func (r *LogRepository) FeelAverage(username string, since *time.Time) (float64, error) {
	query := r.db.Model(&models.ExerciseLog{}).
		Select("COALESCE(AVG(feel), 0)").
		Where("username = ?", username)
	if since != nil {
		query = query.Where("date >= ?", *since)
	}

	var avg float64
	err := query.Scan(&avg).Error
	return avg, err
}

// groupScope joins logs against accepted, live group memberships.
func (r *LogRepository) groupScope(groupID uuid.UUID) *gorm.DB {
	return r.db.Model(&models.ExerciseLog{}).
		Joins("JOIN groupmembers ON logs.username = groupmembers.username").
		Where("groupmembers.group_id = ? AND groupmembers.status = ? AND groupmembers.deleted_at IS NULL",
			groupID, models.MembershipStatusAccepted)
}

// GroupMileageSum returns the total miles logged by a group's accepted
// members since the given date.
func (r *LogRepository) GroupMileageSum(groupID uuid.UUID, exerciseType *models.ExerciseType, since *time.Time) (float64, error) {
	query := r.groupScope(groupID).Select("COALESCE(SUM(logs.miles), 0)")
	if exerciseType != nil {
		query = query.Where("logs.type = ?", *exerciseType)
	}
	if since != nil {
		query = query.Where("logs.date >= ?", *since)
	}

	var total float64
	err := query.Scan(&total).Error
	return total, err
}

// GroupFeelAverage returns the average feel rating across a group's
// accepted members since the given date.
func (r *LogRepository) GroupFeelAverage(groupID uuid.UUID, since *time.Time) (float64, error) {
	query := r.groupScope(groupID).Select("COALESCE(AVG(logs.feel), 0)")
	if since != nil {
		query = query.Where("logs.date >= ?", *since)
	}

	var avg float64
	err := query.Scan(&avg).Error
	return avg, err
}

// LeaderboardEntry is one member's mileage rollup for a group leaderboard.
type LeaderboardEntry struct {
	Username  string  `json:"username"`
	FirstName string  `json:"first"`
	LastName  string  `json:"last"`
	Miles     float64 `json:"miles"`
	RunMiles  float64 `json:"run_miles"`
}

// Leaderboard ranks a group's accepted members by miles logged since the
// given date, most miles first.
func (r *LogRepository) Leaderboard(groupID uuid.UUID, since *time.Time) ([]LeaderboardEntry, error) {
	query := r.db.Table("logs").
		Select(`logs.username,
			MAX(users.first) AS first_name,
			MAX(users.last) AS last_name,
			COALESCE(SUM(logs.miles), 0) AS miles,
			COALESCE(SUM(CASE WHEN logs.type = 'run' THEN logs.miles ELSE 0 END), 0) AS run_miles`).
		Joins("JOIN groupmembers ON logs.username = groupmembers.username").
		Joins("JOIN users ON logs.username = users.username").
		Where("groupmembers.group_id = ? AND groupmembers.status = ? AND groupmembers.deleted_at IS NULL",
			groupID, models.MembershipStatusAccepted).
		Where("logs.deleted_at IS NULL AND users.deleted_at IS NULL").
		Group("logs.username").
		Order("miles DESC")
	if since != nil {
		query = query.Where("logs.date >= ?", *since)
	}

	var entries []LeaderboardEntry
	err := query.Scan(&entries).Error
	return entries, err
}
