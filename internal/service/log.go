package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"fitness-community-backend/internal/database/models"
	apperrors "fitness-community-backend/internal/errors"
	"fitness-community-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogService handles business logic for exercise logs
type LogService struct {
	repo      repository.LogRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewLogService creates a new log service
func NewLogService(repo repository.LogRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *LogService {
	return &LogService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateLogRequest represents the request to record an exercise log
type CreateLogRequest struct {
	Name        string              `json:"name" validate:"required,max=40"`
	Location    string              `json:"location" validate:"max=50"`
	Date        string              `json:"date" validate:"required"`
	Type        models.ExerciseType `json:"type" validate:"required"`
	Distance    float64             `json:"distance" validate:"gte=0"`
	Metric      models.Metric       `json:"metric"`
	Time        string              `json:"time" validate:"omitempty,len=8"`
	Feel        int                 `json:"feel" validate:"required"`
	Description string              `json:"description"`
}

// UpdateLogRequest represents the request to update an exercise log
type UpdateLogRequest struct {
	Name        string              `json:"name" validate:"required,max=40"`
	Location    string              `json:"location" validate:"max=50"`
	Date        string              `json:"date" validate:"required"`
	Type        models.ExerciseType `json:"type" validate:"required"`
	Distance    float64             `json:"distance" validate:"gte=0"`
	Metric      models.Metric       `json:"metric"`
	Time        string              `json:"time" validate:"omitempty,len=8"`
	Feel        int                 `json:"feel" validate:"required"`
	Description string              `json:"description"`
}

// LogResponse represents the response for exercise log operations
type LogResponse struct {
	ID          uuid.UUID           `json:"log_id"`
	Username    string              `json:"username"`
	Name        string              `json:"name"`
	Location    string              `json:"location"`
	Date        string              `json:"date"`
	Type        models.ExerciseType `json:"type"`
	Distance    float64             `json:"distance"`
	Metric      models.Metric       `json:"metric"`
	Miles       float64             `json:"miles"`
	Time        string              `json:"time"`
	Pace        string              `json:"pace"`
	Feel        int                 `json:"feel"`
	Description string              `json:"description"`
	Comments    []CommentResponse   `json:"comments,omitempty"`
}

// LogListResponse represents a paginated list of exercise logs
type LogListResponse struct {
	Logs     []LogResponse `json:"logs"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// Create records a new exercise log for a user. The mileage is derived
// from the distance and metric, and the pace from the mileage and the
// hh:mm:ss duration when both are present.
func (s *LogService) Create(username string, req *CreateLogRequest) (*LogResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.validateFields(req.Type, req.Metric, req.Feel, req.Time); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date", "must be in YYYY-MM-DD format")
	}

	exists, err := s.userRepo.Exists(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}

	metric := req.Metric
	if metric == "" {
		metric = models.MetricMiles
	}
	miles := toMiles(req.Distance, metric)

	log := &models.ExerciseLog{
		Username:    username,
		Name:        req.Name,
		Location:    req.Location,
		Date:        date,
		Type:        req.Type,
		Distance:    req.Distance,
		Metric:      metric,
		Miles:       miles,
		Time:        req.Time,
		Pace:        computePace(req.Time, miles),
		Feel:        req.Feel,
		Description: req.Description,
	}
	log.StampCreate(username)

	if err := s.repo.Create(log); err != nil {
		return nil, fmt.Errorf("failed to create log: %w", err)
	}

	return s.toResponse(log), nil
}

// GetByID retrieves an exercise log by ID
func (s *LogService) GetByID(id uuid.UUID) (*LogResponse, error) {
	log, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLogNotFound
		}
		return nil, fmt.Errorf("failed to get log: %w", err)
	}

	return s.toResponse(log), nil
}

// GetByUsername retrieves a user's exercise logs, newest first
func (s *LogService) GetByUsername(username string, page, pageSize int) (*LogListResponse, error) {
	exists, err := s.userRepo.Exists(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}

	page, pageSize = normalizePage(page, pageSize)
	logs, total, err := s.repo.GetByUsername(username, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get logs: %w", err)
	}

	return s.toListResponse(logs, total, page, pageSize), nil
}

// GetAll retrieves all exercise logs, newest first
func (s *LogService) GetAll(page, pageSize int) (*LogListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)
	logs, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get logs: %w", err)
	}

	return s.toListResponse(logs, total, page, pageSize), nil
}

// Update updates an exercise log. Only the log's owner may update it;
// mileage and pace are recomputed from the incoming fields.
func (s *LogService) Update(id uuid.UUID, req *UpdateLogRequest, actor string) (*LogResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.validateFields(req.Type, req.Metric, req.Feel, req.Time); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date", "must be in YYYY-MM-DD format")
	}

	log, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLogNotFound
		}
		return nil, fmt.Errorf("failed to get log: %w", err)
	}
	if log.Username != actor {
		return nil, apperrors.NewAuthorizationError(actor, log.Username)
	}

	metric := req.Metric
	if metric == "" {
		metric = models.MetricMiles
	}
	miles := toMiles(req.Distance, metric)

	log.Name = req.Name
	log.Location = req.Location
	log.Date = date
	log.Type = req.Type
	log.Distance = req.Distance
	log.Metric = metric
	log.Miles = miles
	log.Time = req.Time
	log.Pace = computePace(req.Time, miles)
	log.Feel = req.Feel
	log.Description = req.Description
	log.StampUpdate(actor)

	if err := s.repo.Update(log); err != nil {
		return nil, fmt.Errorf("failed to update log: %w", err)
	}

	return s.toResponse(log), nil
}

// Delete soft-deletes an exercise log. Only the log's owner may delete it.
func (s *LogService) Delete(id uuid.UUID, actor string) error {
	log, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLogNotFound
		}
		return fmt.Errorf("failed to get log: %w", err)
	}
	if log.Username != actor {
		return apperrors.NewAuthorizationError(actor, log.Username)
	}

	if err := s.repo.Delete(id, actor); err != nil {
		return fmt.Errorf("failed to delete log: %w", err)
	}
	return nil
}

func (s *LogService) validateFields(exerciseType models.ExerciseType, metric models.Metric, feel int, duration string) error {
	if !exerciseType.IsValid() {
		return apperrors.ErrInvalidExerciseType
	}
	if metric != "" && !metric.IsValid() {
		return apperrors.ErrInvalidMetric
	}
	if feel < 1 || feel > 10 {
		return apperrors.ErrInvalidFeel
	}
	if duration != "" {
		if _, err := parseDuration(duration); err != nil {
			return apperrors.NewValidationError("time", "must be in hh:mm:ss format")
		}
	}
	return nil
}

// toMiles converts a distance in the given metric to miles, rounded to
// two decimal places to match the column precision.
func toMiles(distance float64, metric models.Metric) float64 {
	return math.Round(distance*metric.MilesPerUnit()*100) / 100
}

// parseDuration parses an hh:mm:ss string into total seconds.
func parseDuration(value string) (int, error) {
	var hours, minutes, seconds int
	n, err := fmt.Sscanf(value, "%02d:%02d:%02d", &hours, &minutes, &seconds)
	if err != nil || n != 3 {
		return 0, fmt.Errorf("invalid duration %q", value)
	}
	if minutes > 59 || seconds > 59 || hours < 0 || minutes < 0 || seconds < 0 {
		return 0, fmt.Errorf("invalid duration %q", value)
	}
	return hours*3600 + minutes*60 + seconds, nil
}

// computePace derives a per-mile pace string from an hh:mm:ss duration
// and a mileage. Empty durations or zero mileage produce an empty pace.
func computePace(duration string, miles float64) string {
	if duration == "" || miles <= 0 {
		return ""
	}
	total, err := parseDuration(duration)
	if err != nil {
		return ""
	}
	perMile := int(math.Round(float64(total) / miles))
	return fmt.Sprintf("%02d:%02d:%02d", perMile/3600, (perMile%3600)/60, perMile%60)
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 25
	}
	return page, pageSize
}

func (s *LogService) toResponse(log *models.ExerciseLog) *LogResponse {
	resp := &LogResponse{
		ID:          log.ID,
		Username:    log.Username,
		Name:        log.Name,
		Location:    log.Location,
		Date:        log.Date.Format("2006-01-02"),
		Type:        log.Type,
		Distance:    log.Distance,
		Metric:      log.Metric,
		Miles:       log.Miles,
		Time:        log.Time,
		Pace:        log.Pace,
		Feel:        log.Feel,
		Description: log.Description,
	}
	for _, comment := range log.Comments {
		resp.Comments = append(resp.Comments, *commentToResponse(&comment))
	}
	return resp
}

func (s *LogService) toListResponse(logs []models.ExerciseLog, total int64, page, pageSize int) *LogListResponse {
	responses := make([]LogResponse, len(logs))
	for i, log := range logs {
		responses[i] = *s.toResponse(&log)
	}
	return &LogListResponse{
		Logs:     responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
