package service

import (
	"errors"
	"fmt"

	"fitness-community-backend/internal/database/models"
	apperrors "fitness-community-backend/internal/errors"
	"fitness-community-backend/internal/repository"

	"gorm.io/gorm"
)

// StatsService compiles mileage and feel statistics over rolling time
// windows for users and groups.
type StatsService struct {
	logRepo   repository.LogRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	groupRepo repository.GroupRepositoryInterface
}

// NewStatsService creates a new statistics service
func NewStatsService(logRepo repository.LogRepositoryInterface, userRepo repository.UserRepositoryInterface, groupRepo repository.GroupRepositoryInterface) *StatsService {
	return &StatsService{
		logRepo:   logRepo,
		userRepo:  userRepo,
		groupRepo: groupRepo,
	}
}

// StatsResponse is the fully populated statistics record. Every field is a
// number; windows with no matching logs report 0 rather than null.
type StatsResponse struct {
	MilesAllTime      float64 `json:"miles_all_time"`
	MilesPastYear     float64 `json:"miles_past_year"`
	MilesPastMonth    float64 `json:"miles_past_month"`
	MilesPastWeek     float64 `json:"miles_past_week"`
	RunMilesAllTime   float64 `json:"run_miles_all_time"`
	RunMilesPastYear  float64 `json:"run_miles_past_year"`
	RunMilesPastMonth float64 `json:"run_miles_past_month"`
	RunMilesPastWeek  float64 `json:"run_miles_past_week"`
	FeelAllTime       float64 `json:"feel_all_time"`
	FeelPastYear      float64 `json:"feel_past_year"`
	FeelPastMonth     float64 `json:"feel_past_month"`
	FeelPastWeek      float64 `json:"feel_past_week"`
}

// statsIntervals orders the four windows the compiler always reports:
// all-time, year, month, week.
var statsIntervals = []string{"", IntervalYear, IntervalMonth, IntervalWeek}

// CompileUserStats produces the twelve-field statistics record for a user,
// using the user's week-start preference for the week window. The user's
// existence is verified here; a valid user with no logs gets all zeros.
func (s *StatsService) CompileUserStats(username string) (*StatsResponse, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	run := models.ExerciseTypeRun
	stats := &StatsResponse{}
	for i, interval := range statsIntervals {
		since := WindowStart(interval, user.WeekStart)

		miles, err := s.logRepo.MileageSum(username, nil, since)
		if err != nil {
			return nil, fmt.Errorf("failed to sum mileage: %w", err)
		}
		runMiles, err := s.logRepo.MileageSum(username, &run, since)
		if err != nil {
			return nil, fmt.Errorf("failed to sum run mileage: %w", err)
		}
		feel, err := s.logRepo.FeelAverage(username, since)
		if err != nil {
			return nil, fmt.Errorf("failed to average feel: %w", err)
		}

		stats.set(i, miles, runMiles, feel)
	}

	return stats, nil
}

// CompileGroupStats produces the statistics record for a group, aggregating
// over its accepted members and using the group's week-start preference.
func (s *StatsService) CompileGroupStats(groupName string) (*StatsResponse, error) {
	group, err := s.groupRepo.GetByName(groupName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	run := models.ExerciseTypeRun
	stats := &StatsResponse{}
	for i, interval := range statsIntervals {
		since := WindowStart(interval, group.WeekStart)

		miles, err := s.logRepo.GroupMileageSum(group.ID, nil, since)
		if err != nil {
			return nil, fmt.Errorf("failed to sum group mileage: %w", err)
		}
		runMiles, err := s.logRepo.GroupMileageSum(group.ID, &run, since)
		if err != nil {
			return nil, fmt.Errorf("failed to sum group run mileage: %w", err)
		}
		feel, err := s.logRepo.GroupFeelAverage(group.ID, since)
		if err != nil {
			return nil, fmt.Errorf("failed to average group feel: %w", err)
		}

		stats.set(i, miles, runMiles, feel)
	}

	return stats, nil
}

// set assigns one window's aggregates by interval position (all-time, year,
// month, week).
func (r *StatsResponse) set(window int, miles, runMiles, feel float64) {
	switch window {
	case 0:
		r.MilesAllTime, r.RunMilesAllTime, r.FeelAllTime = miles, runMiles, feel
	case 1:
		r.MilesPastYear, r.RunMilesPastYear, r.FeelPastYear = miles, runMiles, feel
	case 2:
		r.MilesPastMonth, r.RunMilesPastMonth, r.FeelPastMonth = miles, runMiles, feel
	case 3:
		r.MilesPastWeek, r.RunMilesPastWeek, r.FeelPastWeek = miles, runMiles, feel
	}
}

// LeaderboardResponse ranks a group's members by mileage over a window.
type LeaderboardResponse struct {
	GroupName string                        `json:"group_name"`
	Interval  string                        `json:"interval,omitempty"`
	Ranks     []repository.LeaderboardEntry `json:"ranks"`
}

// CompileLeaderboard ranks a group's accepted members by miles over the
// requested interval. An unrecognized interval falls through to all-time,
// matching the window resolver's contract.
func (s *StatsService) CompileLeaderboard(groupName, interval string) (*LeaderboardResponse, error) {
	group, err := s.groupRepo.GetByName(groupName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	since := WindowStart(interval, group.WeekStart)
	ranks, err := s.logRepo.Leaderboard(group.ID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to compile leaderboard: %w", err)
	}

	return &LeaderboardResponse{
		GroupName: group.GroupName,
		Interval:  interval,
		Ranks:     ranks,
	}, nil
}
