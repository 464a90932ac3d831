package testutils

import (
	"time"

	"fitness-community-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles the factories for convenient access in tests
type FactorySet struct {
	User  *UserFactory
	Team  *TeamFactory
	Group *GroupFactory
	Log   *LogFactory
}

// NewFactorySet creates a FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:  NewUserFactory(),
		Team:  NewTeamFactory(),
		Group: NewGroupFactory(),
		Log:   NewLogFactory(),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Usernames are derived
// from a UUID fragment so parallel inserts never collide.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	username := "u" + id.String()[:7]

	return &models.User{
		Username:     username,
		FirstName:    "Andy",
		LastName:     "Runner",
		Email:        username + "@test.com",
		Password:     "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		WeekStart:    models.WeekStartMonday,
		Activated:    true,
		EmailUpdates: true,
	}
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	user.Email = username + "@test.com"
	return user
}

// WithWeekStart sets the user's week-start preference
func (f *UserFactory) WithWeekStart(weekStart models.WeekStart) *models.User {
	user := f.Create()
	user.WeekStart = weekStart
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	name := "team-" + uuid.New().String()[:8]
	return &models.Team{
		Name:  name,
		Title: "Test Team",
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a test Group with default values
func (f *GroupFactory) Create() *models.Group {
	name := "grp" + uuid.New().String()[:8]
	return &models.Group{
		GroupName:   name,
		GroupTitle:  "Test Group",
		Description: "A test group",
		WeekStart:   models.WeekStartMonday,
	}
}

// WithName sets a custom group name
func (f *GroupFactory) WithName(name string) *models.Group {
	group := f.Create()
	group.GroupName = name
	return group
}

// WithWeekStart sets the group's week-start
func (f *GroupFactory) WithWeekStart(weekStart models.WeekStart) *models.Group {
	group := f.Create()
	group.WeekStart = weekStart
	return group
}

// LogFactory provides methods to create test ExerciseLog data
type LogFactory struct{}

// NewLogFactory creates a new LogFactory
func NewLogFactory() *LogFactory {
	return &LogFactory{}
}

// Create creates a test ExerciseLog with default values for the given user
func (f *LogFactory) Create(username string) *models.ExerciseLog {
	return &models.ExerciseLog{
		Username: username,
		Name:     "Morning Run",
		Location: "Riverside",
		Date:     time.Now().Truncate(24 * time.Hour),
		Type:     models.ExerciseTypeRun,
		Distance: 5.0,
		Metric:   models.MetricMiles,
		Miles:    5.0,
		Time:     "00:40:00",
		Pace:     "00:08:00",
		Feel:     6,
	}
}

// WithMiles sets the log's distance and mileage
func (f *LogFactory) WithMiles(username string, miles float64) *models.ExerciseLog {
	log := f.Create(username)
	log.Distance = miles
	log.Miles = miles
	return log
}

// OnDate sets the log's date
func (f *LogFactory) OnDate(username string, date time.Time) *models.ExerciseLog {
	log := f.Create(username)
	log.Date = date
	return log
}
