package models

// WeekStart is the per-user/per-group choice of which weekday begins the
// "week" statistics window.
type WeekStart string

const (
	WeekStartMonday WeekStart = "monday"
	WeekStartSunday WeekStart = "sunday"
)

// ExerciseType categorizes an exercise log entry.
type ExerciseType string

const (
	ExerciseTypeRun   ExerciseType = "run"
	ExerciseTypeBike  ExerciseType = "bike"
	ExerciseTypeSwim  ExerciseType = "swim"
	ExerciseTypeOther ExerciseType = "other"
)

// Metric is the distance unit an exercise log was recorded in.
type Metric string

const (
	MetricMiles      Metric = "miles"
	MetricKilometers Metric = "kilometers"
	MetricMeters     Metric = "meters"
)

// MembershipStatus tracks the lifecycle of a team or group membership.
// New memberships created through the membership transition flow always
// start as pending.
type MembershipStatus string

const (
	MembershipStatusPending  MembershipStatus = "pending"
	MembershipStatusAccepted MembershipStatus = "accepted"
)

// MembershipRole is the role a user holds within a team or group.
type MembershipRole string

const (
	MembershipRoleUser  MembershipRole = "user"
	MembershipRoleAdmin MembershipRole = "admin"
)

// IsValid checks if the WeekStart is one of the two recognized values
func (w WeekStart) IsValid() bool {
	return w == WeekStartMonday || w == WeekStartSunday
}

// IsValid checks if the ExerciseType is valid
func (e ExerciseType) IsValid() bool {
	switch e {
	case ExerciseTypeRun, ExerciseTypeBike, ExerciseTypeSwim, ExerciseTypeOther:
		return true
	}
	return false
}

// IsValid checks if the Metric is valid
func (m Metric) IsValid() bool {
	switch m {
	case MetricMiles, MetricKilometers, MetricMeters:
		return true
	}
	return false
}

// IsValid checks if the MembershipStatus is valid
func (s MembershipStatus) IsValid() bool {
	return s == MembershipStatusPending || s == MembershipStatusAccepted
}

// IsValid checks if the MembershipRole is valid
func (r MembershipRole) IsValid() bool {
	return r == MembershipRoleUser || r == MembershipRoleAdmin
}

// MilesPerUnit converts a distance in the metric to miles.
func (m Metric) MilesPerUnit() float64 {
	switch m {
	case MetricKilometers:
		return 0.621371
	case MetricMeters:
		return 0.000621371
	default:
		return 1
	}
}
