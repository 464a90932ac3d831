package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this username"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors. The message
// names both the acting and the target identity so the route layer can
// surface the mismatch.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// DependencyError represents a failure of an external collaborator
// (the authentication service or the email function).
type DependencyError struct {
	Message string
}

func (e *DependencyError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound           = &NotFoundError{Entity: "user"}
	ErrLogNotFound            = &NotFoundError{Entity: "exercise log"}
	ErrGroupNotFound          = &NotFoundError{Entity: "group"}
	ErrTeamNotFound           = &NotFoundError{Entity: "team"}
	ErrCommentNotFound        = &NotFoundError{Entity: "comment"}
	ErrNotificationNotFound   = &NotFoundError{Entity: "notification"}
	ErrMessageNotFound        = &NotFoundError{Entity: "message"}
	ErrFlairNotFound          = &NotFoundError{Entity: "flair"}
	ErrActivationCodeNotFound = &NotFoundError{Entity: "activation code"}
	ErrForgotPasswordNotFound = &NotFoundError{Entity: "forgot password code"}
)

// Already Exists Errors
var (
	ErrUserExists           = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrGroupExists          = &AlreadyExistsError{Entity: "group", Context: "with this name"}
	ErrTeamExists           = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrActivationCodeExists = &AlreadyExistsError{Entity: "activation code", Context: ""}
)

// Business Logic Errors
var (
	ErrMembershipUpdateFailed  = &ValidationError{Message: "failed to update group and team memberships"}
	ErrInvalidWeekStart        = &ValidationError{Field: "week_start", Message: "must be 'monday' or 'sunday'"}
	ErrInvalidExerciseType     = &ValidationError{Field: "type", Message: "unrecognized exercise type"}
	ErrInvalidMetric           = &ValidationError{Field: "metric", Message: "unrecognized distance metric"}
	ErrInvalidFeel             = &ValidationError{Field: "feel", Message: "must be between 1 and 10"}
	ErrActivationCodeExpired   = &ValidationError{Message: "activation code has expired"}
	ErrForgotPasswordExpired   = &ValidationError{Message: "forgot password code has expired"}
	ErrPasswordTooShort        = &ValidationError{Field: "password", Message: "must be at least 8 characters"}
	ErrInvalidPaginationParams = &ValidationError{Message: "invalid pagination parameters"}
)

// Downstream Dependency Errors
var (
	ErrAuthServiceUnavailable = &DependencyError{Message: "authentication service request failed"}
	ErrTokenRejected          = &AuthenticationError{Message: "token rejected by the authentication service"}
	ErrEmailSendFailed        = &DependencyError{Message: "failed to send the email"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsDependency checks if an error is a DependencyError
func IsDependency(err error) bool {
	var depErr *DependencyError
	return errors.As(err, &depErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates an AuthorizationError naming the acting and
// target identities.
func NewAuthorizationError(actor, target string) error {
	return &AuthorizationError{
		Message: fmt.Sprintf("user %s does not have permission to modify resources owned by %s", actor, target),
	}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}
