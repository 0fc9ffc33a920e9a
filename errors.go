package crumbkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for crumbkit operations.
var (
	// ErrInvalidConfig is returned when a builder option is unknown or invalid.
	ErrInvalidConfig = errors.New("crumbkit: invalid config")

	// ErrCyclicHierarchy is returned when an admin appears twice in its own
	// parent or child chain.
	ErrCyclicHierarchy = errors.New("crumbkit: cyclic admin hierarchy")

	// ErrMaxDepthExceeded is returned when the admin nesting is deeper than
	// the configured max_depth.
	ErrMaxDepthExceeded = errors.New("crumbkit: max depth exceeded")

	// ErrInvalidAdmin is returned when an admin is missing or unknown.
	ErrInvalidAdmin = errors.New("crumbkit: invalid admin")

	// ErrAdminExists is returned when registering an admin code twice.
	ErrAdminExists = errors.New("crumbkit: admin already registered")

	// ErrInvalidAction is returned when an empty action is requested.
	ErrInvalidAction = errors.New("crumbkit: invalid action")

	// ErrRouteNotFound is returned when a URL is generated for an unknown route.
	ErrRouteNotFound = errors.New("crumbkit: route not found")

	// ErrMissingParameter is returned when a route placeholder has no value.
	ErrMissingParameter = errors.New("crumbkit: missing route parameter")

	// ErrInvalidOption is returned when a form type option is unknown or invalid.
	ErrInvalidOption = errors.New("crumbkit: invalid option")

	// ErrInvalidRole is returned when a role name has an invalid format.
	ErrInvalidRole = errors.New("crumbkit: invalid role")

	// ErrUnauthorized is returned when a user lacks a required role.
	ErrUnauthorized = errors.New("crumbkit: unauthorized")

	// ErrGrantExists is returned when granting a role the user already holds.
	ErrGrantExists = errors.New("crumbkit: grant already exists")

	// ErrGrantNotFound is returned when revoking a role the user does not hold.
	ErrGrantNotFound = errors.New("crumbkit: grant not found")

	// ErrNoUserID is returned when user ID is not found in context.
	ErrNoUserID = errors.New("crumbkit: no user ID in context")

	// ErrDatabaseError is returned when a database operation fails.
	ErrDatabaseError = errors.New("crumbkit: database error")
)

// Error wraps a sentinel error with additional context.
type Error struct {
	Err     error  // Underlying sentinel error
	Message string // Additional context
	Admin   string // Admin code involved (if applicable)
	Action  string // Action involved (if applicable)
	Option  string // Option or route name involved (if applicable)
	Role    string // Role involved (if applicable)
	UserID  string // User involved (if applicable)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if the error matches a target error.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewError creates a new Error with context.
func NewError(err error, message string) *Error {
	return &Error{
		Err:     err,
		Message: message,
	}
}

// WithAdmin adds the admin code to the error.
func (e *Error) WithAdmin(code string) *Error {
	e.Admin = code
	return e
}

// WithAction adds the action to the error.
func (e *Error) WithAction(action string) *Error {
	e.Action = action
	return e
}

// WithOption adds the option or route name to the error.
func (e *Error) WithOption(name string) *Error {
	e.Option = name
	return e
}

// WithRole adds role information to the error.
func (e *Error) WithRole(role string) *Error {
	e.Role = role
	return e
}

// WithUser adds user information to the error.
func (e *Error) WithUser(userID string) *Error {
	e.UserID = userID
	return e
}

// IsConfigError checks if an error is due to an invalid builder config.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

// IsCyclicHierarchy checks if an error is due to a cyclic admin hierarchy.
func IsCyclicHierarchy(err error) bool {
	return errors.Is(err, ErrCyclicHierarchy)
}

// IsMaxDepthExceeded checks if an error is due to excessive admin nesting.
func IsMaxDepthExceeded(err error) bool {
	return errors.Is(err, ErrMaxDepthExceeded)
}

// IsRouteNotFound checks if an error is due to an unknown route.
func IsRouteNotFound(err error) bool {
	return errors.Is(err, ErrRouteNotFound)
}

// IsUnauthorized checks if an error is an authorization error.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
