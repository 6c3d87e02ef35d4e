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
	Context string // Additional context like "for this week"
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

// ValidationError represents a validation error caught before any write
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

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// InvalidTransitionError represents an illegal fiche status transition
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// Is enables errors.Is() comparison for InvalidTransitionError
func (e *InvalidTransitionError) Is(target error) bool {
	t, ok := target.(*InvalidTransitionError)
	if !ok {
		return false
	}
	return (t.From == "" || e.From == t.From) && (t.To == "" || e.To == t.To)
}

// PartialCascadeError reports a multi-step cascade that failed partway.
// Completed steps are not rolled back; the caller decides whether to retry
// the remainder (every cascade step in this codebase is safe to repeat).
type PartialCascadeError struct {
	Op        string // e.g. "absence propagation", "crew dissolution"
	Completed int
	Attempted int
	Err       error
}

func (e *PartialCascadeError) Error() string {
	return fmt.Sprintf("%s failed after %d/%d steps: %v", e.Op, e.Completed, e.Attempted, e.Err)
}

func (e *PartialCascadeError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrCompanyNotFound       = &NotFoundError{Entity: "company"}
	ErrEmployeeNotFound      = &NotFoundError{Entity: "employee"}
	ErrChantierNotFound      = &NotFoundError{Entity: "chantier"}
	ErrFicheNotFound         = &NotFoundError{Entity: "fiche"}
	ErrFicheJourNotFound     = &NotFoundError{Entity: "fiche day"}
	ErrSignatureNotFound     = &NotFoundError{Entity: "signature"}
	ErrAffectationNotFound   = &NotFoundError{Entity: "affectation"}
	ErrVehicleNotFound       = &NotFoundError{Entity: "vehicle"}
	ErrTransportJourNotFound = &NotFoundError{Entity: "transport day"}
	ErrDemandeCongeNotFound  = &NotFoundError{Entity: "leave request"}
	ErrClosedPeriodNotFound  = &NotFoundError{Entity: "closed period"}
)

// Already Exists Errors
var (
	// ErrDuplicateAssignment guards the one-timesheet-per-week rule: an
	// employee may hold a single fiche per week regardless of chantier.
	ErrDuplicateAssignment = &AlreadyExistsError{Entity: "fiche", Context: "for this employee and week"}

	// ErrDuplicateVehicleAssignment flags a vehicle already logged on
	// another fiche day with the same date.
	ErrDuplicateVehicleAssignment = &AlreadyExistsError{Entity: "transport day", Context: "for this vehicle and date"}

	ErrEmployeeExists    = &AlreadyExistsError{Entity: "employee", Context: "with this email"}
	ErrChantierExists    = &AlreadyExistsError{Entity: "chantier", Context: "with this code"}
	ErrVehicleExists     = &AlreadyExistsError{Entity: "vehicle", Context: "with this registration"}
	ErrAffectationExists = &AlreadyExistsError{Entity: "affectation", Context: "already active for this employee and chantier"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidWeek             = errors.New("invalid week identifier")
	ErrInvalidTimeRange        = errors.New("invalid time range")
	ErrPeriodClosed            = errors.New("period is closed")
	ErrFicheHasSignatures      = errors.New("fiche has signatures and cannot be removed")
	ErrTrajetCodeRequired      = errors.New("a worked day requires a trajet code or the personal commute flag")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authorization Errors
var (
	ErrActorRoleNotAllowed = &AuthorizationError{Message: "actor role is not allowed to perform this action"}
	ErrCompanyMismatch     = &AuthorizationError{Message: "resource does not belong to the actor's company"}
	ErrActorNotFound       = &AuthenticationError{Message: "actor not found in request context"}
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

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr)
}

// IsPartialCascade checks if an error is a PartialCascadeError
func IsPartialCascade(err error) bool {
	var cascadeErr *PartialCascadeError
	return errors.As(err, &cascadeErr)
}

// AsPartialCascade extracts a PartialCascadeError when present
func AsPartialCascade(err error) (*PartialCascadeError, bool) {
	var cascadeErr *PartialCascadeError
	ok := errors.As(err, &cascadeErr)
	return cascadeErr, ok
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidTransitionError creates a new InvalidTransitionError
func NewInvalidTransitionError(from, to string) error {
	return &InvalidTransitionError{From: from, To: to}
}

// NewPartialCascadeError wraps a mid-cascade failure with progress counts
func NewPartialCascadeError(op string, completed, attempted int, err error) error {
	return &PartialCascadeError{Op: op, Completed: completed, Attempted: attempted, Err: err}
}
