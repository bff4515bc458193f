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

// StateConflictError represents a rejected write against an entity that is
// already in the target state (already completed, already submitted)
type StateConflictError struct {
	Message string
}

func (e *StateConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for StateConflictError
func (e *StateConflictError) Is(target error) bool {
	t, ok := target.(*StateConflictError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// ConfigurationError represents a misprovisioned deployment, not a client
// mistake
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// TokenGenerationError represents exhaustion of the unique-token retry budget
type TokenGenerationError struct {
	Attempts int
}

func (e *TokenGenerationError) Error() string {
	return fmt.Sprintf("could not generate a unique token after %d attempts", e.Attempts)
}

// Entity Not Found Errors
var (
	ErrSurveyNotFound     = &NotFoundError{Entity: "survey"}
	ErrTeamMemberNotFound = &NotFoundError{Entity: "team member"}
	ErrQuestionNotFound   = &NotFoundError{Entity: "survey question"}
	ErrInvalidSurveyLink  = &NotFoundError{Entity: "survey link"}
)

// State Conflict Errors
var (
	ErrSurveyAlreadyCompleted    = &StateConflictError{Message: "survey has already been completed"}
	ErrResponsesAlreadySubmitted = &StateConflictError{Message: "responses have already been submitted for this survey"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsStateConflict checks if an error is a StateConflictError
func IsStateConflict(err error) bool {
	var conflictErr *StateConflictError
	return errors.As(err, &conflictErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsTokenGeneration checks if an error is a TokenGenerationError
func IsTokenGeneration(err error) bool {
	var tokenErr *TokenGenerationError
	return errors.As(err, &tokenErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewStateConflictError creates a new StateConflictError
func NewStateConflictError(message string) error {
	return &StateConflictError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewQuestionCountError creates the configuration error raised when the
// question store does not hold the required number of questions
func NewQuestionCountError(required int, found int64) error {
	return &ConfigurationError{Message: fmt.Sprintf("system must have exactly %d questions, found %d", required, found)}
}

// NewTokenGenerationError creates a new TokenGenerationError
func NewTokenGenerationError(attempts int) error {
	return &TokenGenerationError{Attempts: attempts}
}
