package models

import "fmt"

// ErrorType is a machine-checkable tag carried on engine errors so the
// HTTP layer can map failures to status codes without string matching.
type ErrorType string

const (
	ErrorTypeNotFound           ErrorType = "not_found"
	ErrorTypeCrossScopeMismatch ErrorType = "cross_scope_mismatch"
	ErrorTypeCapacityExceeded   ErrorType = "capacity_exceeded"
	ErrorTypeAlreadyAssigned    ErrorType = "already_assigned"
	ErrorTypeNotAssigned        ErrorType = "not_assigned"
	ErrorTypeConfigError        ErrorType = "config_error"
	ErrorTypeDuplicateResource  ErrorType = "duplicate_resource"
)

// AssignmentError is the error type returned by the assignment engine for
// locally detected, non-retryable conditions.
type AssignmentError struct {
	Type    ErrorType
	Message string
}

func (e *AssignmentError) Error() string {
	return e.Message
}

// NewNotFoundError reports an entity id that does not resolve
func NewNotFoundError(entity, id string) *AssignmentError {
	return &AssignmentError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s %s not found", entity, id),
	}
}

// NewCrossScopeError reports a client or hotel outside the stated event
func NewCrossScopeError(entity, id, eventID string) *AssignmentError {
	return &AssignmentError{
		Type:    ErrorTypeCrossScopeMismatch,
		Message: fmt.Sprintf("%s %s does not belong to event %s", entity, id, eventID),
	}
}

// NewCapacityError reports a would-be violation of a bed count limit
func NewCapacityError(message string) *AssignmentError {
	return &AssignmentError{Type: ErrorTypeCapacityExceeded, Message: message}
}

// NewAlreadyAssignedError reports a client that already has a hotel
func NewAlreadyAssignedError(clientID string) *AssignmentError {
	return &AssignmentError{
		Type:    ErrorTypeAlreadyAssigned,
		Message: fmt.Sprintf("client %s is already assigned to a hotel", clientID),
	}
}

// NewNotAssignedError reports a client without a current assignment
func NewNotAssignedError(clientID string) *AssignmentError {
	return &AssignmentError{
		Type:    ErrorTypeNotAssigned,
		Message: fmt.Sprintf("client %s is not assigned to any hotel", clientID),
	}
}

// NewConfigError reports malformed input
func NewConfigError(message string) *AssignmentError {
	return &AssignmentError{Type: ErrorTypeConfigError, Message: message}
}

// NewDuplicateError reports a uniqueness violation
func NewDuplicateError(message string) *AssignmentError {
	return &AssignmentError{Type: ErrorTypeDuplicateResource, Message: message}
}
