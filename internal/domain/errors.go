package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrDuplicatePayment = errors.New("payment already exists")
	ErrStorage          = errors.New("payment storage failure")
)

type Operation string

const (
	OpRegister Operation = "register"
	OpUpdate   Operation = "update"
	OpPay      Operation = "pay"
	OpRevert   Operation = "revert"
)

// InvalidTransitionError is returned when the current status does not allow the operation.
type InvalidTransitionError struct {
	Status    Status
	Operation Operation
	Reason    string
}

func (e *InvalidTransitionError) Error() string {
	return e.Reason
}

func NewInvalidTransitionError(status Status, op Operation, reason string) *InvalidTransitionError {
	return &InvalidTransitionError{Status: status, Operation: op, Reason: reason}
}

// UnsupportedMethodError is returned when no validator matches a payment method.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported payment method: %s", e.Method)
}

func NewUnsupportedMethodError(method string) *UnsupportedMethodError {
	return &UnsupportedMethodError{Method: method}
}

// ValidationError reports a request parameter that breaks its constraint.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
