package booking

import (
	"errors"
	"fmt"
)

// Error codes for booking operations.
const (
	CodeNotFound           = "notFound"
	CodeSchedulingConflict = "schedulingConflict"
	CodeInvalidState       = "invalidState"
	CodeAlreadyRated       = "alreadyRated"
	CodeExternalFailure    = "externalServiceFailure"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &BookingError{Code: CodeNotFound, Message: msg}
}

func NewSchedulingConflictError(msg string) error {
	return &BookingError{Code: CodeSchedulingConflict, Message: msg}
}

func NewInvalidStateError(msg string) error {
	return &BookingError{Code: CodeInvalidState, Message: msg}
}

func NewAlreadyRatedError(msg string) error {
	return &BookingError{Code: CodeAlreadyRated, Message: msg}
}

func NewExternalFailureError(msg string) error {
	return &BookingError{Code: CodeExternalFailure, Message: msg}
}

// HasCode reports whether err is a BookingError carrying the given code.
func HasCode(err error, code string) bool {
	var be *BookingError
	return errors.As(err, &be) && be.Code == code
}
