package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain-level sentinel errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrNotFound           = errors.New("not_found")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateUnitLabel = errors.New("duplicate_unit_label")
	ErrSpaceHasActiveLease = errors.New("space_has_active_lease")
	ErrLeaseAlreadyActive = errors.New("lease_already_active")
	ErrMissingDateRange   = errors.New("missing_date_range")
	ErrInvalidDateRange   = errors.New("invalid_date_range")
	ErrDuplicateRecord    = errors.New("duplicate_record")
	ErrReferencedRecord   = errors.New("referenced_record")

	// For concurrency conflicts
	ErrRowVersionConflict = errors.New("row_version_conflict")

	ErrNoRowsUpdated = errors.New("no_rows_updated")
)

// AppError carries a status code and wire error code from services to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewNotFoundError(what string) *AppError {
	return &AppError{
		StatusCode: http.StatusNotFound,
		Code:       ErrCodeNotFound,
		Message:    what + " not found",
		Err:        ErrNotFound,
	}
}

func NewForbiddenError(msg string) *AppError {
	return &AppError{
		StatusCode: http.StatusForbidden,
		Code:       ErrCodeForbidden,
		Message:    msg,
		Err:        ErrForbidden,
	}
}

func NewValidationError(msg string, err error) *AppError {
	return &AppError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrCodeValidation,
		Message:    msg,
		Err:        err,
	}
}

func NewConflictError(msg string, err error) *AppError {
	return &AppError{
		StatusCode: http.StatusConflict,
		Code:       ErrCodeConflict,
		Message:    msg,
		Err:        err,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrCodeInternal,
		Message:    "An unexpected error occurred",
		Err:        err,
	}
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
	} else {
		// Fallback for unexpected error types
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}

// DuplicateUnitLabelError names the conflicting label so the caller can
// surface it verbatim.
func DuplicateUnitLabelError(label string) *AppError {
	return &AppError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrCodeValidation,
		Message:    fmt.Sprintf("unit label %q already exists for this property", label),
		Err:        ErrDuplicateUnitLabel,
	}
}
