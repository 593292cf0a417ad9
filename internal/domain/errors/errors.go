package errors

import (
	"fmt"
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Machine readable error code
	Message() string   // Human readable error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithCause appends the cause to the message. Internal failures of seed, import
// and upload report their underlying reason to the caller this way.
func (e *BaseError) WithCause(cause error) *BaseError {
	if cause == nil {
		return e
	}

	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   fmt.Sprintf("%s: %s", e.message, cause.Error()),
		details:   e.details,
	}
}

// Is matches errors sharing the same error code, so copies made by
// WithDetails and WithCause still match the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Request errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	ErrNoUpdateFields = NewBaseError(
		http.StatusBadRequest,
		"NO_UPDATE_FIELDS",
		"No data to update",
		"",
	)

	ErrInvalidFileType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FILE_TYPE",
		"Invalid file type. Only JPEG, PNG, GIF, and WebP are allowed.",
		"",
	)

	ErrInvalidImportPayload = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMPORT_PAYLOAD",
		"Invalid theme bundle",
		"",
	)

	// Content errors
	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrHeroSlideNotFound = NewBaseError(
		http.StatusNotFound,
		"HERO_SLIDE_NOT_FOUND",
		"Hero slide not found",
		"",
	)

	ErrTestimonialNotFound = NewBaseError(
		http.StatusNotFound,
		"TESTIMONIAL_NOT_FOUND",
		"Testimonial not found",
		"",
	)

	ErrGiftBoxNotFound = NewBaseError(
		http.StatusNotFound,
		"GIFT_BOX_NOT_FOUND",
		"Gift box not found",
		"",
	)

	// Submission errors
	ErrBulkOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"BULK_ORDER_NOT_FOUND",
		"Bulk order not found",
		"",
	)

	ErrSubscriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND",
		"Subscription not found",
		"",
	)

	// File errors
	ErrFileNotFound = NewBaseError(
		http.StatusNotFound,
		"FILE_NOT_FOUND",
		"File not found",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"Upload failed",
		"",
	)

	// Bulk data errors
	ErrSeedFailed = NewBaseError(
		http.StatusInternalServerError,
		"SEED_FAILED",
		"Seeding failed",
		"",
	)

	ErrImportFailed = NewBaseError(
		http.StatusInternalServerError,
		"IMPORT_FAILED",
		"Theme import failed",
		"",
	)

	ErrExportFailed = NewBaseError(
		http.StatusInternalServerError,
		"EXPORT_FAILED",
		"Export failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a document store failure, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a store-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the store error to errors.Is.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
