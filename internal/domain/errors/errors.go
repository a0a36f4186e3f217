package errors

import (
	"net/http"

	"foodies/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
// A BaseError created with NewKindError is a specialization of its kind and
// matches it under errors.Is.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	kind      *BaseError
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

// NewKindError creates an error that shares the HTTP code of kind and matches it under errors.Is.
func NewKindError(kind *BaseError, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  kind.httpCode,
		errorCode: errorCode,
		message:   message,
		kind:      kind,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches errors by business code, so copies made by WithDetails still
// compare equal to the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	for cur := e; cur != nil; cur = cur.kind {
		if cur.errorCode == t.errorCode {
			return true
		}
	}

	return false
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Kind returns the taxonomy root of the error.
func (e *BaseError) Kind() *BaseError {
	root := e
	for root.kind != nil {
		root = root.kind
	}

	return root
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		kind:      e.kind,
	}
}

// Taxonomy roots.
var (
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Could not validate credentials",
		"",
	)

	ErrInvalidRefreshToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_REFRESH_TOKEN",
		"Invalid or expired refresh token",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource already exists",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrInvalidOperation = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OPERATION",
		"Invalid operation",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests, try again later",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// Specializations.
var (
	// Authentication
	ErrInvalidCredentials = NewKindError(ErrUnauthenticated, "INVALID_CREDENTIALS", "Wrong login or password")

	// Registration and profile
	ErrEmailTaken = NewKindError(ErrConflict, "EMAIL_TAKEN", "User with this email already exists")
	ErrNameTaken  = NewKindError(ErrConflict, "NAME_TAKEN", "User with this name already exists")

	// Lookups
	ErrUserNotFound      = NewKindError(ErrNotFound, "USER_NOT_FOUND", "User not found")
	ErrRecipeNotFound    = NewKindError(ErrNotFound, "RECIPE_NOT_FOUND", "Recipe not found")
	ErrNotFollowing      = NewKindError(ErrNotFound, "NOT_FOLLOWING", "You are not following this user")
	ErrFavoriteNotFound  = NewKindError(ErrNotFound, "FAVORITE_NOT_FOUND", "Recipe is not in favorites")
	ErrReferenceNotFound = NewKindError(ErrNotFound, "REFERENCE_NOT_FOUND", "Referenced category, area or ingredient not found")

	// Request shape
	ErrSelfFollow       = NewKindError(ErrInvalidOperation, "SELF_FOLLOW", "You can't follow yourself")
	ErrValidationFailed = NewKindError(ErrInvalidOperation, "VALIDATION_FAILED", "Input validation failed")
	ErrUnsupportedMedia = NewKindError(ErrInvalidOperation, "UNSUPPORTED_MEDIA", "Unsupported file type")
	ErrFileTooLarge     = NewKindError(ErrInvalidOperation, "FILE_TOO_LARGE", "File is too large")

	// Ownership
	ErrNotRecipeOwner = NewKindError(ErrForbidden, "NOT_RECIPE_OWNER", "You can only delete your own recipes")

	// Internal
	ErrPasswordHashFailed = NewKindError(ErrInternalError, "PASSWORD_HASH_FAILED", "Password processing failed")
	ErrTokenIssueFailed   = NewKindError(ErrInternalError, "TOKEN_ISSUE_FAILED", "Could not issue token")
	ErrUploadFailed       = NewKindError(ErrInternalError, "UPLOAD_FAILED", "File upload failed")
	ErrTransactionFailed  = NewKindError(ErrInternalError, "TRANSACTION_FAILED", "Database transaction failed")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error for classification.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
