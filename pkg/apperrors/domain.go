package apperrors

import "net/http"

// Factories for the marketplace error taxonomy. Services wrap repository
// sentinel errors with these; handlers only ever see *AppError.

// NewNotFoundError reports an absent referenced entity, e.g. "Listing".
func NewNotFoundError(resource string) *AppError {
	return New(CodeNotFound, "resource", resource+" not found", http.StatusNotFound)
}

// ErrNotFound wraps a repository not-found error (e.g. gorm.ErrRecordNotFound).
func ErrNotFound(err error, resource string) *AppError {
	return Wrap(err, CodeNotFound, "resource", resource+" not found", http.StatusNotFound)
}

// NewConflictError reports a state conflict, such as a duplicate unique value
// or a concurrent contradictory write detected by the storage layer.
func NewConflictError(message string) *AppError {
	return New(CodeConflict, "resource", message, http.StatusConflict)
}

func ErrConflict(err error, message string) *AppError {
	return Wrap(err, CodeConflict, "resource", message, http.StatusConflict)
}

func NewAlreadyExistsError(message string) *AppError {
	return New(CodeAlreadyExists, "resource", message, http.StatusConflict)
}

// ErrInvalidStatus reports an illegal status transition or an unknown target
// status value.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Token has expired",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid token",
	http.StatusUnauthorized,
)
