package entity

import "errors"

var (
	// ErrUserCancelled means a dialog was closed without a decision.
	ErrUserCancelled = errors.New("cancelled by user")
	// ErrValidation means user input failed validation before any external call.
	ErrValidation = errors.New("validation failed")
	// ErrOperationFailed means an external call threw or reported failure.
	ErrOperationFailed = errors.New("operation failed")
	// ErrNotFound means a tool, connection or instance no longer exists.
	ErrNotFound = errors.New("not found")
	// ErrPinned means the operation is refused because the instance is pinned.
	ErrPinned = errors.New("instance is pinned")
	// ErrConsentDeclined means the user refused the tool's permission exceptions.
	ErrConsentDeclined = errors.New("consent declined")
)
