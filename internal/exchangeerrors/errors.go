package exchangeerrors

import "errors"

// Repository-level errors
var (
	ErrItemNotFound = errors.New("item not found")
	ErrSwapNotFound = errors.New("swap not found")
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("user already exists with this email")
)

// business logic errors
var (
	ErrValidation         = errors.New("validation failed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrItemNotAvailable   = errors.New("item is not available for swap")
	ErrOwnerCannotSwap    = errors.New("cannot swap your own item")
	ErrInvalidOfferedItem = errors.New("invalid offered item")
	ErrInsufficientPoints = errors.New("insufficient points for this swap")
	ErrSwapNotPending     = errors.New("swap is no longer pending")
	ErrInvalidState       = errors.New("illegal item state transition")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
