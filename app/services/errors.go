// Package services implements the business rules between controllers
// and repositories.
package services

import "errors"

// Sentinel errors the controllers map to HTTP statuses.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrAccountSuspended   = errors.New("account is suspended")

	// ErrAdminImmutable guards the admin account from deletion and
	// suspension.
	ErrAdminImmutable = errors.New("admin users cannot be deleted or suspended")

	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrProductUnavailable = errors.New("product is unknown or not purchasable")
	ErrIllegalTransition  = errors.New("illegal order status transition")

	ErrInvalidSignature = errors.New("payment signature verification failed")
	ErrDuplicateSale    = errors.New("a sale already exists for this gateway order")
)
