package till

import "errors"

// Errors returned by the stores. They are always wrapped with the detail of
// the failure, test them with errors.Is.
var (
	// ErrValidation reports malformed or out-of-range input.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound reports a reference to an absent product, user or record.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientStock reports a sale line asking for more than the stock.
	// The sale stays open.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrEmptySale reports a commit of a sale without lines.
	ErrEmptySale = errors.New("empty sale")
	// ErrSaleClosed reports a call on a sale already committed or abandoned.
	ErrSaleClosed = errors.New("sale is closed")
	// ErrPersistence reports a failure to save a store.
	ErrPersistence = errors.New("persistence failure")
	// ErrBadCredentials reports an unknown user or a wrong password.
	ErrBadCredentials = errors.New("wrong user or password")
	// ErrTooManyAttempts reports the exhaustion of login attempts.
	ErrTooManyAttempts = errors.New("too many failed login attempts")
	// ErrForbidden reports an operation the current role cannot perform.
	ErrForbidden = errors.New("operation not allowed for this role")
)
