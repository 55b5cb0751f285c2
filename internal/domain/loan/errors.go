package loan

import "errors"

var (
	ErrNotFound       = errors.New("loan not found")
	ErrAlreadyPaid    = errors.New("loan is already paid")
	ErrNegativeAmount = errors.New("payment amount must not be negative")
	ErrBadTermUnit    = errors.New("term unit must be days, months or years")
)

// ValidationError carries a rejection reason meant to be shown to the end
// user verbatim. Always recoverable.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
