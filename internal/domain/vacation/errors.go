package vacation

import "errors"

var (
	// Normalizer failures.
	ErrMissingInterval     = errors.New("no interval start supplied")
	ErrUnsupportedCategory = errors.New("unsupported vacation category")

	// Validator failures, in check order.
	ErrInsufficientBalance = errors.New("not enough vacation days left")
	ErrStartInPast         = errors.New("start must not be in the past")
	ErrStartAfterEnd       = errors.New("start must not be after end")
	ErrOverlappedInterval  = errors.New("vacation already exists on the selected days")
	ErrNotPrenotified      = errors.New("vacation requires advance notice")

	ErrNotFound = errors.New("vacation not found")
)

// IsValidationError reports whether err is a user-correctable business-rule
// failure rather than an infrastructure fault.
func IsValidationError(err error) bool {
	for _, candidate := range []error{
		ErrMissingInterval,
		ErrUnsupportedCategory,
		ErrInsufficientBalance,
		ErrStartInPast,
		ErrStartAfterEnd,
		ErrOverlappedInterval,
		ErrNotPrenotified,
	} {
		if errors.Is(err, candidate) {
			return true
		}
	}
	return false
}
