package shipping

import "errors"

// Shipping errors describe why a session stopped before producing a quote.
// Rejections are normal outcomes, not failures; they are still modelled as
// errors so callers can match them with errors.Is.
var (
	// ErrInvalidInput is returned when a value cannot be parsed as a number.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTooHeavy is returned when the package weight exceeds MaxWeight.
	ErrTooHeavy = errors.New("package too heavy")

	// ErrTooBig is returned when the dimension sum exceeds MaxDimensionSum.
	ErrTooBig = errors.New("package too big")
)

// IsRejection checks if the error is a business-rule rejection.
//
// Parameters:
//   - err: error to check
//
// Returns:
//   - bool: true if the package was refused by a shipping rule
func IsRejection(err error) bool {
	return errors.Is(err, ErrTooHeavy) ||
		errors.Is(err, ErrTooBig)
}
