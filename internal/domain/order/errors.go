package order

import (
	"fmt"

	"github.com/go-faster/errors"
)

// Sentinel errors for the order lifecycle.
var (
	// ErrNotFound is returned when an operation references an unknown order id.
	ErrNotFound = errors.New("order not found")
	// ErrInvalidTransition is returned when Advance is called on an order
	// already at the terminal production stage.
	ErrInvalidTransition = errors.New("invalid production transition")
	// ErrValidation is the sentinel all ValidationError values match.
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports why a draft cannot be submitted. It is routine
// input feedback for the form, not a fault: the caller keeps the form open
// and shows Reason inline.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("cannot submit order: %s", e.Reason)
}

// Is makes ValidationError match ErrValidation with errors.Is.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
