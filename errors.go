package stockfolio

import (
	"errors"
	"fmt"
)

// The error taxonomy is deliberately small. Every failure an operation can
// produce falls into one of these categories, all recoverable: the caller
// reports the message and the session continues.
var (
	// ErrValidation tags malformed or out-of-range user input: an empty
	// symbol, a non-positive quantity or price, an unparsable number.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound reports a symbol absent from the portfolio on sell or
	// price update.
	ErrNotFound = errors.New("symbol not held")

	// ErrCapacity reports an insert against a portfolio that already holds
	// its maximum number of positions.
	ErrCapacity = errors.New("portfolio is full")

	// ErrIO tags a failure to read or write the portfolio file. The usual
	// recovery is to retry with a different path.
	ErrIO = errors.New("portfolio file")
)

// invalidf builds a validation error with a descriptive message, testable
// with errors.Is(err, ErrValidation).
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
