package pricing

import (
	"errors"
	"fmt"
)

// ErrMalformedExchangeCode is returned when a pricing code cannot be parsed
var ErrMalformedExchangeCode = errors.New("malformed exchange code")

// ErrCXNotFound is returned when a CX configuration uuid is unknown
var ErrCXNotFound = errors.New("cx configuration not found")

// ExchangeCodeError reports an unparseable pricing code.
type ExchangeCodeError struct {
	Code   string
	Reason string
}

func (e *ExchangeCodeError) Error() string {
	return fmt.Sprintf("exchange code %q: %s", e.Code, e.Reason)
}

func (e *ExchangeCodeError) Unwrap() error {
	return ErrMalformedExchangeCode
}
