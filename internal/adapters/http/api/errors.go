package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrInvalidParam = errors.New("invalid query parameter")
	ErrBodyTooLarge = errors.New("request body too large")
)

// wrap tags err with the handler operation that produced it.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

func invalidParam(name, value string, err error) error {
	return fmt.Errorf("%w: %s=%q: %w", ErrInvalidParam, name, value, err)
}
