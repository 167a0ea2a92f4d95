package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrCatalog = errors.New("trophy catalog unavailable")
)
