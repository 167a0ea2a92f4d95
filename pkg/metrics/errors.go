package metrics

import (
	"errors"
)

// Sentinel kinds for metrics errors.
var (
	ErrUnknownTier = errors.New("metrics unknown tier label")
)
