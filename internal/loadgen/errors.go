package loadgen

import "errors"

// Sentinel kinds for load run errors.
var (
	ErrUnhealthy    = errors.New("service unhealthy")
	ErrBadResponse  = errors.New("unexpected response")
	ErrInvalidRun   = errors.New("invalid load run config")
	ErrVerification = errors.New("verification failed")
)
