package trophy

import "errors"

// Sentinel error kinds for catalog construction and trophy builds.
var (
	ErrInvalidDefinition = errors.New("invalid trophy definition")
	ErrDuplicateKey      = errors.New("duplicate trophy key")
	ErrUnknownMetric     = errors.New("unknown metric")
	ErrBuild             = errors.New("trophy build failed")
)
