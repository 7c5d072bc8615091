package config

import (
	"errors"
)

// Sentinel error kinds for this package. Callers match them with errors.Is.
var (
	// ErrInvalidConfig reports a value that loaded but cannot be used.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrLoadConfig reports a file, env or decode failure.
	ErrLoadConfig = errors.New("load config failed")
)
