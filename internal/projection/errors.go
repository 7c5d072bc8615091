package projection

import "errors"

// Sentinel kinds for projection errors.
var (
	ErrMisaligned = errors.New("overlay not aligned with series")
)
