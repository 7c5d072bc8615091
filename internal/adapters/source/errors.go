package source

import (
	"errors"
	"fmt"
)

// Sentinel kinds for retrieval errors.
var (
	ErrTransport = errors.New("dataset transport failed")
	ErrNoSource  = errors.New("no dataset source configured")
)

// TransportError reports a dataset that could not be retrieved or decoded.
// Status is the HTTP status when the remote answered, 0 otherwise.
type TransportError struct {
	Dataset string
	Status  int
	Err     error
}

func (e *TransportError) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("dataset %s: HTTP %d: %v", e.Dataset, e.Status, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("dataset %s: HTTP %d", e.Dataset, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("dataset %s: %v", e.Dataset, e.Err)
	default:
		return "dataset " + e.Dataset + ": transport failed"
	}
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error { return e.Err }

// Is matches ErrTransport.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }
