package service

import "errors"

var (
	// ErrNotStarted is returned when a view is requested before Start.
	ErrNotStarted = errors.New("service not started")
	// ErrUnknownTable is returned when a view has no table with the requested id.
	ErrUnknownTable = errors.New("unknown table")
)
