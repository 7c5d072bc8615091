package views

import "errors"

// Sentinel kinds for view errors.
var (
	ErrUnknownView    = errors.New("unknown view")
	ErrUnknownDataset = errors.New("unknown dataset")
)
