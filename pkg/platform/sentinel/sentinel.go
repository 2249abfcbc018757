package sentinel

import "errors"

// Sentinel errors for store facts. Stores return these (optionally wrapped) so
// services can translate them into coded domain errors.
//
//   - ErrNotFound: no record is keyed at the address
//   - ErrConflict: a record is already keyed at the address
//   - ErrInvalidState: the record exists but is in the wrong state for the write
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
)
