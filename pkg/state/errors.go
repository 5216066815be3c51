package state

import "errors"

// ErrCorruptSave means a save was present but could not be decoded.
// It is deliberately distinct from "no save found": the caller decides
// whether corruption degrades to a fresh start or gets surfaced.
type ErrCorruptSave struct {
	Err error
}

func (e *ErrCorruptSave) Error() string {
	return "corrupt save: " + e.Err.Error()
}

func (e *ErrCorruptSave) Unwrap() error {
	return e.Err
}

func IsCorruptSave(err error) bool {
	var corrupt *ErrCorruptSave
	return errors.As(err, &corrupt)
}
