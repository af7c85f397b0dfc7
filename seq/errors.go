package seq

import "errors"

// ErrEmpty is the sentinel matched by errors.Is for every EmptyStructureError.
var ErrEmpty = errors.New("empty sequence")

// EmptyStructureError signals that an operation which semantically requires a
// non-empty sequence (Head, SetHead, Init, Reduce) was handed an empty one.
// All other operations are total and never fail.
type EmptyStructureError struct {
	Op string
}

func (e *EmptyStructureError) Error() string {
	return "seq: " + e.Op + " of empty sequence"
}

func (e *EmptyStructureError) Unwrap() error {
	return ErrEmpty
}
