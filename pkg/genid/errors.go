package genid

import "errors"

var (
	// ErrKindOutOfRange indicates a kind tag does not fit its width class.
	ErrKindOutOfRange = errors.New("genid: kind out of range")
	// ErrCounterOutOfRange indicates a counter does not fit the counter field.
	ErrCounterOutOfRange = errors.New("genid: counter out of range")
	// ErrCounterOverflow indicates an increment would carry into the kind field.
	ErrCounterOverflow = errors.New("genid: counter overflow")
	// ErrUnknownWidth indicates a width class name was not recognised.
	ErrUnknownWidth = errors.New("genid: unknown width class")
)
