package genid

import (
	"errors"
	"fmt"

	"github.com/joshuapare/genid/internal/bits"
)

// The production path never calls these checks. They exist for callers that
// accept kinds or counters from untrusted input, and for the genid_debug
// assertions.

// CheckKind returns ErrKindOutOfRange when k does not fit in W bits.
func CheckKind[W Width](k KindTag[W]) error {
	if err := bits.CheckFieldBounds("kind", uint32(k), kindBits[W]()); err != nil {
		return fmt.Errorf("%w: %w", ErrKindOutOfRange, err)
	}
	return nil
}

// CheckCounter returns ErrCounterOutOfRange when v does not fit in the
// 32-W counter bits.
func CheckCounter[W Width](v uint32) error {
	if err := bits.CheckFieldBounds("counter", v, kindShift[W]()); err != nil {
		return fmt.Errorf("%w: %w", ErrCounterOutOfRange, err)
	}
	return nil
}

// CheckComponents validates both fields of a generation word.
func CheckComponents[W Width](k KindTag[W], counter uint32) error {
	return errors.Join(CheckKind(k), CheckCounter[W](counter))
}

// CheckIncrement returns ErrCounterOverflow when adding delta would carry out
// of the counter field.
func (g Generation[W]) CheckIncrement(delta uint32) error {
	n := kindShift[W]()
	if _, ok := bits.AddOverflowSafe(g.Counter(), delta, n); !ok {
		return fmt.Errorf("%w: %d + %d exceeds %d-bit counter", ErrCounterOverflow, g.Counter(), delta, n)
	}
	return nil
}

// CheckIncrement returns ErrCounterOverflow when adding delta would carry out
// of the counter field.
func (h Handle[W]) CheckIncrement(delta uint32) error {
	return h.gen.CheckIncrement(delta)
}
