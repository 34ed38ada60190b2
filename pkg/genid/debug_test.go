//go:build genid_debug

package genid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// requirePanicsWith runs fn and requires it to panic with an error matching
// target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v is not %v", err, target)
	}()
	fn()
}

func TestDebug_SetKindOutOfRange(t *testing.T) {
	requirePanicsWith(t, ErrKindOutOfRange, func() {
		h := FromSlot[Narrow](Slot(1))
		h.SetKind(NewKind2(2))
	})
	requirePanicsWith(t, ErrKindOutOfRange, func() {
		_ = CombineKind(Slot(1), NewKind16(16))
	})
}

func TestDebug_SetCounterOutOfRange(t *testing.T) {
	requirePanicsWith(t, ErrCounterOutOfRange, func() {
		_ = FromComponents(NewKind16(1), 0x1000_0000, Slot(0))
	})
}

func TestDebug_IncrementOverflow(t *testing.T) {
	l := LayoutOf[Small]()
	requirePanicsWith(t, ErrCounterOverflow, func() {
		h := FromComponents(NewKind4(3), l.MaxCounter, Slot(8))
		h.Increment(1)
	})
}

func TestDebug_LegalInputsDoNotPanic(t *testing.T) {
	l := LayoutOf[Wide]()
	require.NotPanics(t, func() {
		h := FromComponents(NewKind16(15), l.MaxCounter-1, Slot(3))
		h.Increment(1)
		h.SetKind(NewKind16(0))
	})
}
