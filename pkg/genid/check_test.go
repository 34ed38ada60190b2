package genid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckKind(t *testing.T) {
	require.NoError(t, CheckKind(NewKind2(1)))
	require.NoError(t, CheckKind(NewKind16(15)))

	err := CheckKind(NewKind4(4))
	require.ErrorIs(t, err, ErrKindOutOfRange)
	require.Contains(t, err.Error(), "max 3")
}

func TestCheckCounter(t *testing.T) {
	require.NoError(t, CheckCounter[Narrow](0x7FFF_FFFF))
	require.ErrorIs(t, CheckCounter[Narrow](0x8000_0000), ErrCounterOutOfRange)

	require.NoError(t, CheckCounter[Wide](0x0FFF_FFFF))
	require.ErrorIs(t, CheckCounter[Wide](0x1000_0000), ErrCounterOutOfRange)
}

func TestCheckComponents(t *testing.T) {
	require.NoError(t, CheckComponents(NewKind8(7), 5))

	err := CheckComponents(NewKind8(8), 0x2000_0000)
	require.ErrorIs(t, err, ErrKindOutOfRange)
	require.ErrorIs(t, err, ErrCounterOutOfRange)

	err = CheckComponents(NewKind8(1), 0x2000_0000)
	require.ErrorIs(t, err, ErrCounterOutOfRange)
	require.NotErrorIs(t, err, ErrKindOutOfRange)
}

func TestCheckIncrement(t *testing.T) {
	l := LayoutOf[Small]()

	g := NewGeneration(NewKind4(3), l.MaxCounter-1)
	require.NoError(t, g.CheckIncrement(1))
	require.ErrorIs(t, g.CheckIncrement(2), ErrCounterOverflow)

	h := Combine(Slot(4), g)
	require.NoError(t, h.CheckIncrement(0))
	require.ErrorIs(t, h.CheckIncrement(l.MaxCounter), ErrCounterOverflow)

	fresh := FromSlot[Small](Slot(0))
	require.ErrorIs(t, fresh.CheckIncrement(l.MaxCounter), ErrCounterOverflow)
	require.NoError(t, fresh.CheckIncrement(l.MaxCounter-1))
}
