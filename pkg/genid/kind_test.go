package genid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindConstructors(t *testing.T) {
	assert.Equal(t, uint8(10), NewKind2(10).Raw())
	assert.Equal(t, uint8(10), NewKind4(10).Raw())
	assert.Equal(t, uint8(10), NewKind8(10).Raw())
	assert.Equal(t, uint8(10), NewKind16(10).Raw())
	assert.Equal(t, NewKind8(5), Kind[Medium](5))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "1:1", NewKind2(1).String())
	assert.Equal(t, "3:2", NewKind4(3).String())
	assert.Equal(t, "0:3", NewKind8(0).String())
	assert.Equal(t, "15:4", NewKind16(15).String())
}

func TestKindFits(t *testing.T) {
	assert.True(t, NewKind2(1).Fits())
	assert.False(t, NewKind2(2).Fits())
	assert.True(t, NewKind4(3).Fits())
	assert.False(t, NewKind4(4).Fits())
	assert.True(t, NewKind8(7).Fits())
	assert.False(t, NewKind8(8).Fits())
	assert.True(t, NewKind16(15).Fits())
	assert.False(t, NewKind16(16).Fits())
}

func TestKindOrdering(t *testing.T) {
	assert.Less(t, NewKind16(3), NewKind16(9))
	assert.Equal(t, NewKind16(9), Kind[Wide](9))
}

func TestKindPlusGeneration(t *testing.T) {
	g := GenerationFromRaw[Small](10)
	g = NewKind4(1).Plus(g)

	kind, counter := g.Unpack()
	require.Equal(t, uint8(1), kind.Raw())
	require.Equal(t, uint32(10), counter)
}

func TestKindTimesSlot(t *testing.T) {
	h := NewKind2(1).Times(Slot(10))

	kind, counter, slot := h.Unpack()
	require.Equal(t, uint8(1), kind.Raw())
	require.Equal(t, DefaultCounter, counter)
	require.Equal(t, uint32(10), slot.Raw())
}

func TestSlotIndex(t *testing.T) {
	s := Slot(42)
	assert.Equal(t, uint32(42), s.Raw())
	assert.Equal(t, 42, s.Int())
	assert.Equal(t, "42", s.String())
	assert.Less(t, Slot(1), Slot(2))
	assert.Equal(t, "4294967295", Slot(^uint32(0)).String())
}
