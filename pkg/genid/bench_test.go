package genid

import "testing"

var (
	sinkHandle Handle16
	sinkU64    uint64
)

func BenchmarkHandle_Increment(b *testing.B) {
	h := CombineKind(Slot(1), NewKind16(7))
	b.ReportAllocs()
	for b.Loop() {
		h.Increment(1)
		if h.Counter() == 0x0FFF_FFFF {
			h.SetCounter(1)
		}
	}
	sinkHandle = h
}

func BenchmarkHandle_ToInteger(b *testing.B) {
	h := FromComponents(NewKind16(7), 1234, Slot(99))
	b.ReportAllocs()
	for b.Loop() {
		sinkU64 = h.ToInteger()
	}
}

func BenchmarkHandle_FromInteger(b *testing.B) {
	v := FromComponents(NewKind16(7), 1234, Slot(99)).ToInteger()
	b.ReportAllocs()
	for b.Loop() {
		sinkHandle = FromInteger[Wide](v)
	}
}

func BenchmarkHandle_SetKind(b *testing.B) {
	h := FromSlot[Wide](Slot(5))
	b.ReportAllocs()
	var k uint8
	for b.Loop() {
		h.SetKind(Kind[Wide](k & 0x0F))
		k++
	}
	sinkHandle = h
}
