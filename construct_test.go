package bigword

import (
	"math"
	"testing"
)

func TestNewIsPositiveZero(t *testing.T) {
	b := New[uint8]()
	if !b.IsZero() {
		t.Fatal("New() is not zero")
	}
	if !b.IsPositive() {
		t.Fatal("New() is not positive")
	}
}

func TestMinSizeCoversSixtyFourBits(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"uint8", New[uint8]().Size(), 8},
		{"uint16", New[uint16]().Size(), 4},
		{"uint32", New[uint32]().Size(), 2},
	}
	for _, tc := range tests {
		if tc.size != tc.want {
			t.Errorf("%s: Size() = %d, want %d", tc.name, tc.size, tc.want)
		}
	}
}

func TestFromIntRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 127, -128, 12345, -999999, 1 << 40}
	for _, v := range values {
		b := FromInt[int64, uint32](v)
		got, err := b.Int64()
		if err != nil {
			t.Errorf("FromInt(%d).Int64() returned error: %v", v, err)
			continue
		}
		if got != v {
			t.Errorf("FromInt(%d).Int64() = %d", v, got)
		}
	}
}

func TestFromUintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 255, 70000, 1 << 40}
	for _, v := range values {
		b := FromUint[uint64, uint32](v)
		got, err := b.Uint64()
		if err != nil {
			t.Errorf("FromUint(%d).Uint64() returned error: %v", v, err)
			continue
		}
		if got != v {
			t.Errorf("FromUint(%d).Uint64() = %d", v, got)
		}
	}
}

// TestFromIntNarrowTypeMinValue pins the boundary case where negating v in
// its own narrow type T would overflow (e.g. int8(-(-128)) wraps back to
// -128 under Go's defined signed wraparound): FromInt must still recover
// the correct magnitude by widening before negating.
func TestFromIntNarrowTypeMinValue(t *testing.T) {
	b8 := FromInt[int8, uint32](math.MinInt8)
	if got, err := ToInt[int8](b8); err != nil || got != math.MinInt8 {
		t.Errorf("FromInt[int8](MinInt8) round-trip = %d, %v, want %d, nil", got, err, math.MinInt8)
	}

	b16 := FromInt[int16, uint32](math.MinInt16)
	if got, err := ToInt[int16](b16); err != nil || got != math.MinInt16 {
		t.Errorf("FromInt[int16](MinInt16) round-trip = %d, %v, want %d, nil", got, err, math.MinInt16)
	}

	b32 := FromInt[int32, uint32](math.MinInt32)
	if got, err := ToInt[int32](b32); err != nil || got != math.MinInt32 {
		t.Errorf("FromInt[int32](MinInt32) round-trip = %d, %v, want %d, nil", got, err, math.MinInt32)
	}

	if got, err := b32.Int64(); err != nil || got != math.MinInt32 {
		t.Errorf("FromInt[int32](MinInt32).Int64() = %d, %v, want %d, nil", got, err, math.MinInt32)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := FromInt[int64, uint8](42)
	c := a.Clone()
	c.Inc()
	got, _ := a.Int64()
	if got != 42 {
		t.Fatalf("mutating a clone affected the original: a = %d", got)
	}
}
