package bigword

import "github.com/oisee/bigword/internal/word"

// SignedNative is the set of native signed integer types BigWord can be
// constructed from or converted back into.
type SignedNative interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UnsignedNative is the set of native unsigned integer types BigWord can
// be constructed from or converted back into.
type UnsignedNative interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

func minSize[W word.Unsigned]() int {
	bitsInWord := word.BitsInWord[W]()
	n := 64 / bitsInWord
	if 64%bitsInWord != 0 {
		n++
	}
	return n
}

// New returns a BigWord initialized to positive zero, with MIN_SIZE words
// of backing storage (MIN_SIZE = ceil(64/W)).
func New[W word.Unsigned]() *BigWord[W] {
	b := &BigWord[W]{positive: true}
	b.bits.Resize(minSize[W](), 0)
	return b
}

// Clone returns a deep copy of b.
func (b *BigWord[W]) Clone() *BigWord[W] {
	out := &BigWord[W]{positive: b.positive}
	out.bits.CloneFrom(&b.bits)
	return out
}

// CloneFrom replaces b's contents with a deep copy of other.
func (b *BigWord[W]) CloneFrom(other *BigWord[W]) {
	b.positive = other.positive
	b.bits.CloneFrom(&other.bits)
}

// FromInt builds a BigWord[W] from a native signed integer. The magnitude
// is computed in the uint64 domain rather than by negating v in T: negating
// T's minimum value (e.g. int8(-128)) overflows within T and Go's defined
// wraparound would silently hand back the wrong magnitude, so v is widened
// and reinterpreted as its 64-bit two's-complement bit pattern first, then
// negated there via complement-plus-one — safe for every width up to and
// including int64's own minimum value.
func FromInt[T SignedNative, W word.Unsigned](v T) *BigWord[W] {
	b := New[W]()
	if v == 0 {
		return b
	}
	uv := uint64(int64(v))
	if v < 0 {
		uv = ^uv + 1
		b.addAt(0, uv, true)
		b.Negate()
	} else {
		b.addAt(0, uv, true)
	}
	return b
}

// FromUint builds a BigWord[W] from a native unsigned integer.
func FromUint[T UnsignedNative, W word.Unsigned](v T) *BigWord[W] {
	b := New[W]()
	if v > 0 {
		b.addAt(0, uint64(v), true)
	}
	return b
}
