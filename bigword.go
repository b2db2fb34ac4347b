// Package bigword implements arbitrary-precision signed integers backed by
// a configurable machine word width, in the style of a two's-complement
// magnitude body paired with a separate sign flag.
package bigword

import (
	"errors"

	"github.com/oisee/bigword/internal/word"
)

// ErrDivideByZero is returned by Div/Mod/DivMod and their in-place forms
// when the divisor has no set bits.
var ErrDivideByZero = errors.New("bigword: division by zero")

// ErrConversionOverflow is returned by the To* conversions when the
// value's used-bit width exceeds the destination native type's width.
var ErrConversionOverflow = errors.New("bigword: value does not fit in destination type")

// BigWord is a signed integer of arbitrary precision, parameterized by
// the unsigned word width W. The zero value is not directly usable; build
// one with New, FromInt, or FromUint.
type BigWord[W word.Unsigned] struct {
	positive bool
	bits     word.BitSet[W]
}

// growTo resizes the backing bit pattern to n words, filling any newly
// exposed words with 0 if positive or WORD_MAX if negative — matching
// the sign-consistent fill a two's-complement body needs when it grows.
func (b *BigWord[W]) growTo(n int) {
	init := W(0)
	if !b.positive {
		init = word.WordMax[W]()
	}
	b.bits.Resize(n, init)
}

// clear resets b to positive zero without changing its storage size.
func (b *BigWord[W]) clear() {
	b.positive = true
	b.bits.Fill(0)
}

// allZero reports whether every stored word is zero, independent of sign.
// Representation invariant 4 guarantees this only ever holds when
// positive is also true, but internal routines check magnitude alone
// before that invariant has been restored.
func (b *BigWord[W]) allZero() bool {
	zero := true
	b.bits.Iterate(func(_ int, w W) bool {
		if w != 0 {
			zero = false
			return false
		}
		return true
	})
	return zero
}

// IsZero reports whether b is the value 0.
func (b *BigWord[W]) IsZero() bool {
	return b.positive && b.allZero()
}

// AllBitsSet reports whether every stored word equals WORD_MAX.
func (b *BigWord[W]) AllBitsSet() bool {
	wordMax := word.WordMax[W]()
	all := true
	b.bits.Iterate(func(_ int, w W) bool {
		if w != wordMax {
			all = false
			return false
		}
		return true
	})
	return all
}

// IsPositive reports whether b's sign flag is non-negative (true also for zero).
func (b *BigWord[W]) IsPositive() bool {
	return b.positive
}

// Size returns the number of words currently backing b.
func (b *BigWord[W]) Size() int {
	return b.bits.Len()
}

// usedWords is the minimum-length prefix of the word array that fully
// determines the value under the sign convention: for positive, the
// count after stripping high-order zero words; for negative, the count
// after stripping high-order WORD_MAX words, plus one more if the new
// top word's most-significant bit is 0 (to keep the sign bit present).
func (b *BigWord[W]) usedWords() int {
	wordMax := word.WordMax[W]()
	n := b.bits.Len()
	for n > 0 {
		w := b.bits.At(n - 1)
		if b.positive {
			if w != 0 {
				break
			}
		} else if w != wordMax {
			break
		}
		n--
	}

	if !b.positive {
		idx := n
		if idx > 0 {
			idx--
		}
		bitsInWord := word.BitsInWord[W]()
		if !getBit(b.bits.At(idx), bitsInWord-1) {
			idx++
		}
		n = idx + 1
	}
	return n
}

// usedBits is usedWords*W, trimmed of trailing high-order bits that match
// the sign, with a +1 correction when the negative value's absolute value
// falls exactly on a power-of-two boundary.
func (b *BigWord[W]) usedBits() int {
	bitsInWord := word.BitsInWord[W]()
	bit := b.usedWords() * bitsInWord
	if bit == 0 {
		return 0
	}
	bit--
	for bit > 0 {
		set := b.Bit(bit)
		if (b.positive && set) || (!b.positive && !set) {
			break
		}
		bit--
	}
	if !b.positive && b.IsPowerOfTwo() {
		bit++
	}
	return bit + 1
}

// IsPowerOfTwo reports whether |b| has exactly one bit set (b != 0).
// -1 reports false: its stored pattern is all WORD_MAX words.
func (b *BigWord[W]) IsPowerOfTwo() bool {
	words := b.usedWords()
	if words == 0 {
		return false
	}
	wordMax := word.WordMax[W]()
	w := b.bits.At(words - 1)

	isPow2 := w&(w-1) == 0
	negW := ^w + 1
	isNegPow2 := negW&(negW-1) == 0

	if w == wordMax || (b.positive && isPow2) || (!b.positive && isNegPow2) {
		if words == 1 {
			return w != wordMax
		}
		words -= 2
		for words > 0 && b.bits.At(words) == 0 {
			words--
		}
		if words == 0 && b.bits.At(0) == 0 {
			return true
		}
	}
	return false
}

// Bit reports whether absolute bit index i is set in the stored pattern.
// Out-of-range indices return false.
func (b *BigWord[W]) Bit(i int) bool {
	bitsInWord := word.BitsInWord[W]()
	if i < 0 || i >= b.bits.Len()*bitsInWord {
		return false
	}
	return getBit(b.bits.At(i/bitsInWord), i%bitsInWord)
}

// SetBit sets or clears absolute bit index i in the stored pattern.
// Out-of-range indices are a no-op.
func (b *BigWord[W]) SetBit(i int, v bool) {
	bitsInWord := word.BitsInWord[W]()
	if i < 0 || i >= b.bits.Len()*bitsInWord {
		return
	}
	idx := i / bitsInWord
	pos := i % bitsInWord
	w := b.bits.At(idx)
	if v {
		w |= W(1) << pos
	} else {
		w &^= W(1) << pos
	}
	b.bits.Set(idx, w)
}

// Fill overwrites every stored word to WORD_MAX (v=true) or 0 (v=false),
// without touching the sign flag.
func (b *BigWord[W]) Fill(v bool) {
	if v {
		b.bits.Fill(word.WordMax[W]())
	} else {
		b.bits.Fill(0)
	}
}

func getBit[W word.Unsigned](w W, pos int) bool {
	return w&(W(1)<<pos) != 0
}

// simulateAbs returns the i-th word of |b| as if b were positive.
func (b *BigWord[W]) simulateAbs(i int) W {
	if b.positive {
		return b.bits.At(i)
	}
	return b.simulateOpposite(i)
}

// simulateOpposite returns the i-th word of -b, regardless of b's actual
// sign: two's-complement negation carries a +1 up from the lowest set
// bit, so word i is the plain complement once any lower word is nonzero,
// or the complement-plus-one while every lower word is still zero.
func (b *BigWord[W]) simulateOpposite(i int) W {
	for j := 0; j < i; j++ {
		if b.bits.At(j) != 0 {
			return ^b.bits.At(i)
		}
	}
	return ^b.bits.At(i) + 1
}

// Equal reports whether b and other carry the same sign and the same
// value across their used-word prefix.
func (b *BigWord[W]) Equal(other *BigWord[W]) bool {
	if b == other {
		return true
	}
	if b.positive != other.positive {
		return false
	}
	if b.usedWords() != other.usedWords() {
		return false
	}
	limit := min(b.bits.Len(), other.bits.Len())
	for i := 0; i < limit; i++ {
		if b.bits.At(i) != other.bits.At(i) {
			return false
		}
	}
	return true
}

// LessOrEqual implements the total order described in spec.md §4.3:
// negatives sort below positives; among same-sign values, fewer words
// wins for positive and more words wins for negative; ties are broken
// word-by-word from the most significant word down.
func (b *BigWord[W]) LessOrEqual(other *BigWord[W]) bool {
	if b == other {
		return true
	}
	if b.positive && !other.positive {
		return false
	}
	if !b.positive && other.positive {
		return true
	}

	words := b.usedWords()
	oWords := other.usedWords()
	if words == 0 && oWords == 0 {
		return true
	}
	if (!b.positive && words > oWords) || (b.positive && words < oWords) {
		return true
	}
	if (!b.positive && words < oWords) || (b.positive && words > oWords) {
		return false
	}

	for w := words - 1; w > 0; w-- {
		if b.bits.At(w) == other.bits.At(w) {
			continue
		}
		return b.bits.At(w) < other.bits.At(w)
	}
	return b.bits.At(0) <= other.bits.At(0)
}

// Less reports whether b < other.
func (b *BigWord[W]) Less(other *BigWord[W]) bool {
	if b.Equal(other) {
		return false
	}
	return b.LessOrEqual(other)
}

// GreaterOrEqual reports whether b >= other.
func (b *BigWord[W]) GreaterOrEqual(other *BigWord[W]) bool {
	return !b.Less(other)
}

// Greater reports whether b > other.
func (b *BigWord[W]) Greater(other *BigWord[W]) bool {
	return !b.LessOrEqual(other)
}

// Cmp returns -1, 0, or 1 as b is less than, equal to, or greater than other.
func (b *BigWord[W]) Cmp(other *BigWord[W]) int {
	switch {
	case b.Equal(other):
		return 0
	case b.Less(other):
		return -1
	default:
		return 1
	}
}
