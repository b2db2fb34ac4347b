package bigword

import "github.com/oisee/bigword/internal/word"

// wordCeil returns the number of W-bit words needed to hold the given
// bit count.
func wordCeil(bits, bitsInWord int) int {
	n := bits / bitsInWord
	if bits%bitsInWord != 0 {
		n++
	}
	return n
}

// addAt interprets val as unsigned and adds it into the word at index
// from, propagating any overflow into successive words. When the carry
// runs past the last word, it is dropped unless autoResize is set (only
// used by the native-integer constructors), in which case b grows by
// MIN_SIZE words and the remaining carry is added again.
func (b *BigWord[W]) addAt(from int, val uint64, autoResize bool) {
	if val == 0 {
		return
	}
	wordMax := uint64(word.WordMax[W]())
	bitsInWord := word.BitsInWord[W]()
	size := b.bits.Len()

	for i := from; i < size; i++ {
		sum := uint64(b.bits.At(i)) + val
		if sum <= wordMax {
			b.bits.Set(i, W(sum))
			val = 0
			break
		}
		b.bits.Set(i, W(sum&wordMax))
		val = sum >> bitsInWord
	}

	if val > 0 && autoResize {
		from = b.bits.Len()
		b.growTo(from + minSize[W]())
		b.addAt(from, val, true)
	}
}

// signAfterAdd is the pure sign-resolution function for x +/- y: same-sign
// addition keeps that sign; subtracting a negative from a positive (or a
// positive from a negative) is unconditional; otherwise the result takes
// the sign of the larger-magnitude operand, flipped when subtracting and
// that operand is y. Equal magnitudes resolve to positive (the result is 0).
func signAfterAdd[W word.Unsigned](x, y *BigWord[W], isAdd bool) bool {
	if isAdd && x.positive == y.positive {
		return x.positive
	}
	if !isAdd && x.positive && !y.positive {
		return true
	}
	if !isAdd && !x.positive && y.positive {
		return false
	}

	xBits := x.usedBits()
	yBits := y.usedBits()
	if xBits == 0 && yBits == 0 {
		return true
	}
	if xBits > yBits {
		return x.positive
	}
	if xBits < yBits {
		if isAdd {
			return y.positive
		}
		return !y.positive
	}

	bitsInWord := word.BitsInWord[W]()
	for i := wordCeil(xBits, bitsInWord); i > 0; i-- {
		xAbs := x.simulateAbs(i - 1)
		yAbs := y.simulateAbs(i - 1)
		if xAbs > yAbs {
			return x.positive
		}
		if xAbs < yAbs {
			if isAdd {
				return y.positive
			}
			return !y.positive
		}
	}
	return true
}

// addition performs b += other (isAdd) or b -= other (!isAdd) in place.
func (b *BigWord[W]) addition(other *BigWord[W], isAdd bool) {
	bitsInWord := word.BitsInWord[W]()
	oBits := other.usedBits()
	if oBits == 0 {
		return
	}
	rBits := b.usedBits()
	oWords := wordCeil(oBits, bitsInWord)
	maxBits := rBits
	if oBits > maxBits {
		maxBits = oBits
	}
	b.growTo(wordCeil(maxBits+1, bitsInWord))

	b.positive = signAfterAdd(b, other, isAdd)

	i := 0
	for ; i < oWords; i++ {
		var v uint64
		if isAdd {
			v = uint64(other.bits.At(i))
		} else {
			v = uint64(other.simulateOpposite(i))
		}
		b.addAt(i, v, false)
	}

	extendWithOnes := (isAdd && !other.positive) || (!isAdd && other.positive)
	if extendWithOnes && oWords < b.bits.Len() {
		wordMax := uint64(word.WordMax[W]())
		for ; i < b.bits.Len(); i++ {
			b.addAt(i, wordMax, false)
		}
	}

	rWords := b.usedWords()
	if rWords == 0 {
		b.positive = true
	}
	b.growTo(rWords)
}

// AddInPlace computes b += other.
func (b *BigWord[W]) AddInPlace(other *BigWord[W]) {
	b.addition(other, true)
}

// Add returns a new BigWord holding b + other.
func (b *BigWord[W]) Add(other *BigWord[W]) *BigWord[W] {
	out := b.Clone()
	out.AddInPlace(other)
	return out
}

// SubInPlace computes b -= other.
func (b *BigWord[W]) SubInPlace(other *BigWord[W]) {
	b.addition(other, false)
}

// Sub returns a new BigWord holding b - other.
func (b *BigWord[W]) Sub(other *BigWord[W]) *BigWord[W] {
	out := b.Clone()
	out.SubInPlace(other)
	return out
}

// Inc adds 1 in place.
func (b *BigWord[W]) Inc() {
	b.addAt(0, 1, b.positive)
	if !b.positive && b.allZero() {
		b.positive = true
	}
}

// Dec subtracts 1 in place.
func (b *BigWord[W]) Dec() {
	one := FromUint[uint8, W](1)
	b.SubInPlace(one)
}

// Negate flips b's sign in place, restoring invariant 3 (a negative
// value's top stored word must have its most-significant bit set) by
// growing the storage by one WORD_MAX word when needed.
func (b *BigWord[W]) Negate() {
	if b.allZero() {
		b.positive = true
		return
	}
	b.positive = !b.positive
	b.bits.Complement()
	b.addAt(0, 1, false)

	bitsInWord := word.BitsInWord[W]()
	if !b.positive && !b.Bit(b.bits.Len()*bitsInWord-1) {
		b.growTo(b.bits.Len() + 1)
	}
}

// Not returns a clone of b with every stored word complemented. It does
// not touch the sign flag: bitwise operators act on the raw
// two's-complement pattern directly.
func (b *BigWord[W]) Not() *BigWord[W] {
	out := b.Clone()
	out.bits.Complement()
	return out
}

// AndInPlace computes b &= other over the raw stored pattern.
func (b *BigWord[W]) AndInPlace(other *BigWord[W]) {
	b.bits.And(&other.bits)
}

// And returns b & other.
func (b *BigWord[W]) And(other *BigWord[W]) *BigWord[W] {
	out := b.Clone()
	out.AndInPlace(other)
	return out
}

// OrInPlace computes b |= other over the raw stored pattern.
func (b *BigWord[W]) OrInPlace(other *BigWord[W]) {
	b.bits.Or(&other.bits)
}

// Or returns b | other.
func (b *BigWord[W]) Or(other *BigWord[W]) *BigWord[W] {
	out := b.Clone()
	out.OrInPlace(other)
	return out
}

// XorInPlace computes b ^= other over the raw stored pattern.
func (b *BigWord[W]) XorInPlace(other *BigWord[W]) {
	b.bits.Xor(&other.bits)
}

// Xor returns b ^ other.
func (b *BigWord[W]) Xor(other *BigWord[W]) *BigWord[W] {
	out := b.Clone()
	out.XorInPlace(other)
	return out
}

// ShlInPlace shifts the stored pattern left by k bits. This is a logical
// shift on the raw representation: it does not re-derive the sign
// afterward, so a negative value's fill word may no longer read as
// WORD_MAX once shifted. Pinned behavior, not a defect — see DESIGN.md.
func (b *BigWord[W]) ShlInPlace(k int) {
	b.bits.ShiftLeft(k)
}

// Shl returns b << k.
func (b *BigWord[W]) Shl(k int) *BigWord[W] {
	out := b.Clone()
	out.ShlInPlace(k)
	return out
}

// ShrInPlace shifts the stored pattern right by k bits. Logical, not
// arithmetic: see ShlInPlace.
func (b *BigWord[W]) ShrInPlace(k int) {
	b.bits.ShiftRight(k)
}

// Shr returns b >> k.
func (b *BigWord[W]) Shr(k int) *BigWord[W] {
	out := b.Clone()
	out.ShrInPlace(k)
	return out
}

// multiplication computes b *= |other| via schoolbook multiplication,
// assuming b already holds a non-negative magnitude (the sign dance lives
// in MulInPlace). The scratch copy is shifted by a constant W-bit delta
// each iteration rather than by i*W, since re-shifting a buffer that
// already carries the previous iterations' shift by i*W overshoots for
// any multiplier spanning three or more words — the constant delta is
// what reaches the spec's "shift T left by i*W bits" target for each i.
func (b *BigWord[W]) multiplication(other *BigWord[W]) {
	bitsInWord := word.BitsInWord[W]()
	rBits := b.usedBits()
	oBits := other.usedBits()
	if oBits == 0 || rBits == 0 {
		b.clear()
		return
	}

	wordsNeeded := wordCeil(rBits+oBits, bitsInWord) + 1

	if other.IsPowerOfTwo() {
		b.growTo(wordsNeeded)
		b.ShlInPlace(oBits - 1)
		return
	}
	if b.IsPowerOfTwo() {
		b.CloneFrom(other)
		if !b.positive {
			b.Negate()
		}
		b.growTo(wordsNeeded)
		b.ShlInPlace(rBits - 1)
		return
	}

	oWords := wordCeil(oBits, bitsInWord)
	tmpResult := b.Clone()
	b.clear()
	b.growTo(wordsNeeded)
	tmpResult.growTo(wordsNeeded)

	for i := 0; i < oWords; i++ {
		oAbs := uint64(other.simulateAbs(i))
		if i > 0 {
			tmpResult.ShlInPlace(bitsInWord)
		}
		for j := 0; j < wordsNeeded; j++ {
			b.addAt(j, uint64(tmpResult.bits.At(j))*oAbs, false)
		}
	}
}

// MulInPlace computes b *= other.
func (b *BigWord[W]) MulInPlace(other *BigWord[W]) {
	finalSign := b.positive == other.positive
	if !b.positive {
		b.Negate()
	}
	b.multiplication(other)
	if !finalSign {
		b.Negate()
	}
}

// Mul returns b * other.
func (b *BigWord[W]) Mul(other *BigWord[W]) *BigWord[W] {
	out := b.Clone()
	out.MulInPlace(other)
	return out
}

// division runs restoring shift-and-subtract over non-negative b and
// divisor, leaving the quotient (wantQuotient) or remainder (!wantQuotient)
// in b. Both operands are assumed already non-negative; callers apply the
// sign convention (truncating quotient, dividend-signed remainder).
func (b *BigWord[W]) division(divisor *BigWord[W], wantQuotient bool) {
	bitsInWord := word.BitsInWord[W]()
	if b.allZero() || divisor.allZero() {
		return
	}
	if wantQuotient && divisor.IsPowerOfTwo() {
		b.ShrInPlace(divisor.usedBits() - 1)
		return
	}

	remainder := b.Clone()
	secureSize := wordCeil(remainder.usedBits()+1, bitsInWord)
	tmpDivisor := New[W]()
	tmpDivisor.growTo(secureSize)

	b.clear()

	for {
		if remainder.Equal(divisor) {
			if wantQuotient {
				b.addAt(0, 1, false)
			} else {
				b.clear()
			}
			return
		}
		if remainder.Less(divisor) {
			if !wantQuotient {
				b.CloneFrom(remainder)
			}
			return
		}

		dividendBits := remainder.usedBits()
		tmpDivisor.CloneFrom(divisor)
		tmpDivisor.growTo(wordCeil(dividendBits+1, bitsInWord))

		quotientShift := dividendBits - divisor.usedBits()
		if quotientShift > 0 {
			quotientShift--
		}
		tmpDivisor.ShlInPlace(quotientShift)
		if tmpDivisor.Greater(remainder) {
			tmpDivisor.ShrInPlace(1)
			quotientShift--
		}

		b.addAt(quotientShift/bitsInWord, uint64(1)<<(quotientShift%bitsInWord), false)
		remainder.SubInPlace(tmpDivisor)
	}
}

// divOrMod implements the shared sign dance around division: normalize
// both operands to non-negative magnitudes, run the restoring
// shift-and-subtract routine, then reapply the caller's sign convention
// (quotient: sign(b)==sign(other); remainder: sign(b), i.e. the dividend's
// original sign).
func (b *BigWord[W]) divOrMod(other *BigWord[W], wantQuotient bool) error {
	if other.allZero() {
		return ErrDivideByZero
	}

	var finalSign bool
	if wantQuotient {
		finalSign = b.positive == other.positive
	} else {
		finalSign = b.positive
	}

	if !b.positive {
		b.Negate()
	}
	divisor := other
	if !other.positive {
		divisor = other.Clone()
		divisor.Negate()
	}

	b.division(divisor, wantQuotient)

	if !finalSign {
		b.Negate()
	}
	return nil
}

// DivInPlace computes b /= other, truncating toward zero.
func (b *BigWord[W]) DivInPlace(other *BigWord[W]) error {
	return b.divOrMod(other, true)
}

// Div returns b / other.
func (b *BigWord[W]) Div(other *BigWord[W]) (*BigWord[W], error) {
	out := b.Clone()
	if err := out.DivInPlace(other); err != nil {
		return nil, err
	}
	return out, nil
}

// ModInPlace computes b %= other. The result carries the sign of the
// original dividend (b), per spec.md's truncating-division convention.
func (b *BigWord[W]) ModInPlace(other *BigWord[W]) error {
	return b.divOrMod(other, false)
}

// Mod returns b mod other.
func (b *BigWord[W]) Mod(other *BigWord[W]) (*BigWord[W], error) {
	out := b.Clone()
	if err := out.ModInPlace(other); err != nil {
		return nil, err
	}
	return out, nil
}

// DivMod returns both the quotient and remainder of b / other.
func (b *BigWord[W]) DivMod(other *BigWord[W]) (quotient, remainder *BigWord[W], err error) {
	quotient, err = b.Div(other)
	if err != nil {
		return nil, nil, err
	}
	remainder, err = b.Mod(other)
	if err != nil {
		return nil, nil, err
	}
	return quotient, remainder, nil
}
