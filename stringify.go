package bigword

import "github.com/oisee/bigword/internal/word"

// Base selects the radix Format renders in.
type Base int

const (
	Binary Base = iota
	Octal
	Decimal
	Hex
)

// Format renders b as text in the given base. sep, if non-zero, is
// inserted between digit groups (every W bits for binary, every 2
// characters for octal/hex, every 3 for decimal), counted from the
// least-significant end. Zero always renders as a single "0" in
// octal/decimal/hex and as W zero characters in binary — the one case
// where a leading zero "word" is not suppressed.
func (b *BigWord[W]) Format(base Base, sep byte) string {
	switch base {
	case Binary:
		return b.formatBinary(sep)
	case Octal:
		return b.formatDigits(8, 2, sep)
	case Hex:
		return b.formatDigits(16, 2, sep)
	case Decimal:
		return b.formatDigits(10, 3, sep)
	default:
		return b.formatBinary(sep)
	}
}

// String renders b in decimal with no separator, satisfying fmt.Stringer.
func (b *BigWord[W]) String() string {
	return b.Format(Decimal, 0)
}

func (b *BigWord[W]) formatBinary(sep byte) string {
	bitsInWord := word.BitsInWord[W]()
	words := b.usedWords()

	var out []byte
	if !b.positive {
		out = append(out, '-')
	}
	if words == 0 {
		for i := 0; i < bitsInWord; i++ {
			out = append(out, '0')
		}
		return string(out)
	}

	first := true
	for w := words; w > 0; w-- {
		abs := b.simulateAbs(w - 1)
		if first && abs == 0 {
			first = false
			continue
		}
		for offset := 0; offset < bitsInWord; offset++ {
			if getBit(abs, bitsInWord-1-offset) {
				out = append(out, '1')
			} else {
				out = append(out, '0')
			}
		}
		if sep != 0 && w > 1 {
			out = append(out, sep)
		}
		first = false
	}
	return string(out)
}

// formatDigits renders the magnitude by walking every used bit
// most-significant-first through a little-endian base-B digit vector:
// each bit doubles the accumulated value (digits *= 2) and a set bit
// adds one, with carry propagation in base B. The vector is built
// little-endian and reversed once at the end.
func (b *BigWord[W]) formatDigits(base int, groupSize int, sep byte) string {
	bitsInWord := word.BitsInWord[W]()
	digits := []int{0}

	for w := b.usedWords(); w > 0; w-- {
		abs := b.simulateAbs(w - 1)
		for i := 0; i < bitsInWord; i++ {
			digits = multiplyDigits(digits, 2, base)
			if getBit(abs, bitsInWord-1-i) {
				digits = addOneDigit(digits, 0, base)
			}
		}
	}

	out := make([]byte, 0, len(digits)+len(digits)/groupSize+1)
	for i, d := range digits {
		out = append(out, digitChar(d))
		if sep != 0 && i != 0 && i%groupSize == groupSize-1 && i != len(digits)-1 {
			out = append(out, sep)
		}
	}
	if !b.positive {
		out = append(out, '-')
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// addOneDigit adds 1 to the little-endian base-B digit vector starting
// at index i, propagating carries and growing the vector if the carry
// runs past the top.
func addOneDigit(digits []int, i int, base int) []int {
	for ; i < len(digits); i++ {
		if digits[i] < base-1 {
			digits[i]++
			return digits
		}
		digits[i] = 0
	}
	return append(digits, 1)
}

// multiplyDigits returns digits*mult in base B, built fresh via repeated
// addOneDigit calls — a direct, unoptimized but easy-to-verify port of
// the same carry-propagation primitive used by addOneDigit itself. A
// multiply that produces a zero most-significant digit drops it instead
// of padding, keeping the vector free of leading zero digits.
func multiplyDigits(digits []int, mult int, base int) []int {
	size := len(digits)
	ret := make([]int, 0, size+1)
	for i := 0; i < size; i++ {
		addHowMuch := digits[i] * mult
		if addHowMuch == 0 && i < size-1 {
			ret = append(ret, 0)
		}
		for ; addHowMuch > 0; addHowMuch-- {
			ret = addOneDigit(ret, i, base)
		}
	}
	return ret
}

func digitChar(d int) byte {
	if d < 10 {
		return byte('0' + d)
	}
	return byte('A' + d - 10)
}
