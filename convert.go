package bigword

import (
	"unsafe"

	"github.com/oisee/bigword/internal/word"
)

func nativeBitWidth[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// ToInt converts b to a native signed integer type T. A positive zero
// always converts to 0. If b's used-bit width exceeds T's bit width, the
// conversion overflows: ToInt returns (0, ErrConversionOverflow) rather
// than a silently wrapped value.
func ToInt[T SignedNative, W word.Unsigned](b *BigWord[W]) (T, error) {
	bits := b.usedBits()
	if b.positive && bits == 0 {
		return 0, nil
	}
	if bits > nativeBitWidth[T]() {
		return 0, ErrConversionOverflow
	}

	bitsInWord := word.BitsInWord[W]()
	var ret uint64
	for i := wordCeil(bits, bitsInWord); i > 0; i-- {
		ret <<= bitsInWord
		ret |= uint64(b.simulateAbs(i - 1))
	}

	result := T(ret)
	if !b.positive {
		result = -result
	}
	return result, nil
}

// ToUint converts b to a native unsigned integer type T, following the
// same overflow convention as ToInt. A negative value converts to its
// magnitude: the sign is dropped, not reinterpreted as a two's-complement
// bit pattern.
func ToUint[T UnsignedNative, W word.Unsigned](b *BigWord[W]) (T, error) {
	bits := b.usedBits()
	if b.positive && bits == 0 {
		return 0, nil
	}
	if bits > nativeBitWidth[T]() {
		return 0, ErrConversionOverflow
	}

	bitsInWord := word.BitsInWord[W]()
	var ret uint64
	for i := wordCeil(bits, bitsInWord); i > 0; i-- {
		ret <<= bitsInWord
		ret |= uint64(b.simulateAbs(i - 1))
	}
	return T(ret), nil
}

// Int64 converts b to int64, per ToInt's overflow convention.
func (b *BigWord[W]) Int64() (int64, error) { return ToInt[int64](b) }

// Uint64 converts b to uint64, per ToUint's overflow convention.
func (b *BigWord[W]) Uint64() (uint64, error) { return ToUint[uint64](b) }

// Int32 converts b to int32, per ToInt's overflow convention.
func (b *BigWord[W]) Int32() (int32, error) { return ToInt[int32](b) }

// Uint32 converts b to uint32, per ToUint's overflow convention.
func (b *BigWord[W]) Uint32() (uint32, error) { return ToUint[uint32](b) }

// Int16 converts b to int16, per ToInt's overflow convention.
func (b *BigWord[W]) Int16() (int16, error) { return ToInt[int16](b) }

// Uint16 converts b to uint16, per ToUint's overflow convention.
func (b *BigWord[W]) Uint16() (uint16, error) { return ToUint[uint16](b) }

// Int8 converts b to int8, per ToInt's overflow convention.
func (b *BigWord[W]) Int8() (int8, error) { return ToInt[int8](b) }

// Uint8 converts b to uint8, per ToUint's overflow convention.
func (b *BigWord[W]) Uint8() (uint8, error) { return ToUint[uint8](b) }
