package harpocrates

import "errors"

var (
	// ErrInvalidLength is returned when a bulk input length is not a
	// multiple of the 16-byte block size, or when the output buffer does
	// not match the input length.
	ErrInvalidLength = errors.New("harpocrates: input length is not a multiple of the block size")

	// ErrInvalidLUT is returned when a supplied look-up table is not a
	// bijection of 0..255.
	ErrInvalidLUT = errors.New("harpocrates: LUT is not a permutation of 0..255")

	// ErrEntropy is returned when the randomness source could not produce
	// the bytes needed during LUT generation. There is no fallback source.
	ErrEntropy = errors.New("harpocrates: entropy source unavailable")
)
