package harpocrates

import (
	"bufio"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// GenerateLUT produces a fresh uniform random permutation of 0..255, the
// secret material for a Harpocrates key epoch. Randomness is drawn from rng;
// passing nil selects crypto/rand.Reader. There is no fallback source: if
// the reader fails, the error wraps ErrEntropy and no LUT is produced.
func GenerateLUT(rng io.Reader) ([]byte, error) {
	if rng == nil {
		rng = rand.Reader
	}

	lut := make([]byte, LUTSize)
	for i := range lut {
		lut[i] = byte(i)
	}

	if err := shuffle(lut, rng); err != nil {
		return nil, err
	}
	return lut, nil
}

// shuffle applies an in-place Fisher-Yates pass: for each position i, swap
// with a uniformly chosen position in [i, 255].
func shuffle(lut []byte, rng io.Reader) error {
	br := bufio.NewReader(rng)
	var word [4]byte

	next := func() (uint32, error) {
		if _, err := io.ReadFull(br, word[:]); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrEntropy, err)
		}
		return binary.BigEndian.Uint32(word[:]), nil
	}

	for i := 0; i < LUTSize-1; i++ {
		j, err := uniformIndex(next, uint32(LUTSize-i))
		if err != nil {
			return err
		}
		lut[i], lut[i+int(j)] = lut[i+int(j)], lut[i]
	}
	return nil
}

// uniformIndex returns an unbiased index in [0, bound) using Lemire's
// multiply-and-reject method. Truncating a raw draw with a modulo would bias
// low values whenever bound does not divide 2^32; the rejection branch runs
// with probability bound/2^32.
func uniformIndex(next func() (uint32, error), bound uint32) (uint32, error) {
	for {
		r, err := next()
		if err != nil {
			return 0, err
		}
		prod := uint64(r) * uint64(bound)
		if low := uint32(prod); low < bound {
			if low < -bound%bound {
				continue
			}
		}
		return uint32(prod >> 32), nil
	}
}

// DeriveInverseLUT computes the functional inverse of lut, satisfying
// inv[lut[i]] == i for every i. It fails with ErrInvalidLUT when lut is not
// a 256-byte bijection. The inverse must be rederived whenever the LUT
// changes.
func DeriveInverseLUT(lut []byte) ([]byte, error) {
	if !isPermutation(lut) {
		return nil, ErrInvalidLUT
	}

	inv := make([]byte, LUTSize)
	for i, v := range lut {
		inv[v] = byte(i)
	}
	return inv, nil
}

func isPermutation(lut []byte) bool {
	if len(lut) != LUTSize {
		return false
	}
	var seen [LUTSize]bool
	for _, v := range lut {
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
