package harpocrates

import "io"

// Cipher is a keyed Harpocrates instance. It holds the secret look-up table
// together with its precomputed inverse and is immutable after construction;
// concurrent use from multiple goroutines is safe. Cipher implements
// crypto/cipher.Block.
type Cipher struct {
	lut      [LUTSize]byte
	invLUT   [LUTSize]byte
	zeroized bool
}

// NewCipher constructs a Cipher from an existing 256-byte permutation, for
// example one persisted from a previous LUT call. It fails with
// ErrInvalidLUT when lut is not a bijection of 0..255.
func NewCipher(lut []byte) (*Cipher, error) {
	if !isPermutation(lut) {
		return nil, ErrInvalidLUT
	}

	c := new(Cipher)
	copy(c.lut[:], lut)
	for i, v := range c.lut {
		c.invLUT[v] = byte(i)
	}
	return c, nil
}

// NewRandomCipher generates a fresh uniform random permutation and keys a
// Cipher with it. Randomness is drawn from rng; passing nil selects
// crypto/rand.Reader. Retrieve the permutation with LUT if the key must
// outlive the process.
func NewRandomCipher(rng io.Reader) (*Cipher, error) {
	lut, err := GenerateLUT(rng)
	if err != nil {
		return nil, err
	}
	return NewCipher(lut)
}

// BlockSize returns the cipher block size in bytes.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first 16 bytes of src into dst. Dst and src must be
// at least one block long and may be identical; partial overlap is a caller
// bug. Only one block is processed; use EncryptBlocks for longer buffers.
func (c *Cipher) Encrypt(dst, src []byte) {
	c.checkBlock(dst, src)
	encryptBlock(&c.lut, dst, src)
}

// Decrypt decrypts the first 16 bytes of src into dst, undoing Encrypt.
func (c *Cipher) Decrypt(dst, src []byte) {
	c.checkBlock(dst, src)
	decryptBlock(&c.invLUT, dst, src)
}

func (c *Cipher) checkBlock(dst, src []byte) {
	if c.zeroized {
		panic("harpocrates: use of zeroized cipher")
	}
	if len(src) < BlockSize {
		panic("harpocrates: input not full block")
	}
	if len(dst) < BlockSize {
		panic("harpocrates: output not full block")
	}
}

// LUT returns a copy of the secret permutation so callers can persist the
// key. Returns nil once the cipher has been zeroized.
func (c *Cipher) LUT() []byte {
	if c.zeroized {
		return nil
	}
	lut := make([]byte, LUTSize)
	copy(lut, c.lut[:])
	return lut
}

// Zeroize best-effort wipes both tables and retires the cipher. Subsequent
// block operations panic. Zeroize must not race with in-flight calls.
func (c *Cipher) Zeroize() {
	for i := range c.lut {
		c.lut[i] = 0
		c.invLUT[i] = 0
	}
	c.zeroized = true
}
