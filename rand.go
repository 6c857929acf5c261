package harpocrates

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/chacha20"
)

// NewSeededReader returns an io.Reader producing the deterministic ChaCha20
// keystream derived from seed: the 8 seed bytes, big-endian, zero-padded to
// the 32-byte key, with a zero nonce. Feeding it to GenerateLUT or
// NewRandomCipher reproduces the same permutation on every run, which is how
// test fixtures and cross-implementation vectors are pinned.
//
// The stream is NOT a substitute for OS entropy when keying real data; a
// 64-bit seed is far below the keyspace of a random permutation.
func NewSeededReader(seed uint64) io.Reader {
	var key [chacha20.KeySize]byte
	binary.BigEndian.PutUint64(key[:8], seed)
	var nonce [chacha20.NonceSize]byte

	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic("harpocrates: chacha20 init failed: " + err.Error())
	}
	return &seededReader{stream: stream}
}

type seededReader struct {
	stream *chacha20.Cipher
}

func (r *seededReader) Read(p []byte) (int, error) {
	clear(p)
	r.stream.XORKeyStream(p, p)
	return len(p), nil
}
