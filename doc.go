// Package harpocrates implements the Harpocrates block cipher, an encryption
// mechanism for data-at-rest operating on 16-byte (128-bit) blocks.
//
// Unlike conventional block ciphers, Harpocrates does not expand a short key
// into a round-key schedule. The secret is a full permutation of the 256-byte
// space (a bijective S-box, the "LUT"); encryption and decryption run an
// 8-round substitution-permutation network whose only non-linear primitive
// is table lookup through this permutation.
//
// # Features
//
//   - 128-bit block size with an 8-round SPN built from chained byte-level
//     substitutions, a bit-matrix column substitution, and rotating round
//     constants
//   - Key material is a uniform random 256-byte permutation, generated with
//     an unbiased Fisher-Yates shuffle from OS entropy (or any io.Reader)
//   - *Cipher satisfies crypto/cipher.Block, so stdlib tooling composes
//     with it
//   - Bulk helpers process arbitrary multiples of 16 bytes, sequentially or
//     sharded across CPU cores; blocks are fully independent
//   - Deterministic seeded keystream reader for reproducible key material
//     and test fixtures
//
// # Security
//
// Harpocrates is specified in "Harpocrates: An Efficient Encryption
// Mechanism for Data-at-rest" (https://eprint.iacr.org/2022/519.pdf).
//
// The round function performs data-dependent lookups into a 256-byte table.
// This is NOT a constant-time design and must not be relied upon in settings
// where a co-resident attacker can observe cache timing. Keep the LUT out of
// logs and swap; call Zeroize when a key epoch ends.
//
// This package provides raw block encryption only: no authentication, no
// chaining mode, no padding, no nonce management. Inputs must be exact
// multiples of 16 bytes; callers supply padding if required.
//
// # Basic Usage
//
//	cipher, err := harpocrates.NewRandomCipher(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext := []byte("0123456789abcdef") // one 16-byte block
//	ciphertext := make([]byte, len(plaintext))
//	cipher.Encrypt(ciphertext, plaintext)
//
//	decrypted := make([]byte, len(ciphertext))
//	cipher.Decrypt(decrypted, ciphertext)
//
// The secret permutation is available via LUT for persistence; reconstruct
// the cipher later with NewCipher.
//
// # Bulk Operation
//
// EncryptBlocks and DecryptBlocks transform whole buffers whose length is a
// multiple of the block size. Every 16-byte block is independent (no
// chaining IV), so EncryptBlocksParallel and DecryptBlocksParallel may shard
// the same work across cores with byte-identical results.
//
// # Thread Safety
//
// A Cipher is immutable after construction; any number of goroutines may
// encrypt and decrypt through it concurrently. Zeroize is the only mutating
// operation and must not race with in-flight calls.
package harpocrates
