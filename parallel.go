package harpocrates

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EncryptBlocksParallel is EncryptBlocks with the blocks sharded across up
// to GOMAXPROCS workers. Every block is independent and the tables are
// read-only, so the output is byte-identical to the sequential driver; no
// ordering is guaranteed between concurrent block completions. Small buffers
// fall through to the sequential path.
func (c *Cipher) EncryptBlocksParallel(dst, src []byte) error {
	return c.parallelBlocks(dst, src, (*Cipher).EncryptBlocks)
}

// DecryptBlocksParallel is DecryptBlocks with the blocks sharded across up
// to GOMAXPROCS workers.
func (c *Cipher) DecryptBlocksParallel(dst, src []byte) error {
	return c.parallelBlocks(dst, src, (*Cipher).DecryptBlocks)
}

// Shards below this many blocks are not worth a goroutine handoff.
const minBlocksPerShard = 16

func (c *Cipher) parallelBlocks(dst, src []byte, op func(*Cipher, []byte, []byte) error) error {
	if err := c.checkBulk(dst, src); err != nil {
		return err
	}

	nBlocks := len(src) / BlockSize
	shards := runtime.GOMAXPROCS(0)
	if limit := nBlocks / minBlocksPerShard; shards > limit {
		shards = limit
	}
	if shards <= 1 {
		return op(c, dst, src)
	}

	per := (nBlocks + shards - 1) / shards

	var g errgroup.Group
	for lo := 0; lo < nBlocks; lo += per {
		hi := min(lo+per, nBlocks)
		from, to := lo*BlockSize, hi*BlockSize
		g.Go(func() error {
			return op(c, dst[from:to], src[from:to])
		})
	}
	return g.Wait()
}
