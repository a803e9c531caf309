package softaes

import (
	"math/bits"

	"github.com/codahale/softaes/internal/fixslice32"
	"github.com/codahale/softaes/internal/fixslice64"
)

// maxParBlocks is the widest batch any engine processes.
const maxParBlocks = fixslice64.ParBlocks

// An engine holds a key schedule and runs batches of blocks through it. The first parBlocks blocks of the buffer are
// processed in place; the rest are ignored.
type engine interface {
	encrypt(buf *[maxParBlocks][BlockSize]byte)
	decrypt(buf *[maxParBlocks][BlockSize]byte)
	parBlocks() int
	reset()
	name() string
}

// newEngine picks the engine matching the native word size.
func newEngine(key []byte) engine {
	if bits.UintSize == 64 {
		return newEngine64(key)
	}
	return newEngine32(key)
}

type engine32 struct {
	rk []uint32
}

func newEngine32(key []byte) engine {
	switch len(key) {
	case 16:
		k := new(fixslice32.Keys128)
		fixslice32.Schedule128(k, (*[16]byte)(key))
		return &engine32{rk: k[:]}
	case 24:
		k := new(fixslice32.Keys192)
		fixslice32.Schedule192(k, (*[24]byte)(key))
		return &engine32{rk: k[:]}
	case 32:
		k := new(fixslice32.Keys256)
		fixslice32.Schedule256(k, (*[32]byte)(key))
		return &engine32{rk: k[:]}
	default:
		panic("softaes: invalid key size")
	}
}

func (e *engine32) encrypt(buf *[maxParBlocks][BlockSize]byte) {
	fixslice32.Encrypt(e.rk, (*[fixslice32.ParBlocks][BlockSize]byte)(buf[:fixslice32.ParBlocks]))
}

func (e *engine32) decrypt(buf *[maxParBlocks][BlockSize]byte) {
	fixslice32.Decrypt(e.rk, (*[fixslice32.ParBlocks][BlockSize]byte)(buf[:fixslice32.ParBlocks]))
}

func (e *engine32) parBlocks() int { return fixslice32.ParBlocks }

func (e *engine32) reset() { clear(e.rk) }

func (e *engine32) name() string { return "fixslice32" }

type engine64 struct {
	rk []uint64
}

func newEngine64(key []byte) engine {
	switch len(key) {
	case 16:
		k := new(fixslice64.Keys128)
		fixslice64.Schedule128(k, (*[16]byte)(key))
		return &engine64{rk: k[:]}
	case 24:
		k := new(fixslice64.Keys192)
		fixslice64.Schedule192(k, (*[24]byte)(key))
		return &engine64{rk: k[:]}
	case 32:
		k := new(fixslice64.Keys256)
		fixslice64.Schedule256(k, (*[32]byte)(key))
		return &engine64{rk: k[:]}
	default:
		panic("softaes: invalid key size")
	}
}

func (e *engine64) encrypt(buf *[maxParBlocks][BlockSize]byte) { fixslice64.Encrypt(e.rk, buf) }

func (e *engine64) decrypt(buf *[maxParBlocks][BlockSize]byte) { fixslice64.Decrypt(e.rk, buf) }

func (e *engine64) parBlocks() int { return fixslice64.ParBlocks }

func (e *engine64) reset() { clear(e.rk) }

func (e *engine64) name() string { return "fixslice64" }
