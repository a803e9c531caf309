// Package softaes provides a constant-time, table-free implementation of AES in pure Go.
//
// The block cipher is implemented with [fixslicing], a form of bitslicing in which the ShiftRows step is folded into
// four alternating variants of MixColumns. Every operation on key or data material is a fixed sequence of Boolean
// operations on machine words, so there are no secret-dependent branches and no secret-dependent memory accesses. On
// 64-bit platforms four blocks are processed at once, and on 32-bit platforms two.
//
// NewCipher defers to crypto/aes when the CPU has AES instructions, unless the purego build tag is used. New128,
// New192, and New256 always return the software implementation.
//
// [fixslicing]: https://eprint.iacr.org/2020/1123
package softaes

import (
	"crypto/aes"
	"crypto/cipher"
	"runtime"
	"unsafe"
)

// BlockSize is the AES block size in bytes.
const BlockSize = aes.BlockSize

// KeySizeError is returned by NewCipher for keys which are not 16, 24, or 32 bytes long.
type KeySizeError = aes.KeySizeError

// A Cipher is an instance of AES using a particular key. It implements cipher.Block.
//
// A Cipher is safe for concurrent use, except for Reset.
type Cipher struct {
	e engine
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher creates and returns a new cipher.Block. The key argument should be the AES key, either 16, 24, or 32
// bytes to select AES-128, AES-192, or AES-256.
//
// If HardwareAES is set, the block is the runtime's crypto/aes implementation.
func NewCipher(key []byte) (cipher.Block, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, KeySizeError(len(key))
	}

	if HardwareAES {
		return aes.NewCipher(key)
	}

	return newCipher(key, newEngine), nil
}

// New128 returns an AES-128 Cipher.
func New128(key *[16]byte) *Cipher {
	return newCipher(key[:], newEngine)
}

// New192 returns an AES-192 Cipher.
func New192(key *[24]byte) *Cipher {
	return newCipher(key[:], newEngine)
}

// New256 returns an AES-256 Cipher.
func New256(key *[32]byte) *Cipher {
	return newCipher(key[:], newEngine)
}

func newCipher(key []byte, ctor func([]byte) engine) *Cipher {
	c := &Cipher{e: ctor(key)}
	runtime.AddCleanup(c, engine.reset, c.e)
	return c
}

// BlockSize returns the AES block size, 16 bytes.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first block in src into dst. Dst and src must overlap entirely or not at all.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("softaes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("softaes: output not full block")
	}
	if inexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("softaes: invalid buffer overlap")
	}
	c.process(dst[:BlockSize], src[:BlockSize], false)
}

// Decrypt decrypts the first block in src into dst. Dst and src must overlap entirely or not at all.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("softaes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("softaes: output not full block")
	}
	if inexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("softaes: invalid buffer overlap")
	}
	c.process(dst[:BlockSize], src[:BlockSize], true)
}

// EncryptBlocks encrypts every block in src into dst, processing as many blocks in parallel as the platform allows.
// The length of src must be a multiple of BlockSize. Dst and src must overlap entirely or not at all.
func (c *Cipher) EncryptBlocks(dst, src []byte) {
	checkBlocks(dst, src)
	c.process(dst[:len(src)], src, false)
}

// DecryptBlocks decrypts every block in src into dst, processing as many blocks in parallel as the platform allows.
// The length of src must be a multiple of BlockSize. Dst and src must overlap entirely or not at all.
func (c *Cipher) DecryptBlocks(dst, src []byte) {
	checkBlocks(dst, src)
	c.process(dst[:len(src)], src, true)
}

// Reset zeroes the round keys. The Cipher must not be used afterward.
func (c *Cipher) Reset() {
	c.e.reset()
}

// Backend returns the name of the engine in use: "fixslice64" or "fixslice32".
func (c *Cipher) Backend() string {
	return c.e.name()
}

// process runs src through the engine in batches of its width. The last batch may be short.
func (c *Cipher) process(dst, src []byte, decrypt bool) {
	var buf [maxParBlocks][BlockSize]byte
	par := c.e.parBlocks()
	for len(src) > 0 {
		n := min(len(src)/BlockSize, par)
		for i := range n {
			copy(buf[i][:], src[i*BlockSize:])
		}
		run(c.e, &buf, decrypt)
		for i := range n {
			copy(dst[i*BlockSize:], buf[i][:])
		}
		dst, src = dst[n*BlockSize:], src[n*BlockSize:]
	}
	clear(buf[:])
}

// run calls the concrete engine so that buf does not escape through the interface.
func run(e engine, buf *[maxParBlocks][BlockSize]byte, decrypt bool) {
	switch e := e.(type) {
	case *engine64:
		if decrypt {
			e.decrypt(buf)
		} else {
			e.encrypt(buf)
		}
	case *engine32:
		if decrypt {
			e.decrypt(buf)
		} else {
			e.encrypt(buf)
		}
	default:
		panic("softaes: unknown engine")
	}
}

func checkBlocks(dst, src []byte) {
	if len(src)%BlockSize != 0 {
		panic("softaes: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("softaes: output smaller than input")
	}
	if inexactOverlap(dst[:len(src)], src) {
		panic("softaes: invalid buffer overlap")
	}
}

// inexactOverlap reports whether x and y share memory at any non-corresponding index.
func inexactOverlap(x, y []byte) bool {
	if len(x) == 0 || len(y) == 0 || &x[0] == &y[0] {
		return false
	}
	return uintptr(unsafe.Pointer(&x[0])) <= uintptr(unsafe.Pointer(&y[len(y)-1])) &&
		uintptr(unsafe.Pointer(&y[0])) <= uintptr(unsafe.Pointer(&x[len(x)-1]))
}
