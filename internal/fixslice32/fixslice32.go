// Package fixslice32 implements fixsliced AES on two blocks at a time, packed into eight 32-bit words.
//
// Fixslicing skips the ShiftRows step of every round. The state then drifts through four representations, one per
// round number mod 4, and each representation gets its own MixColumns variant that knows where the bytes of a column
// have moved. Round keys are stored in the representation of the round that consumes them, and the final round
// re-aligns the state with a ShiftRows of (rounds mod 4).
//
// See Adomnicai and Peyrin, "Fixslicing AES-like Ciphers" (https://eprint.iacr.org/2020/1123).
package fixslice32

import (
	"github.com/codahale/softaes/internal/fixslice"
)

const (
	// ParBlocks is the number of blocks processed by each call to Encrypt or Decrypt.
	ParBlocks = 2

	// BlockSize is the AES block size in bytes.
	BlockSize = 16
)

// Keys128 holds the 11 round keys of AES-128.
type Keys128 [88]uint32

// Keys192 holds the 13 round keys of AES-192.
type Keys192 [104]uint32

// Keys256 holds the 15 round keys of AES-256.
type Keys256 [120]uint32

// Reset zeroes the round keys.
func (k *Keys128) Reset() { clear(k[:]) }

// Reset zeroes the round keys.
func (k *Keys192) Reset() { clear(k[:]) }

// Reset zeroes the round keys.
func (k *Keys256) Reset() { clear(k[:]) }

// Encrypt encrypts blocks in place with the given round keys, which must be the contents of a Keys128, Keys192, or
// Keys256.
func Encrypt(rkeys []uint32, blocks *[ParBlocks][BlockSize]byte) {
	rounds := roundCount(len(rkeys))

	var q [8]uint32
	Pack(&q, &blocks[0], &blocks[1])

	fixslice.AddRoundKey(&q, rkeys[:8])
	for i := 1; i < rounds; i++ {
		fixslice.SubBytes(&q)
		mixColumns(i, &q)
		fixslice.AddRoundKey(&q, rkeys[8*i:])
	}

	// The state now lags by (rounds-1) mod 4 ShiftRows and the last round needs one more: two for AES-128 and
	// AES-256, none for AES-192.
	if rounds%4 == 2 {
		shiftRows2(&q)
	}
	fixslice.SubBytes(&q)
	fixslice.AddRoundKey(&q, rkeys[8*rounds:])

	*blocks = Unpack(&q)
	clear(q[:])
}

// Decrypt decrypts blocks in place with the given round keys, which must be the contents of a Keys128, Keys192, or
// Keys256.
func Decrypt(rkeys []uint32, blocks *[ParBlocks][BlockSize]byte) {
	rounds := roundCount(len(rkeys))

	var q [8]uint32
	Pack(&q, &blocks[0], &blocks[1])

	fixslice.AddRoundKey(&q, rkeys[8*rounds:])
	fixslice.InvSubBytes(&q)
	if rounds%4 == 2 {
		invShiftRows2(&q)
	}

	for i := rounds - 1; i > 0; i-- {
		fixslice.AddRoundKey(&q, rkeys[8*i:])
		invMixColumns(i, &q)
		fixslice.InvSubBytes(&q)
	}
	fixslice.AddRoundKey(&q, rkeys[:8])

	*blocks = Unpack(&q)
	clear(q[:])
}

// mixColumns applies the MixColumns variant for the representation of round i.
func mixColumns(i int, q *[8]uint32) {
	switch i % 4 {
	case 0:
		mixColumns0(q)
	case 1:
		mixColumns1(q)
	case 2:
		mixColumns2(q)
	default:
		mixColumns3(q)
	}
}

func invMixColumns(i int, q *[8]uint32) {
	switch i % 4 {
	case 0:
		invMixColumns0(q)
	case 1:
		invMixColumns1(q)
	case 2:
		invMixColumns2(q)
	default:
		invMixColumns3(q)
	}
}

func roundCount(n int) int {
	switch n {
	case len(Keys128{}), len(Keys192{}), len(Keys256{}):
		return n/8 - 1
	default:
		panic("fixslice32: invalid round key table")
	}
}
