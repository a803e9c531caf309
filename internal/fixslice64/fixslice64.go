// Package fixslice64 implements fixsliced AES on four blocks at a time, packed into eight 64-bit words.
//
// The round structure is the same as in the 32-bit engine; only the bit layout differs. The byte at row r, column c
// of block b sits at bit 16r + 4c + b of each word.
package fixslice64

import (
	"github.com/codahale/softaes/internal/fixslice"
)

const (
	// ParBlocks is the number of blocks processed by each call to Encrypt or Decrypt.
	ParBlocks = 4

	// BlockSize is the AES block size in bytes.
	BlockSize = 16
)

// Keys128 holds the 11 round keys of AES-128.
type Keys128 [88]uint64

// Keys192 holds the 13 round keys of AES-192.
type Keys192 [104]uint64

// Keys256 holds the 15 round keys of AES-256.
type Keys256 [120]uint64

// Reset zeroes the round keys.
func (k *Keys128) Reset() { clear(k[:]) }

// Reset zeroes the round keys.
func (k *Keys192) Reset() { clear(k[:]) }

// Reset zeroes the round keys.
func (k *Keys256) Reset() { clear(k[:]) }

// Encrypt encrypts blocks in place with the given round keys, which must be the contents of a Keys128, Keys192, or
// Keys256.
func Encrypt(rkeys []uint64, blocks *[ParBlocks][BlockSize]byte) {
	rounds := roundCount(len(rkeys))

	var q [8]uint64
	Pack(&q, &blocks[0], &blocks[1], &blocks[2], &blocks[3])

	fixslice.AddRoundKey(&q, rkeys[:8])
	for i := 1; i < rounds; i++ {
		fixslice.SubBytes(&q)
		mixColumns(i, &q)
		fixslice.AddRoundKey(&q, rkeys[8*i:])
	}

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
func Decrypt(rkeys []uint64, blocks *[ParBlocks][BlockSize]byte) {
	rounds := roundCount(len(rkeys))

	var q [8]uint64
	Pack(&q, &blocks[0], &blocks[1], &blocks[2], &blocks[3])

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

// CipherRound runs one full encryption round on each block: SubBytes, ShiftRows, MixColumns, and AddRoundKey with the
// matching round key.
func CipherRound(blocks, roundKeys *[ParBlocks][BlockSize]byte) {
	var q, rk [8]uint64
	Pack(&q, &blocks[0], &blocks[1], &blocks[2], &blocks[3])
	Pack(&rk, &roundKeys[0], &roundKeys[1], &roundKeys[2], &roundKeys[3])

	fixslice.SubBytes(&q)
	fixslice.SubBytesNots(&q)
	shiftRows1(&q)
	mixColumns0(&q)
	fixslice.AddRoundKey(&q, rk[:])

	*blocks = Unpack(&q)
	clear(q[:])
	clear(rk[:])
}

// EquivInvCipherRound runs one round of the equivalent inverse cipher on each block: InvShiftRows, InvSubBytes,
// InvMixColumns, and AddRoundKey with the matching round key.
func EquivInvCipherRound(blocks, roundKeys *[ParBlocks][BlockSize]byte) {
	var q, rk [8]uint64
	Pack(&q, &blocks[0], &blocks[1], &blocks[2], &blocks[3])
	Pack(&rk, &roundKeys[0], &roundKeys[1], &roundKeys[2], &roundKeys[3])

	invShiftRows1(&q)
	fixslice.SubBytesNots(&q)
	fixslice.InvSubBytes(&q)
	invMixColumns0(&q)
	fixslice.AddRoundKey(&q, rk[:])

	*blocks = Unpack(&q)
	clear(q[:])
	clear(rk[:])
}

// MixColumns applies the AES MixColumns step to each block.
func MixColumns(blocks *[ParBlocks][BlockSize]byte) {
	var q [8]uint64
	Pack(&q, &blocks[0], &blocks[1], &blocks[2], &blocks[3])
	mixColumns0(&q)
	*blocks = Unpack(&q)
	clear(q[:])
}

// InvMixColumns applies the AES InvMixColumns step to each block.
func InvMixColumns(blocks *[ParBlocks][BlockSize]byte) {
	var q [8]uint64
	Pack(&q, &blocks[0], &blocks[1], &blocks[2], &blocks[3])
	invMixColumns0(&q)
	*blocks = Unpack(&q)
	clear(q[:])
}

// mixColumns applies the MixColumns variant for the representation of round i.
func mixColumns(i int, q *[8]uint64) {
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

func invMixColumns(i int, q *[8]uint64) {
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
		panic("fixslice64: invalid round key table")
	}
}
