// Package hazmat exposes single AES rounds for building other primitives, such as AES-based permutations and
// tweakable ciphers, out of the AES round function.
//
// These functions do not form a cipher on their own and provide none of the security properties of AES. They follow
// the semantics of the x86 AESENC and AESDEC instructions and run in constant time.
package hazmat

import (
	"github.com/codahale/softaes/internal/bitslice"
	"github.com/codahale/softaes/internal/fixslice64"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// ParBlocks is the number of blocks processed by the parallel round functions.
	ParBlocks = fixslice64.ParBlocks
)

// CipherRound runs one round of AES encryption on block: SubBytes, ShiftRows, MixColumns, and AddRoundKey. It is
// equivalent to the AESENC instruction.
func CipherRound(block, roundKey *[BlockSize]byte) {
	bitslice.CipherRound(block, roundKey)
}

// CipherRoundPar runs CipherRound on ParBlocks blocks in parallel, each with its own round key.
func CipherRoundPar(blocks, roundKeys *[ParBlocks][BlockSize]byte) {
	fixslice64.CipherRound(blocks, roundKeys)
}

// EquivInvCipherRound runs one round of the AES equivalent inverse cipher on block: InvShiftRows, InvSubBytes,
// InvMixColumns, and AddRoundKey. It is equivalent to the AESDEC instruction.
func EquivInvCipherRound(block, roundKey *[BlockSize]byte) {
	bitslice.EquivInvCipherRound(block, roundKey)
}

// EquivInvCipherRoundPar runs EquivInvCipherRound on ParBlocks blocks in parallel, each with its own round key.
func EquivInvCipherRoundPar(blocks, roundKeys *[ParBlocks][BlockSize]byte) {
	fixslice64.EquivInvCipherRound(blocks, roundKeys)
}

// MixColumns applies the AES MixColumns step to block.
func MixColumns(block *[BlockSize]byte) {
	bitslice.MixColumns(block)
}

// InvMixColumns applies the AES InvMixColumns step to block. It is equivalent to the AESIMC instruction, which turns
// encryption round keys into those used by EquivInvCipherRound.
func InvMixColumns(block *[BlockSize]byte) {
	bitslice.InvMixColumns(block)
}
