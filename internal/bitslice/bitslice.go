// Package bitslice implements AES one block at a time, bitsliced into eight 16-bit words.
//
// Unlike the fixsliced engines, every round performs an explicit ShiftRows, and the S-box is computed by field
// arithmetic: inversion in GF(2^8) as x^254 followed by the affine map. It is slower, but it shares no circuits with
// the fixsliced engines, which makes it a useful independent check on them.
package bitslice

import (
	"github.com/codahale/softaes/internal/mem"
)

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// Keys holds an expanded AES key in bitsliced form.
type Keys struct {
	rk     [15][8]uint16
	rounds int
}

// Expand expands a 16-, 24-, or 32-byte AES key. It panics on any other length.
func Expand(key []byte) *Keys {
	w := expandWords(key)

	k := &Keys{rounds: len(w)/4 - 1}
	for i := 0; i <= k.rounds; i++ {
		var b [BlockSize]byte
		for j := range 4 {
			copy(b[4*j:], w[4*i+j][:])
		}
		k.rk[i] = pack(b)
	}
	clear(w)
	return k
}

// ExpandKey returns the FIPS 197 round keys of key as bytes.
func ExpandKey(key []byte) [][BlockSize]byte {
	w := expandWords(key)
	rks := make([][BlockSize]byte, len(w)/4)
	for i := range rks {
		for j := range 4 {
			copy(rks[i][4*j:], w[4*i+j][:])
		}
	}
	clear(w)
	return rks
}

// Rounds returns the number of rounds, 10, 12, or 14.
func (k *Keys) Rounds() int {
	return k.rounds
}

// Reset zeroes the round keys.
func (k *Keys) Reset() {
	clear(k.rk[:])
}

// Encrypt encrypts block in place.
func (k *Keys) Encrypt(block *[BlockSize]byte) {
	q := pack(*block)
	q = addRoundKey(q, k.rk[0])
	for i := 1; i < k.rounds; i++ {
		q = sbox(q)
		q = shiftRows(q)
		q = mixColumns(q)
		q = addRoundKey(q, k.rk[i])
	}
	q = sbox(q)
	q = shiftRows(q)
	q = addRoundKey(q, k.rk[k.rounds])
	*block = unpack(q)
}

// Decrypt decrypts block in place.
func (k *Keys) Decrypt(block *[BlockSize]byte) {
	q := pack(*block)
	q = addRoundKey(q, k.rk[k.rounds])
	q = invShiftRows(q)
	q = invSbox(q)
	for i := k.rounds - 1; i > 0; i-- {
		q = addRoundKey(q, k.rk[i])
		q = invMixColumns(q)
		q = invShiftRows(q)
		q = invSbox(q)
	}
	q = addRoundKey(q, k.rk[0])
	*block = unpack(q)
}

// CipherRound runs one full AES encryption round: SubBytes, ShiftRows, MixColumns, and AddRoundKey.
func CipherRound(block, roundKey *[BlockSize]byte) {
	q := pack(*block)
	q = sbox(q)
	q = shiftRows(q)
	q = mixColumns(q)
	*block = unpack(q)
	mem.XOR(block[:], block[:], roundKey[:])
}

// EquivInvCipherRound runs one round of the AES equivalent inverse cipher: InvShiftRows, InvSubBytes, InvMixColumns,
// and AddRoundKey.
func EquivInvCipherRound(block, roundKey *[BlockSize]byte) {
	q := pack(*block)
	q = invShiftRows(q)
	q = invSbox(q)
	q = invMixColumns(q)
	*block = unpack(q)
	mem.XOR(block[:], block[:], roundKey[:])
}

// MixColumns applies the AES MixColumns step to block.
func MixColumns(block *[BlockSize]byte) {
	*block = unpack(mixColumns(pack(*block)))
}

// InvMixColumns applies the AES InvMixColumns step to block.
func InvMixColumns(block *[BlockSize]byte) {
	*block = unpack(invMixColumns(pack(*block)))
}

//nolint:gochecknoglobals // AES round constants
var rcon = [10]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// expandWords runs the FIPS 197 key expansion. SubWord goes through the bitsliced S-box, so no table is indexed by key
// material.
func expandWords(key []byte) [][4]byte {
	nk := len(key) / 4
	switch len(key) {
	case 16, 24, 32:
	default:
		panic("bitslice: invalid key size")
	}

	w := make([][4]byte, 4*(nk+7))
	for i := range nk {
		copy(w[i][:], key[4*i:])
	}

	for i := nk; i < len(w); i++ {
		temp := w[i-1]
		switch {
		case i%nk == 0:
			temp[0], temp[1], temp[2], temp[3] = temp[1], temp[2], temp[3], temp[0]
			temp = subWord(temp)
			temp[0] ^= rcon[i/nk-1]
		case nk > 6 && i%nk == 4:
			temp = subWord(temp)
		}
		mem.XOR(w[i][:], w[i-nk][:], temp[:])
	}
	return w
}

func subWord(w [4]byte) [4]byte {
	var s [BlockSize]byte
	copy(s[:], w[:])
	s = unpack(sbox(pack(s)))
	return [4]byte(s[:4])
}
