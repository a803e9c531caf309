package fixslice32

import (
	"github.com/codahale/softaes/internal/fixslice"
)

//nolint:gochecknoglobals // AES round constants
var rcon = [10]uint32{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// Schedule128 expands a 128-bit key into fixsliced round keys.
func Schedule128(rkeys *Keys128, key *[16]byte) {
	Pack((*[8]uint32)(rkeys[:8]), key, key)

	for i := range 10 {
		off := 8 * (i + 1)
		copy(rkeys[off:off+8], rkeys[off-8:off])
		subWords(rkeys[off:])
		addRoundConstant(rkeys[off:], rcon[i])
		xorColumns(rkeys[:], off, 8, rorDistance(1, 3))
	}

	finishKeys(rkeys[:])
}

// Schedule192 expands a 192-bit key into fixsliced round keys.
//
// Six-word key groups straddle round key boundaries, so the schedule carries the last two words of the previous group
// in the upper columns of tmp.
func Schedule192(rkeys *Keys192, key *[24]byte) {
	var tmp [8]uint32
	lo, hi := (*[16]byte)(key[:16]), (*[16]byte)(key[8:])
	Pack((*[8]uint32)(rkeys[:8]), lo, lo)
	Pack(&tmp, hi, hi)

	r := 0
	off := 8
	for {
		// Columns 0 and 1 take the last two key words from tmp.
		for i := range 8 {
			rkeys[off+i] = (0x0f0f0f0f & (tmp[i] >> 4)) | (0xf0f0f0f0 & (rkeys[off-8+i] << 4))
		}

		subWords(tmp[:])
		addRoundConstant(tmp[:], rcon[r])
		r++

		for i := range 8 {
			ti := rkeys[off+i]
			ti ^= 0x30303030 & ror(tmp[i], rorDistance(1, 1))
			ti ^= 0xc0c0c0c0 & (ti << 2)
			tmp[i] = ti
		}
		copy(rkeys[off:off+8], tmp[:])
		off += 8

		for i := range 8 {
			ui := tmp[i]
			ti := (0x0f0f0f0f & (rkeys[off-16+i] >> 4)) | (0xf0f0f0f0 & (ui << 4))
			ti ^= 0x03030303 & (ui >> 6)
			tmp[i] = ti ^ (0xfcfcfcfc & (ti << 2)) ^ (0xf0f0f0f0 & (ti << 4)) ^ (0xc0c0c0c0 & (ti << 6))
		}
		copy(rkeys[off:off+8], tmp[:])
		off += 8

		subWords(tmp[:])
		addRoundConstant(tmp[:], rcon[r])
		r++

		for i := range 8 {
			ti := (0x0f0f0f0f & (rkeys[off-16+i] >> 4)) | (0xf0f0f0f0 & (rkeys[off-8+i] << 4))
			ti ^= 0x03030303 & ror(tmp[i], rorDistance(1, 3))
			rkeys[off+i] = ti ^ (0xfcfcfcfc & (ti << 2)) ^ (0xf0f0f0f0 & (ti << 4)) ^ (0xc0c0c0c0 & (ti << 6))
		}
		off += 8

		if r >= 8 {
			break
		}

		for i := range 8 {
			ui := rkeys[off-8+i]
			ti := rkeys[off-16+i]
			ti ^= 0x30303030 & (ui >> 2)
			ti ^= 0xc0c0c0c0 & (ti << 2)
			tmp[i] = ti
		}
	}
	clear(tmp[:])

	finishKeys(rkeys[:])
}

// Schedule256 expands a 256-bit key into fixsliced round keys.
func Schedule256(rkeys *Keys256, key *[32]byte) {
	lo, hi := (*[16]byte)(key[:16]), (*[16]byte)(key[16:])
	Pack((*[8]uint32)(rkeys[:8]), lo, lo)
	Pack((*[8]uint32)(rkeys[8:16]), hi, hi)

	r := 0
	off := 16
	for {
		copy(rkeys[off:off+8], rkeys[off-8:off])
		subWords(rkeys[off:])
		addRoundConstant(rkeys[off:], rcon[r])
		xorColumns(rkeys[:], off, 16, rorDistance(1, 3))
		r++
		off += 8

		if r == 7 {
			break
		}

		copy(rkeys[off:off+8], rkeys[off-8:off])
		subWords(rkeys[off:])
		xorColumns(rkeys[:], off, 16, rorDistance(0, 3))
		off += 8
	}

	finishKeys(rkeys[:])
}

// subWords applies the full S-box to the eight words at the start of rk.
func subWords(rk []uint32) {
	q := (*[8]uint32)(rk[:8])
	fixslice.SubBytes(q)
	fixslice.SubBytesNots(q)
}

// addRoundConstant adds c to the byte at row 1, column 3 of both blocks. After RotWord that byte lands in row 0.
func addRoundConstant(rk []uint32, c uint32) {
	for i := range 8 {
		rk[i] ^= -((c >> i) & 1) & 0x0000c000
	}
}

// xorColumns finishes a round key whose column 0 has been replaced by the S-box output moved there by a rotation of
// idxRor. Column 0 becomes the word from idxXor positions back XORed with that output, and each later column XORs the
// column to its left into its own word from idxXor positions back.
func xorColumns(rkeys []uint32, off, idxXor, idxRor int) {
	for i := range 8 {
		rk := rkeys[off-idxXor+i] ^ (0x03030303 & ror(rkeys[off+i], idxRor))
		rkeys[off+i] = rk ^ (0xfcfcfcfc & (rk << 2)) ^ (0xf0f0f0f0 & (rk << 4)) ^ (0xc0c0c0c0 & (rk << 6))
	}
}

// finishKeys moves each round key into the representation its round uses and folds in the S-box constant, which
// SubBytes leaves out.
func finishKeys(rkeys []uint32) {
	rounds := len(rkeys)/8 - 1
	for i := 1; i < rounds; i++ {
		q := (*[8]uint32)(rkeys[8*i : 8*i+8])
		switch i % 4 {
		case 1:
			invShiftRows1(q)
		case 2:
			invShiftRows2(q)
		case 3:
			invShiftRows3(q)
		}
	}
	for i := 1; i <= rounds; i++ {
		fixslice.SubBytesNots((*[8]uint32)(rkeys[8*i : 8*i+8]))
	}
}
