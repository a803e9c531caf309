package fixslice64

import (
	"github.com/codahale/softaes/internal/fixslice"
)

//nolint:gochecknoglobals // AES round constants
var rcon = [10]uint64{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// Schedule128 expands a 128-bit key into fixsliced round keys.
func Schedule128(rkeys *Keys128, key *[16]byte) {
	Pack((*[8]uint64)(rkeys[:8]), key, key, key, key)

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
func Schedule192(rkeys *Keys192, key *[24]byte) {
	var tmp [8]uint64
	lo, hi := (*[16]byte)(key[:16]), (*[16]byte)(key[8:])
	Pack((*[8]uint64)(rkeys[:8]), lo, lo, lo, lo)
	Pack(&tmp, hi, hi, hi, hi)

	r := 0
	off := 8
	for {
		// Columns 0 and 1 take the last two key words from tmp.
		for i := range 8 {
			rkeys[off+i] = (0x00ff00ff00ff00ff & (tmp[i] >> 8)) | (0xff00ff00ff00ff00 & (rkeys[off-8+i] << 8))
		}

		subWords(tmp[:])
		addRoundConstant(tmp[:], rcon[r])
		r++

		for i := range 8 {
			ti := rkeys[off+i]
			ti ^= 0x0f000f000f000f00 & ror(tmp[i], rorDistance(1, 1))
			ti ^= 0xf000f000f000f000 & (ti << 4)
			tmp[i] = ti
		}
		copy(rkeys[off:off+8], tmp[:])
		off += 8

		for i := range 8 {
			ui := tmp[i]
			ti := (0x00ff00ff00ff00ff & (rkeys[off-16+i] >> 8)) | (0xff00ff00ff00ff00 & (ui << 8))
			ti ^= 0x000f000f000f000f & (ui >> 12)
			tmp[i] = ti ^ (0xfff0fff0fff0fff0 & (ti << 4)) ^ (0xff00ff00ff00ff00 & (ti << 8)) ^
				(0xf000f000f000f000 & (ti << 12))
		}
		copy(rkeys[off:off+8], tmp[:])
		off += 8

		subWords(tmp[:])
		addRoundConstant(tmp[:], rcon[r])
		r++

		for i := range 8 {
			ti := (0x00ff00ff00ff00ff & (rkeys[off-16+i] >> 8)) | (0xff00ff00ff00ff00 & (rkeys[off-8+i] << 8))
			ti ^= 0x000f000f000f000f & ror(tmp[i], rorDistance(1, 3))
			rkeys[off+i] = ti ^ (0xfff0fff0fff0fff0 & (ti << 4)) ^ (0xff00ff00ff00ff00 & (ti << 8)) ^
				(0xf000f000f000f000 & (ti << 12))
		}
		off += 8

		if r >= 8 {
			break
		}

		for i := range 8 {
			ui := rkeys[off-8+i]
			ti := rkeys[off-16+i]
			ti ^= 0x0f000f000f000f00 & (ui >> 4)
			ti ^= 0xf000f000f000f000 & (ti << 4)
			tmp[i] = ti
		}
	}
	clear(tmp[:])

	finishKeys(rkeys[:])
}

// Schedule256 expands a 256-bit key into fixsliced round keys.
func Schedule256(rkeys *Keys256, key *[32]byte) {
	lo, hi := (*[16]byte)(key[:16]), (*[16]byte)(key[16:])
	Pack((*[8]uint64)(rkeys[:8]), lo, lo, lo, lo)
	Pack((*[8]uint64)(rkeys[8:16]), hi, hi, hi, hi)

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

func subWords(rk []uint64) {
	q := (*[8]uint64)(rk[:8])
	fixslice.SubBytes(q)
	fixslice.SubBytesNots(q)
}

// addRoundConstant adds c to the byte at row 1, column 3 of every block.
func addRoundConstant(rk []uint64, c uint64) {
	for i := range 8 {
		rk[i] ^= -((c >> i) & 1) & 0x00000000f0000000
	}
}

func xorColumns(rkeys []uint64, off, idxXor, idxRor int) {
	for i := range 8 {
		rk := rkeys[off-idxXor+i] ^ (0x000f000f000f000f & ror(rkeys[off+i], idxRor))
		rkeys[off+i] = rk ^ (0xfff0fff0fff0fff0 & (rk << 4)) ^ (0xff00ff00ff00ff00 & (rk << 8)) ^
			(0xf000f000f000f000 & (rk << 12))
	}
}

// finishKeys moves each round key into the representation its round uses and folds in the S-box constant, which
// SubBytes leaves out.
func finishKeys(rkeys []uint64) {
	rounds := len(rkeys)/8 - 1
	for i := 1; i < rounds; i++ {
		q := (*[8]uint64)(rkeys[8*i : 8*i+8])
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
		fixslice.SubBytesNots((*[8]uint64)(rkeys[8*i : 8*i+8]))
	}
}
