package fixslice32

import (
	"math/bits"

	"github.com/codahale/softaes/internal/fixslice"
)

func ror(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, -n)
}

// rorDistance is the rotation which moves the byte at (row+rows, col+cols) to (row, col), as long as col+cols stays
// within the row.
func rorDistance(rows, cols int) int {
	return rows<<3 + cols<<1
}

func rotateRows1(x uint32) uint32 {
	return ror(x, rorDistance(1, 0))
}

func rotateRows2(x uint32) uint32 {
	return ror(x, rorDistance(2, 0))
}

// The rotateRowsAndColumns functions move the byte at (row+rows, (col+cols) mod 4) to (row, col). Columns which wrap
// around come from one row closer than the plain rotation would take them from.

func rotateRowsAndColumns11(x uint32) uint32 {
	return ror(x, rorDistance(1, 1))&0x3f3f3f3f | ror(x, rorDistance(0, 1))&0xc0c0c0c0
}

func rotateRowsAndColumns12(x uint32) uint32 {
	return ror(x, rorDistance(1, 2))&0x0f0f0f0f | ror(x, rorDistance(0, 2))&0xf0f0f0f0
}

func rotateRowsAndColumns13(x uint32) uint32 {
	return ror(x, rorDistance(1, 3))&0x03030303 | ror(x, rorDistance(0, 3))&0xfcfcfcfc
}

func rotateRowsAndColumns22(x uint32) uint32 {
	return ror(x, rorDistance(2, 2))&0x0f0f0f0f | ror(x, rorDistance(1, 2))&0xf0f0f0f0
}

// After k skipped ShiftRows, the byte below (r, c) in its AES column is at (r+1, c+k) and the one two rows below is
// at (r+2, c+2k).

func mixColumns0(q *[8]uint32) {
	fixslice.MixColumns(q, rotateRows1, rotateRows2)
}

func mixColumns1(q *[8]uint32) {
	fixslice.MixColumns(q, rotateRowsAndColumns11, rotateRowsAndColumns22)
}

func mixColumns2(q *[8]uint32) {
	fixslice.MixColumns(q, rotateRowsAndColumns12, rotateRows2)
}

func mixColumns3(q *[8]uint32) {
	fixslice.MixColumns(q, rotateRowsAndColumns13, rotateRowsAndColumns22)
}

func invMixColumns0(q *[8]uint32) {
	fixslice.InvMixColumns(q, rotateRows1, rotateRows2)
}

func invMixColumns1(q *[8]uint32) {
	fixslice.InvMixColumns(q, rotateRowsAndColumns11, rotateRowsAndColumns22)
}

func invMixColumns2(q *[8]uint32) {
	fixslice.InvMixColumns(q, rotateRowsAndColumns12, rotateRows2)
}

func invMixColumns3(q *[8]uint32) {
	fixslice.InvMixColumns(q, rotateRowsAndColumns13, rotateRowsAndColumns22)
}

// shiftRows1 is the AES ShiftRows step: row r moves left by r columns.
func shiftRows1(q *[8]uint32) {
	for i := range q {
		fixslice.DeltaSwap1(&q[i], 4, 0x0c0f0300)
		fixslice.DeltaSwap1(&q[i], 2, 0x33003300)
	}
}

// shiftRows2 applies ShiftRows twice: rows 1 and 3 swap their column halves.
func shiftRows2(q *[8]uint32) {
	for i := range q {
		fixslice.DeltaSwap1(&q[i], 4, 0x0f000f00)
	}
}

// shiftRows3 applies ShiftRows three times.
func shiftRows3(q *[8]uint32) {
	for i := range q {
		fixslice.DeltaSwap1(&q[i], 4, 0x030f0c00)
		fixslice.DeltaSwap1(&q[i], 2, 0x33003300)
	}
}

func invShiftRows1(q *[8]uint32) { shiftRows3(q) }

func invShiftRows2(q *[8]uint32) { shiftRows2(q) }

func invShiftRows3(q *[8]uint32) { shiftRows1(q) }
