package fixslice64

import (
	"math/bits"

	"github.com/codahale/softaes/internal/fixslice"
)

func ror(x uint64, n int) uint64 {
	return bits.RotateLeft64(x, -n)
}

func rorDistance(rows, cols int) int {
	return rows<<4 + cols<<2
}

func rotateRows1(x uint64) uint64 {
	return ror(x, rorDistance(1, 0))
}

func rotateRows2(x uint64) uint64 {
	return ror(x, rorDistance(2, 0))
}

func rotateRowsAndColumns11(x uint64) uint64 {
	return ror(x, rorDistance(1, 1))&0x0fff0fff0fff0fff | ror(x, rorDistance(0, 1))&0xf000f000f000f000
}

func rotateRowsAndColumns12(x uint64) uint64 {
	return ror(x, rorDistance(1, 2))&0x00ff00ff00ff00ff | ror(x, rorDistance(0, 2))&0xff00ff00ff00ff00
}

func rotateRowsAndColumns13(x uint64) uint64 {
	return ror(x, rorDistance(1, 3))&0x000f000f000f000f | ror(x, rorDistance(0, 3))&0xfff0fff0fff0fff0
}

func rotateRowsAndColumns22(x uint64) uint64 {
	return ror(x, rorDistance(2, 2))&0x00ff00ff00ff00ff | ror(x, rorDistance(1, 2))&0xff00ff00ff00ff00
}

func mixColumns0(q *[8]uint64) {
	fixslice.MixColumns(q, rotateRows1, rotateRows2)
}

func mixColumns1(q *[8]uint64) {
	fixslice.MixColumns(q, rotateRowsAndColumns11, rotateRowsAndColumns22)
}

func mixColumns2(q *[8]uint64) {
	fixslice.MixColumns(q, rotateRowsAndColumns12, rotateRows2)
}

func mixColumns3(q *[8]uint64) {
	fixslice.MixColumns(q, rotateRowsAndColumns13, rotateRowsAndColumns22)
}

func invMixColumns0(q *[8]uint64) {
	fixslice.InvMixColumns(q, rotateRows1, rotateRows2)
}

func invMixColumns1(q *[8]uint64) {
	fixslice.InvMixColumns(q, rotateRowsAndColumns11, rotateRowsAndColumns22)
}

func invMixColumns2(q *[8]uint64) {
	fixslice.InvMixColumns(q, rotateRowsAndColumns12, rotateRows2)
}

func invMixColumns3(q *[8]uint64) {
	fixslice.InvMixColumns(q, rotateRowsAndColumns13, rotateRowsAndColumns22)
}

func shiftRows1(q *[8]uint64) {
	for i := range q {
		fixslice.DeltaSwap1(&q[i], 8, 0x00f000ff000f0000)
		fixslice.DeltaSwap1(&q[i], 4, 0x0f0f00000f0f0000)
	}
}

func shiftRows2(q *[8]uint64) {
	for i := range q {
		fixslice.DeltaSwap1(&q[i], 8, 0x00ff000000ff0000)
	}
}

func shiftRows3(q *[8]uint64) {
	for i := range q {
		fixslice.DeltaSwap1(&q[i], 8, 0x000f00ff00f00000)
		fixslice.DeltaSwap1(&q[i], 4, 0x0f0f00000f0f0000)
	}
}

func invShiftRows1(q *[8]uint64) { shiftRows3(q) }

func invShiftRows2(q *[8]uint64) { shiftRows2(q) }

func invShiftRows3(q *[8]uint64) { shiftRows1(q) }
