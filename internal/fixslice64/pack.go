package fixslice64

import (
	"github.com/codahale/softaes/internal/fixslice"
)

// Pack transposes four blocks into a bitsliced state.
//
// Each word starts with two columns of one block, c and c+2, with row r of each in the low and high byte of 16-bit lane
// r. The word index is then c0 b1 b0 and the in-word index is r1 r0 c1 p2 p1 p0. Three delta swaps exchange the word
// index bits with the low in-word bits, leaving word p with bit p of every byte and the byte at row r, column c of
// block b at bit 16r + 4c + b.
func Pack(q *[8]uint64, b0, b1, b2, b3 *[BlockSize]byte) {
	t0 := readReordered(b0[0x00:])
	t4 := readReordered(b0[0x04:])
	t1 := readReordered(b1[0x00:])
	t5 := readReordered(b1[0x04:])
	t2 := readReordered(b2[0x00:])
	t6 := readReordered(b2[0x04:])
	t3 := readReordered(b3[0x00:])
	t7 := readReordered(b3[0x04:])

	// Swap b0 with p0.
	fixslice.DeltaSwap2(&t1, &t0, 1, 0x5555555555555555)
	fixslice.DeltaSwap2(&t3, &t2, 1, 0x5555555555555555)
	fixslice.DeltaSwap2(&t5, &t4, 1, 0x5555555555555555)
	fixslice.DeltaSwap2(&t7, &t6, 1, 0x5555555555555555)

	// Swap b1 with p1.
	fixslice.DeltaSwap2(&t2, &t0, 2, 0x3333333333333333)
	fixslice.DeltaSwap2(&t3, &t1, 2, 0x3333333333333333)
	fixslice.DeltaSwap2(&t6, &t4, 2, 0x3333333333333333)
	fixslice.DeltaSwap2(&t7, &t5, 2, 0x3333333333333333)

	// Swap c0 with p2.
	fixslice.DeltaSwap2(&t4, &t0, 4, 0x0f0f0f0f0f0f0f0f)
	fixslice.DeltaSwap2(&t5, &t1, 4, 0x0f0f0f0f0f0f0f0f)
	fixslice.DeltaSwap2(&t6, &t2, 4, 0x0f0f0f0f0f0f0f0f)
	fixslice.DeltaSwap2(&t7, &t3, 4, 0x0f0f0f0f0f0f0f0f)

	q[0], q[1], q[2], q[3], q[4], q[5], q[6], q[7] = t0, t1, t2, t3, t4, t5, t6, t7
}

// Unpack is the inverse of Pack.
func Unpack(q *[8]uint64) (blocks [ParBlocks][BlockSize]byte) {
	t0, t1, t2, t3, t4, t5, t6, t7 := q[0], q[1], q[2], q[3], q[4], q[5], q[6], q[7]

	fixslice.DeltaSwap2(&t4, &t0, 4, 0x0f0f0f0f0f0f0f0f)
	fixslice.DeltaSwap2(&t5, &t1, 4, 0x0f0f0f0f0f0f0f0f)
	fixslice.DeltaSwap2(&t6, &t2, 4, 0x0f0f0f0f0f0f0f0f)
	fixslice.DeltaSwap2(&t7, &t3, 4, 0x0f0f0f0f0f0f0f0f)

	fixslice.DeltaSwap2(&t2, &t0, 2, 0x3333333333333333)
	fixslice.DeltaSwap2(&t3, &t1, 2, 0x3333333333333333)
	fixslice.DeltaSwap2(&t6, &t4, 2, 0x3333333333333333)
	fixslice.DeltaSwap2(&t7, &t5, 2, 0x3333333333333333)

	fixslice.DeltaSwap2(&t1, &t0, 1, 0x5555555555555555)
	fixslice.DeltaSwap2(&t3, &t2, 1, 0x5555555555555555)
	fixslice.DeltaSwap2(&t5, &t4, 1, 0x5555555555555555)
	fixslice.DeltaSwap2(&t7, &t6, 1, 0x5555555555555555)

	writeReordered(blocks[0][0x00:], t0)
	writeReordered(blocks[0][0x04:], t4)
	writeReordered(blocks[1][0x00:], t1)
	writeReordered(blocks[1][0x04:], t5)
	writeReordered(blocks[2][0x00:], t2)
	writeReordered(blocks[2][0x04:], t6)
	writeReordered(blocks[3][0x00:], t3)
	writeReordered(blocks[3][0x04:], t7)
	return blocks
}

// readReordered loads bytes 0-3 and 8-11 of b, which are two columns four bytes apart, interleaving them so that row
// r of both lands in the 16-bit lane r.
func readReordered(b []byte) uint64 {
	_ = b[11]
	return uint64(b[0x0]) |
		uint64(b[0x1])<<0x10 |
		uint64(b[0x2])<<0x20 |
		uint64(b[0x3])<<0x30 |
		uint64(b[0x8])<<0x08 |
		uint64(b[0x9])<<0x18 |
		uint64(b[0xa])<<0x28 |
		uint64(b[0xb])<<0x38
}

func writeReordered(b []byte, v uint64) {
	_ = b[11]
	b[0x0] = byte(v)
	b[0x1] = byte(v >> 0x10)
	b[0x2] = byte(v >> 0x20)
	b[0x3] = byte(v >> 0x30)
	b[0x8] = byte(v >> 0x08)
	b[0x9] = byte(v >> 0x18)
	b[0xa] = byte(v >> 0x28)
	b[0xb] = byte(v >> 0x38)
}
