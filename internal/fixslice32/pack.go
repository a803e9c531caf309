package fixslice32

import (
	"encoding/binary"

	"github.com/codahale/softaes/internal/fixslice"
)

// Pack transposes two blocks into a bitsliced state.
//
// Each of the 256 input bits has an 8-bit index made of its block, column, row, and bit position:
//
//	b0 c1 c0 r1 r0 p2 p1 p0
//
// Loading each column into its own word (in block-interleaved order) gives the word index c1 c0 b0 and the in-word
// index r1 r0 p2 p1 p0. Three delta swaps exchange the word index bits with the low in-word bits, leaving
//
//	p2 p1 p0 r1 r0 c1 c0 b0
//
// so word p holds bit p of every byte, and the byte at row r, column c of block b sits at bit 8r + 2c + b.
func Pack(q *[8]uint32, b0, b1 *[BlockSize]byte) {
	t0 := binary.LittleEndian.Uint32(b0[0x00:])
	t2 := binary.LittleEndian.Uint32(b0[0x04:])
	t4 := binary.LittleEndian.Uint32(b0[0x08:])
	t6 := binary.LittleEndian.Uint32(b0[0x0c:])
	t1 := binary.LittleEndian.Uint32(b1[0x00:])
	t3 := binary.LittleEndian.Uint32(b1[0x04:])
	t5 := binary.LittleEndian.Uint32(b1[0x08:])
	t7 := binary.LittleEndian.Uint32(b1[0x0c:])

	// Swap b0 with p0.
	fixslice.DeltaSwap2(&t1, &t0, 1, 0x55555555)
	fixslice.DeltaSwap2(&t3, &t2, 1, 0x55555555)
	fixslice.DeltaSwap2(&t5, &t4, 1, 0x55555555)
	fixslice.DeltaSwap2(&t7, &t6, 1, 0x55555555)

	// Swap c0 with p1.
	fixslice.DeltaSwap2(&t2, &t0, 2, 0x33333333)
	fixslice.DeltaSwap2(&t3, &t1, 2, 0x33333333)
	fixslice.DeltaSwap2(&t6, &t4, 2, 0x33333333)
	fixslice.DeltaSwap2(&t7, &t5, 2, 0x33333333)

	// Swap c1 with p2.
	fixslice.DeltaSwap2(&t4, &t0, 4, 0x0f0f0f0f)
	fixslice.DeltaSwap2(&t5, &t1, 4, 0x0f0f0f0f)
	fixslice.DeltaSwap2(&t6, &t2, 4, 0x0f0f0f0f)
	fixslice.DeltaSwap2(&t7, &t3, 4, 0x0f0f0f0f)

	q[0], q[1], q[2], q[3], q[4], q[5], q[6], q[7] = t0, t1, t2, t3, t4, t5, t6, t7
}

// Unpack is the inverse of Pack. Every delta swap is an involution, so it runs the same swaps in reverse order.
func Unpack(q *[8]uint32) (blocks [ParBlocks][BlockSize]byte) {
	t0, t1, t2, t3, t4, t5, t6, t7 := q[0], q[1], q[2], q[3], q[4], q[5], q[6], q[7]

	fixslice.DeltaSwap2(&t4, &t0, 4, 0x0f0f0f0f)
	fixslice.DeltaSwap2(&t5, &t1, 4, 0x0f0f0f0f)
	fixslice.DeltaSwap2(&t6, &t2, 4, 0x0f0f0f0f)
	fixslice.DeltaSwap2(&t7, &t3, 4, 0x0f0f0f0f)

	fixslice.DeltaSwap2(&t2, &t0, 2, 0x33333333)
	fixslice.DeltaSwap2(&t3, &t1, 2, 0x33333333)
	fixslice.DeltaSwap2(&t6, &t4, 2, 0x33333333)
	fixslice.DeltaSwap2(&t7, &t5, 2, 0x33333333)

	fixslice.DeltaSwap2(&t1, &t0, 1, 0x55555555)
	fixslice.DeltaSwap2(&t3, &t2, 1, 0x55555555)
	fixslice.DeltaSwap2(&t5, &t4, 1, 0x55555555)
	fixslice.DeltaSwap2(&t7, &t6, 1, 0x55555555)

	binary.LittleEndian.PutUint32(blocks[0][0x00:], t0)
	binary.LittleEndian.PutUint32(blocks[0][0x04:], t2)
	binary.LittleEndian.PutUint32(blocks[0][0x08:], t4)
	binary.LittleEndian.PutUint32(blocks[0][0x0c:], t6)
	binary.LittleEndian.PutUint32(blocks[1][0x00:], t1)
	binary.LittleEndian.PutUint32(blocks[1][0x04:], t3)
	binary.LittleEndian.PutUint32(blocks[1][0x08:], t5)
	binary.LittleEndian.PutUint32(blocks[1][0x0c:], t7)
	return blocks
}
