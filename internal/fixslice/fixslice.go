// Package fixslice contains the word-width independent parts of the bitsliced AES engines: the S-box circuit, the
// MixColumns linear map, round key addition, and the delta-swap primitives used to transpose bits.
//
// A bitsliced state is eight words. Word p holds bit p of every byte of every block being processed, so a Boolean
// operation on the whole array computes the same gate for every byte in parallel. None of the functions in this
// package branch on, or index memory with, the contents of a state.
package fixslice

// Word is the set of unsigned integer types a bitsliced state can be packed into.
type Word interface {
	~uint16 | ~uint32 | ~uint64
}

// DeltaSwap1 swaps the bits of a selected by mask with the bits shift positions above them.
func DeltaSwap1[W Word](a *W, shift uint, mask W) {
	t := (*a ^ (*a >> shift)) & mask
	*a ^= t ^ (t << shift)
}

// DeltaSwap2 swaps the bits of a selected by mask with the bits of b shift positions above them.
func DeltaSwap2[W Word](a, b *W, shift uint, mask W) {
	t := (*a ^ (*b >> shift)) & mask
	*a ^= t
	*b ^= t << shift
}

// AddRoundKey XORs the first eight words of rk into q.
func AddRoundKey[W Word](q *[8]W, rk []W) {
	_ = rk[7]
	q[0] ^= rk[0]
	q[1] ^= rk[1]
	q[2] ^= rk[2]
	q[3] ^= rk[3]
	q[4] ^= rk[4]
	q[5] ^= rk[5]
	q[6] ^= rk[6]
	q[7] ^= rk[7]
}
