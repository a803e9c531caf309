package fixslice

// MixColumns applies the AES MixColumns map to q.
//
// rot1 and rot2 move, for every byte position, the byte one and two rows below it in the same AES column into that
// position. In a canonical layout those are plain row rotations; in a fixsliced layout, where some number of ShiftRows
// steps have been skipped, the columns are skewed and the rotations also move bytes across columns.
//
// With b = rot1(a) and c = a ^ b, each output byte is 2*c ^ b ^ rot2(c).
func MixColumns[W Word](q *[8]W, rot1, rot2 func(W) W) {
	a0, a1, a2, a3, a4, a5, a6, a7 := q[0], q[1], q[2], q[3], q[4], q[5], q[6], q[7]
	b0, b1, b2, b3, b4, b5, b6, b7 := rot1(a0), rot1(a1), rot1(a2), rot1(a3), rot1(a4), rot1(a5), rot1(a6), rot1(a7)
	c0, c1, c2, c3, c4, c5, c6, c7 := a0^b0, a1^b1, a2^b2, a3^b3, a4^b4, a5^b5, a6^b6, a7^b7

	q[0] = b0 ^ c7 ^ rot2(c0)
	q[1] = b1 ^ c0 ^ c7 ^ rot2(c1)
	q[2] = b2 ^ c1 ^ rot2(c2)
	q[3] = b3 ^ c2 ^ c7 ^ rot2(c3)
	q[4] = b4 ^ c3 ^ c7 ^ rot2(c4)
	q[5] = b5 ^ c4 ^ rot2(c5)
	q[6] = b6 ^ c5 ^ rot2(c6)
	q[7] = b7 ^ c6 ^ rot2(c7)
}

// InvMixColumns applies the inverse of MixColumns to q, given the same rotations.
//
// The inverse matrix (14, 11, 13, 9) factors as the forward matrix (2, 3, 1, 1) times (5, 0, 4, 0), so each byte a is
// first replaced with a ^ 4*(a ^ rot2(a)) and the forward map is applied.
func InvMixColumns[W Word](q *[8]W, rot1, rot2 func(W) W) {
	var d [8]W
	for i := range d {
		d[i] = q[i] ^ rot2(q[i])
	}
	xtime(&d)
	xtime(&d)
	for i := range d {
		q[i] ^= d[i]
	}
	MixColumns(q, rot1, rot2)
}

// xtime multiplies every byte of q by x in GF(2^8) modulo x^8 + x^4 + x^3 + x + 1.
func xtime[W Word](q *[8]W) {
	x0, x1, x2, x3, x4, x5, x6, x7 := q[0], q[1], q[2], q[3], q[4], q[5], q[6], q[7]
	q[0] = x7
	q[1] = x0 ^ x7
	q[2] = x1
	q[3] = x2 ^ x7
	q[4] = x3 ^ x7
	q[5] = x4
	q[6] = x5
	q[7] = x6
}
