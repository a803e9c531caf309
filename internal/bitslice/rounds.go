package bitslice

// Byte i of a block is bit i of each word, so column c is nibble c and row r is bit r of every nibble.

func pack(s [BlockSize]byte) (q [8]uint16) {
	for i := range BlockSize {
		b := uint16(s[i])
		m := uint16(1) << i
		q[0] |= (b & 1) * m
		q[1] |= ((b >> 1) & 1) * m
		q[2] |= ((b >> 2) & 1) * m
		q[3] |= ((b >> 3) & 1) * m
		q[4] |= ((b >> 4) & 1) * m
		q[5] |= ((b >> 5) & 1) * m
		q[6] |= ((b >> 6) & 1) * m
		q[7] |= ((b >> 7) & 1) * m
	}
	return q
}

func unpack(q [8]uint16) (s [BlockSize]byte) {
	for i := range BlockSize {
		m := uint16(1) << i
		b := (q[0] & m) >> i
		b |= ((q[1] & m) >> i) << 1
		b |= ((q[2] & m) >> i) << 2
		b |= ((q[3] & m) >> i) << 3
		b |= ((q[4] & m) >> i) << 4
		b |= ((q[5] & m) >> i) << 5
		b |= ((q[6] & m) >> i) << 6
		b |= ((q[7] & m) >> i) << 7
		s[i] = byte(b)
	}
	return s
}

func addRoundKey(q, rk [8]uint16) [8]uint16 {
	for i := range q {
		q[i] ^= rk[i]
	}
	return q
}

func shiftRows(q [8]uint16) [8]uint16 {
	for i := range q {
		in := q[i]
		q[i] = (in & 0x1111) |
			((in & 0x2220) >> 4) | ((in & 0x0002) << 12) |
			((in & 0x4400) >> 8) | ((in & 0x0044) << 8) |
			((in & 0x0888) << 4) | ((in & 0x8000) >> 12)
	}
	return q
}

func invShiftRows(q [8]uint16) [8]uint16 {
	for i := range q {
		in := q[i]
		q[i] = (in & 0x1111) |
			((in & 0x0222) << 4) | ((in & 0x2000) >> 12) |
			((in & 0x4400) >> 8) | ((in & 0x0044) << 8) |
			((in & 0x8880) >> 4) | ((in & 0x0008) << 12)
	}
	return q
}

// Rotations within each column.
func rot1(x uint16) uint16 { return (x>>1)&0x7777 | (x&0x1111)<<3 }

func rot2(x uint16) uint16 { return (x>>2)&0x3333 | (x&0x3333)<<2 }

func rot3(x uint16) uint16 { return (x>>3)&0x1111 | (x&0x7777)<<1 }

// xtime multiplies every byte by x in GF(2^8).
func xtime(q [8]uint16) [8]uint16 {
	return [8]uint16{q[7], q[0] ^ q[7], q[1], q[2] ^ q[7], q[3] ^ q[7], q[4], q[5], q[6]}
}

func mixColumns(q [8]uint16) [8]uint16 {
	t := xtime(q)
	var r [8]uint16
	for k := range 8 {
		r[k] = t[k] ^ rot1(t[k]^q[k]) ^ rot2(q[k]) ^ rot3(q[k])
	}
	return r
}

// invMixColumns first multiplies each column by (5, 0, 4, 0), then applies mixColumns.
func invMixColumns(q [8]uint16) [8]uint16 {
	var d [8]uint16
	for k := range 8 {
		d[k] = q[k] ^ rot2(q[k])
	}
	d = xtime(xtime(d))
	for k := range 8 {
		q[k] ^= d[k]
	}
	return mixColumns(q)
}

func mul(a, b [8]uint16) [8]uint16 {
	var p [15]uint16
	for i := range 8 {
		for j := range 8 {
			p[i+j] ^= a[i] & b[j]
		}
	}
	return reduce(&p)
}

func sq(a [8]uint16) [8]uint16 {
	var p [15]uint16
	for i := range 8 {
		p[2*i] = a[i]
	}
	return reduce(&p)
}

func reduce(p *[15]uint16) [8]uint16 {
	// Reduce modulo x^8 + x^4 + x^3 + x + 1
	for i := 14; i >= 8; i-- {
		v := p[i]
		p[i-4] ^= v
		p[i-5] ^= v
		p[i-7] ^= v
		p[i-8] ^= v
	}
	return [8]uint16(p[:8])
}

func inv(a [8]uint16) [8]uint16 {
	// x^254 = x^2 * x^4 * ... * x^128
	x := sq(a)
	res := x
	for range 6 {
		x = sq(x)
		res = mul(res, x)
	}
	return res
}

func affine(a [8]uint16) [8]uint16 {
	var s [8]uint16
	for i := range 8 {
		s[i] = a[i] ^ a[(i+4)%8] ^ a[(i+5)%8] ^ a[(i+6)%8] ^ a[(i+7)%8]
	}
	s[0] = ^s[0]
	s[1] = ^s[1]
	s[5] = ^s[5]
	s[6] = ^s[6]
	return s
}

func invAffine(a [8]uint16) [8]uint16 {
	var s [8]uint16
	for i := range 8 {
		s[i] = a[(i+2)%8] ^ a[(i+5)%8] ^ a[(i+7)%8]
	}
	s[0] = ^s[0]
	s[2] = ^s[2]
	return s
}

func sbox(q [8]uint16) [8]uint16 {
	return affine(inv(q))
}

func invSbox(q [8]uint16) [8]uint16 {
	return inv(invAffine(q))
}
