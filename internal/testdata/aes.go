package testdata

// Mul multiplies a and b in GF(2^8) modulo x^8 + x^4 + x^3 + x + 1.
func Mul(a, b byte) byte {
	var p byte
	for range 8 {
		if b&1 == 1 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return p
}

// Inv returns the multiplicative inverse of a in GF(2^8), with Inv(0) = 0.
func Inv(a byte) byte {
	// a^254
	r := byte(1)
	for range 254 {
		r = Mul(r, a)
	}
	return r
}

// SBox is the AES S-box.
func SBox(a byte) byte {
	x := Inv(a)
	s := x
	for i := 1; i <= 4; i++ {
		s ^= x<<i | x>>(8-i)
	}
	return s ^ 0x63
}

// InvSBox is the inverse AES S-box.
func InvSBox(a byte) byte {
	x := a<<1 | a>>7
	x ^= a<<3 | a>>5
	x ^= a<<6 | a>>2
	return Inv(x ^ 0x05)
}

// SubBytes applies the S-box to every byte of s.
func SubBytes(s *[16]byte) {
	for i := range s {
		s[i] = SBox(s[i])
	}
}

// InvSubBytes applies the inverse S-box to every byte of s.
func InvSubBytes(s *[16]byte) {
	for i := range s {
		s[i] = InvSBox(s[i])
	}
}

// ShiftRows rotates row r of s left by r columns. Byte 4c+r of s is row r, column c.
func ShiftRows(s *[16]byte) {
	t := *s
	for c := range 4 {
		for r := range 4 {
			s[4*c+r] = t[4*((c+r)%4)+r]
		}
	}
}

// InvShiftRows rotates row r of s right by r columns.
func InvShiftRows(s *[16]byte) {
	t := *s
	for c := range 4 {
		for r := range 4 {
			s[4*((c+r)%4)+r] = t[4*c+r]
		}
	}
}

// MixColumns multiplies each column of s by the AES MixColumns matrix.
func MixColumns(s *[16]byte) {
	for c := range 4 {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c] = Mul(a0, 2) ^ Mul(a1, 3) ^ a2 ^ a3
		s[4*c+1] = a0 ^ Mul(a1, 2) ^ Mul(a2, 3) ^ a3
		s[4*c+2] = a0 ^ a1 ^ Mul(a2, 2) ^ Mul(a3, 3)
		s[4*c+3] = Mul(a0, 3) ^ a1 ^ a2 ^ Mul(a3, 2)
	}
}

// InvMixColumns multiplies each column of s by the inverse AES MixColumns matrix.
func InvMixColumns(s *[16]byte) {
	for c := range 4 {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c] = Mul(a0, 14) ^ Mul(a1, 11) ^ Mul(a2, 13) ^ Mul(a3, 9)
		s[4*c+1] = Mul(a0, 9) ^ Mul(a1, 14) ^ Mul(a2, 11) ^ Mul(a3, 13)
		s[4*c+2] = Mul(a0, 13) ^ Mul(a1, 9) ^ Mul(a2, 14) ^ Mul(a3, 11)
		s[4*c+3] = Mul(a0, 11) ^ Mul(a1, 13) ^ Mul(a2, 9) ^ Mul(a3, 14)
	}
}

// XOR adds k into s.
func XOR(s *[16]byte, k *[16]byte) {
	for i := range s {
		s[i] ^= k[i]
	}
}
