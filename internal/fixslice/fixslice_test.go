package fixslice

import (
	"testing"

	"github.com/codahale/softaes/internal/testdata"
	"pgregory.net/rapid"
)

func TestSubBytes(t *testing.T) {
	for base := 0; base < 256; base += 16 {
		var in [16]byte
		for i := range in {
			in[i] = byte(base + i)
		}

		q := pack16(&in)
		SubBytes(&q)
		SubBytesNots(&q)
		got := unpack16(&q)

		for i := range in {
			if want := testdata.SBox(in[i]); got[i] != want {
				t.Errorf("SubBytes(%02x) = %02x, want = %02x", in[i], got[i], want)
			}
		}
	}
}

func TestInvSubBytes(t *testing.T) {
	for base := 0; base < 256; base += 16 {
		var in [16]byte
		for i := range in {
			in[i] = byte(base + i)
		}

		q := pack16(&in)
		SubBytesNots(&q)
		InvSubBytes(&q)
		got := unpack16(&q)

		for i := range in {
			if want := testdata.InvSBox(in[i]); got[i] != want {
				t.Errorf("InvSubBytes(%02x) = %02x, want = %02x", in[i], got[i], want)
			}
		}
	}
}

func TestMixColumns(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var s [16]byte
		copy(s[:], rapid.SliceOfN(rapid.Byte(), 16, 16).Draw(t, "s"))

		want := s
		testdata.MixColumns(&want)

		q := pack16(&s)
		MixColumns(&q, rotateNibbles1, rotateNibbles2)
		if got := unpack16(&q); got != want {
			t.Fatalf("MixColumns(%x) = %x, want = %x", s, got, want)
		}

		want = s
		testdata.InvMixColumns(&want)

		q = pack16(&s)
		InvMixColumns(&q, rotateNibbles1, rotateNibbles2)
		if got := unpack16(&q); got != want {
			t.Fatalf("InvMixColumns(%x) = %x, want = %x", s, got, want)
		}
	})
}

func TestDeltaSwap(t *testing.T) {
	a := uint32(0x000000ff)
	DeltaSwap1(&a, 8, 0x000000ff)
	if got, want := a, uint32(0x0000ff00); got != want {
		t.Errorf("DeltaSwap1 = %08x, want = %08x", got, want)
	}

	hi, lo := uint64(0x0f), uint64(0xf0)
	DeltaSwap2(&hi, &lo, 4, 0x0f)
	if hi != 0x0f || lo != 0xf0 {
		t.Errorf("DeltaSwap2 moved bits which were already equal: %02x, %02x", hi, lo)
	}

	hi, lo = 0x00, 0xf0
	DeltaSwap2(&hi, &lo, 4, 0x0f)
	if hi != 0x0f || lo != 0x00 {
		t.Errorf("DeltaSwap2 = %02x, %02x, want = 0f, 00", hi, lo)
	}
}

func TestAddRoundKey(t *testing.T) {
	q := [8]uint64{1, 2, 3, 4, 5, 6, 7, 8}
	AddRoundKey(&q, []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if q != ([8]uint64{}) {
		t.Errorf("AddRoundKey(q, q) = %v, want zeroes", q)
	}
}

func BenchmarkSubBytes(b *testing.B) {
	var q [8]uint64
	b.ReportAllocs()
	for b.Loop() {
		SubBytes(&q)
	}
}

// pack16 bitslices one block into 16-bit planes, with byte i in bit i.
func pack16(s *[16]byte) (q [8]uint16) {
	for i, b := range s {
		for p := range q {
			q[p] |= uint16((b>>p)&1) << i
		}
	}
	return q
}

func unpack16(q *[8]uint16) (s [16]byte) {
	for i := range s {
		for p := range q {
			s[i] |= byte((q[p]>>i)&1) << p
		}
	}
	return s
}

// Byte 4c+r is row r of column c, so each column is a nibble.
func rotateNibbles1(x uint16) uint16 { return (x>>1)&0x7777 | (x&0x1111)<<3 }

func rotateNibbles2(x uint16) uint16 { return (x>>2)&0x3333 | (x&0x3333)<<2 }
