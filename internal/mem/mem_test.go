package mem

import (
	"bytes"
	"crypto/subtle"
	"testing"

	"github.com/codahale/softaes/internal/testdata"
)

func TestXOR(t *testing.T) {
	drbg := testdata.New("mem xor")
	for _, n := range []int{0, 4, 16, 17, 64} {
		a, b := drbg.Data(n), drbg.Data(n)

		want := make([]byte, n)
		subtle.XORBytes(want, a, b)

		got := make([]byte, n)
		XOR(got, a, b)
		if !bytes.Equal(got, want) {
			t.Errorf("XOR(%x, %x) = %x, want = %x", a, b, got, want)
		}

		XOR(a, a, b)
		if !bytes.Equal(a, want) {
			t.Errorf("XOR in place = %x, want = %x", a, want)
		}
	}
}
