package hazmat_test

import (
	"crypto/aes"
	"encoding/hex"
	"testing"

	"github.com/codahale/softaes/hazmat"
	"github.com/codahale/softaes/internal/bitslice"
	"github.com/codahale/softaes/internal/testdata"
	"pgregory.net/rapid"
)

func TestCipherRound(t *testing.T) {
	// SubBytes(0) = 0x63 and MixColumns leaves a column of equal bytes alone.
	var block, key [hazmat.BlockSize]byte
	hazmat.CipherRound(&block, &key)
	if got, want := hex.EncodeToString(block[:]), "63636363636363636363636363636363"; got != want {
		t.Errorf("CipherRound(0, 0) = %s, want = %s", got, want)
	}
}

func TestEquivInvCipherRound(t *testing.T) {
	// InvSubBytes(0) = 0x52.
	var block, key [hazmat.BlockSize]byte
	hazmat.EquivInvCipherRound(&block, &key)
	if got, want := hex.EncodeToString(block[:]), "52525252525252525252525252525252"; got != want {
		t.Errorf("EquivInvCipherRound(0, 0) = %s, want = %s", got, want)
	}
}

// Running the rounds by hand with FIPS 197 round keys must give the same ciphertext as crypto/aes, in both directions.
func TestRoundsMatchStdlib(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := rapid.SampledFrom([]int{16, 24, 32}).Draw(t, "size")
		key := rapid.SliceOfN(rapid.Byte(), size, size).Draw(t, "key")
		var pt [hazmat.BlockSize]byte
		copy(pt[:], rapid.SliceOfN(rapid.Byte(), hazmat.BlockSize, hazmat.BlockSize).Draw(t, "pt"))

		ref, err := aes.NewCipher(key)
		if err != nil {
			t.Fatal(err)
		}
		var want [hazmat.BlockSize]byte
		ref.Encrypt(want[:], pt[:])

		rks := bitslice.ExpandKey(key)
		rounds := len(rks) - 1

		got := pt
		testdata.XOR(&got, &rks[0])
		for i := 1; i < rounds; i++ {
			hazmat.CipherRound(&got, &rks[i])
		}
		testdata.SubBytes(&got)
		testdata.ShiftRows(&got)
		testdata.XOR(&got, &rks[rounds])
		if got != want {
			t.Fatalf("AES(%x, %x) = %x, want = %x", key, pt, got, want)
		}

		// The equivalent inverse cipher uses InvMixColumns on the middle round keys.
		testdata.XOR(&got, &rks[rounds])
		for i := rounds - 1; i > 0; i-- {
			dk := rks[i]
			hazmat.InvMixColumns(&dk)
			hazmat.EquivInvCipherRound(&got, &dk)
		}
		testdata.InvShiftRows(&got)
		testdata.InvSubBytes(&got)
		testdata.XOR(&got, &rks[0])
		if got != pt {
			t.Fatalf("AES^-1(%x, %x) = %x, want = %x", key, want, got, pt)
		}
	})
}

func TestParMatchesSingle(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var blocks, keys [hazmat.ParBlocks][hazmat.BlockSize]byte
		for i := range blocks {
			copy(blocks[i][:], rapid.SliceOfN(rapid.Byte(), hazmat.BlockSize, hazmat.BlockSize).Draw(t, "block"))
			copy(keys[i][:], rapid.SliceOfN(rapid.Byte(), hazmat.BlockSize, hazmat.BlockSize).Draw(t, "key"))
		}

		enc, dec := blocks, blocks
		hazmat.CipherRoundPar(&enc, &keys)
		hazmat.EquivInvCipherRoundPar(&dec, &keys)

		for i := range blocks {
			want := blocks[i]
			hazmat.CipherRound(&want, &keys[i])
			if enc[i] != want {
				t.Fatalf("CipherRoundPar(%x)[%d] = %x, want = %x", blocks, i, enc[i], want)
			}

			want = blocks[i]
			hazmat.EquivInvCipherRound(&want, &keys[i])
			if dec[i] != want {
				t.Fatalf("EquivInvCipherRoundPar(%x)[%d] = %x, want = %x", blocks, i, dec[i], want)
			}
		}
	})
}

func TestMixColumns(t *testing.T) {
	// FIPS 197 Appendix B, round 1: after ShiftRows and after MixColumns.
	block := decodeBlock(t, "d4bf5d30e0b452aeb84111f11e2798e5")
	hazmat.MixColumns(&block)
	if got, want := hex.EncodeToString(block[:]), "046681e5e0cb199a48f8d37a2806264c"; got != want {
		t.Errorf("MixColumns = %s, want = %s", got, want)
	}

	hazmat.InvMixColumns(&block)
	if got, want := hex.EncodeToString(block[:]), "d4bf5d30e0b452aeb84111f11e2798e5"; got != want {
		t.Errorf("InvMixColumns = %s, want = %s", got, want)
	}
}

func FuzzCipherRound(f *testing.F) {
	drbg := testdata.New("hazmat round")
	for range 10 {
		f.Add(drbg.Data(hazmat.BlockSize), drbg.Data(hazmat.BlockSize))
	}

	f.Fuzz(func(t *testing.T, b, k []byte) {
		if len(b) != hazmat.BlockSize || len(k) != hazmat.BlockSize {
			t.Skip()
		}

		block, key := [hazmat.BlockSize]byte(b), [hazmat.BlockSize]byte(k)
		want := block
		testdata.SubBytes(&want)
		testdata.ShiftRows(&want)
		testdata.MixColumns(&want)
		testdata.XOR(&want, &key)

		got := block
		hazmat.CipherRound(&got, &key)
		if got != want {
			t.Errorf("CipherRound(%x, %x) = %x, want = %x", b, k, got, want)
		}
	})
}

func BenchmarkCipherRound(b *testing.B) {
	var block, key [hazmat.BlockSize]byte
	b.ReportAllocs()
	b.SetBytes(hazmat.BlockSize)
	for b.Loop() {
		hazmat.CipherRound(&block, &key)
	}
}

func BenchmarkCipherRoundPar(b *testing.B) {
	var blocks, keys [hazmat.ParBlocks][hazmat.BlockSize]byte
	b.ReportAllocs()
	b.SetBytes(hazmat.ParBlocks * hazmat.BlockSize)
	for b.Loop() {
		hazmat.CipherRoundPar(&blocks, &keys)
	}
}

func decodeBlock(tb testing.TB, s string) (b [hazmat.BlockSize]byte) {
	tb.Helper()
	if _, err := hex.Decode(b[:], []byte(s)); err != nil {
		tb.Fatal(err)
	}
	return b
}
