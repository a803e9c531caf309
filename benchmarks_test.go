package softaes_test

import (
	"crypto/aes"
	"crypto/cipher"
	"testing"

	"github.com/codahale/softaes"
)

func BenchmarkEncrypt(b *testing.B) {
	for _, size := range keySizes {
		b.Run(size.name, func(b *testing.B) {
			c := newSoftware(size.n)
			block := make([]byte, softaes.BlockSize)
			b.ReportAllocs()
			b.SetBytes(int64(len(block)))
			for b.Loop() {
				c.Encrypt(block, block)
			}
		})
	}
}

func BenchmarkEncryptBlocks(b *testing.B) {
	for _, size := range keySizes {
		for _, length := range lengths {
			b.Run(size.name+"/"+length.name, func(b *testing.B) {
				c := newSoftware(size.n)
				buf := make([]byte, length.n)
				b.ReportAllocs()
				b.SetBytes(int64(len(buf)))
				for b.Loop() {
					c.EncryptBlocks(buf, buf)
				}
			})
		}
	}
}

func BenchmarkDecryptBlocks(b *testing.B) {
	for _, size := range keySizes {
		for _, length := range lengths {
			b.Run(size.name+"/"+length.name, func(b *testing.B) {
				c := newSoftware(size.n)
				buf := make([]byte, length.n)
				b.ReportAllocs()
				b.SetBytes(int64(len(buf)))
				for b.Loop() {
					c.DecryptBlocks(buf, buf)
				}
			})
		}
	}
}

func BenchmarkNew(b *testing.B) {
	for _, size := range keySizes {
		b.Run(size.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				newSoftware(size.n)
			}
		})
	}
}

func BenchmarkStdlib(b *testing.B) {
	for _, length := range lengths {
		b.Run(length.name, func(b *testing.B) {
			c, _ := aes.NewCipher(make([]byte, 16))
			buf := make([]byte, length.n)
			b.ReportAllocs()
			b.SetBytes(int64(len(buf)))
			for b.Loop() {
				ecb(c, buf)
			}
		})
	}
}

func newSoftware(n int) *softaes.Cipher {
	switch n {
	case 16:
		return softaes.New128(new([16]byte))
	case 24:
		return softaes.New192(new([24]byte))
	default:
		return softaes.New256(new([32]byte))
	}
}

func ecb(c cipher.Block, buf []byte) {
	for i := 0; i < len(buf); i += aes.BlockSize {
		c.Encrypt(buf[i:], buf[i:])
	}
}

//nolint:gochecknoglobals // benchmark fixtures
var (
	keySizes = []struct {
		name string
		n    int
	}{
		{"AES-128", 16},
		{"AES-192", 24},
		{"AES-256", 32},
	}
	lengths = []struct {
		name string
		n    int
	}{
		{"16B", 16},
		{"64B", 64},
		{"1KiB", 1024},
		{"16KiB", 16 * 1024},
	}
)
