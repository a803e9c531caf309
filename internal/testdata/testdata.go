// Package testdata provides deterministic test inputs and a byte-oriented reference model of the AES round functions.
package testdata

import (
	"crypto/sha3"
)

// DRBG is a deterministic source of test data, keyed by a label.
type DRBG struct {
	h *sha3.SHAKE
}

// New returns a DRBG whose output is determined entirely by label.
func New(label string) *DRBG {
	h := sha3.NewSHAKE128()
	_, _ = h.Write([]byte(label))
	return &DRBG{h: h}
}

// Data returns the next n bytes of output.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.h.Read(b)
	return b
}

// Block returns the next 16 bytes of output as an AES block.
func (d *DRBG) Block() (b [16]byte) {
	_, _ = d.h.Read(b[:])
	return b
}
