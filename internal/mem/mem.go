// Package mem contains byte-slice helpers shared by the AES engines.
package mem

import (
	"crypto/subtle"
)

// XOR XORs a and b into dst. Uses subtle.XORBytes for slices larger than
// 16 bytes (which benefits from SIMD) and a scalar loop for small slices.
func XOR(dst, a, b []byte) {
	if len(dst) > 16 {
		subtle.XORBytes(dst, a, b)
	} else {
		for i := range dst {
			dst[i] = a[i] ^ b[i]
		}
	}
}
