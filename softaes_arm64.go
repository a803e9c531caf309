//go:build arm64 && !purego

package softaes

import "golang.org/x/sys/cpu"

// HardwareAES is set if the current CPU has constant-time AES and polynomial multiplication instructions, in which
// case NewCipher returns the runtime's crypto/aes implementation.
var HardwareAES = cpu.ARM64.HasAES && cpu.ARM64.HasPMULL //nolint:gochecknoglobals // should only check once
