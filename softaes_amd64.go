//go:build amd64 && !purego

package softaes

import "golang.org/x/sys/cpu"

// HardwareAES is set if the current CPU has constant-time AES and carry-less multiplication instructions, in which
// case NewCipher returns the runtime's crypto/aes implementation.
var HardwareAES = cpu.X86.HasAES && cpu.X86.HasPCLMULQDQ //nolint:gochecknoglobals // should only check once
