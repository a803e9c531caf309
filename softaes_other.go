//go:build (!amd64 && !arm64) || purego

package softaes

// HardwareAES is set if the current CPU has constant-time AES instructions. It is always false on this platform or
// with the purego build tag.
var HardwareAES = false //nolint:gochecknoglobals // should only check once
