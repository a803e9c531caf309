package main

import (
	"crypto/aes"
	"fmt"
	"strings"

	"github.com/codahale/softaes"
	"github.com/codahale/softaes/internal/bitslice"
	"github.com/codahale/softaes/internal/fixslice32"
	"github.com/codahale/softaes/internal/fixslice64"
)

// An engine runs a whole record, of one or more blocks, under a key.
type engine struct {
	name string
	run  func(key, input []byte, decrypt bool) []byte
}

//nolint:gochecknoglobals // fixed registry
var engines = []engine{
	{"softaes", runSoftAES},
	{"bitslice", runBitslice},
	{"fixslice32", runFixslice32},
	{"fixslice64", runFixslice64},
	{"crypto/aes", runStdlib},
}

func engineNames() []string {
	names := make([]string, len(engines))
	for i, e := range engines {
		names[i] = e.name
	}
	return names
}

func selectEngines(list string) ([]engine, error) {
	var selected []engine
outer:
	for name := range strings.SplitSeq(list, ",") {
		name = strings.TrimSpace(name)
		for _, e := range engines {
			if e.name == name {
				selected = append(selected, e)
				continue outer
			}
		}
		return nil, fmt.Errorf("unknown engine %q", name)
	}
	return selected, nil
}

func runSoftAES(key, input []byte, decrypt bool) []byte {
	var c *softaes.Cipher
	switch len(key) {
	case 16:
		c = softaes.New128((*[16]byte)(key))
	case 24:
		c = softaes.New192((*[24]byte)(key))
	default:
		c = softaes.New256((*[32]byte)(key))
	}
	defer c.Reset()

	out := make([]byte, len(input))
	if decrypt {
		c.DecryptBlocks(out, input)
	} else {
		c.EncryptBlocks(out, input)
	}
	return out
}

func runStdlib(key, input []byte, decrypt bool) []byte {
	c, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}

	out := make([]byte, len(input))
	for i := 0; i < len(input); i += aes.BlockSize {
		if decrypt {
			c.Decrypt(out[i:], input[i:])
		} else {
			c.Encrypt(out[i:], input[i:])
		}
	}
	return out
}

func runBitslice(key, input []byte, decrypt bool) []byte {
	k := bitslice.Expand(key)
	defer k.Reset()

	out := make([]byte, len(input))
	for i := 0; i < len(input); i += bitslice.BlockSize {
		block := [bitslice.BlockSize]byte(input[i : i+bitslice.BlockSize])
		if decrypt {
			k.Decrypt(&block)
		} else {
			k.Encrypt(&block)
		}
		copy(out[i:], block[:])
	}
	return out
}

func runFixslice32(key, input []byte, decrypt bool) []byte {
	var rk []uint32
	switch len(key) {
	case 16:
		k := new(fixslice32.Keys128)
		fixslice32.Schedule128(k, (*[16]byte)(key))
		rk = k[:]
	case 24:
		k := new(fixslice32.Keys192)
		fixslice32.Schedule192(k, (*[24]byte)(key))
		rk = k[:]
	default:
		k := new(fixslice32.Keys256)
		fixslice32.Schedule256(k, (*[32]byte)(key))
		rk = k[:]
	}
	defer clear(rk)

	f := fixslice32.Encrypt
	if decrypt {
		f = fixslice32.Decrypt
	}
	return batch(input, fixslice32.ParBlocks, func(blocks [][fixslice32.BlockSize]byte) {
		f(rk, (*[fixslice32.ParBlocks][fixslice32.BlockSize]byte)(blocks))
	})
}

func runFixslice64(key, input []byte, decrypt bool) []byte {
	var rk []uint64
	switch len(key) {
	case 16:
		k := new(fixslice64.Keys128)
		fixslice64.Schedule128(k, (*[16]byte)(key))
		rk = k[:]
	case 24:
		k := new(fixslice64.Keys192)
		fixslice64.Schedule192(k, (*[24]byte)(key))
		rk = k[:]
	default:
		k := new(fixslice64.Keys256)
		fixslice64.Schedule256(k, (*[32]byte)(key))
		rk = k[:]
	}
	defer clear(rk)

	f := fixslice64.Encrypt
	if decrypt {
		f = fixslice64.Decrypt
	}
	return batch(input, fixslice64.ParBlocks, func(blocks [][fixslice64.BlockSize]byte) {
		f(rk, (*[fixslice64.ParBlocks][fixslice64.BlockSize]byte)(blocks))
	})
}

// batch splits input into groups of par blocks, zero-padding the last, and runs f over each group in place.
func batch(input []byte, par int, f func([][16]byte)) []byte {
	n := (len(input)/16 + par - 1) / par * par
	blocks := make([][16]byte, n)
	for i := range len(input) / 16 {
		blocks[i] = [16]byte(input[16*i:])
	}
	for i := 0; i < n; i += par {
		f(blocks[i : i+par])
	}

	out := make([]byte, len(input))
	for i := range len(input) / 16 {
		copy(out[16*i:], blocks[i][:])
	}
	return out
}
