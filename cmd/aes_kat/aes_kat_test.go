package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codahale/softaes/internal/kat"
	"github.com/stretchr/testify/require"
)

func TestBuiltinVectors(t *testing.T) {
	vectors, err := kat.Parse(strings.NewReader(builtin))
	require.NoError(t, err)
	require.Len(t, vectors, 14)

	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))
	require.Zero(t, check(log, engines, vectors), logs.String())
	require.Empty(t, logs.String())
}

func TestCheckReportsMismatches(t *testing.T) {
	vectors, err := kat.Parse(strings.NewReader(builtin))
	require.NoError(t, err)
	vectors = vectors[:1]
	vectors[0].Ciphertext = bytes.Clone(vectors[0].Ciphertext)
	vectors[0].Ciphertext[0] ^= 1

	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))
	require.Equal(t, len(engines), check(log, engines, vectors))
	require.Contains(t, logs.String(), "engine=fixslice64")
	require.Contains(t, logs.String(), "line=5")
}

func TestSources(t *testing.T) {
	builtinOnly := sources(nil)
	require.Len(t, builtinOnly, 1)
	require.Equal(t, "builtin", builtinOnly[0].name)

	vectors, err := builtinOnly[0].load()
	require.NoError(t, err)
	require.Len(t, vectors, 14)

	dir := t.TempDir()
	var args []string
	for _, name := range []string{"c.rsp", "a.rsp", "b.rsp"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(builtin), 0o600))
		args = append(args, path)
	}

	srcs := sources(args)
	require.Len(t, srcs, len(args))
	for i, src := range srcs {
		require.Equal(t, args[i], src.name)

		vectors, err := src.load()
		require.NoError(t, err)
		require.Len(t, vectors, 14)
	}

	_, err = fileSource(filepath.Join(dir, "missing.rsp")).load()
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSelectEngines(t *testing.T) {
	selected, err := selectEngines("bitslice, fixslice64")
	require.NoError(t, err)
	require.Len(t, selected, 2)
	require.Equal(t, "bitslice", selected[0].name)
	require.Equal(t, "fixslice64", selected[1].name)

	_, err = selectEngines("bitslice,aesni")
	require.EqualError(t, err, `unknown engine "aesni"`)
}

func TestBatch(t *testing.T) {
	input := bytes.Repeat([]byte{1}, 3*16)
	calls := 0
	out := batch(input, 2, func(blocks [][16]byte) {
		calls++
		require.Len(t, blocks, 2)
		for i := range blocks {
			blocks[i][0] ^= 0xff
		}
	})
	require.Equal(t, 2, calls)
	require.Len(t, out, len(input))
	require.Equal(t, byte(0xfe), out[32])
}
