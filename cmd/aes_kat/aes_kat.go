// Command aes_kat checks every AES engine against NIST AESAVS known-answer response files.
//
// With no arguments it checks a built-in set of vectors from FIPS 197 and SP 800-38A. It exits non-zero if any engine
// disagrees with any record.
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/codahale/softaes/internal/kat"
)

//go:embed vectors.rsp
var builtin string

func main() {
	log := slog.New(slog.Default().Handler())

	names := flag.String("engines", strings.Join(engineNames(), ","), "comma-separated list of engines to check")
	flag.Parse()

	selected, err := selectEngines(*names)
	if err != nil {
		log.Error("invalid engine list", "err", err)
		os.Exit(2)
	}

	failed := false
	for _, src := range sources(flag.Args()) {
		vectors, err := src.load()
		if err != nil {
			log.Error("failed to load vectors", "file", src.name, "err", err)
			failed = true
			continue
		}

		failures := check(log.With("file", src.name), selected, vectors)
		log.Info("checked vectors", "file", src.name, "vectors", len(vectors), "engines", len(selected),
			"failures", failures)
		failed = failed || failures > 0
	}

	if failed {
		os.Exit(1)
	}
}

// A source is a named set of vectors, checked in command-line order.
type source struct {
	name string
	load func() ([]kat.Vector, error)
}

// sources returns a source per file argument, or the built-in vectors if there are none.
func sources(args []string) []source {
	if len(args) == 0 {
		return []source{{name: "builtin", load: func() ([]kat.Vector, error) {
			return kat.Parse(strings.NewReader(builtin))
		}}}
	}

	srcs := make([]source, len(args))
	for i, name := range args {
		srcs[i] = fileSource(name)
	}
	return srcs
}

func fileSource(name string) source {
	return source{name: name, load: func() ([]kat.Vector, error) {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return kat.Parse(f)
	}}
}

// check runs every vector through every engine, logs each mismatch, and returns the number of mismatches.
func check(log *slog.Logger, engines []engine, vectors []kat.Vector) int {
	failures := 0
	for _, e := range engines {
		for i := range vectors {
			v := &vectors[i]

			got := e.run(v.Key, v.Input(), v.Decrypt)
			if !bytes.Equal(got, v.Output()) {
				failures++
				log.Error("mismatch",
					"engine", e.name,
					"line", v.Line,
					"count", v.Count,
					"decrypt", v.Decrypt,
					"got", fmt.Sprintf("%x", got),
					"want", fmt.Sprintf("%x", v.Output()),
				)
			}
		}
	}
	return failures
}
