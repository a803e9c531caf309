// Package kat parses NIST AESAVS known-answer response files for ECB mode.
//
// A response file is a sequence of [ENCRYPT] and [DECRYPT] sections, each holding records of the form:
//
//	COUNT = 0
//	KEY = 00000000000000000000000000000000
//	PLAINTEXT = f34481ec3cc627bacd5dc3fb08f273e6
//	CIPHERTEXT = 0336763e966d92595a567cc9ce537f5e
//
// Lines starting with # are comments. Plaintexts and ciphertexts may span several blocks, as in the MMT files.
package kat

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformed is returned when a response file cannot be parsed.
var ErrMalformed = errors.New("kat: malformed response file")

// A Vector is a single known-answer record.
type Vector struct {
	Line       int // line of the COUNT field
	Decrypt    bool
	Count      int
	Key        []byte
	Plaintext  []byte
	Ciphertext []byte
}

// Input returns the data the record feeds to the cipher: the plaintext for encryption, the ciphertext for decryption.
func (v *Vector) Input() []byte {
	if v.Decrypt {
		return v.Ciphertext
	}
	return v.Plaintext
}

// Output returns the data the cipher is expected to produce.
func (v *Vector) Output() []byte {
	if v.Decrypt {
		return v.Plaintext
	}
	return v.Ciphertext
}

// Parse reads every record from r.
func Parse(r io.Reader) ([]Vector, error) {
	var (
		vectors []Vector
		cur     *Vector
		section string
		line    int
	)

	flush := func() error {
		if cur == nil {
			return nil
		}
		if err := cur.validate(); err != nil {
			return fmt.Errorf("kat: line %d: %w", cur.Line, err)
		}
		vectors = append(vectors, *cur)
		cur = nil
		return nil
	}

	s := bufio.NewScanner(r)
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())

		switch {
		case text == "" || strings.HasPrefix(text, "#"):
			continue
		case strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]"):
			if err := flush(); err != nil {
				return nil, err
			}
			switch section = text[1 : len(text)-1]; section {
			case "ENCRYPT", "DECRYPT":
			default:
				return nil, fmt.Errorf("kat: line %d: %w: unknown section %q", line, ErrMalformed, section)
			}
			continue
		}

		name, value, ok := strings.Cut(text, "=")
		if !ok {
			return nil, fmt.Errorf("kat: line %d: %w: expected NAME = VALUE", line, ErrMalformed)
		}
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)

		if name == "COUNT" {
			if err := flush(); err != nil {
				return nil, err
			}
			if section == "" {
				return nil, fmt.Errorf("kat: line %d: %w: record outside of a section", line, ErrMalformed)
			}
			count, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("kat: line %d: %w", line, err)
			}
			cur = &Vector{Line: line, Decrypt: section == "DECRYPT", Count: count}
			continue
		}

		if cur == nil {
			return nil, fmt.Errorf("kat: line %d: %w: %s before COUNT", line, ErrMalformed, name)
		}

		var dst *[]byte
		switch name {
		case "KEY":
			dst = &cur.Key
		case "PLAINTEXT":
			dst = &cur.Plaintext
		case "CIPHERTEXT":
			dst = &cur.Ciphertext
		default:
			return nil, fmt.Errorf("kat: line %d: %w: unsupported field %s", line, ErrMalformed, name)
		}
		if *dst != nil {
			return nil, fmt.Errorf("kat: line %d: %w: duplicate field %s", line, ErrMalformed, name)
		}

		b, err := hex.DecodeString(value)
		if err != nil {
			return nil, fmt.Errorf("kat: line %d: %w", line, err)
		}
		*dst = b
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("kat: %w", err)
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return vectors, nil
}

func (v *Vector) validate() error {
	switch {
	case v.Key == nil || v.Plaintext == nil || v.Ciphertext == nil:
		return fmt.Errorf("%w: incomplete record", ErrMalformed)
	case len(v.Key) != 16 && len(v.Key) != 24 && len(v.Key) != 32:
		return fmt.Errorf("%w: invalid key size %d", ErrMalformed, len(v.Key))
	case len(v.Plaintext) == 0 || len(v.Plaintext)%16 != 0:
		return fmt.Errorf("%w: plaintext is not a whole number of blocks", ErrMalformed)
	case len(v.Plaintext) != len(v.Ciphertext):
		return fmt.Errorf("%w: plaintext and ciphertext lengths differ", ErrMalformed)
	default:
		return nil
	}
}
