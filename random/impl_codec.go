// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// impl_codec.go - stable text form of an engine.
//
// Layout (single spaces, unsigned decimals):
//
//	random-v2 <seed> <w0> ... <w311> <index> endrandom-v2
//
// The text is a pure function of (seed, state): no machine identity, no
// timestamps. Encode(Decode(b)) == b for every canonical b.

package random

import (
	"bytes"
	"io"
	"strconv"
)

const (
	codecTag    = "random-v2"
	codecEndTag = "endrandom-v2"
	codecTokens = 1 + 1 + mtN + 1 + 1 // tag, seed, words, index, end tag
)

// Encode returns the text form of e, terminated by a newline.
func Encode(e *Engine) []byte {
	// ~21 bytes per word is enough for any uint64 plus a separator.
	buf := make([]byte, 0, len(codecTag)+len(codecEndTag)+21*(mtN+2)+2)
	buf = append(buf, codecTag...)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, e.seed, 10)
	for _, w := range e.mt.x {
		buf = append(buf, ' ')
		buf = strconv.AppendUint(buf, w, 10)
	}
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(e.mt.i), 10)
	buf = append(buf, ' ')
	buf = append(buf, codecEndTag...)
	buf = append(buf, '\n')

	return buf
}

// Decode parses a text form produced by Encode. Surrounding whitespace is
// ignored; anything else that deviates from the layout yields
// ErrDeserialization.
func Decode(b []byte) (*Engine, error) {
	fields := bytes.Fields(b)
	if len(fields) != codecTokens {
		return nil, errorf(methodDecode, ErrDeserialization,
			"expected %d tokens, got %d", codecTokens, len(fields))
	}
	if string(fields[0]) != codecTag {
		return nil, errorf(methodDecode, ErrDeserialization, "unknown tag %q", fields[0])
	}
	if string(fields[codecTokens-1]) != codecEndTag {
		return nil, errorf(methodDecode, ErrDeserialization, "missing %q", codecEndTag)
	}

	var (
		e   Engine
		err error
		k   int
	)
	if e.seed, err = strconv.ParseUint(string(fields[1]), 10, 64); err != nil {
		return nil, errorf(methodDecode, ErrDeserialization, "seed: %v", err)
	}
	for k = 0; k < mtN; k++ {
		if e.mt.x[k], err = strconv.ParseUint(string(fields[2+k]), 10, 64); err != nil {
			return nil, errorf(methodDecode, ErrDeserialization, "word %d: %v", k, err)
		}
	}
	idx, err := strconv.ParseUint(string(fields[2+mtN]), 10, 16)
	if err != nil || idx > mtN {
		return nil, errorf(methodDecode, ErrDeserialization, "index %q out of range [0, %d]", fields[2+mtN], mtN)
	}
	e.mt.i = int(idx)

	return &e, nil
}

// MarshalText implements encoding.TextMarshaler.
func (e *Engine) MarshalText() ([]byte, error) {
	return bytes.TrimRight(Encode(e), "\n"), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, replacing e entirely.
func (e *Engine) UnmarshalText(text []byte) error {
	dec, err := Decode(text)
	if err != nil {
		return err
	}
	*e = *dec

	return nil
}

// Save writes the text form of e to w.
func (e *Engine) Save(w io.Writer) error {
	if _, err := w.Write(Encode(e)); err != nil {
		return &IOError{Op: "write", Err: err}
	}

	return nil
}

// Load reads r to EOF and decodes the text form it contains.
func Load(r io.Reader) (*Engine, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Op: "read", Err: err}
	}

	return Decode(b)
}
