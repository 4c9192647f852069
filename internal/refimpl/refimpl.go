// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

// Package refimpl holds deliberately simple FastLZ decoders used as test oracles.
// They read one byte at a time, assume a fixed level and ignore the header tag
// only in the sense that callers must mask it off first.
package refimpl

import "errors"

// ErrMalformed is returned for any stream the reference decoders cannot follow.
var ErrMalformed = errors.New("refimpl: malformed stream")

// Decoder decodes a raw stream of one fixed level into dst.
type Decoder interface {
	Decode(src, dst []byte) (int, error)
}

// Level1 is the reference level 1 decoder.
type Level1 struct{}

// Level2 is the reference level 2 decoder. It expects src[0] to carry no tag.
type Level2 struct{}

var (
	_ Decoder = Level1{}
	_ Decoder = Level2{}
)

// reader walks the compressed stream.
type reader struct {
	src []byte
	pos int
}

func (r *reader) done() bool {
	return r.pos >= len(r.src)
}

func (r *reader) next() (int, error) {
	if r.done() {
		return 0, ErrMalformed
	}

	b := r.src[r.pos]
	r.pos++

	return int(b), nil
}

// writer appends decoded bytes to a bounded buffer.
type writer struct {
	dst []byte
	pos int
}

func (w *writer) put(b byte) error {
	if w.pos >= len(w.dst) {
		return ErrMalformed
	}

	w.dst[w.pos] = b
	w.pos++

	return nil
}

func (w *writer) back(distance, length int) error {
	if distance < 1 || distance > w.pos {
		return ErrMalformed
	}

	for range length {
		if err := w.put(w.dst[w.pos-distance]); err != nil {
			return err
		}
	}

	return nil
}

func (w *writer) literal(r *reader, count int) error {
	for range count {
		b, err := r.next()
		if err != nil {
			return err
		}
		if err := w.put(byte(b)); err != nil {
			return err
		}
	}

	return nil
}

// Decode implements Decoder.
func (Level1) Decode(src, dst []byte) (int, error) {
	r := &reader{src: src}
	w := &writer{dst: dst}

	for !r.done() {
		ctrl, _ := r.next()
		kind := ctrl >> 5

		if kind == 0 {
			if err := w.literal(r, ctrl+1); err != nil {
				return 0, err
			}
			continue
		}

		length := kind + 2
		if kind == 7 {
			ext, err := r.next()
			if err != nil {
				return 0, err
			}
			length += ext
		}

		lo, err := r.next()
		if err != nil {
			return 0, err
		}

		distance := (ctrl&31)<<8 + lo + 1
		if err := w.back(distance, length); err != nil {
			return 0, err
		}
	}

	return w.pos, nil
}

// Decode implements Decoder.
func (Level2) Decode(src, dst []byte) (int, error) {
	r := &reader{src: src}
	w := &writer{dst: dst}

	for !r.done() {
		ctrl, _ := r.next()
		kind := ctrl >> 5

		if kind == 0 {
			if err := w.literal(r, ctrl+1); err != nil {
				return 0, err
			}
			continue
		}

		length := kind + 2
		if kind == 7 {
			for {
				ext, err := r.next()
				if err != nil {
					return 0, err
				}
				length += ext
				if ext != 255 {
					break
				}
			}
		}

		lo, err := r.next()
		if err != nil {
			return 0, err
		}

		distance := (ctrl&31)<<8 + lo + 1
		if lo == 255 && ctrl&31 == 31 {
			hi, err := r.next()
			if err != nil {
				return 0, err
			}
			lo, err = r.next()
			if err != nil {
				return 0, err
			}
			distance = hi<<8 + lo + 8191 + 1
		}

		if err := w.back(distance, length); err != nil {
			return 0, err
		}
	}

	return w.pos, nil
}
