// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// sink is a write cursor over a caller-owned buffer. Capacity is len(buf);
// a write that does not fit fails with ErrOutputTooSmall and writes nothing.
type sink struct {
	buf []byte // destination
	pos int    // bytes written so far
}

// free returns the remaining capacity.
func (s *sink) free() int {
	return len(s.buf) - s.pos
}

// writeByte appends one byte.
func (s *sink) writeByte(b byte) error {
	if s.pos >= len(s.buf) {
		return ErrOutputTooSmall
	}

	s.buf[s.pos] = b
	s.pos++

	return nil
}

// write appends p as a whole.
func (s *sink) write(p ...byte) error {
	if len(p) > s.free() {
		return ErrOutputTooSmall
	}

	s.pos += copy(s.buf[s.pos:], p)
	return nil
}
