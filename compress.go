// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

import "fmt"

// CompressBound returns the largest stream Compress can produce for n input bytes:
// one opcode per 32 literal bytes, plus one byte of slack.
func CompressBound(n int) int {
	if n <= 0 {
		return 0
	}

	return n + (n+maxLiteralRun-1)/maxLiteralRun + 1
}

// Compress compresses src into a newly allocated slice. opts may be nil (LevelAuto).
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	dst := make([]byte, CompressBound(len(src)))
	n, err := CompressLevel(opts.Level, src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n:n], nil
}

// CompressLevel compresses src into dst with the given level and returns the
// number of bytes written. dst capacity is len(dst); CompressBound(len(src))
// always suffices. When dst is too small, ErrOutputTooSmall is returned with
// a count of 0 and the contents of dst are unspecified.
func CompressLevel(level Level, src, dst []byte) (int, error) {
	level, err := level.resolve(len(src))
	if err != nil {
		return 0, err
	}

	if len(src) > maxInputLen {
		return 0, fmt.Errorf("%w: %d bytes exceeds the 32-bit stream limit", ErrInvalidInput, len(src))
	}

	if len(src) == 0 {
		return 0, nil
	}

	out := &sink{buf: dst}
	switch level {
	case Level1:
		err = compressLevel1(src, out)
	default:
		err = compressLevel2(src, out)
	}

	if err != nil {
		return 0, err
	}

	return out.pos, nil
}
