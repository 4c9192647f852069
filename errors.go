// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrInvalidInput is returned for degenerate arguments: nil or negative options,
	// or an input too large for 32-bit stream offsets.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupportedLevel is returned for a compression level other than 1 or 2,
	// and when a stream header carries an unknown level tag.
	ErrUnsupportedLevel = errors.New("unsupported compression level")
	// ErrOutputTooSmall is returned when a write would exceed the destination buffer.
	ErrOutputTooSmall = errors.New("output buffer too small")
	// ErrCorruptStream is returned when a back-reference points before the start of the output.
	ErrCorruptStream = errors.New("corrupt stream")
	// ErrInputTruncated is returned when the stream ends in the middle of a token.
	ErrInputTruncated = errors.New("input truncated")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
