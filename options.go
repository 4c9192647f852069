// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// DecompressOptions configures decompression.
// OutLen is required (the stream does not record its decoded size); MaxInputSize limits reads when using DecompressFromReader.
type DecompressOptions struct {
	// OutLen is the capacity of the output buffer, at least the decompressed size.
	OutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given output length and no input limit.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}

// CompressOptions configures compression.
type CompressOptions struct {
	// Level: LevelAuto (0) picks by input size; Level1 or Level2 force a variant.
	// Any other value makes Compress return ErrUnsupportedLevel.
	Level Level
}

// DefaultCompressOptions returns options with LevelAuto.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: LevelAuto}
}
