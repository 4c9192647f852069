// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

/*
Package fastlz implements FastLZ compression and decompression, a byte-aligned
LZ77 format with two variants.

Level 1 uses an 8 KiB window, matches of up to 264 bytes per opcode and greedy
parsing. Level 2 adds far back-references (up to 73724 bytes), unbounded match
lengths through a chained length extension, and lazy matching. The level is
recorded in the top three bits of the first stream byte, so Decompress needs no
hint. A level 2 stream whose first byte is masked with 0x1f is a plain level 2
stream as understood by level-specific decoders.

Streams carry no length or terminator: the caller keeps the decompressed size.

# Compress

Options may be nil (LevelAuto: level 1 below 64 KiB, level 2 above):

	out, err := fastlz.Compress(data, nil)
	out, err := fastlz.Compress(data, &fastlz.CompressOptions{Level: fastlz.Level2})

Into caller-owned memory; CompressBound gives a size that always fits:

	dst := make([]byte, fastlz.CompressBound(len(data)))
	n, err := fastlz.CompressLevel(fastlz.Level1, data, dst)

# Decompress

	out, err := fastlz.Decompress(compressed, fastlz.DefaultDecompressOptions(expectedLen))

	dst := make([]byte, expectedLen)
	n, err := fastlz.DecompressInto(compressed, dst)

From an io.Reader:

	out, err := fastlz.DecompressFromReader(r, fastlz.DefaultDecompressOptions(expectedLen))

Malformed input never panics: decoding fails with ErrCorruptStream,
ErrInputTruncated, ErrOutputTooSmall or ErrUnsupportedLevel.
*/
package fastlz
