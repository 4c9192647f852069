// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

import (
	"bytes"
	"fmt"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("fastlz benchmark text payload "), 136),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
		"words-256k":      wordText(40000, 1),
		"random-64k":      randomBytes(64<<10, 1),
	}
}

func BenchmarkCompress(b *testing.B) {
	levels := []Level{Level1, Level2}
	for inputName, inputData := range benchmarkInputSets() {
		for _, level := range levels {
			name := fmt.Sprintf("%s/level-%s", inputName, level)
			b.Run(name, func(b *testing.B) {
				dst := make([]byte, CompressBound(len(inputData)))
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					_, err := CompressLevel(level, inputData, dst)
					if err != nil {
						b.Fatalf("CompressLevel failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	levels := []Level{Level1, Level2}
	for inputName, inputData := range benchmarkInputSets() {
		for _, level := range levels {
			compressedData, err := Compress(inputData, &CompressOptions{Level: level})
			if err != nil {
				b.Fatalf("setup Compress failed for %s level %s: %v", inputName, level, err)
			}

			dst := make([]byte, len(inputData))
			if _, err := DecompressInto(compressedData, dst); err != nil {
				b.Fatalf("setup Decompress failed for %s level %s: %v", inputName, level, err)
			}

			name := fmt.Sprintf("%s/from-level-%s", inputName, level)
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					_, err := DecompressInto(compressedData, dst)
					if err != nil {
						b.Fatalf("DecompressInto failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	inputData := bytes.Repeat([]byte("RoundTripData"), 16384)
	opts := &CompressOptions{Level: Level2}
	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		compressedData, err := Compress(inputData, opts)
		if err != nil {
			b.Fatalf("Compress failed: %v", err)
		}
		_, err = Decompress(compressedData, DefaultDecompressOptions(len(inputData)))
		if err != nil {
			b.Fatalf("Decompress failed: %v", err)
		}
	}
}
