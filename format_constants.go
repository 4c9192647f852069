// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// FastLZ format constants: literal/match opcode bounds, distance windows and header tag.

// Literal runs.
const (
	maxLiteralRun = 32 // bytes per literal opcode; the opcode stores run-1
	literalLimit  = 32 // opcodes below this value are literal runs
)

// Match lengths. The opcode length field stores length-2 in three bits.
const (
	minMatchLen     = 3
	minFarMatchLen  = 5                       // level 2 far matches cost four bytes
	lenFieldMax     = 7                       // saturated length field, an extension follows
	maxL1MatchLen   = lenFieldMax + 255 + 2   // 264, longest level 1 match per opcode
	l1MatchSplitLen = maxL1MatchLen - 2       // 262, piece size for longer level 1 matches
	lenExtMax       = 255                     // level 2 length chain continuation byte
	l1SplitExtByte  = l1MatchSplitLen - 2 - 7 // extension byte of a 262-byte piece
)

// Back-reference distances (inclusive).
const (
	maxL1Distance   = 8191
	maxL2NearOffset = 8191 // level 2 near matches need distance-1 below this
	maxL2Distance   = 65535 + maxL2NearOffset - 2
	farOffsetMarker = 255 // distance byte that announces a 16-bit far offset
	farOffsetHigh   = 31  // high distance bits of a far match opcode
)

// Header tag.
const (
	levelTagShift = 5
	levelTagMask  = 0x1f // bits a literal opcode uses; the rest carry the tag
)

// Match finder hash parameters.
const (
	hashLog  = 13
	hashSize = 1 << hashLog
	hashMul  = 2654435769
)

// autoLevelThreshold is the input size from which LevelAuto picks level 2.
const autoLevelThreshold = 64 << 10

// maxInputLen keeps stream positions representable in the int32 hash entries.
const maxInputLen = 1<<31 - 2
