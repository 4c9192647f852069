// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

import (
	"fmt"
	"strconv"
	"strings"
)

// Level selects the FastLZ format variant.
type Level int

// Compression levels.
const (
	// LevelAuto picks Level1 for inputs below 64 KiB and Level2 otherwise.
	LevelAuto Level = 0
	// Level1 is the fast variant: 8 KiB window, greedy parsing.
	Level1 Level = 1
	// Level2 adds far back-references, unbounded match lengths and lazy parsing.
	Level2 Level = 2
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelAuto:
		return "auto"
	case Level1:
		return "1"
	case Level2:
		return "2"
	default:
		return "level(" + strconv.Itoa(int(l)) + ")"
	}
}

// ParseLevel parses "auto", "1" or "2".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "0", "":
		return LevelAuto, nil
	case "1":
		return Level1, nil
	case "2":
		return Level2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedLevel, s)
	}
}

// resolve maps LevelAuto to a concrete level for an input of n bytes.
func (l Level) resolve(n int) (Level, error) {
	switch l {
	case LevelAuto:
		if n < autoLevelThreshold {
			return Level1, nil
		}
		return Level2, nil
	case Level1, Level2:
		return l, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedLevel, int(l))
	}
}

// header is the stream header carried in the top bits of the first opcode.
type header struct {
	level Level
}

// tag returns the bits OR-ed into the first opcode.
func (h header) tag() byte {
	return opcodeByte((int(h.level) - 1) << levelTagShift)
}

// parseHeader reads the level tag from the first stream byte.
func parseHeader(first byte) (header, error) {
	switch first >> levelTagShift {
	case 0:
		return header{level: Level1}, nil
	case 1:
		return header{level: Level2}, nil
	default:
		return header{}, fmt.Errorf("%w: header tag %d", ErrUnsupportedLevel, first>>levelTagShift)
	}
}

// StreamLevel returns the level recorded in a compressed stream.
func StreamLevel(src []byte) (Level, error) {
	if len(src) == 0 {
		return 0, ErrInputTruncated
	}

	h, err := parseHeader(src[0])
	if err != nil {
		return 0, err
	}

	return h.level, nil
}
