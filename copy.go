// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// copyBackRef expands a FastLZ match: length bytes starting dist back from
// outputPos are appended at outputPos. A match may reach into bytes it is
// producing itself (dist < length, e.g. a run of one byte has dist 1), so that
// case replays the output one byte at a time.
func copyBackRef(dst []byte, outputPos, dist, length int) error {
	mPos := outputPos - dist
	if dist <= 0 || mPos < 0 {
		return ErrCorruptStream
	}

	if outputPos+length > len(dst) {
		return ErrOutputTooSmall
	}

	if dist >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return nil
	}

	for i := range length {
		dst[outputPos+i] = dst[mPos+i]
	}

	return nil
}
