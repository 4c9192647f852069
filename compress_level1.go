// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// compressLevel1 is the greedy level 1 parser: take the single-slot candidate
// whenever it reaches the minimum match length.
func compressLevel1(src []byte, out *sink) error {
	finder := newMatchFinder(src, levelParams[Level1])
	enc := newTokenEncoder(out, Level1)

	literalStart := 0
	inputPos := 0

	for finder.canHash(inputPos) {
		m := finder.find(inputPos)
		finder.insert(inputPos)

		if m.length == 0 {
			inputPos++
			continue
		}

		if inputPos > literalStart {
			if err := enc.put(literalToken(src[literalStart:inputPos])); err != nil {
				return err
			}
		}

		if err := enc.put(matchToken(m)); err != nil {
			return err
		}

		// Refresh the hash at the match boundary.
		inputPos += m.length
		finder.insert(inputPos - 2)
		finder.insert(inputPos - 1)
		literalStart = inputPos
	}

	if literalStart < len(src) {
		return enc.put(literalToken(src[literalStart:]))
	}

	return nil
}
