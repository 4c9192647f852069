// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// compressLevel2 is the lazy level 2 parser. Before committing to a match it
// looks at the next position; a strictly longer match there turns the current
// byte into a literal and the decision moves forward one byte.
func compressLevel2(src []byte, out *sink) error {
	finder := newMatchFinder(src, levelParams[Level2])
	enc := newTokenEncoder(out, Level2)

	literalStart := 0
	inputPos := 0

	for finder.canHash(inputPos) {
		m := finder.find(inputPos)
		finder.insert(inputPos)

		if m.length == 0 {
			inputPos++
			continue
		}

		for finder.canHash(inputPos + 1) {
			next := finder.find(inputPos + 1)
			if next.length <= m.length {
				break
			}

			inputPos++
			finder.insert(inputPos)
			m = next
		}

		if inputPos > literalStart {
			if err := enc.put(literalToken(src[literalStart:inputPos])); err != nil {
				return err
			}
		}

		if err := enc.put(matchToken(m)); err != nil {
			return err
		}

		end := inputPos + m.length
		for inputPos++; inputPos < end; inputPos++ {
			finder.insert(inputPos)
		}
		literalStart = end
	}

	if literalStart < len(src) {
		return enc.put(literalToken(src[literalStart:]))
	}

	return nil
}
