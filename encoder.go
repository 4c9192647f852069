// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// tokenEncoder serializes tokens into the level-specific opcode stream.
// The header tag is OR-ed into the first opcode, which is always a literal run.
type tokenEncoder struct {
	out     *sink
	hdr     header
	started bool
}

// newTokenEncoder returns an encoder writing to out.
func newTokenEncoder(out *sink, level Level) *tokenEncoder {
	return &tokenEncoder{out: out, hdr: header{level: level}}
}

// put encodes one token.
func (e *tokenEncoder) put(t token) error {
	if t.isLiteral() {
		return e.literals(t.literal)
	}

	if !e.started {
		return ErrInvalidInput
	}

	if e.hdr.level == Level1 {
		return e.matchL1(t.distance, t.length)
	}

	return e.matchL2(t.distance, t.length)
}

// literals writes run as opcodes of at most maxLiteralRun bytes each.
func (e *tokenEncoder) literals(run []byte) error {
	for len(run) > 0 {
		n := min(len(run), maxLiteralRun)

		op := opcodeByte(n - 1)
		if !e.started {
			op |= e.hdr.tag()
			e.started = true
		}

		if err := e.out.writeByte(op); err != nil {
			return err
		}
		if err := e.out.write(run[:n]...); err != nil {
			return err
		}
		run = run[n:]
	}

	return nil
}

// matchL1 writes a level 1 back-reference, splitting matches longer than one opcode holds.
func (e *tokenEncoder) matchL1(distance, length int) error {
	d := distance - 1
	hi := opcodeByte(d >> 8)
	lo := opcodeByte(d)

	for length > maxL1MatchLen {
		if err := e.out.write(lenFieldMax<<5|hi, l1SplitExtByte, lo); err != nil {
			return err
		}
		length -= l1MatchSplitLen
	}

	l := length - 2
	if l < lenFieldMax {
		return e.out.write(opcodeByte(l<<5)|hi, lo)
	}

	return e.out.write(lenFieldMax<<5|hi, opcodeByte(l-lenFieldMax), lo)
}

// matchL2 writes a level 2 back-reference: near or far distance, chained length extension.
func (e *tokenEncoder) matchL2(distance, length int) error {
	d := distance - 1
	l := length - 2

	var hi byte
	far := d >= maxL2NearOffset
	if far {
		d -= maxL2NearOffset
		hi = farOffsetHigh
	} else {
		hi = opcodeByte(d >> 8)
	}

	if l < lenFieldMax {
		if err := e.out.writeByte(opcodeByte(l<<5) | hi); err != nil {
			return err
		}
	} else {
		if err := e.out.writeByte(lenFieldMax<<5 | hi); err != nil {
			return err
		}
		for l -= lenFieldMax; l >= lenExtMax; l -= lenExtMax {
			if err := e.out.writeByte(lenExtMax); err != nil {
				return err
			}
		}
		if err := e.out.writeByte(opcodeByte(l)); err != nil {
			return err
		}
	}

	if far {
		return e.out.write(farOffsetMarker, opcodeByte(d>>8), opcodeByte(d))
	}

	return e.out.writeByte(opcodeByte(d))
}
