// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// Decompress decompresses a FastLZ stream into a buffer of length opts.OutLen.
// The returned slice is shorter than OutLen when the stream decodes to fewer bytes.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil || opts.OutLen < 0 {
		return nil, ErrInvalidInput
	}

	dst := make([]byte, opts.OutLen)
	n, err := decompressCore(src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressInto decompresses src into caller-owned dst and returns the number
// of bytes written. The level is taken from the stream header.
func DecompressInto(src, dst []byte) (int, error) {
	return decompressCore(src, dst)
}

// decompressCore decodes src into dst in one pass. The header is parsed once
// from the first byte; its tag bits are masked off before that byte is used
// as the first opcode. On error it returns (0, err).
func decompressCore(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	hdr, err := parseHeader(src[0])
	if err != nil {
		return 0, err
	}

	inPos := 1
	outPos := 0
	inst := src[0] & levelTagMask

	for {
		if inst < literalLimit {
			if err := copyLiteralRun(src, &inPos, dst, &outPos, int(inst)+1); err != nil {
				return 0, err
			}
		} else {
			var dist, matchLen int
			if hdr.level == Level1 {
				dist, matchLen, err = readMatchL1(src, &inPos, inst)
			} else {
				dist, matchLen, err = readMatchL2(src, &inPos, inst)
			}
			if err != nil {
				return 0, err
			}

			if err := copyBackRef(dst, outPos, dist, matchLen); err != nil {
				return 0, err
			}
			outPos += matchLen
		}

		if inPos >= len(src) {
			return outPos, nil
		}

		inst = src[inPos]
		inPos++
	}
}

// readMatchL1 decodes the operands of a level 1 match opcode.
func readMatchL1(src []byte, inPos *int, inst byte) (dist, matchLen int, err error) {
	matchLen = int(inst >> 5)
	offset := int(inst&levelTagMask) << 8

	if matchLen == lenFieldMax {
		ext, err := readCompressedByte(src, inPos)
		if err != nil {
			return 0, 0, err
		}
		matchLen += int(ext)
	}

	lo, err := readCompressedByte(src, inPos)
	if err != nil {
		return 0, 0, err
	}

	return offset + int(lo) + 1, matchLen + 2, nil
}

// readMatchL2 decodes the operands of a level 2 match opcode: a chained length
// extension, then either a one-byte near offset or the 255 marker and a 16-bit far offset.
func readMatchL2(src []byte, inPos *int, inst byte) (dist, matchLen int, err error) {
	matchLen = int(inst >> 5)
	offset := int(inst&levelTagMask) << 8

	if matchLen == lenFieldMax {
		for {
			ext, err := readCompressedByte(src, inPos)
			if err != nil {
				return 0, 0, err
			}
			matchLen += int(ext)
			if ext != lenExtMax {
				break
			}
		}
	}

	lo, err := readCompressedByte(src, inPos)
	if err != nil {
		return 0, 0, err
	}

	if lo == farOffsetMarker && offset == farOffsetHigh<<8 {
		far, err := readCompressedBE16(src, inPos)
		if err != nil {
			return 0, 0, err
		}

		return int(far) + maxL2NearOffset + 1, matchLen + 2, nil
	}

	return offset + int(lo) + 1, matchLen + 2, nil
}

// readCompressedByte reads one byte from src at *inPos and advances *inPos.
func readCompressedByte(src []byte, inPos *int) (byte, error) {
	if *inPos >= len(src) {
		return 0, ErrInputTruncated
	}

	b := src[*inPos]
	*inPos++

	return b, nil
}

// readCompressedBE16 reads one big-endian uint16 from src at *inPos and advances *inPos by 2.
func readCompressedBE16(src []byte, inPos *int) (uint16, error) {
	if *inPos+2 > len(src) {
		return 0, ErrInputTruncated
	}

	hi := uint16(src[*inPos])
	lo := uint16(src[*inPos+1])
	*inPos += 2

	return hi<<8 | lo, nil
}

// copyLiteralRun copies `n` bytes from src[*inPos:] to dst[*outPos:] and advances both cursors.
func copyLiteralRun(src []byte, inPos *int, dst []byte, outPos *int, n int) error {
	if *inPos+n > len(src) {
		return ErrInputTruncated
	}

	if *outPos+n > len(dst) {
		return ErrOutputTooSmall
	}

	copy(dst[*outPos:*outPos+n], src[*inPos:*inPos+n])
	*inPos += n
	*outPos += n

	return nil
}
