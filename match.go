// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// match is a back-reference candidate. length 0 means no usable match.
type match struct {
	distance int
	length   int
}

// matchFinder indexes 3-byte prefixes of src and answers longest-match queries.
// Each bucket keeps chainDepth positions, newest first, stored as position+1 (0 = empty).
type matchFinder struct {
	src    []byte
	params compressLevelParams
	table  []int32
}

// newMatchFinder allocates a fresh table for one compression call.
func newMatchFinder(src []byte, params compressLevelParams) *matchFinder {
	return &matchFinder{
		src:    src,
		params: params,
		table:  make([]int32, hashSize*params.chainDepth),
	}
}

// hash3 hashes the three bytes at pos. Callers guarantee pos+3 <= len(src).
func hash3(src []byte, pos int) int {
	seq := uint32(src[pos]) | uint32(src[pos+1])<<8 | uint32(src[pos+2])<<16
	return int((seq * hashMul) >> (32 - hashLog))
}

// canHash reports whether a 3-byte window starts at pos.
func (f *matchFinder) canHash(pos int) bool {
	return pos+minMatchLen <= len(f.src)
}

// insert records pos under its hash, evicting the oldest chain entry.
func (f *matchFinder) insert(pos int) {
	if !f.canHash(pos) {
		return
	}

	depth := f.params.chainDepth
	bucket := f.table[hash3(f.src, pos)*depth:][:depth]
	copy(bucket[1:], bucket[:depth-1])
	bucket[0] = int32(pos + 1) //nolint:gosec // G115: input length is capped at maxInputLen
}

// find returns the longest acceptable match for the bytes at pos against
// previously inserted positions. Ties keep the smaller distance.
func (f *matchFinder) find(pos int) match {
	if !f.canHash(pos) {
		return match{}
	}

	var best match
	depth := f.params.chainDepth
	bucket := f.table[hash3(f.src, pos)*depth:][:depth]

	for _, entry := range bucket {
		if entry == 0 {
			break
		}

		ref := int(entry) - 1
		distance := pos - ref
		if distance <= 0 {
			continue
		}

		// Chains are ordered newest first; older entries are only farther away.
		if distance > f.params.maxDistance {
			break
		}

		length := f.extend(ref, pos)
		if length < minMatchLen || length <= best.length {
			continue
		}

		if f.params.nearLimit > 0 && distance > f.params.nearLimit && length < minFarMatchLen {
			continue
		}

		best = match{distance: distance, length: length}
	}

	return best
}

// extend counts equal bytes at ref and pos, stopping at the end of input.
// ref < pos, so an overlapping run (distance < length) extends correctly.
func (f *matchFinder) extend(ref, pos int) int {
	src := f.src
	n := 0
	for pos+n < len(src) && src[ref+n] == src[pos+n] {
		n++
	}

	return n
}
