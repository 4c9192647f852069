// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// token is one parse decision: a literal run when literal is non-nil,
// otherwise a back-reference of length bytes at distance.
type token struct {
	literal  []byte
	distance int
	length   int
}

// literalToken wraps a raw run.
func literalToken(run []byte) token {
	return token{literal: run}
}

// matchToken wraps a back-reference.
func matchToken(m match) token {
	return token{distance: m.distance, length: m.length}
}

// isLiteral reports whether t is a literal run.
func (t token) isLiteral() bool {
	return t.literal != nil
}
