package fastlz

import (
	"bytes"
	"math/rand/v2"
)

// randomBytes returns n reproducible pseudo-random bytes.
func randomBytes(n int, seed uint64) []byte {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.Uint32())
	}

	return b
}

// wordText returns n words of pseudo-random text drawn from a small vocabulary.
func wordText(n int, seed uint64) []byte {
	words := []string{
		"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"compression", "stream", "window", "level", "literal", "match",
		"distance", "length", "opcode", "buffer",
	}

	r := rand.New(rand.NewPCG(seed, seed+1))
	var buf bytes.Buffer
	for i := range n {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(words[r.IntN(len(words))])
	}

	return buf.Bytes()
}

func testInputSet() []struct {
	name string
	data []byte
} {
	text := wordText(3000, 7)

	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "two-bytes", data: []byte("ab")},
		{name: "short-text", data: []byte("hello world, fastlz test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "random", data: randomBytes(10000, 1)},
		{name: "far-repeat", data: bytes.Repeat(randomBytes(16384, 2), 2)},
		{name: "text", data: text},
		{name: "text-far-repeat", data: bytes.Join([][]byte{text, randomBytes(20000, 3), text}, nil)},
	}
}
