package refimpl_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/woozymasta/fastlz/internal/refimpl"
)

func TestLevel1_Decode(t *testing.T) {
	testCases := []struct {
		name   string
		stream []byte
		want   []byte
	}{
		{name: "literal", stream: []byte{0x02, 'a', 'b', 'c'}, want: []byte("abc")},
		{name: "short-match", stream: []byte{0x02, 'a', 'b', 'c', 0x80, 0x02}, want: []byte("abcabcabc")},
		{
			name:   "split-long-match",
			stream: []byte{0x00, 'a', 0xe0, 0xfd, 0x00, 0xe0, 0x1d, 0x00},
			want:   bytes.Repeat([]byte("a"), 301),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dst := make([]byte, len(tc.want))
			n, err := refimpl.Level1{}.Decode(tc.stream, dst)
			require.NoError(t, err)
			require.Equal(t, tc.want, dst[:n])
		})
	}
}

func TestLevel2_Decode(t *testing.T) {
	// One literal 'x', a distance-1 match growing it to 9000 bytes, then a
	// far match of 5 bytes from distance 9000 (808 past the near window).
	far := []byte{0x00, 'x', 0xe0}
	far = append(far, bytes.Repeat([]byte{0xff}, 35)...)
	far = append(far, 0x41, 0x00)
	far = append(far, 0x7f, 0xff, 0x03, 0x28)

	testCases := []struct {
		name   string
		stream []byte
		want   []byte
	}{
		{name: "literal", stream: []byte{0x02, 'a', 'b', 'c'}, want: []byte("abc")},
		{
			name:   "chained-length",
			stream: []byte{0x00, 'a', 0xe0, 0xff, 0x24, 0x00},
			want:   bytes.Repeat([]byte("a"), 301),
		},
		{name: "far-match", stream: far, want: bytes.Repeat([]byte("x"), 9005)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dst := make([]byte, len(tc.want))
			n, err := refimpl.Level2{}.Decode(tc.stream, dst)
			require.NoError(t, err)
			require.Equal(t, tc.want, dst[:n])
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	decoders := map[string]refimpl.Decoder{
		"level1": refimpl.Level1{},
		"level2": refimpl.Level2{},
	}

	streams := map[string][]byte{
		"truncated-literal": {0x05, 'a'},
		"dangling-ref":      {0x00, 'a', 0x20, 0x05},
		"missing-distance":  {0x00, 'a', 0x20},
	}

	for dname, dec := range decoders {
		for sname, stream := range streams {
			t.Run(dname+"/"+sname, func(t *testing.T) {
				_, err := dec.Decode(stream, make([]byte, 64))
				require.ErrorIs(t, err, refimpl.ErrMalformed)
			})
		}
	}

	t.Run("output-too-small", func(t *testing.T) {
		_, err := refimpl.Level1{}.Decode([]byte{0x02, 'a', 'b', 'c'}, make([]byte, 2))
		require.ErrorIs(t, err, refimpl.ErrMalformed)
	})
}
