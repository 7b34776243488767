package solana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortVecKnownVectors(t *testing.T) {
	cases := []struct {
		n       int
		encoded []byte
	}{
		{0x0000, []byte{0x00}},
		{0x0005, []byte{0x05}},
		{0x007f, []byte{0x7f}},
		{0x0080, []byte{0x80, 0x01}},
		{0x00ff, []byte{0xff, 0x01}},
		{0x0100, []byte{0x80, 0x02}},
		{0x7fff, []byte{0xff, 0xff, 0x01}},
		{0xffff, []byte{0xff, 0xff, 0x03}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.encoded, appendShortVecLen(nil, tc.n), "encoding %#x", tc.n)

		n, consumed, err := readShortVecLen(tc.encoded)
		require.NoError(t, err)
		assert.Equal(t, tc.n, n)
		assert.Equal(t, len(tc.encoded), consumed)
	}
}

func TestReadShortVecLenTruncated(t *testing.T) {
	_, _, err := readShortVecLen(nil)
	assert.Error(t, err)

	_, _, err = readShortVecLen([]byte{0x80})
	assert.Error(t, err)

	_, _, err = readShortVecLen([]byte{0x80, 0x80, 0x80})
	assert.Error(t, err)
}
