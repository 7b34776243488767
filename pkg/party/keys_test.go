package party

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MPC_EdDSA/pkg/solana"
)

func testKey(fill byte) solana.PublicKey {
	var k solana.PublicKey
	for i := range k {
		k[i] = fill
	}
	return k
}

func TestNewKeySliceRejectsEmpty(t *testing.T) {
	_, err := NewKeySlice(nil)
	assert.ErrorIs(t, err, ErrEmptyKeys)
}

func TestNewKeySliceRejectsDuplicates(t *testing.T) {
	dup := testKey(7)
	_, err := NewKeySlice([]solana.PublicKey{testKey(1), dup, testKey(2), dup})
	var dupErr DuplicateKeyError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, dup, dupErr.Key)
}

func TestNewKeySlicePreservesOrderAndCopies(t *testing.T) {
	input := []solana.PublicKey{testKey(3), testKey(1), testKey(2)}
	ks, err := NewKeySlice(input)
	require.NoError(t, err)
	assert.Equal(t, KeySlice(input), ks)

	input[0] = testKey(9)
	assert.Equal(t, testKey(3), ks[0], "the slice must be a copy")
}

func TestCanonicalSortsByBytes(t *testing.T) {
	ks, err := NewKeySlice([]solana.PublicKey{testKey(3), testKey(1), testKey(2)})
	require.NoError(t, err)

	canonical := ks.Canonical()
	for i := 1; i < len(canonical); i++ {
		assert.Negative(t, bytes.Compare(canonical[i-1][:], canonical[i][:]))
	}
	// The original ordering stays untouched.
	assert.Equal(t, testKey(3), ks[0])
}

func TestContains(t *testing.T) {
	ks, err := NewKeySlice([]solana.PublicKey{testKey(1), testKey(2)})
	require.NoError(t, err)
	assert.True(t, ks.Contains(testKey(2)))
	assert.False(t, ks.Contains(testKey(4)))
}
