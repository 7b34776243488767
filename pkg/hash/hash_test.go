package hash

import (
	"crypto/ed25519"
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MPC_EdDSA/pkg/curve"
	"MPC_EdDSA/pkg/party"
	"MPC_EdDSA/pkg/solana"
)

func testKeys(t *testing.T, n int) party.KeySlice {
	t.Helper()
	keys := make([]solana.PublicKey, n)
	for i := range keys {
		kp, err := curve.GenerateKeypair(nil)
		require.NoError(t, err)
		pk, err := solana.PublicKeyFromBytes(kp.PublicKeyBytes())
		require.NoError(t, err)
		keys[i] = pk
	}
	ks, err := party.NewKeySlice(keys)
	require.NoError(t, err)
	return ks
}

func TestKeySetDigestIsOrderIndependent(t *testing.T) {
	ks := testKeys(t, 4)
	reversed := make([]solana.PublicKey, len(ks))
	for i, k := range ks {
		reversed[len(ks)-1-i] = k
	}
	rs, err := party.NewKeySlice(reversed)
	require.NoError(t, err)

	assert.Equal(t, KeySetDigest(ks), KeySetDigest(rs))
}

func TestKeySetDigestBindsEveryMember(t *testing.T) {
	ks := testKeys(t, 3)
	other := testKeys(t, 3)

	changed := make([]solana.PublicKey, len(ks))
	copy(changed, ks)
	changed[1] = other[0]
	cs, err := party.NewKeySlice(changed)
	require.NoError(t, err)

	assert.NotEqual(t, KeySetDigest(ks), KeySetDigest(cs),
		"swapping one member must change the set digest")
}

func TestAggregationCoefficientsDifferPerKey(t *testing.T) {
	ks := testKeys(t, 3)
	digest := KeySetDigest(ks)

	a := AggregationCoefficient(digest, ks[0])
	b := AggregationCoefficient(digest, ks[1])
	assert.False(t, a.Equal(b))

	again := AggregationCoefficient(digest, ks[0])
	assert.True(t, a.Equal(again), "coefficients are deterministic")
}

// The challenge must be bit for bit what crypto/ed25519 computes during
// verification, otherwise aggregated signatures would never verify.
func TestChallengeMatchesEd25519(t *testing.T) {
	r, err := curve.Sample(nil)
	require.NoError(t, err)
	x, err := curve.Sample(nil)
	require.NoError(t, err)
	R := curve.NewPoint().ScalarBaseMult(r)
	X := curve.NewPoint().ScalarBaseMult(x)
	message := []byte("challenge compatibility")

	c := Challenge(R, X, message)

	h := sha512.New()
	h.Write(R.Bytes())
	h.Write(X.Bytes())
	h.Write(message)
	expected, err := curve.NewScalar().SetUniformBytes(h.Sum(nil))
	require.NoError(t, err)
	assert.True(t, c.Equal(expected))

	// End to end: s = r + c·x yields a signature crypto/ed25519 accepts.
	s := curve.NewScalar().MultiplyAdd(c, x, r)
	sig := append(R.Bytes(), s.Bytes()...)
	assert.True(t, ed25519.Verify(ed25519.PublicKey(X.Bytes()), message, sig))
}
