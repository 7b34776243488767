// Package hash fixes the protocol's hash instances: the participant-set
// digest feeding key-aggregation coefficients, the coefficients themselves,
// and the signing challenge. The challenge is the exact ed25519 challenge
// so that the final signature passes ordinary single-key verification.
package hash

import (
	"crypto/sha512"

	"github.com/zeebo/blake3"

	"MPC_EdDSA/pkg/curve"
	"MPC_EdDSA/pkg/party"
)

// keyAggTag domain-separates aggregation coefficients from every other use
// of SHA-512 in the system.
const keyAggTag = "musig-key-agg"

// KeySetDigest commits to the whole participant set in canonical order.
// Every coefficient is derived from this digest, which is what stops a
// participant from choosing its key after seeing the others' (rogue-key
// protection): changing any one key changes every coefficient.
func KeySetDigest(keys party.KeySlice) [32]byte {
	h := blake3.New()
	for _, k := range keys.Canonical() {
		_, _ = h.Write(k[:])
	}
	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	return digest
}

// AggregationCoefficient derives one participant's coefficient
// aᵢ = SHA-512(tag ‖ D ‖ Xᵢ) mod L from the set digest D and the
// participant's key.
func AggregationCoefficient(setDigest [32]byte, key [32]byte) *curve.Scalar {
	h := sha512.New()
	h.Write([]byte(keyAggTag))
	h.Write(setDigest[:])
	h.Write(key[:])
	s, err := curve.NewScalar().SetUniformBytes(h.Sum(nil))
	if err != nil {
		// sha512 always yields 64 bytes; SetUniformBytes cannot fail here.
		panic("hash: coefficient reduction failed: " + err.Error())
	}
	return s
}

// Challenge computes c = SHA-512(R ‖ X ‖ M) mod L, byte for byte the
// challenge an ordinary ed25519 verifier recomputes.
func Challenge(aggregatedNonce, aggregatedKey *curve.Point, message []byte) *curve.Scalar {
	h := sha512.New()
	h.Write(aggregatedNonce.Bytes())
	h.Write(aggregatedKey.Bytes())
	h.Write(message)
	s, err := curve.NewScalar().SetUniformBytes(h.Sum(nil))
	if err != nil {
		panic("hash: challenge reduction failed: " + err.Error())
	}
	return s
}
