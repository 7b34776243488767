// Copyright © 2023 Antalpha
//
// This file is part of Antalpha. The full Antalpha copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package aggsign implements the two-round aggregated Ed25519 signing
// protocol: key aggregation with rogue-key protection, per-session nonce
// commitments, partial signatures, and aggregation with mandatory
// verification. The protocol holds no state between calls; all continuity
// is carried by the caller in the secret state and in the repeated,
// identical payload and participant-set arguments.
package aggsign

import (
	"fmt"

	"MPC_EdDSA/pkg/curve"
	"MPC_EdDSA/pkg/hash"
	"MPC_EdDSA/pkg/party"
	"MPC_EdDSA/pkg/solana"
)

// AggregatedKey is the weighted sum X = Σ aᵢ·Xᵢ over a participant set,
// together with the per-key coefficients. It encodes like an ordinary
// single-party public key, so nothing downstream needs protocol awareness.
type AggregatedKey struct {
	point        *curve.Point
	publicKey    solana.PublicKey
	coefficients map[solana.PublicKey]*curve.Scalar
}

// KeyAgg combines the participant keys into one aggregated key. The set is
// canonicalized internally (sorted by encoded bytes) before coefficients
// are derived, so any two callers holding the same set of keys compute the
// same aggregated key regardless of listing order. Duplicate or malformed
// keys are rejected.
func KeyAgg(keys []solana.PublicKey) (*AggregatedKey, error) {
	ks, err := party.NewKeySlice(keys)
	if err != nil {
		return nil, err
	}
	setDigest := hash.KeySetDigest(ks)

	sum := curve.NewPoint()
	coefficients := make(map[solana.PublicKey]*curve.Scalar, len(ks))
	for i, key := range ks {
		point, err := curve.NewPoint().SetBytes(key[:])
		if err != nil {
			return nil, DecodeError{Field: keyField(i, key), Err: err}
		}
		a := hash.AggregationCoefficient(setDigest, key)
		sum.Add(sum, curve.NewPoint().ScalarMult(a, point))
		coefficients[key] = a
	}

	publicKey, err := solana.PublicKeyFromBytes(sum.Bytes())
	if err != nil {
		return nil, err
	}
	return &AggregatedKey{
		point:        sum,
		publicKey:    publicKey,
		coefficients: coefficients,
	}, nil
}

// PublicKey returns the aggregated key in the chain's address encoding.
func (a *AggregatedKey) PublicKey() solana.PublicKey { return a.publicKey }

// Point returns the aggregated key as a curve point.
func (a *AggregatedKey) Point() *curve.Point { return a.point }

// Coefficient returns the aggregation coefficient of one participant key.
func (a *AggregatedKey) Coefficient(key solana.PublicKey) (*curve.Scalar, bool) {
	c, ok := a.coefficients[key]
	return c, ok
}

func keyField(i int, key solana.PublicKey) string {
	return fmt.Sprintf("keys[%d] (%s)", i, key)
}
