package aggsign

import (
	"fmt"
	"io"

	"MPC_EdDSA/pkg/curve"
)

// StepOne begins a signing session for one participant: it samples a fresh
// session nonce rᵢ from rng and returns the public commitment Rᵢ = rᵢ·G
// alongside the secret state the participant must carry into round 2.
//
// The randomness source is an explicit dependency so tests can seed it;
// pass nil to use crypto/rand. A nonce must never repeat for the same
// keypair, so rng has to be a cryptographically secure generator in
// production.
func StepOne(rng io.Reader) (*Message1, *SecretState, error) {
	r, err := curve.Sample(rng)
	if err != nil {
		return nil, nil, fmt.Errorf("aggsign: sample session nonce: %w", err)
	}
	commitment := curve.NewPoint().ScalarBaseMult(r)
	return &Message1{R: commitment},
		&SecretState{Nonce: r, Commitment: commitment},
		nil
}
