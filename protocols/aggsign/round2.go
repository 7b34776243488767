// Copyright © 2023 Antalpha
//
// This file is part of Antalpha. The full Antalpha copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package aggsign

import (
	"fmt"

	"MPC_EdDSA/pkg/curve"
	"MPC_EdDSA/pkg/hash"
	"MPC_EdDSA/pkg/party"
	"MPC_EdDSA/pkg/solana"
	"MPC_EdDSA/pkg/template"
)

// StepTwo produces one participant's partial signature over the
// transaction rendered from tpl. One generic implementation serves every
// transaction kind; only the template differs.
//
// Inputs are the signer's keypair, the full ordered participant key set,
// the full set of round-1 messages in the same order, and the signer's
// secret state from round 1. Validation runs before any arithmetic, and
// the secret state is consumed: a second StepTwo call with the same state
// fails.
func StepTwo(
	kp *curve.Keypair,
	keys []solana.PublicKey,
	firstMessages []*Message1,
	secret *SecretState,
	tpl template.Template,
) (*PartialSignature, error) {
	if len(firstMessages) != len(keys) {
		return nil, ErrMismatchMessages
	}
	ks, err := party.NewKeySlice(keys)
	if err != nil {
		return nil, err
	}
	self, err := solana.PublicKeyFromBytes(kp.PublicKeyBytes())
	if err != nil {
		return nil, err
	}
	if !ks.Contains(self) {
		return nil, ErrKeyPairNotInKeys
	}
	if err := secret.consume(); err != nil {
		return nil, err
	}

	aggKey, err := KeyAgg(keys)
	if err != nil {
		return nil, err
	}
	tx, err := template.Render(tpl, aggKey.PublicKey())
	if err != nil {
		return nil, fmt.Errorf("aggsign: render transaction: %w", err)
	}
	message := tx.Message.Serialize()

	aggNonce := aggregateNonces(firstMessages)
	c := hash.Challenge(aggNonce, aggKey.Point(), message)
	a, ok := aggKey.Coefficient(self)
	if !ok {
		// Contains passed above, so the coefficient always exists.
		return nil, ErrKeyPairNotInKeys
	}

	// sᵢ = rᵢ + c·aᵢ·xᵢ mod L
	ca := curve.NewScalar().Multiply(c, a)
	s := curve.NewScalar().MultiplyAdd(ca, kp.SecretScalar(), secret.Nonce)

	return &PartialSignature{R: aggNonce, S: s}, nil
}

// aggregateNonces recomputes R = Σ Rᵢ over the full commitment set. Both
// round 2 and the aggregator derive it independently; it is never accepted
// from a third party.
func aggregateNonces(firstMessages []*Message1) *curve.Point {
	R := curve.NewPoint()
	for _, m := range firstMessages {
		R.Add(R, m.R)
	}
	return R
}
