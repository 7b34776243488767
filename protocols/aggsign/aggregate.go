package aggsign

import (
	"crypto/ed25519"
	"fmt"

	"MPC_EdDSA/pkg/curve"
	"MPC_EdDSA/pkg/solana"
	"MPC_EdDSA/pkg/template"
)

// Aggregate combines the partial signatures of every participant into a
// signed transaction. The aggregator needs no secret material; any party
// holding the key list, the payload and all partial signatures can run it.
//
// The combined signature is verified against the aggregated public key
// before the transaction is released. A transaction that fails
// verification is never returned, even partially assembled.
func Aggregate(
	keys []solana.PublicKey,
	partials []*PartialSignature,
	tpl template.Template,
) (*solana.Transaction, error) {
	if len(partials) != len(keys) {
		return nil, ErrMismatchMessages
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

	// Every partial carries the aggregated nonce it signed against. The
	// nonces must agree bit for bit; partials over different nonce sets can
	// never combine into a valid signature.
	aggNonce := partials[0].R
	s := curve.NewScalar()
	for _, p := range partials {
		if !p.R.Equal(aggNonce) {
			return nil, ErrMismatchNonces
		}
		s.Add(s, p.S)
	}

	var sig [64]byte
	copy(sig[:32], aggNonce.Bytes())
	copy(sig[32:], s.Bytes())

	if !ed25519.Verify(ed25519.PublicKey(aggKey.PublicKey().Bytes()), message, sig[:]) {
		return nil, ErrInvalidSignature
	}

	signature, err := solana.SignatureFromBytes(sig[:])
	if err != nil {
		return nil, err
	}
	if err := tx.AttachSignature(aggKey.PublicKey(), signature); err != nil {
		return nil, err
	}
	return tx, nil
}
