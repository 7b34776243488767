package aggsign

import (
	"errors"
	"sync/atomic"

	"github.com/fxamacker/cbor/v2"
	"github.com/mr-tron/base58"

	"MPC_EdDSA/pkg/curve"
)

// Message1 is the public round-1 message: one participant's nonce
// commitment Rᵢ = rᵢ·G. It is exchanged out-of-band between participants.
type Message1 struct {
	R *curve.Point
}

// SecretState is the opaque bundle a participant carries between round 1
// and round 2. It is single-use: consuming it in round 2 destroys it, and
// a second consumption fails with ErrSecretStateConsumed. Signing two
// different payloads with the same state would reveal the private key.
type SecretState struct {
	Nonce      *curve.Scalar
	Commitment *curve.Point

	consumed atomic.Bool
}

// consume marks the state used. It succeeds exactly once per decoded state.
func (s *SecretState) consume() error {
	if !s.consumed.CompareAndSwap(false, true) {
		return ErrSecretStateConsumed
	}
	return nil
}

// PartialSignature is one participant's round-2 contribution
// sᵢ = rᵢ + c·aᵢ·xᵢ mod L, together with the aggregated nonce R it was
// computed against. Carrying R lets the aggregator reassemble (R, Σ sᵢ)
// without re-collecting the round-1 messages; the aggregator still treats
// it as untrusted and relies on final verification.
type PartialSignature struct {
	R *curve.Point
	S *curve.Scalar
}

// The boundary encoding of every protocol blob is CBOR wrapped in base58
// text. Decoding and re-encoding reproduces the identical text.

// Base58 returns the canonical text encoding of the message.
func (m *Message1) Base58() (string, error) {
	return encodeBlob(m)
}

// DecodeMessage1 parses the canonical text encoding of a round-1 message.
func DecodeMessage1(s string) (*Message1, error) {
	m := &Message1{}
	if err := decodeBlob("message_1", s, m); err != nil {
		return nil, err
	}
	if m.R == nil {
		return nil, DecodeError{Field: "message_1", Err: errMissingFields}
	}
	return m, nil
}

// Base58 returns the canonical text encoding of the state.
func (s *SecretState) Base58() (string, error) {
	return encodeBlob(s)
}

// DecodeSecretState parses the canonical text encoding of a secret state.
func DecodeSecretState(text string) (*SecretState, error) {
	s := &SecretState{}
	if err := decodeBlob("secret_state", text, s); err != nil {
		return nil, err
	}
	if s.Nonce == nil || s.Commitment == nil {
		return nil, DecodeError{Field: "secret_state", Err: errMissingFields}
	}
	return s, nil
}

// Base58 returns the canonical text encoding of the partial signature.
func (p *PartialSignature) Base58() (string, error) {
	return encodeBlob(p)
}

// DecodePartialSignature parses the canonical text encoding of a partial
// signature.
func DecodePartialSignature(s string) (*PartialSignature, error) {
	p := &PartialSignature{}
	if err := decodeBlob("partial_signature", s, p); err != nil {
		return nil, err
	}
	if p.R == nil || p.S == nil {
		return nil, DecodeError{Field: "partial_signature", Err: errMissingFields}
	}
	return p, nil
}

var errMissingFields = errors.New("missing fields")

func encodeBlob(v interface{}) (string, error) {
	raw, err := cbor.Marshal(v)
	if err != nil {
		return "", err
	}
	return base58.Encode(raw), nil
}

func decodeBlob(field, text string, v interface{}) error {
	raw, err := base58.Decode(text)
	if err != nil {
		return DecodeError{Field: field, Err: err}
	}
	if err := cbor.Unmarshal(raw, v); err != nil {
		return DecodeError{Field: field, Err: err}
	}
	return nil
}
