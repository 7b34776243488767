package curve

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"fmt"
	"io"

	"github.com/mr-tron/base58"
)

// KeypairSize is the byte length of an encoded keypair: the 32-byte seed
// followed by the 32-byte public key, the layout Solana wallets use.
const KeypairSize = ed25519.PrivateKeySize

// Keypair is one participant's ed25519 keypair. The secret scalar used by
// the aggregated protocol is derived from the seed exactly as ordinary
// ed25519 signing derives it, so the public key matches what any standard
// tool computes for the same seed.
type Keypair struct {
	priv ed25519.PrivateKey
}

// GenerateKeypair creates a fresh keypair from rng (crypto/rand when nil).
func GenerateKeypair(rng io.Reader) (*Keypair, error) {
	if rng == nil {
		rng = rand.Reader
	}
	_, priv, err := ed25519.GenerateKey(rng)
	if err != nil {
		return nil, fmt.Errorf("curve: generate keypair: %w", err)
	}
	return &Keypair{priv: priv}, nil
}

// KeypairFromBytes decodes the 64-byte seed‖pubkey layout, rejecting blobs
// whose trailing public key does not match the seed.
func KeypairFromBytes(b []byte) (*Keypair, error) {
	if len(b) != KeypairSize {
		return nil, fmt.Errorf("curve: keypair must be %d bytes, got %d", KeypairSize, len(b))
	}
	priv := ed25519.NewKeyFromSeed(b[:ed25519.SeedSize])
	if !bytes.Equal(priv[ed25519.SeedSize:], b[ed25519.SeedSize:]) {
		return nil, errors.New("curve: keypair public key does not match its seed")
	}
	return &Keypair{priv: priv}, nil
}

// KeypairFromBase58 decodes the canonical base58 text form of a keypair.
func KeypairFromBase58(s string) (*Keypair, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("curve: decode keypair: %w", err)
	}
	return KeypairFromBytes(raw)
}

// Base58 returns the canonical base58 text form; decoding it reproduces
// the keypair exactly.
func (kp *Keypair) Base58() string {
	return base58.Encode(kp.priv)
}

// PublicKeyBytes returns the 32-byte public key.
func (kp *Keypair) PublicKeyBytes() []byte {
	out := make([]byte, ed25519.PublicKeySize)
	copy(out, kp.priv[ed25519.SeedSize:])
	return out
}

// PublicPoint returns the public key as a curve point.
func (kp *Keypair) PublicPoint() (*Point, error) {
	return NewPoint().SetBytes(kp.priv[ed25519.SeedSize:])
}

// SecretScalar derives the clamped secret scalar x with x·G equal to the
// public key, the same derivation ed25519 applies to its seed.
func (kp *Keypair) SecretScalar() *Scalar {
	h := sha512.Sum512(kp.priv[:ed25519.SeedSize])
	s, err := NewScalar().SetBytesWithClamping(h[:32])
	if err != nil {
		// SetBytesWithClamping only fails on wrong input length.
		panic("curve: clamping failed: " + err.Error())
	}
	return s
}

// Sign produces an ordinary single-key ed25519 signature over message.
// Used by the non-aggregated code paths.
func (kp *Keypair) Sign(message []byte) []byte {
	return ed25519.Sign(kp.priv, message)
}
