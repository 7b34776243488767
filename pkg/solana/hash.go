package solana

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// HashLength is the byte length of a blockhash.
const HashLength = 32

// Hash is a recent blockhash, the checkpoint value bound into every signed
// message to limit its validity window.
type Hash [HashLength]byte

// HashFromBytes copies b into a Hash.
func HashFromBytes(b []byte) (Hash, error) {
	var h Hash
	if len(b) != HashLength {
		return h, fmt.Errorf("solana: hash must be %d bytes, got %d", HashLength, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// HashFromBase58 decodes the canonical base58 text form of a blockhash.
func HashFromBase58(s string) (Hash, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return Hash{}, fmt.Errorf("solana: decode hash: %w", err)
	}
	return HashFromBytes(raw)
}

// String returns the canonical base58 form of the hash.
func (h Hash) String() string {
	return base58.Encode(h[:])
}

// SignatureLength is the byte length of an ed25519 signature.
const SignatureLength = 64

// Signature is a 64-byte ed25519 signature in the chain's native R‖s layout.
type Signature [SignatureLength]byte

// SignatureFromBytes copies b into a Signature.
func SignatureFromBytes(b []byte) (Signature, error) {
	var sig Signature
	if len(b) != SignatureLength {
		return sig, fmt.Errorf("solana: signature must be %d bytes, got %d", SignatureLength, len(b))
	}
	copy(sig[:], b)
	return sig, nil
}

// SignatureFromBase58 decodes the canonical base58 text form of a signature.
func SignatureFromBase58(s string) (Signature, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return Signature{}, fmt.Errorf("solana: decode signature: %w", err)
	}
	return SignatureFromBytes(raw)
}

// String returns the canonical base58 form of the signature, which doubles
// as the transaction id on chain.
func (s Signature) String() string {
	return base58.Encode(s[:])
}
