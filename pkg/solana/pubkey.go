// Copyright © 2023 Antalpha
//
// This file is part of Antalpha. The full Antalpha copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package solana implements the deterministic pieces of the Solana legacy
// transaction wire format that the signing protocol needs: addresses,
// hashes, instruction compilation and message serialization. Rendering the
// same logical parameters always yields byte-identical messages, which is
// what lets independent participants sign the "same" transaction without
// ever exchanging raw bytes.
package solana

import (
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"

	"MPC_EdDSA/pkg/curve"
)

// PublicKeyLength is the byte length of a Solana account address.
const PublicKeyLength = 32

// MaxSeedLength is the longest seed accepted by CreateWithSeed.
const MaxSeedLength = 32

// PublicKey is a Solana account address: the 32-byte encoding of an
// ed25519 point (or, for program derived addresses, a 32-byte value that
// is deliberately not on the curve).
type PublicKey [PublicKeyLength]byte

// PublicKeyFromBytes copies b into a PublicKey.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	var pk PublicKey
	if len(b) != PublicKeyLength {
		return pk, fmt.Errorf("solana: public key must be %d bytes, got %d", PublicKeyLength, len(b))
	}
	copy(pk[:], b)
	return pk, nil
}

// PublicKeyFromBase58 decodes the canonical base58 text form of an address.
func PublicKeyFromBase58(s string) (PublicKey, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("solana: decode public key: %w", err)
	}
	return PublicKeyFromBytes(raw)
}

// MustPublicKey decodes a known-good base58 address and panics otherwise.
// Reserved for package-level program id constants.
func MustPublicKey(s string) PublicKey {
	pk, err := PublicKeyFromBase58(s)
	if err != nil {
		panic(err)
	}
	return pk
}

// String returns the canonical base58 form of the address.
func (pk PublicKey) String() string {
	return base58.Encode(pk[:])
}

// Bytes returns the address as a fresh 32-byte slice.
func (pk PublicKey) Bytes() []byte {
	out := make([]byte, PublicKeyLength)
	copy(out, pk[:])
	return out
}

// IsZero reports whether the address is all zeroes.
func (pk PublicKey) IsZero() bool {
	return pk == PublicKey{}
}

// CreateWithSeed derives the deterministic address
// sha256(base ‖ seed ‖ owner), the scheme the stake flow uses so that all
// participants agree on the stake account without extra communication.
func CreateWithSeed(base PublicKey, seed string, owner PublicKey) (PublicKey, error) {
	if len(seed) > MaxSeedLength {
		return PublicKey{}, fmt.Errorf("solana: seed is longer than %d bytes", MaxSeedLength)
	}
	h := sha256.New()
	h.Write(base[:])
	h.Write([]byte(seed))
	h.Write(owner[:])
	return PublicKeyFromBytes(h.Sum(nil))
}

// pdaMarker is appended when hashing program derived addresses.
const pdaMarker = "ProgramDerivedAddress"

// FindProgramAddress derives the first off-curve address for the given
// seeds, trying bump seeds from 255 downwards like the runtime does.
func FindProgramAddress(seeds [][]byte, programID PublicKey) (PublicKey, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		h := sha256.New()
		for _, seed := range seeds {
			h.Write(seed)
		}
		h.Write([]byte{uint8(bump)})
		h.Write(programID[:])
		h.Write([]byte(pdaMarker))
		candidate := h.Sum(nil)
		if !curve.IsOnCurve(candidate) {
			pk, err := PublicKeyFromBytes(candidate)
			return pk, uint8(bump), err
		}
	}
	return PublicKey{}, 0, fmt.Errorf("solana: no viable program address for program %s", programID)
}
