// Copyright © 2023 Antalpha
//
// This file is part of Antalpha. The full Antalpha copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package curve wraps the ed25519 group arithmetic needed by the aggregated
// signing protocol: scalars modulo the group order L and points on the
// edwards25519 curve. The heavy lifting is delegated to
// filippo.io/edwards25519; this package only fixes the encodings and the
// small set of operations the protocol uses.
package curve

import (
	"crypto/rand"
	"io"

	"filippo.io/edwards25519"
)

// ScalarSize is the byte length of an encoded scalar.
const ScalarSize = 32

// PointSize is the byte length of an encoded (compressed) point.
const PointSize = 32

// Scalar is an integer modulo the order of the ed25519 group.
type Scalar struct {
	s edwards25519.Scalar
}

// NewScalar returns a new zero scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}

// Add sets s = a + b mod L and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.s.Add(&a.s, &b.s)
	return s
}

// Multiply sets s = a * b mod L and returns s.
func (s *Scalar) Multiply(a, b *Scalar) *Scalar {
	s.s.Multiply(&a.s, &b.s)
	return s
}

// MultiplyAdd sets s = a*b + c mod L and returns s.
func (s *Scalar) MultiplyAdd(a, b, c *Scalar) *Scalar {
	s.s.MultiplyAdd(&a.s, &b.s, &c.s)
	return s
}

// Set sets s to the value of a and returns s.
func (s *Scalar) Set(a *Scalar) *Scalar {
	s.s.Set(&a.s)
	return s
}

// Equal reports whether s and t have the same value.
func (s *Scalar) Equal(t *Scalar) bool {
	return s.s.Equal(&t.s) == 1
}

// Bytes returns the canonical 32-byte little-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	return s.s.Bytes()
}

// SetCanonicalBytes sets s from a canonical 32-byte encoding.
func (s *Scalar) SetCanonicalBytes(b []byte) (*Scalar, error) {
	if _, err := s.s.SetCanonicalBytes(b); err != nil {
		return nil, err
	}
	return s, nil
}

// SetUniformBytes sets s to the 64-byte little-endian value b reduced
// modulo L. The double-width input keeps the result statistically uniform.
func (s *Scalar) SetUniformBytes(b []byte) (*Scalar, error) {
	if _, err := s.s.SetUniformBytes(b); err != nil {
		return nil, err
	}
	return s, nil
}

// SetBytesWithClamping interprets b as the low 32 bytes of a SHA-512 digest
// of an ed25519 seed and applies the standard clamping, matching how
// ed25519 derives the secret scalar from a seed.
func (s *Scalar) SetBytesWithClamping(b []byte) (*Scalar, error) {
	if _, err := s.s.SetBytesWithClamping(b); err != nil {
		return nil, err
	}
	return s, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Scalar) MarshalBinary() ([]byte, error) {
	return s.s.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	_, err := s.s.SetCanonicalBytes(data)
	return err
}

// Sample returns a uniformly random scalar read from rng. The protocol
// injects the randomness source explicitly so that tests can be seeded;
// production callers pass crypto/rand.Reader (or nil, which means the same).
func Sample(rng io.Reader) (*Scalar, error) {
	if rng == nil {
		rng = rand.Reader
	}
	var wide [64]byte
	if _, err := io.ReadFull(rng, wide[:]); err != nil {
		return nil, err
	}
	return NewScalar().SetUniformBytes(wide[:])
}

// Point is a point on the edwards25519 curve.
type Point struct {
	p edwards25519.Point
}

// NewPoint returns a new identity point.
func NewPoint() *Point {
	p := &Point{}
	p.p.Set(edwards25519.NewIdentityPoint())
	return p
}

// Add sets p = a + b and returns p.
func (p *Point) Add(a, b *Point) *Point {
	p.p.Add(&a.p, &b.p)
	return p
}

// ScalarBaseMult sets p = s·G and returns p.
func (p *Point) ScalarBaseMult(s *Scalar) *Point {
	p.p.ScalarBaseMult(&s.s)
	return p
}

// ScalarMult sets p = s·q and returns p.
func (p *Point) ScalarMult(s *Scalar, q *Point) *Point {
	p.p.ScalarMult(&s.s, &q.p)
	return p
}

// Set sets p to the value of a and returns p.
func (p *Point) Set(a *Point) *Point {
	p.p.Set(&a.p)
	return p
}

// Equal reports whether p and q are the same point.
func (p *Point) Equal(q *Point) bool {
	return p.p.Equal(&q.p) == 1
}

// Bytes returns the canonical compressed 32-byte encoding of p. It is the
// same encoding an ordinary ed25519 public key uses, so an aggregated key
// is indistinguishable from a single-party key downstream.
func (p *Point) Bytes() []byte {
	return p.p.Bytes()
}

// SetBytes sets p from a compressed 32-byte encoding.
func (p *Point) SetBytes(b []byte) (*Point, error) {
	if _, err := p.p.SetBytes(b); err != nil {
		return nil, err
	}
	return p, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p *Point) MarshalBinary() ([]byte, error) {
	return p.p.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *Point) UnmarshalBinary(data []byte) error {
	_, err := p.p.SetBytes(data)
	return err
}

// IsOnCurve reports whether b decodes to a valid curve point. Program
// derived addresses rely on the negative answer.
func IsOnCurve(b []byte) bool {
	if len(b) != PointSize {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}
