// Package party defines the participant set of a signing session: an
// ordered sequence of unique public keys. The set, not any particular
// listing order, identifies the group, so canonicalization lives here.
package party

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"MPC_EdDSA/pkg/solana"
)

// ErrEmptyKeys is returned when a participant set has no members.
var ErrEmptyKeys = errors.New("party: participant set is empty")

// DuplicateKeyError reports a repeated key in a participant set.
type DuplicateKeyError struct {
	Key solana.PublicKey
}

func (e DuplicateKeyError) Error() string {
	return fmt.Sprintf("party: duplicate participant key %s", e.Key)
}

// KeySlice is an ordered set of participant public keys.
type KeySlice []solana.PublicKey

// NewKeySlice copies keys and validates that the set is non-empty and
// duplicate-free. The caller's ordering is preserved; use Canonical for
// the order-independent form.
func NewKeySlice(keys []solana.PublicKey) (KeySlice, error) {
	if len(keys) == 0 {
		return nil, ErrEmptyKeys
	}
	seen := make(map[solana.PublicKey]struct{}, len(keys))
	out := make(KeySlice, len(keys))
	for i, k := range keys {
		if _, ok := seen[k]; ok {
			return nil, DuplicateKeyError{Key: k}
		}
		seen[k] = struct{}{}
		out[i] = k
	}
	return out, nil
}

// Canonical returns a copy sorted by encoded bytes. Two participant sets
// with the same members always canonicalize identically, which is what
// makes independently computed aggregated keys converge.
func (ks KeySlice) Canonical() KeySlice {
	out := make(KeySlice, len(ks))
	copy(out, ks)
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i][:], out[j][:]) < 0
	})
	return out
}

// Contains reports whether key is a member of the set.
func (ks KeySlice) Contains(key solana.PublicKey) bool {
	for _, k := range ks {
		if k == key {
			return true
		}
	}
	return false
}
