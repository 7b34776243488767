package aggsign

import (
	"errors"
	"fmt"
)

// Validation and cryptographic failures are typed so callers can
// discriminate without string matching. Validation errors are returned
// before any scalar arithmetic runs.
var (
	// ErrMismatchMessages reports a round-1 message list (or partial
	// signature list) whose count differs from the participant key list.
	ErrMismatchMessages = errors.New("aggsign: message count does not match participant key count")

	// ErrKeyPairNotInKeys reports a signer whose public key is absent from
	// the participant key list.
	ErrKeyPairNotInKeys = errors.New("aggsign: provided keypair is not in the list of participant keys")

	// ErrSecretStateConsumed reports an attempt to reuse a secret state.
	// Reusing a nonce across two payloads leaks the private key, so a
	// state can be consumed exactly once.
	ErrSecretStateConsumed = errors.New("aggsign: secret state was already consumed")

	// ErrMismatchNonces reports partial signatures that were computed
	// against different aggregated nonces and can never combine.
	ErrMismatchNonces = errors.New("aggsign: partial signatures disagree on the aggregated nonce")

	// ErrInvalidSignature reports an aggregated signature that does not
	// verify. The session is dead: it signals a bug or tampering, never a
	// condition to retry.
	ErrInvalidSignature = errors.New("aggsign: resulting signature does not match the transaction")
)

// DecodeError reports a malformed encoded blob, naming the field it
// arrived in.
type DecodeError struct {
	Field string
	Err   error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("aggsign: failed decoding %s: %s", e.Field, e.Err)
}

// Unwrap implements errors.Wrapper.
func (e DecodeError) Unwrap() error { return e.Err }
