// Copyright © 2023 Antalpha
//
// This file is part of Antalpha. The full Antalpha copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package aggsign

import (
	"bytes"
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MPC_EdDSA/pkg/curve"
	"MPC_EdDSA/pkg/solana"
	"MPC_EdDSA/pkg/template"
)

type signer struct {
	kp  *curve.Keypair
	key solana.PublicKey
}

func newSigners(t *testing.T, n int) ([]signer, []solana.PublicKey) {
	t.Helper()
	signers := make([]signer, n)
	keys := make([]solana.PublicKey, n)
	for i := range signers {
		kp, err := curve.GenerateKeypair(nil)
		require.NoError(t, err)
		key, err := solana.PublicKeyFromBytes(kp.PublicKeyBytes())
		require.NoError(t, err)
		signers[i] = signer{kp: kp, key: key}
		keys[i] = key
	}
	return signers, keys
}

// runSession executes both rounds and aggregation for one template.
func runSession(t *testing.T, signers []signer, keys []solana.PublicKey, tpl template.Template) *solana.Transaction {
	t.Helper()
	msgs := make([]*Message1, len(signers))
	secrets := make([]*SecretState, len(signers))
	for i := range signers {
		msg, secret, err := StepOne(nil)
		require.NoError(t, err)
		msgs[i] = msg
		secrets[i] = secret
	}

	partials := make([]*PartialSignature, len(signers))
	for i, s := range signers {
		partial, err := StepTwo(s.kp, keys, msgs, secrets[i], tpl)
		require.NoError(t, err)
		partials[i] = partial
	}

	tx, err := Aggregate(keys, partials, tpl)
	require.NoError(t, err)
	return tx
}

func TestEndToEndTransferVariousGroupSizes(t *testing.T) {
	tpl := template.Transfer{To: solana.PublicKey{2: 9}, Amount: 0.5, Blockhash: solana.Hash{1}}
	for n := 1; n <= 5; n++ {
		signers, keys := newSigners(t, n)
		tx := runSession(t, signers, keys, tpl)

		agg, err := KeyAgg(keys)
		require.NoError(t, err)
		assert.Equal(t, agg.PublicKey(), tx.Message.AccountKeys[0], "aggregated key pays")

		// The final signature must pass ordinary single-key verification.
		assert.True(t, ed25519.Verify(
			ed25519.PublicKey(agg.PublicKey().Bytes()),
			tx.Message.Serialize(),
			tx.Signatures[0][:],
		), "group size %d", n)
	}
}

func TestEndToEndEveryTemplate(t *testing.T) {
	signers, keys := newSigners(t, 3)
	to := solana.PublicKey{0: 7}

	templates := map[string]template.Template{
		"transfer":       template.Transfer{To: to, Amount: 1.25, Memo: "m", Blockhash: solana.Hash{1}},
		"token transfer": template.TokenTransfer{To: to, Mint: solana.PublicKey{0: 8}, Amount: 3, Decimals: 6, CreateDestination: true, Blockhash: solana.Hash{1}},
		"delegate":       template.StakeDelegate{Seed: "s", StakeAmount: 10, RentExemption: 5, VoteAccount: to, Blockhash: solana.Hash{1}},
		"deactivate":     template.StakeDeactivate{StakeAccount: to, Blockhash: solana.Hash{1}},
		"withdraw":       template.StakeWithdraw{StakeAccount: to, Destination: solana.PublicKey{0: 6}, Amount: 4, Blockhash: solana.Hash{1}},
	}
	for name, tpl := range templates {
		tx := runSession(t, signers, keys, tpl)
		require.Len(t, tx.Signatures, 1, name)
	}
}

func TestKeyAggIsOrderIndependent(t *testing.T) {
	_, keys := newSigners(t, 4)
	reversed := make([]solana.PublicKey, len(keys))
	for i, k := range keys {
		reversed[len(keys)-1-i] = k
	}

	a, err := KeyAgg(keys)
	require.NoError(t, err)
	b, err := KeyAgg(reversed)
	require.NoError(t, err)
	assert.Equal(t, a.PublicKey(), b.PublicKey())
}

func TestKeyAggDiffersFromAnyMember(t *testing.T) {
	_, keys := newSigners(t, 2)
	agg, err := KeyAgg(keys)
	require.NoError(t, err)
	for _, k := range keys {
		assert.NotEqual(t, k, agg.PublicKey())
	}
}

func TestKeyAggRejectsBadSets(t *testing.T) {
	_, err := KeyAgg(nil)
	assert.Error(t, err)

	_, keys := newSigners(t, 1)
	_, err = KeyAgg([]solana.PublicKey{keys[0], keys[0]})
	assert.Error(t, err)

	// A 32-byte value off the curve cannot join a signing group.
	offCurve, _, err := solana.FindProgramAddress([][]byte{{1}}, solana.SystemProgramID)
	require.NoError(t, err)
	_, err = KeyAgg([]solana.PublicKey{keys[0], offCurve})
	var decodeErr DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestStepOneSeededIsDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x5a}, 64)

	a, sa, err := StepOne(bytes.NewReader(seed))
	require.NoError(t, err)
	b, sb, err := StepOne(bytes.NewReader(seed))
	require.NoError(t, err)
	assert.True(t, a.R.Equal(b.R))
	assert.True(t, sa.Nonce.Equal(sb.Nonce))

	c, _, err := StepOne(nil)
	require.NoError(t, err)
	assert.False(t, a.R.Equal(c.R))
}

func TestStepTwoValidatesBeforeSigning(t *testing.T) {
	signers, keys := newSigners(t, 3)
	tpl := template.Transfer{To: solana.PublicKey{1: 1}, Amount: 1, Blockhash: solana.Hash{}}

	msgs := make([]*Message1, 3)
	secrets := make([]*SecretState, 3)
	for i := range msgs {
		var err error
		msgs[i], secrets[i], err = StepOne(nil)
		require.NoError(t, err)
	}

	// Message count disagreeing with the key count.
	_, err := StepTwo(signers[0].kp, keys, msgs[:2], secrets[0], tpl)
	assert.ErrorIs(t, err, ErrMismatchMessages)

	// Signer outside the participant set.
	outsider, err := curve.GenerateKeypair(nil)
	require.NoError(t, err)
	_, err = StepTwo(outsider, keys, msgs, secrets[0], tpl)
	assert.ErrorIs(t, err, ErrKeyPairNotInKeys)

	// Neither failure consumed the state; a valid call still succeeds, and
	// only the first one.
	_, err = StepTwo(signers[0].kp, keys, msgs, secrets[0], tpl)
	require.NoError(t, err)
	_, err = StepTwo(signers[0].kp, keys, msgs, secrets[0], tpl)
	assert.ErrorIs(t, err, ErrSecretStateConsumed)
}

func TestAggregateRejectsTamperedPayload(t *testing.T) {
	signers, keys := newSigners(t, 2)
	tpl := template.Transfer{To: solana.PublicKey{1: 1}, Amount: 1, Blockhash: solana.Hash{}}

	msgs := make([]*Message1, 2)
	secrets := make([]*SecretState, 2)
	for i := range msgs {
		var err error
		msgs[i], secrets[i], err = StepOne(nil)
		require.NoError(t, err)
	}
	partials := make([]*PartialSignature, 2)
	for i, s := range signers {
		partial, err := StepTwo(s.kp, keys, msgs, secrets[i], tpl)
		require.NoError(t, err)
		partials[i] = partial
	}

	// The aggregator renders a different amount than the signers signed.
	tampered := tpl
	tampered.Amount = 2
	_, err := Aggregate(keys, partials, tampered)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	// The honest payload still aggregates.
	_, err = Aggregate(keys, partials, tpl)
	assert.NoError(t, err)
}

func TestAggregateRejectsMismatchedNonces(t *testing.T) {
	signers, keys := newSigners(t, 2)
	tpl := template.Transfer{To: solana.PublicKey{1: 1}, Amount: 1, Blockhash: solana.Hash{}}

	makePartial := func(i int, msgs []*Message1, secrets []*SecretState) *PartialSignature {
		partial, err := StepTwo(signers[i].kp, keys, msgs, secrets[i], tpl)
		require.NoError(t, err)
		return partial
	}

	// Two sessions whose round-1 messages never met.
	msgsA := make([]*Message1, 2)
	secretsA := make([]*SecretState, 2)
	msgsB := make([]*Message1, 2)
	secretsB := make([]*SecretState, 2)
	for i := 0; i < 2; i++ {
		var err error
		msgsA[i], secretsA[i], err = StepOne(nil)
		require.NoError(t, err)
		msgsB[i], secretsB[i], err = StepOne(nil)
		require.NoError(t, err)
	}

	partials := []*PartialSignature{
		makePartial(0, msgsA, secretsA),
		makePartial(1, msgsB, secretsB),
	}
	_, err := Aggregate(keys, partials, tpl)
	assert.ErrorIs(t, err, ErrMismatchNonces)
}

func TestAggregateRejectsCountMismatch(t *testing.T) {
	_, keys := newSigners(t, 3)
	tpl := template.Transfer{To: solana.PublicKey{1: 1}, Amount: 1, Blockhash: solana.Hash{}}
	_, err := Aggregate(keys, []*PartialSignature{}, tpl)
	assert.ErrorIs(t, err, ErrMismatchMessages)
}

func TestBlobEncodingsRoundTrip(t *testing.T) {
	msg, secret, err := StepOne(nil)
	require.NoError(t, err)

	msgText, err := msg.Base58()
	require.NoError(t, err)
	decodedMsg, err := DecodeMessage1(msgText)
	require.NoError(t, err)
	assert.True(t, msg.R.Equal(decodedMsg.R))

	// Re-encoding reproduces the identical text.
	again, err := decodedMsg.Base58()
	require.NoError(t, err)
	assert.Equal(t, msgText, again)

	secretText, err := secret.Base58()
	require.NoError(t, err)
	decodedSecret, err := DecodeSecretState(secretText)
	require.NoError(t, err)
	assert.True(t, secret.Nonce.Equal(decodedSecret.Nonce))
	assert.True(t, secret.Commitment.Equal(decodedSecret.Commitment))

	s, err := curve.Sample(nil)
	require.NoError(t, err)
	partial := &PartialSignature{R: curve.NewPoint().ScalarBaseMult(s), S: s}
	partialText, err := partial.Base58()
	require.NoError(t, err)
	decodedPartial, err := DecodePartialSignature(partialText)
	require.NoError(t, err)
	assert.True(t, partial.R.Equal(decodedPartial.R))
	assert.True(t, partial.S.Equal(decodedPartial.S))
}

func TestDecodeRejectsGarbage(t *testing.T) {
	var decodeErr DecodeError

	_, err := DecodeMessage1("not!base58")
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "message_1", decodeErr.Field)

	_, err = DecodeSecretState("zzzz")
	assert.ErrorAs(t, err, &decodeErr)

	_, err = DecodePartialSignature("")
	assert.ErrorAs(t, err, &decodeErr)
}
