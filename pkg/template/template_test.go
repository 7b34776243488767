package template

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MPC_EdDSA/pkg/solana"
)

func key(fill byte) solana.PublicKey {
	var pk solana.PublicKey
	for i := range pk {
		pk[i] = fill
	}
	return pk
}

func TestRenderIsDeterministic(t *testing.T) {
	tpl := Transfer{To: key(2), Amount: 0.25, Memo: "rent", Blockhash: solana.Hash{7}}
	payer := key(1)

	a, err := Render(tpl, payer)
	require.NoError(t, err)
	b, err := Render(tpl, payer)
	require.NoError(t, err)
	assert.Equal(t, a.Message.Serialize(), b.Message.Serialize())
}

func TestTransferInstructions(t *testing.T) {
	tx, err := Render(Transfer{To: key(2), Amount: 1, Blockhash: solana.Hash{}}, key(1))
	require.NoError(t, err)
	require.Len(t, tx.Message.Instructions, 1)

	withMemo, err := Render(Transfer{To: key(2), Amount: 1, Memo: "m", Blockhash: solana.Hash{}}, key(1))
	require.NoError(t, err)
	require.Len(t, withMemo.Message.Instructions, 2)
	assert.NotEqual(t, tx.Message.Serialize(), withMemo.Message.Serialize())
}

func TestTokenTransferCreateDestinationChangesMessage(t *testing.T) {
	base := TokenTransfer{
		To:        key(2),
		Mint:      key(3),
		Amount:    2.5,
		Decimals:  6,
		Blockhash: solana.Hash{},
	}
	withCreate := base
	withCreate.CreateDestination = true

	plain, err := Render(base, key(1))
	require.NoError(t, err)
	created, err := Render(withCreate, key(1))
	require.NoError(t, err)

	assert.Len(t, plain.Message.Instructions, 1)
	assert.Len(t, created.Message.Instructions, 2)
	assert.NotEqual(t, plain.Message.Serialize(), created.Message.Serialize())
}

func TestTokenTransferAmountScaling(t *testing.T) {
	tx, err := Render(TokenTransfer{
		To: key(2), Mint: key(3), Amount: 1.5, Decimals: 6, Blockhash: solana.Hash{},
	}, key(1))
	require.NoError(t, err)

	data := tx.Message.Instructions[0].Data
	require.Len(t, data, 9)
	assert.Equal(t, uint8(3), data[0])
	assert.Equal(t, uint64(1_500_000), binary.LittleEndian.Uint64(data[1:]))
}

func TestStakeDelegateFundsRentPlusStake(t *testing.T) {
	tpl := StakeDelegate{
		Seed:          "stake:0",
		StakeAmount:   5_000_000_000,
		RentExemption: 2_282_880,
		VoteAccount:   key(9),
		Blockhash:     solana.Hash{},
	}
	payer := key(1)

	tx, err := Render(tpl, payer)
	require.NoError(t, err)
	require.Len(t, tx.Message.Instructions, 3)

	// create_account_with_seed: u32 tag, base pubkey, u64 seed len, seed,
	// u64 lamports, u64 space, owner pubkey.
	data := tx.Message.Instructions[0].Data
	require.Equal(t, uint32(3), binary.LittleEndian.Uint32(data[:4]))
	seedLen := binary.LittleEndian.Uint64(data[36:44])
	require.Equal(t, uint64(len(tpl.Seed)), seedLen)
	lamports := binary.LittleEndian.Uint64(data[44+len(tpl.Seed):])
	assert.Equal(t, tpl.StakeAmount+tpl.RentExemption, lamports)
	space := binary.LittleEndian.Uint64(data[52+len(tpl.Seed):])
	assert.Equal(t, uint64(solana.StakeStateSize), space)

	stakeAccount, err := tpl.StakeAccount(payer)
	require.NoError(t, err)
	expected, err := solana.CreateWithSeed(payer, tpl.Seed, solana.StakeProgramID)
	require.NoError(t, err)
	assert.Equal(t, expected, stakeAccount)
	assert.Contains(t, tx.Message.AccountKeys, stakeAccount)
}

func TestStakeDeactivateAndWithdraw(t *testing.T) {
	stakeAccount := key(8)
	payer := key(1)

	deactivate, err := Render(StakeDeactivate{StakeAccount: stakeAccount, Blockhash: solana.Hash{}}, payer)
	require.NoError(t, err)
	require.Len(t, deactivate.Message.Instructions, 1)
	assert.Equal(t, uint32(5), binary.LittleEndian.Uint32(deactivate.Message.Instructions[0].Data))

	withdraw, err := Render(StakeWithdraw{
		StakeAccount: stakeAccount,
		Destination:  key(2),
		Amount:       42,
		Blockhash:    solana.Hash{},
	}, payer)
	require.NoError(t, err)
	data := withdraw.Message.Instructions[0].Data
	require.Len(t, data, 12)
	assert.Equal(t, uint32(4), binary.LittleEndian.Uint32(data[:4]))
	assert.Equal(t, uint64(42), binary.LittleEndian.Uint64(data[4:]))
}
