// Copyright © 2023 Antalpha
//
// This file is part of Antalpha. The full Antalpha copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package template renders user-level transaction parameters into unsigned
// transactions. Rendering is pure and deterministic: the same payload and
// payer always produce byte-identical messages, whether invoked by a
// participant during round 2 or by the aggregator. That determinism is what
// lets independent parties sign the "same" message without transmitting
// raw bytes.
//
// Each transaction kind is one Template implementation; the signing and
// aggregation code is generic over the interface.
package template

import (
	"MPC_EdDSA/pkg/solana"
)

// Template renders one kind of transaction from its payload.
type Template interface {
	// Instructions returns the program invocations for the payload, with
	// payer as the funding authority.
	Instructions(payer solana.PublicKey) ([]solana.Instruction, error)
	// RecentBlockhash returns the checkpoint the transaction is anchored at.
	RecentBlockhash() solana.Hash
}

// Render compiles a template into an unsigned transaction paid by payer.
func Render(tpl Template, payer solana.PublicKey) (*solana.Transaction, error) {
	instructions, err := tpl.Instructions(payer)
	if err != nil {
		return nil, err
	}
	return solana.NewUnsignedTransaction(payer, instructions, tpl.RecentBlockhash())
}

// Transfer is a native SOL transfer with an optional memo.
type Transfer struct {
	To        solana.PublicKey
	Amount    float64 // SOL
	Memo      string  // empty means no memo instruction
	Blockhash solana.Hash
}

// Instructions implements Template.
func (t Transfer) Instructions(payer solana.PublicKey) ([]solana.Instruction, error) {
	instructions := []solana.Instruction{
		solana.SystemTransfer(payer, t.To, solana.SolToLamports(t.Amount)),
	}
	if t.Memo != "" {
		instructions = append(instructions, solana.Memo(t.Memo))
	}
	return instructions, nil
}

// RecentBlockhash implements Template.
func (t Transfer) RecentBlockhash() solana.Hash { return t.Blockhash }

// TokenTransfer is an SPL token transfer. Whether the destination's
// associated token account already exists is chain state, and consulting
// chain state here would break the byte-identical rendering the protocol
// depends on, so the chain layer checks once and carries the answer in
// CreateDestination, the same way it supplies the blockhash.
type TokenTransfer struct {
	To                solana.PublicKey
	Mint              solana.PublicKey
	Amount            float64 // user-level units, scaled by Decimals
	Decimals          uint8
	CreateDestination bool
	Memo              string
	Blockhash         solana.Hash
}

// Instructions implements Template.
func (t TokenTransfer) Instructions(payer solana.PublicKey) ([]solana.Instruction, error) {
	source, err := solana.FindAssociatedTokenAddress(payer, t.Mint)
	if err != nil {
		return nil, err
	}
	destination, err := solana.FindAssociatedTokenAddress(t.To, t.Mint)
	if err != nil {
		return nil, err
	}
	var instructions []solana.Instruction
	if t.CreateDestination {
		createDestination, err := solana.CreateAssociatedTokenAccount(payer, t.To, t.Mint)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, createDestination)
	}
	instructions = append(instructions,
		solana.TokenTransfer(source, destination, payer, solana.TokenUnits(t.Amount, t.Decimals)),
	)
	if t.Memo != "" {
		instructions = append(instructions, solana.Memo(t.Memo))
	}
	return instructions, nil
}

// RecentBlockhash implements Template.
func (t TokenTransfer) RecentBlockhash() solana.Hash { return t.Blockhash }

// StakeDelegate creates a seed-derived stake account, initializes it with
// the payer as both authorities, and delegates it to a validator vote
// account. RentExemption is the rent-exempt minimum for a stake account,
// quoted by the chain layer and carried in the payload so rendering stays
// pure.
type StakeDelegate struct {
	Seed          string
	StakeAmount   uint64 // lamports
	RentExemption uint64 // lamports
	VoteAccount   solana.PublicKey
	Blockhash     solana.Hash
}

// StakeAccount derives the stake account address for the given payer.
func (t StakeDelegate) StakeAccount(payer solana.PublicKey) (solana.PublicKey, error) {
	return solana.CreateWithSeed(payer, t.Seed, solana.StakeProgramID)
}

// Instructions implements Template.
func (t StakeDelegate) Instructions(payer solana.PublicKey) ([]solana.Instruction, error) {
	stakeAccount, err := t.StakeAccount(payer)
	if err != nil {
		return nil, err
	}
	return []solana.Instruction{
		solana.SystemCreateAccountWithSeed(
			payer, stakeAccount, payer, t.Seed,
			t.RentExemption+t.StakeAmount, solana.StakeStateSize, solana.StakeProgramID,
		),
		solana.StakeInitialize(stakeAccount, payer, payer),
		solana.StakeDelegate(stakeAccount, payer, t.VoteAccount),
	}, nil
}

// RecentBlockhash implements Template.
func (t StakeDelegate) RecentBlockhash() solana.Hash { return t.Blockhash }

// StakeDeactivate begins undelegating a stake account authorized by payer.
type StakeDeactivate struct {
	StakeAccount solana.PublicKey
	Blockhash    solana.Hash
}

// Instructions implements Template.
func (t StakeDeactivate) Instructions(payer solana.PublicKey) ([]solana.Instruction, error) {
	return []solana.Instruction{
		solana.StakeDeactivate(t.StakeAccount, payer),
	}, nil
}

// RecentBlockhash implements Template.
func (t StakeDeactivate) RecentBlockhash() solana.Hash { return t.Blockhash }

// StakeWithdraw moves lamports out of a stake account authorized by payer.
type StakeWithdraw struct {
	StakeAccount solana.PublicKey
	Destination  solana.PublicKey
	Amount       uint64 // lamports
	Blockhash    solana.Hash
}

// Instructions implements Template.
func (t StakeWithdraw) Instructions(payer solana.PublicKey) ([]solana.Instruction, error) {
	return []solana.Instruction{
		solana.StakeWithdraw(t.StakeAccount, payer, t.Destination, t.Amount),
	}, nil
}

// RecentBlockhash implements Template.
func (t StakeWithdraw) RecentBlockhash() solana.Hash { return t.Blockhash }
