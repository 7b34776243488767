package solana

import (
	"encoding/binary"
	"fmt"
)

// SPL token and associated-token-account programs.
var (
	TokenProgramID           = MustPublicKey("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	AssociatedTokenProgramID = MustPublicKey("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
)

// tokenTransfer is the SPL token program's Transfer instruction tag
// (single-byte, unlike the native programs' u32 tags).
const tokenTransfer uint8 = 3

// FindAssociatedTokenAddress derives the canonical token account of a
// wallet for a given mint.
func FindAssociatedTokenAddress(wallet, mint PublicKey) (PublicKey, error) {
	addr, _, err := FindProgramAddress(
		[][]byte{wallet[:], TokenProgramID[:], mint[:]},
		AssociatedTokenProgramID,
	)
	return addr, err
}

// TokenTransfer moves raw token units between two token accounts owned by
// owner.
func TokenTransfer(source, destination, owner PublicKey, amount uint64) Instruction {
	data := append([]byte{tokenTransfer}, make([]byte, 8)...)
	binary.LittleEndian.PutUint64(data[1:], amount)
	return Instruction{
		ProgramID: TokenProgramID,
		Accounts: []AccountMeta{
			{PublicKey: source, IsWritable: true},
			{PublicKey: destination, IsWritable: true},
			{PublicKey: owner, IsSigner: true},
		},
		Data: data,
	}
}

// CreateAssociatedTokenAccount creates wallet's associated token account
// for mint, funded by payer.
func CreateAssociatedTokenAccount(payer, wallet, mint PublicKey) (Instruction, error) {
	ata, err := FindAssociatedTokenAddress(wallet, mint)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		ProgramID: AssociatedTokenProgramID,
		Accounts: []AccountMeta{
			{PublicKey: payer, IsSigner: true, IsWritable: true},
			{PublicKey: ata, IsWritable: true},
			{PublicKey: wallet},
			{PublicKey: mint},
			{PublicKey: SystemProgramID},
			{PublicKey: TokenProgramID},
		},
		Data: nil,
	}, nil
}

// Offsets into the SPL token program's account layouts.
const (
	tokenAccountAmountOffset = 64 // mint(32) + owner(32)
	mintDecimalsOffset       = 44 // authority option(4) + authority(32) + supply(8)
)

// ParseTokenAccountAmount extracts the raw token balance from token
// account data.
func ParseTokenAccountAmount(data []byte) (uint64, error) {
	if len(data) < tokenAccountAmountOffset+8 {
		return 0, fmt.Errorf("solana: token account data too short: %d bytes", len(data))
	}
	return binary.LittleEndian.Uint64(data[tokenAccountAmountOffset:]), nil
}

// ParseMintDecimals extracts the decimal count from mint account data.
func ParseMintDecimals(data []byte) (uint8, error) {
	if len(data) < mintDecimalsOffset+1 {
		return 0, fmt.Errorf("solana: mint account data too short: %d bytes", len(data))
	}
	return data[mintDecimalsOffset], nil
}
