package solana

// Stake program and the sysvars its instructions reference.
var (
	StakeProgramID     = MustPublicKey("Stake11111111111111111111111111111111111111")
	StakeConfigID      = MustPublicKey("StakeConfig11111111111111111111111111111111")
	SysvarClock        = MustPublicKey("SysvarC1ock11111111111111111111111111111111")
	SysvarStakeHistory = MustPublicKey("SysvarStakeHistory1111111111111111111111111")
	SysvarRent         = MustPublicKey("SysvarRent111111111111111111111111111111111")
)

// StakeStateSize is the on-chain size of a stake account (StakeStateV2),
// used for rent-exemption quotes.
const StakeStateSize = 200

// Stake program instruction tags (bincode enum indices).
const (
	stakeInitialize uint32 = 0
	stakeDelegate   uint32 = 2
	stakeWithdraw   uint32 = 4
	stakeDeactivate uint32 = 5
)

// StakeInitialize sets the stake and withdraw authorities of a fresh stake
// account, with no lockup.
func StakeInitialize(stakeAccount, staker, withdrawer PublicKey) Instruction {
	data := appendUint32(nil, stakeInitialize)
	data = append(data, staker[:]...)
	data = append(data, withdrawer[:]...)
	// Lockup::default(): unix timestamp i64, epoch u64, custodian pubkey.
	data = appendUint64(data, 0)
	data = appendUint64(data, 0)
	data = append(data, make([]byte, PublicKeyLength)...)
	return Instruction{
		ProgramID: StakeProgramID,
		Accounts: []AccountMeta{
			{PublicKey: stakeAccount, IsWritable: true},
			{PublicKey: SysvarRent},
		},
		Data: data,
	}
}

// StakeDelegate delegates an initialized stake account to a validator vote
// account.
func StakeDelegate(stakeAccount, authority, voteAccount PublicKey) Instruction {
	return Instruction{
		ProgramID: StakeProgramID,
		Accounts: []AccountMeta{
			{PublicKey: stakeAccount, IsWritable: true},
			{PublicKey: voteAccount},
			{PublicKey: SysvarClock},
			{PublicKey: SysvarStakeHistory},
			{PublicKey: StakeConfigID},
			{PublicKey: authority, IsSigner: true},
		},
		Data: appendUint32(nil, stakeDelegate),
	}
}

// StakeDeactivate begins undelegating a stake account.
func StakeDeactivate(stakeAccount, authority PublicKey) Instruction {
	return Instruction{
		ProgramID: StakeProgramID,
		Accounts: []AccountMeta{
			{PublicKey: stakeAccount, IsWritable: true},
			{PublicKey: SysvarClock},
			{PublicKey: authority, IsSigner: true},
		},
		Data: appendUint32(nil, stakeDeactivate),
	}
}

// StakeWithdraw moves lamports out of a (deactivated) stake account.
func StakeWithdraw(stakeAccount, authority, destination PublicKey, lamports uint64) Instruction {
	data := appendUint32(nil, stakeWithdraw)
	data = appendUint64(data, lamports)
	return Instruction{
		ProgramID: StakeProgramID,
		Accounts: []AccountMeta{
			{PublicKey: stakeAccount, IsWritable: true},
			{PublicKey: destination, IsWritable: true},
			{PublicKey: SysvarClock},
			{PublicKey: SysvarStakeHistory},
			{PublicKey: authority, IsSigner: true},
		},
		Data: data,
	}
}
