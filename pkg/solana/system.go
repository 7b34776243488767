package solana

// SystemProgramID is the native system program.
var SystemProgramID = MustPublicKey("11111111111111111111111111111111")

// System program instruction tags (bincode enum indices).
const (
	sysTransfer              uint32 = 2
	sysCreateAccountWithSeed uint32 = 3
)

// SystemTransfer moves lamports from one account to another.
func SystemTransfer(from, to PublicKey, lamports uint64) Instruction {
	data := appendUint32(nil, sysTransfer)
	data = appendUint64(data, lamports)
	return Instruction{
		ProgramID: SystemProgramID,
		Accounts: []AccountMeta{
			{PublicKey: from, IsSigner: true, IsWritable: true},
			{PublicKey: to, IsWritable: true},
		},
		Data: data,
	}
}

// SystemCreateAccountWithSeed funds and allocates the account derived from
// (base, seed, owner). The derived account never signs; only base does.
func SystemCreateAccountWithSeed(from, newAccount, base PublicKey, seed string, lamports, space uint64, owner PublicKey) Instruction {
	data := appendUint32(nil, sysCreateAccountWithSeed)
	data = append(data, base[:]...)
	data = appendUint64(data, uint64(len(seed)))
	data = append(data, []byte(seed)...)
	data = appendUint64(data, lamports)
	data = appendUint64(data, space)
	data = append(data, owner[:]...)

	accounts := []AccountMeta{
		{PublicKey: from, IsSigner: true, IsWritable: true},
		{PublicKey: newAccount, IsWritable: true},
	}
	if base != from {
		accounts = append(accounts, AccountMeta{PublicKey: base, IsSigner: true})
	}
	return Instruction{ProgramID: SystemProgramID, Accounts: accounts, Data: data}
}
