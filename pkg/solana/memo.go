package solana

// MemoProgramID is the SPL memo program (v2).
var MemoProgramID = MustPublicKey("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")

// Memo attaches an arbitrary UTF-8 note to a transaction.
func Memo(text string) Instruction {
	return Instruction{
		ProgramID: MemoProgramID,
		Data:      []byte(text),
	}
}
