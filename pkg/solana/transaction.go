package solana

import (
	"fmt"
)

// Transaction is a legacy transaction: a signature table followed by the
// compiled message the signatures cover.
type Transaction struct {
	Signatures []Signature
	Message    Message
}

// NewUnsignedTransaction compiles instructions into a transaction with an
// all-zero signature table sized to the message's signer count.
func NewUnsignedTransaction(payer PublicKey, instructions []Instruction, recent Hash) (*Transaction, error) {
	msg, err := NewMessage(payer, instructions, recent)
	if err != nil {
		return nil, err
	}
	return &Transaction{
		Signatures: make([]Signature, msg.Header.NumRequiredSignatures),
		Message:    msg,
	}, nil
}

// AttachSignature places sig in the slot belonging to signer. The
// aggregated flow uses exactly one slot, held by the aggregated key.
func (tx *Transaction) AttachSignature(signer PublicKey, sig Signature) error {
	for i := 0; i < int(tx.Message.Header.NumRequiredSignatures); i++ {
		if tx.Message.AccountKeys[i] == signer {
			tx.Signatures[i] = sig
			return nil
		}
	}
	return fmt.Errorf("solana: %s is not a signer of this transaction", signer)
}

// Serialize renders the full transaction wire encoding, ready to broadcast.
func (tx *Transaction) Serialize() []byte {
	out := appendShortVecLen(nil, len(tx.Signatures))
	for _, sig := range tx.Signatures {
		out = append(out, sig[:]...)
	}
	return append(out, tx.Message.Serialize()...)
}
