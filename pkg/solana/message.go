// Copyright © 2023 Antalpha
//
// This file is part of Antalpha. The full Antalpha copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package solana

import (
	"encoding/binary"
	"fmt"
)

// AccountMeta describes how one instruction touches one account.
type AccountMeta struct {
	PublicKey  PublicKey
	IsSigner   bool
	IsWritable bool
}

// Instruction is a single program invocation before compilation.
type Instruction struct {
	ProgramID PublicKey
	Accounts  []AccountMeta
	Data      []byte
}

// MessageHeader counts the signer and read-only accounts of a compiled
// message.
type MessageHeader struct {
	NumRequiredSignatures       uint8
	NumReadonlySignedAccounts   uint8
	NumReadonlyUnsignedAccounts uint8
}

// CompiledInstruction references accounts by their index in the message's
// account table.
type CompiledInstruction struct {
	ProgramIDIndex uint8
	Accounts       []uint8
	Data           []byte
}

// Message is a compiled legacy transaction message: the exact byte string
// that gets signed.
type Message struct {
	Header          MessageHeader
	AccountKeys     []PublicKey
	RecentBlockhash Hash
	Instructions    []CompiledInstruction
}

// NewMessage compiles instructions into a message paid for by payer and
// anchored at the given blockhash. Compilation is deterministic: accounts
// are de-duplicated in order of first appearance and then partitioned into
// writable signers, read-only signers, writable non-signers and read-only
// non-signers, with the fee payer always first. Equal inputs therefore
// always produce byte-identical messages.
func NewMessage(payer PublicKey, instructions []Instruction, recent Hash) (Message, error) {
	if payer.IsZero() {
		return Message{}, fmt.Errorf("solana: message requires a fee payer")
	}
	if len(instructions) == 0 {
		return Message{}, fmt.Errorf("solana: message requires at least one instruction")
	}

	type meta struct {
		key      PublicKey
		signer   bool
		writable bool
	}
	metas := []meta{{key: payer, signer: true, writable: true}}
	index := map[PublicKey]int{payer: 0}

	merge := func(m meta) {
		if i, ok := index[m.key]; ok {
			metas[i].signer = metas[i].signer || m.signer
			metas[i].writable = metas[i].writable || m.writable
			return
		}
		index[m.key] = len(metas)
		metas = append(metas, m)
	}
	for _, ins := range instructions {
		for _, acc := range ins.Accounts {
			merge(meta{key: acc.PublicKey, signer: acc.IsSigner, writable: acc.IsWritable})
		}
		merge(meta{key: ins.ProgramID})
	}
	// The payer's flags must not be downgraded by a later appearance.
	metas[0].signer = true
	metas[0].writable = true

	// Partition keeping first-appearance order within each class; the
	// payer stays at position zero.
	var writableSigners, readonlySigners, writableOthers, readonlyOthers []meta
	writableSigners = append(writableSigners, metas[0])
	for _, m := range metas[1:] {
		switch {
		case m.signer && m.writable:
			writableSigners = append(writableSigners, m)
		case m.signer:
			readonlySigners = append(readonlySigners, m)
		case m.writable:
			writableOthers = append(writableOthers, m)
		default:
			readonlyOthers = append(readonlyOthers, m)
		}
	}

	ordered := make([]meta, 0, len(metas))
	ordered = append(ordered, writableSigners...)
	ordered = append(ordered, readonlySigners...)
	ordered = append(ordered, writableOthers...)
	ordered = append(ordered, readonlyOthers...)

	keys := make([]PublicKey, len(ordered))
	position := make(map[PublicKey]uint8, len(ordered))
	for i, m := range ordered {
		keys[i] = m.key
		position[m.key] = uint8(i)
	}

	compiled := make([]CompiledInstruction, len(instructions))
	for i, ins := range instructions {
		accounts := make([]uint8, len(ins.Accounts))
		for j, acc := range ins.Accounts {
			accounts[j] = position[acc.PublicKey]
		}
		compiled[i] = CompiledInstruction{
			ProgramIDIndex: position[ins.ProgramID],
			Accounts:       accounts,
			Data:           ins.Data,
		}
	}

	return Message{
		Header: MessageHeader{
			NumRequiredSignatures:       uint8(len(writableSigners) + len(readonlySigners)),
			NumReadonlySignedAccounts:   uint8(len(readonlySigners)),
			NumReadonlyUnsignedAccounts: uint8(len(readonlyOthers)),
		},
		AccountKeys:     keys,
		RecentBlockhash: recent,
		Instructions:    compiled,
	}, nil
}

// Serialize renders the message into its wire encoding. This is the byte
// string the protocol signs.
func (m *Message) Serialize() []byte {
	out := []byte{
		m.Header.NumRequiredSignatures,
		m.Header.NumReadonlySignedAccounts,
		m.Header.NumReadonlyUnsignedAccounts,
	}
	out = appendShortVecLen(out, len(m.AccountKeys))
	for _, key := range m.AccountKeys {
		out = append(out, key[:]...)
	}
	out = append(out, m.RecentBlockhash[:]...)
	out = appendShortVecLen(out, len(m.Instructions))
	for _, ins := range m.Instructions {
		out = append(out, ins.ProgramIDIndex)
		out = appendShortVecLen(out, len(ins.Accounts))
		out = append(out, ins.Accounts...)
		out = appendShortVecLen(out, len(ins.Data))
		out = append(out, ins.Data...)
	}
	return out
}

// appendUint64 appends v in the little-endian layout program data uses.
func appendUint64(out []byte, v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return append(out, buf[:]...)
}

// appendUint32 appends v in little-endian, the width of bincode enum tags.
func appendUint32(out []byte, v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return append(out, buf[:]...)
}
