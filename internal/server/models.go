// Copyright © 2023 Antalpha
//
// This file is part of Antalpha. The full Antalpha copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package server

// Wire models of the HTTP API. Addresses, hashes, keypairs and protocol
// blobs all travel as base58 text; networks travel by name. Field names are
// part of the public contract.

// ErrorResponse is the body of every non-200 reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

type GenerateKeypairResponse struct {
	SecretShare string `json:"secret_share"`
	PublicShare string `json:"public_share"`
}

type BalanceRequest struct {
	Address string `json:"address"`
	Net     string `json:"net"`
}

type BalanceResponse struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

type AirdropRequest struct {
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
	Net    string  `json:"net"`
}

type AirdropResponse struct {
	TransactionID string `json:"transaction_id"`
}

type SendSingleRequest struct {
	Keypair string  `json:"keypair"`
	Amount  float64 `json:"amount"`
	To      string  `json:"to"`
	Net     string  `json:"net"`
	Memo    string  `json:"memo,omitempty"`
}

type SendSingleResponse struct {
	TransactionID string `json:"transaction_id"`
}

type RecentBlockHashRequest struct {
	Net string `json:"net"`
}

type RecentBlockHashResponse struct {
	RecentBlockHash string `json:"recent_block_hash"`
}

type AggregateKeysRequest struct {
	Keys []string `json:"keys"`
}

type AggregateKeysResponse struct {
	AggregatedPublicKey string `json:"aggregated_public_key"`
}

type AggSendStepOneRequest struct {
	Keypair string `json:"keypair"`
}

type AggSendStepOneResponse struct {
	Message1    string `json:"message_1"`
	SecretState string `json:"secret_state"`
}

type AggSendStepTwoRequest struct {
	Keypair         string   `json:"keypair"`
	Amount          float64  `json:"amount"`
	To              string   `json:"to"`
	Memo            string   `json:"memo,omitempty"`
	RecentBlockHash string   `json:"recent_block_hash"`
	Keys            []string `json:"keys"`
	FirstMessages   []string `json:"first_messages"`
	SecretState     string   `json:"secret_state"`
}

type AggSendStepTwoResponse struct {
	PartialSignature string `json:"partial_signature"`
}

type AggregateSignaturesRequest struct {
	Signatures      []string `json:"signatures"`
	Amount          float64  `json:"amount"`
	To              string   `json:"to"`
	Memo            string   `json:"memo,omitempty"`
	RecentBlockHash string   `json:"recent_block_hash"`
	Net             string   `json:"net"`
	Keys            []string `json:"keys"`
}

type AggregateSignaturesResponse struct {
	TransactionID string `json:"transaction_id"`
}

type SplTokenBalanceRequest struct {
	Owner     string `json:"owner"`
	TokenMint string `json:"token_mint"`
	Net       string `json:"net"`
}

type SplTokenBalanceResponse struct {
	Owner     string `json:"owner"`
	TokenMint string `json:"token_mint"`
	Balance   uint64 `json:"balance"`
	Decimals  uint8  `json:"decimals"`
}

type SplSendSingleRequest struct {
	Keypair   string  `json:"keypair"`
	Amount    float64 `json:"amount"`
	To        string  `json:"to"`
	TokenMint string  `json:"token_mint"`
	Decimals  uint8   `json:"decimals"`
	Net       string  `json:"net"`
	Memo      string  `json:"memo,omitempty"`
}

type SplSendSingleResponse struct {
	TransactionID string `json:"transaction_id"`
}

type SplAggSendStepTwoRequest struct {
	Keypair         string   `json:"keypair"`
	Amount          float64  `json:"amount"`
	To              string   `json:"to"`
	TokenMint       string   `json:"token_mint"`
	Decimals        uint8    `json:"decimals"`
	Memo            string   `json:"memo,omitempty"`
	Net             string   `json:"net"`
	RecentBlockHash string   `json:"recent_block_hash"`
	Keys            []string `json:"keys"`
	FirstMessages   []string `json:"first_messages"`
	SecretState     string   `json:"secret_state"`
}

type SplAggSendStepTwoResponse struct {
	PartialSignature string `json:"partial_signature"`
}

type SplAggregateSignaturesRequest struct {
	Signatures      []string `json:"signatures"`
	Amount          float64  `json:"amount"`
	To              string   `json:"to"`
	TokenMint       string   `json:"token_mint"`
	Decimals        uint8    `json:"decimals"`
	Memo            string   `json:"memo,omitempty"`
	RecentBlockHash string   `json:"recent_block_hash"`
	Net             string   `json:"net"`
	Keys            []string `json:"keys"`
}

type SplAggregateSignaturesResponse struct {
	TransactionID string `json:"transaction_id"`
}

type StakeAccountRequest struct {
	Net                  string `json:"net"`
	Keypair              string `json:"keypair"`
	StakeAmount          uint64 `json:"stake_amount"` // lamports
	Seed                 string `json:"seed"`
	ValidatorVoteAccount string `json:"validator_vote_account"`
}

type StakeAccountResponse struct {
	StakeAccountAddress string `json:"stake_account_address"`
	TransactionID       string `json:"transaction_id"`
}

type DeactivateStakeRequest struct {
	Net          string `json:"net"`
	Keypair      string `json:"keypair"`
	StakeAccount string `json:"stake_account"`
}

type DeactivateStakeResponse struct {
	TransactionID string `json:"transaction_id"`
}

type WithdrawStakeRequest struct {
	Net          string `json:"net"`
	Keypair      string `json:"keypair"`
	StakeAccount string `json:"stake_account"`
	Destination  string `json:"destination"`
	Amount       uint64 `json:"amount"` // lamports
}

type WithdrawStakeResponse struct {
	TransactionID string `json:"transaction_id"`
}

type AggStakeStepTwoRequest struct {
	Net                  string   `json:"net"`
	Keypair              string   `json:"keypair"`
	StakeAmount          uint64   `json:"stake_amount"` // lamports
	Seed                 string   `json:"seed"`
	ValidatorVoteAccount string   `json:"validator_vote_account"`
	Keys                 []string `json:"keys"`
	FirstMessages        []string `json:"first_messages"`
	SecretState          string   `json:"secret_state"`
	RecentBlockHash      string   `json:"recent_block_hash"`
}

type AggStakeStepTwoResponse struct {
	PartialSignature string `json:"partial_signature"`
}

type AggDeactivateStakeStepTwoRequest struct {
	Net             string   `json:"net"`
	Keypair         string   `json:"keypair"`
	StakeAccount    string   `json:"stake_account"`
	Keys            []string `json:"keys"`
	FirstMessages   []string `json:"first_messages"`
	SecretState     string   `json:"secret_state"`
	RecentBlockHash string   `json:"recent_block_hash"`
}

type AggDeactivateStakeStepTwoResponse struct {
	PartialSignature string `json:"partial_signature"`
}

type AggWithdrawStakeStepTwoRequest struct {
	Net             string   `json:"net"`
	Keypair         string   `json:"keypair"`
	StakeAccount    string   `json:"stake_account"`
	Destination     string   `json:"destination"`
	Amount          uint64   `json:"amount"` // lamports
	Keys            []string `json:"keys"`
	FirstMessages   []string `json:"first_messages"`
	SecretState     string   `json:"secret_state"`
	RecentBlockHash string   `json:"recent_block_hash"`
}

type AggWithdrawStakeStepTwoResponse struct {
	PartialSignature string `json:"partial_signature"`
}

type AggregateStakeSignaturesRequest struct {
	Net                  string   `json:"net"`
	StakeAmount          uint64   `json:"stake_amount"` // lamports
	Seed                 string   `json:"seed"`
	ValidatorVoteAccount string   `json:"validator_vote_account"`
	Keys                 []string `json:"keys"`
	Signatures           []string `json:"signatures"`
	RecentBlockHash      string   `json:"recent_block_hash"`
}

type AggregateStakeSignaturesResponse struct {
	StakeAccountAddress string `json:"stake_account_address"`
	TransactionID       string `json:"transaction_id"`
}

type AggregateDeactivateStakeSignaturesRequest struct {
	Net             string   `json:"net"`
	StakeAccount    string   `json:"stake_account"`
	Keys            []string `json:"keys"`
	Signatures      []string `json:"signatures"`
	RecentBlockHash string   `json:"recent_block_hash"`
}

type AggregateDeactivateStakeSignaturesResponse struct {
	TransactionID string `json:"transaction_id"`
}

type AggregateWithdrawStakeSignaturesRequest struct {
	Net             string   `json:"net"`
	StakeAccount    string   `json:"stake_account"`
	Destination     string   `json:"destination"`
	Amount          uint64   `json:"amount"` // lamports
	Keys            []string `json:"keys"`
	Signatures      []string `json:"signatures"`
	RecentBlockHash string   `json:"recent_block_hash"`
}

type AggregateWithdrawStakeSignaturesResponse struct {
	TransactionID string `json:"transaction_id"`
}
