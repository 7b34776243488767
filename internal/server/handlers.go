// Copyright © 2023 Antalpha
//
// This file is part of Antalpha. The full Antalpha copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"MPC_EdDSA/communication"
	"MPC_EdDSA/pkg/curve"
	"MPC_EdDSA/pkg/solana"
	"MPC_EdDSA/pkg/template"
	"MPC_EdDSA/protocols/aggsign"
)

// confirmTimeout bounds how long a handler waits for a broadcast
// transaction to confirm before giving up on the request.
const confirmTimeout = 90 * time.Second

func (s *Server) client(c *gin.Context, name string) (*communication.Client, bool) {
	network, err := communication.ParseNetwork(name)
	if err != nil {
		badRequest(c, err)
		return nil, false
	}
	return s.clients(network), true
}

func parseKeys(texts []string) ([]solana.PublicKey, error) {
	keys := make([]solana.PublicKey, len(texts))
	for i, t := range texts {
		key, err := solana.PublicKeyFromBase58(t)
		if err != nil {
			return nil, fmt.Errorf("keys[%d]: %w", i, err)
		}
		keys[i] = key
	}
	return keys, nil
}

func parseFirstMessages(texts []string) ([]*aggsign.Message1, error) {
	msgs := make([]*aggsign.Message1, len(texts))
	for i, t := range texts {
		msg, err := aggsign.DecodeMessage1(t)
		if err != nil {
			return nil, fmt.Errorf("first_messages[%d]: %w", i, err)
		}
		msgs[i] = msg
	}
	return msgs, nil
}

func parsePartialSignatures(texts []string) ([]*aggsign.PartialSignature, error) {
	sigs := make([]*aggsign.PartialSignature, len(texts))
	for i, t := range texts {
		sig, err := aggsign.DecodePartialSignature(t)
		if err != nil {
			return nil, fmt.Errorf("signatures[%d]: %w", i, err)
		}
		sigs[i] = sig
	}
	return sigs, nil
}

// signSingle renders the template with the keypair as payer and signs it
// with an ordinary ed25519 signature. The non-aggregated flows stay usable
// as a reference path next to the two-round protocol.
func signSingle(kp *curve.Keypair, tpl template.Template) (*solana.Transaction, error) {
	payer, err := solana.PublicKeyFromBytes(kp.PublicKeyBytes())
	if err != nil {
		return nil, err
	}
	tx, err := template.Render(tpl, payer)
	if err != nil {
		return nil, err
	}
	sig, err := solana.SignatureFromBytes(kp.Sign(tx.Message.Serialize()))
	if err != nil {
		return nil, err
	}
	if err := tx.AttachSignature(payer, sig); err != nil {
		return nil, err
	}
	return tx, nil
}

// broadcast sends a signed transaction and waits for confirmation.
func broadcast(ctx context.Context, client *communication.Client, tx *solana.Transaction) (solana.Signature, error) {
	sig, err := client.SendTransaction(ctx, tx)
	if err != nil {
		return solana.Signature{}, err
	}
	confirmCtx, cancel := context.WithTimeout(ctx, confirmTimeout)
	defer cancel()
	if err := client.ConfirmTransaction(confirmCtx, sig); err != nil {
		return solana.Signature{}, err
	}
	return sig, nil
}

// tokenTransferTemplate assembles the SPL transfer payload. Whether the
// destination's associated token account exists is checked once here, so
// step two and aggregation render the identical transaction as long as the
// chain state has not moved between them.
func tokenTransferTemplate(
	ctx context.Context,
	client *communication.Client,
	to, mint solana.PublicKey,
	amount float64,
	decimals uint8,
	memo string,
	blockhash solana.Hash,
) (template.TokenTransfer, error) {
	destination, err := solana.FindAssociatedTokenAddress(to, mint)
	if err != nil {
		return template.TokenTransfer{}, err
	}
	info, err := client.GetAccountInfo(ctx, destination)
	if err != nil {
		return template.TokenTransfer{}, err
	}
	return template.TokenTransfer{
		To:                to,
		Mint:              mint,
		Amount:            amount,
		Decimals:          decimals,
		CreateDestination: info == nil,
		Memo:              memo,
		Blockhash:         blockhash,
	}, nil
}

// stakeDelegateTemplate assembles the delegation payload, quoting the
// rent-exempt minimum from the cluster the request names.
func stakeDelegateTemplate(
	ctx context.Context,
	client *communication.Client,
	seed string,
	stakeAmount uint64,
	voteAccount solana.PublicKey,
	blockhash solana.Hash,
) (template.StakeDelegate, error) {
	rent, err := client.GetMinimumBalanceForRentExemption(ctx, solana.StakeStateSize)
	if err != nil {
		return template.StakeDelegate{}, err
	}
	return template.StakeDelegate{
		Seed:          seed,
		StakeAmount:   stakeAmount,
		RentExemption: rent,
		VoteAccount:   voteAccount,
		Blockhash:     blockhash,
	}, nil
}

func (s *Server) generateKeypair(c *gin.Context) {
	kp, err := curve.GenerateKeypair(nil)
	if err != nil {
		badRequest(c, err)
		return
	}
	pub, err := solana.PublicKeyFromBytes(kp.PublicKeyBytes())
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, GenerateKeypairResponse{
		SecretShare: kp.Base58(),
		PublicShare: pub.String(),
	})
}

func (s *Server) balance(c *gin.Context) {
	var req BalanceRequest
	if !bindJSON(c, &req) {
		return
	}
	address, err := solana.PublicKeyFromBase58(req.Address)
	if err != nil {
		badRequest(c, err)
		return
	}
	client, ok := s.client(c, req.Net)
	if !ok {
		return
	}
	balance, err := client.GetBalance(c.Request.Context(), address)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, BalanceResponse{Address: address.String(), Balance: balance})
}

func (s *Server) airdrop(c *gin.Context) {
	var req AirdropRequest
	if !bindJSON(c, &req) {
		return
	}
	to, err := solana.PublicKeyFromBase58(req.To)
	if err != nil {
		badRequest(c, err)
		return
	}
	network, err := communication.ParseNetwork(req.Net)
	if err != nil {
		badRequest(c, err)
		return
	}
	if !network.SupportsAirdrop() {
		badRequest(c, errors.New("airdrops are not available on mainnet"))
		return
	}
	client := s.clients(network)
	ctx := c.Request.Context()
	sig, err := client.RequestAirdrop(ctx, to, solana.SolToLamports(req.Amount))
	if err != nil {
		badRequest(c, err)
		return
	}
	confirmCtx, cancel := context.WithTimeout(ctx, confirmTimeout)
	defer cancel()
	if err := client.ConfirmTransaction(confirmCtx, sig); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, AirdropResponse{TransactionID: sig.String()})
}

func (s *Server) sendSingle(c *gin.Context) {
	var req SendSingleRequest
	if !bindJSON(c, &req) {
		return
	}
	kp, err := curve.KeypairFromBase58(req.Keypair)
	if err != nil {
		badRequest(c, err)
		return
	}
	to, err := solana.PublicKeyFromBase58(req.To)
	if err != nil {
		badRequest(c, err)
		return
	}
	client, ok := s.client(c, req.Net)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	blockhash, err := client.GetLatestBlockhash(ctx)
	if err != nil {
		badRequest(c, err)
		return
	}
	tx, err := signSingle(kp, template.Transfer{
		To: to, Amount: req.Amount, Memo: req.Memo, Blockhash: blockhash,
	})
	if err != nil {
		badRequest(c, err)
		return
	}
	sig, err := broadcast(ctx, client, tx)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, SendSingleResponse{TransactionID: sig.String()})
}

func (s *Server) recentBlockHash(c *gin.Context) {
	var req RecentBlockHashRequest
	if !bindJSON(c, &req) {
		return
	}
	client, ok := s.client(c, req.Net)
	if !ok {
		return
	}
	blockhash, err := client.GetLatestBlockhash(c.Request.Context())
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, RecentBlockHashResponse{RecentBlockHash: blockhash.String()})
}

func (s *Server) aggregateKeys(c *gin.Context) {
	var req AggregateKeysRequest
	if !bindJSON(c, &req) {
		return
	}
	keys, err := parseKeys(req.Keys)
	if err != nil {
		badRequest(c, err)
		return
	}
	agg, err := aggsign.KeyAgg(keys)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, AggregateKeysResponse{AggregatedPublicKey: agg.PublicKey().String()})
}

func (s *Server) aggSendStepOne(c *gin.Context) {
	var req AggSendStepOneRequest
	if !bindJSON(c, &req) {
		return
	}
	// The keypair is validated even though round 1 needs no secret
	// material, so a typo surfaces here instead of in round 2.
	if _, err := curve.KeypairFromBase58(req.Keypair); err != nil {
		badRequest(c, err)
		return
	}
	msg1, secret, err := aggsign.StepOne(nil)
	if err != nil {
		badRequest(c, err)
		return
	}
	msgText, err := msg1.Base58()
	if err != nil {
		badRequest(c, err)
		return
	}
	secretText, err := secret.Base58()
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, AggSendStepOneResponse{Message1: msgText, SecretState: secretText})
}

// stepTwo runs round 2 for any template and writes the partial signature
// response. Every *_step_two handler funnels through here.
func stepTwo(c *gin.Context, keypair string, keys, firstMessages []string, secretState string, tpl template.Template) {
	kp, err := curve.KeypairFromBase58(keypair)
	if err != nil {
		badRequest(c, err)
		return
	}
	parsedKeys, err := parseKeys(keys)
	if err != nil {
		badRequest(c, err)
		return
	}
	msgs, err := parseFirstMessages(firstMessages)
	if err != nil {
		badRequest(c, err)
		return
	}
	secret, err := aggsign.DecodeSecretState(secretState)
	if err != nil {
		badRequest(c, err)
		return
	}
	partial, err := aggsign.StepTwo(kp, parsedKeys, msgs, secret, tpl)
	if err != nil {
		badRequest(c, err)
		return
	}
	text, err := partial.Base58()
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, AggSendStepTwoResponse{PartialSignature: text})
}

// aggregateAndBroadcast combines partial signatures for any template,
// broadcasts the result and writes the transaction id response.
func aggregateAndBroadcast(c *gin.Context, client *communication.Client, keys, signatures []string, tpl template.Template) (solana.Signature, bool) {
	parsedKeys, err := parseKeys(keys)
	if err != nil {
		badRequest(c, err)
		return solana.Signature{}, false
	}
	partials, err := parsePartialSignatures(signatures)
	if err != nil {
		badRequest(c, err)
		return solana.Signature{}, false
	}
	tx, err := aggsign.Aggregate(parsedKeys, partials, tpl)
	if err != nil {
		badRequest(c, err)
		return solana.Signature{}, false
	}
	sig, err := broadcast(c.Request.Context(), client, tx)
	if err != nil {
		badRequest(c, err)
		return solana.Signature{}, false
	}
	return sig, true
}

func (s *Server) aggSendStepTwo(c *gin.Context) {
	var req AggSendStepTwoRequest
	if !bindJSON(c, &req) {
		return
	}
	to, err := solana.PublicKeyFromBase58(req.To)
	if err != nil {
		badRequest(c, err)
		return
	}
	blockhash, err := solana.HashFromBase58(req.RecentBlockHash)
	if err != nil {
		badRequest(c, err)
		return
	}
	stepTwo(c, req.Keypair, req.Keys, req.FirstMessages, req.SecretState, template.Transfer{
		To: to, Amount: req.Amount, Memo: req.Memo, Blockhash: blockhash,
	})
}

func (s *Server) aggregateSignatures(c *gin.Context) {
	var req AggregateSignaturesRequest
	if !bindJSON(c, &req) {
		return
	}
	to, err := solana.PublicKeyFromBase58(req.To)
	if err != nil {
		badRequest(c, err)
		return
	}
	blockhash, err := solana.HashFromBase58(req.RecentBlockHash)
	if err != nil {
		badRequest(c, err)
		return
	}
	client, ok := s.client(c, req.Net)
	if !ok {
		return
	}
	sig, ok := aggregateAndBroadcast(c, client, req.Keys, req.Signatures, template.Transfer{
		To: to, Amount: req.Amount, Memo: req.Memo, Blockhash: blockhash,
	})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, AggregateSignaturesResponse{TransactionID: sig.String()})
}

func (s *Server) splTokenBalance(c *gin.Context) {
	var req SplTokenBalanceRequest
	if !bindJSON(c, &req) {
		return
	}
	owner, err := solana.PublicKeyFromBase58(req.Owner)
	if err != nil {
		badRequest(c, err)
		return
	}
	mint, err := solana.PublicKeyFromBase58(req.TokenMint)
	if err != nil {
		badRequest(c, err)
		return
	}
	client, ok := s.client(c, req.Net)
	if !ok {
		return
	}
	tokenAccount, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		badRequest(c, err)
		return
	}

	var balance uint64
	var decimals uint8
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		info, err := client.GetAccountInfo(ctx, tokenAccount)
		if err != nil {
			return err
		}
		if info == nil {
			return errors.New("token account not found")
		}
		balance, err = solana.ParseTokenAccountAmount(info.Data)
		return err
	})
	g.Go(func() error {
		info, err := client.GetAccountInfo(ctx, mint)
		if err != nil {
			return err
		}
		if info == nil {
			return errors.New("token mint not found")
		}
		decimals, err = solana.ParseMintDecimals(info.Data)
		return err
	})
	if err := g.Wait(); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, SplTokenBalanceResponse{
		Owner:     owner.String(),
		TokenMint: mint.String(),
		Balance:   balance,
		Decimals:  decimals,
	})
}

func (s *Server) splSendSingle(c *gin.Context) {
	var req SplSendSingleRequest
	if !bindJSON(c, &req) {
		return
	}
	kp, err := curve.KeypairFromBase58(req.Keypair)
	if err != nil {
		badRequest(c, err)
		return
	}
	to, err := solana.PublicKeyFromBase58(req.To)
	if err != nil {
		badRequest(c, err)
		return
	}
	mint, err := solana.PublicKeyFromBase58(req.TokenMint)
	if err != nil {
		badRequest(c, err)
		return
	}
	client, ok := s.client(c, req.Net)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	blockhash, err := client.GetLatestBlockhash(ctx)
	if err != nil {
		badRequest(c, err)
		return
	}
	tpl, err := tokenTransferTemplate(ctx, client, to, mint, req.Amount, req.Decimals, req.Memo, blockhash)
	if err != nil {
		badRequest(c, err)
		return
	}
	tx, err := signSingle(kp, tpl)
	if err != nil {
		badRequest(c, err)
		return
	}
	sig, err := broadcast(ctx, client, tx)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, SplSendSingleResponse{TransactionID: sig.String()})
}

func (s *Server) splAggSendStepTwo(c *gin.Context) {
	var req SplAggSendStepTwoRequest
	if !bindJSON(c, &req) {
		return
	}
	to, err := solana.PublicKeyFromBase58(req.To)
	if err != nil {
		badRequest(c, err)
		return
	}
	mint, err := solana.PublicKeyFromBase58(req.TokenMint)
	if err != nil {
		badRequest(c, err)
		return
	}
	blockhash, err := solana.HashFromBase58(req.RecentBlockHash)
	if err != nil {
		badRequest(c, err)
		return
	}
	client, ok := s.client(c, req.Net)
	if !ok {
		return
	}
	tpl, err := tokenTransferTemplate(c.Request.Context(), client, to, mint, req.Amount, req.Decimals, req.Memo, blockhash)
	if err != nil {
		badRequest(c, err)
		return
	}
	stepTwo(c, req.Keypair, req.Keys, req.FirstMessages, req.SecretState, tpl)
}

func (s *Server) splAggregateSignatures(c *gin.Context) {
	var req SplAggregateSignaturesRequest
	if !bindJSON(c, &req) {
		return
	}
	to, err := solana.PublicKeyFromBase58(req.To)
	if err != nil {
		badRequest(c, err)
		return
	}
	mint, err := solana.PublicKeyFromBase58(req.TokenMint)
	if err != nil {
		badRequest(c, err)
		return
	}
	blockhash, err := solana.HashFromBase58(req.RecentBlockHash)
	if err != nil {
		badRequest(c, err)
		return
	}
	client, ok := s.client(c, req.Net)
	if !ok {
		return
	}
	tpl, err := tokenTransferTemplate(c.Request.Context(), client, to, mint, req.Amount, req.Decimals, req.Memo, blockhash)
	if err != nil {
		badRequest(c, err)
		return
	}
	sig, ok := aggregateAndBroadcast(c, client, req.Keys, req.Signatures, tpl)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, SplAggregateSignaturesResponse{TransactionID: sig.String()})
}

func (s *Server) stakeAccount(c *gin.Context) {
	var req StakeAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	kp, err := curve.KeypairFromBase58(req.Keypair)
	if err != nil {
		badRequest(c, err)
		return
	}
	voteAccount, err := solana.PublicKeyFromBase58(req.ValidatorVoteAccount)
	if err != nil {
		badRequest(c, err)
		return
	}
	client, ok := s.client(c, req.Net)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	blockhash, err := client.GetLatestBlockhash(ctx)
	if err != nil {
		badRequest(c, err)
		return
	}
	tpl, err := stakeDelegateTemplate(ctx, client, req.Seed, req.StakeAmount, voteAccount, blockhash)
	if err != nil {
		badRequest(c, err)
		return
	}
	tx, err := signSingle(kp, tpl)
	if err != nil {
		badRequest(c, err)
		return
	}
	sig, err := broadcast(ctx, client, tx)
	if err != nil {
		badRequest(c, err)
		return
	}
	payer, err := solana.PublicKeyFromBytes(kp.PublicKeyBytes())
	if err != nil {
		badRequest(c, err)
		return
	}
	stakeAccount, err := tpl.StakeAccount(payer)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, StakeAccountResponse{
		StakeAccountAddress: stakeAccount.String(),
		TransactionID:       sig.String(),
	})
}

func (s *Server) deactivateStake(c *gin.Context) {
	var req DeactivateStakeRequest
	if !bindJSON(c, &req) {
		return
	}
	kp, err := curve.KeypairFromBase58(req.Keypair)
	if err != nil {
		badRequest(c, err)
		return
	}
	stakeAccount, err := solana.PublicKeyFromBase58(req.StakeAccount)
	if err != nil {
		badRequest(c, err)
		return
	}
	client, ok := s.client(c, req.Net)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	blockhash, err := client.GetLatestBlockhash(ctx)
	if err != nil {
		badRequest(c, err)
		return
	}
	tx, err := signSingle(kp, template.StakeDeactivate{StakeAccount: stakeAccount, Blockhash: blockhash})
	if err != nil {
		badRequest(c, err)
		return
	}
	sig, err := broadcast(ctx, client, tx)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, DeactivateStakeResponse{TransactionID: sig.String()})
}

func (s *Server) withdrawStake(c *gin.Context) {
	var req WithdrawStakeRequest
	if !bindJSON(c, &req) {
		return
	}
	kp, err := curve.KeypairFromBase58(req.Keypair)
	if err != nil {
		badRequest(c, err)
		return
	}
	stakeAccount, err := solana.PublicKeyFromBase58(req.StakeAccount)
	if err != nil {
		badRequest(c, err)
		return
	}
	destination, err := solana.PublicKeyFromBase58(req.Destination)
	if err != nil {
		badRequest(c, err)
		return
	}
	client, ok := s.client(c, req.Net)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	blockhash, err := client.GetLatestBlockhash(ctx)
	if err != nil {
		badRequest(c, err)
		return
	}
	tx, err := signSingle(kp, template.StakeWithdraw{
		StakeAccount: stakeAccount,
		Destination:  destination,
		Amount:       req.Amount,
		Blockhash:    blockhash,
	})
	if err != nil {
		badRequest(c, err)
		return
	}
	sig, err := broadcast(ctx, client, tx)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, WithdrawStakeResponse{TransactionID: sig.String()})
}

func (s *Server) aggStakeStepTwo(c *gin.Context) {
	var req AggStakeStepTwoRequest
	if !bindJSON(c, &req) {
		return
	}
	voteAccount, err := solana.PublicKeyFromBase58(req.ValidatorVoteAccount)
	if err != nil {
		badRequest(c, err)
		return
	}
	blockhash, err := solana.HashFromBase58(req.RecentBlockHash)
	if err != nil {
		badRequest(c, err)
		return
	}
	client, ok := s.client(c, req.Net)
	if !ok {
		return
	}
	tpl, err := stakeDelegateTemplate(c.Request.Context(), client, req.Seed, req.StakeAmount, voteAccount, blockhash)
	if err != nil {
		badRequest(c, err)
		return
	}
	stepTwo(c, req.Keypair, req.Keys, req.FirstMessages, req.SecretState, tpl)
}

func (s *Server) aggDeactivateStakeStepTwo(c *gin.Context) {
	var req AggDeactivateStakeStepTwoRequest
	if !bindJSON(c, &req) {
		return
	}
	stakeAccount, err := solana.PublicKeyFromBase58(req.StakeAccount)
	if err != nil {
		badRequest(c, err)
		return
	}
	blockhash, err := solana.HashFromBase58(req.RecentBlockHash)
	if err != nil {
		badRequest(c, err)
		return
	}
	stepTwo(c, req.Keypair, req.Keys, req.FirstMessages, req.SecretState, template.StakeDeactivate{
		StakeAccount: stakeAccount, Blockhash: blockhash,
	})
}

func (s *Server) aggWithdrawStakeStepTwo(c *gin.Context) {
	var req AggWithdrawStakeStepTwoRequest
	if !bindJSON(c, &req) {
		return
	}
	stakeAccount, err := solana.PublicKeyFromBase58(req.StakeAccount)
	if err != nil {
		badRequest(c, err)
		return
	}
	destination, err := solana.PublicKeyFromBase58(req.Destination)
	if err != nil {
		badRequest(c, err)
		return
	}
	blockhash, err := solana.HashFromBase58(req.RecentBlockHash)
	if err != nil {
		badRequest(c, err)
		return
	}
	stepTwo(c, req.Keypair, req.Keys, req.FirstMessages, req.SecretState, template.StakeWithdraw{
		StakeAccount: stakeAccount,
		Destination:  destination,
		Amount:       req.Amount,
		Blockhash:    blockhash,
	})
}

func (s *Server) aggregateStakeSignatures(c *gin.Context) {
	var req AggregateStakeSignaturesRequest
	if !bindJSON(c, &req) {
		return
	}
	voteAccount, err := solana.PublicKeyFromBase58(req.ValidatorVoteAccount)
	if err != nil {
		badRequest(c, err)
		return
	}
	blockhash, err := solana.HashFromBase58(req.RecentBlockHash)
	if err != nil {
		badRequest(c, err)
		return
	}
	client, ok := s.client(c, req.Net)
	if !ok {
		return
	}
	tpl, err := stakeDelegateTemplate(c.Request.Context(), client, req.Seed, req.StakeAmount, voteAccount, blockhash)
	if err != nil {
		badRequest(c, err)
		return
	}
	sig, ok := aggregateAndBroadcast(c, client, req.Keys, req.Signatures, tpl)
	if !ok {
		return
	}
	keys, err := parseKeys(req.Keys)
	if err != nil {
		badRequest(c, err)
		return
	}
	agg, err := aggsign.KeyAgg(keys)
	if err != nil {
		badRequest(c, err)
		return
	}
	stakeAccount, err := tpl.StakeAccount(agg.PublicKey())
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, AggregateStakeSignaturesResponse{
		StakeAccountAddress: stakeAccount.String(),
		TransactionID:       sig.String(),
	})
}

func (s *Server) aggregateDeactivateStakeSignatures(c *gin.Context) {
	var req AggregateDeactivateStakeSignaturesRequest
	if !bindJSON(c, &req) {
		return
	}
	stakeAccount, err := solana.PublicKeyFromBase58(req.StakeAccount)
	if err != nil {
		badRequest(c, err)
		return
	}
	blockhash, err := solana.HashFromBase58(req.RecentBlockHash)
	if err != nil {
		badRequest(c, err)
		return
	}
	client, ok := s.client(c, req.Net)
	if !ok {
		return
	}
	sig, ok := aggregateAndBroadcast(c, client, req.Keys, req.Signatures, template.StakeDeactivate{
		StakeAccount: stakeAccount, Blockhash: blockhash,
	})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, AggregateDeactivateStakeSignaturesResponse{TransactionID: sig.String()})
}

func (s *Server) aggregateWithdrawStakeSignatures(c *gin.Context) {
	var req AggregateWithdrawStakeSignaturesRequest
	if !bindJSON(c, &req) {
		return
	}
	stakeAccount, err := solana.PublicKeyFromBase58(req.StakeAccount)
	if err != nil {
		badRequest(c, err)
		return
	}
	destination, err := solana.PublicKeyFromBase58(req.Destination)
	if err != nil {
		badRequest(c, err)
		return
	}
	blockhash, err := solana.HashFromBase58(req.RecentBlockHash)
	if err != nil {
		badRequest(c, err)
		return
	}
	client, ok := s.client(c, req.Net)
	if !ok {
		return
	}
	sig, ok := aggregateAndBroadcast(c, client, req.Keys, req.Signatures, template.StakeWithdraw{
		StakeAccount: stakeAccount,
		Destination:  destination,
		Amount:       req.Amount,
		Blockhash:    blockhash,
	})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, AggregateWithdrawStakeSignaturesResponse{TransactionID: sig.String()})
}
