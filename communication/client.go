// Copyright © 2023 Antalpha
//
// This file is part of Antalpha. The full Antalpha copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package communication

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"MPC_EdDSA/pkg/solana"
)

// Client is a minimal Solana JSON-RPC client. It covers exactly the
// methods the signing and templating flows consume; it is not a general
// purpose SDK.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient connects to the public endpoint of the given network.
func NewClient(network Network) *Client {
	return NewClientWithEndpoint(network.URL())
}

// NewClientWithEndpoint connects to an explicit RPC endpoint. Tests use it
// to point the client at a local stub.
func NewClientWithEndpoint(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("communication: rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// call performs one JSON-RPC exchange and decodes the result into out.
func (c *Client) call(ctx context.Context, method string, params []interface{}, out interface{}) error {
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return fmt.Errorf("communication: marshal %s request: %w", method, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	log.WithFields(log.Fields{"method": method, "endpoint": c.endpoint}).Debug("rpc call")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("communication: %s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("communication: read %s response: %w", method, err)
	}
	var envelope rpcResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("communication: decode %s response: %w", method, err)
	}
	if envelope.Error != nil {
		return envelope.Error
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("communication: decode %s result: %w", method, err)
	}
	return nil
}

// contextValue is the {context, value} wrapper many RPC results come in.
type contextValue struct {
	Value json.RawMessage `json:"value"`
}

func (c *Client) callValue(ctx context.Context, method string, params []interface{}, out interface{}) error {
	var cv contextValue
	if err := c.call(ctx, method, params, &cv); err != nil {
		return err
	}
	if err := json.Unmarshal(cv.Value, out); err != nil {
		return fmt.Errorf("communication: decode %s value: %w", method, err)
	}
	return nil
}

// GetBalance returns the lamport balance of an account.
func (c *Client) GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	var balance uint64
	err := c.callValue(ctx, "getBalance", []interface{}{account.String()}, &balance)
	return balance, err
}

// GetLatestBlockhash returns a recent blockhash to bind a transaction to.
func (c *Client) GetLatestBlockhash(ctx context.Context) (solana.Hash, error) {
	var value struct {
		Blockhash string `json:"blockhash"`
	}
	if err := c.callValue(ctx, "getLatestBlockhash", nil, &value); err != nil {
		return solana.Hash{}, err
	}
	return solana.HashFromBase58(value.Blockhash)
}

// GetMinimumBalanceForRentExemption returns the lamports an account of the
// given size needs to be rent exempt.
func (c *Client) GetMinimumBalanceForRentExemption(ctx context.Context, size uint64) (uint64, error) {
	var lamports uint64
	err := c.call(ctx, "getMinimumBalanceForRentExemption", []interface{}{size}, &lamports)
	return lamports, err
}

// AccountInfo is the decoded account state of one address.
type AccountInfo struct {
	Owner    solana.PublicKey
	Lamports uint64
	Data     []byte
}

// GetAccountInfo fetches one account. It returns (nil, nil) when the
// account does not exist, which is a normal condition for the token flow.
func (c *Client) GetAccountInfo(ctx context.Context, account solana.PublicKey) (*AccountInfo, error) {
	params := []interface{}{
		account.String(),
		map[string]string{"encoding": "base64"},
	}
	var value *struct {
		Owner    string   `json:"owner"`
		Lamports uint64   `json:"lamports"`
		Data     []string `json:"data"`
	}
	if err := c.callValue(ctx, "getAccountInfo", params, &value); err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	owner, err := solana.PublicKeyFromBase58(value.Owner)
	if err != nil {
		return nil, fmt.Errorf("communication: decode account owner: %w", err)
	}
	info := &AccountInfo{Owner: owner, Lamports: value.Lamports}
	if len(value.Data) > 0 {
		info.Data, err = base64.StdEncoding.DecodeString(value.Data[0])
		if err != nil {
			return nil, fmt.Errorf("communication: decode account data: %w", err)
		}
	}
	return info, nil
}

// SendTransaction broadcasts a fully signed transaction and returns its
// signature. Preflight simulation stays enabled so obviously invalid
// transactions are rejected before they hit a leader.
func (c *Client) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	encoded := base64.StdEncoding.EncodeToString(tx.Serialize())
	params := []interface{}{
		encoded,
		map[string]string{"encoding": "base64"},
	}
	var sigText string
	if err := c.call(ctx, "sendTransaction", params, &sigText); err != nil {
		return solana.Signature{}, err
	}
	raw, err := solana.SignatureFromBase58(sigText)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("communication: decode transaction signature: %w", err)
	}
	return raw, nil
}

// RequestAirdrop asks the cluster faucet to fund an account.
func (c *Client) RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error) {
	var sigText string
	err := c.call(ctx, "requestAirdrop", []interface{}{account.String(), lamports}, &sigText)
	if err != nil {
		return solana.Signature{}, err
	}
	raw, err := solana.SignatureFromBase58(sigText)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("communication: decode airdrop signature: %w", err)
	}
	return raw, nil
}

// confirmPollInterval is how often ConfirmTransaction re-checks status.
const confirmPollInterval = 2 * time.Second

// ConfirmTransaction polls the cluster until the signature reaches at
// least the confirmed commitment or ctx expires.
func (c *Client) ConfirmTransaction(ctx context.Context, sig solana.Signature) error {
	ticker := time.NewTicker(confirmPollInterval)
	defer ticker.Stop()
	for {
		status, err := c.signatureStatus(ctx, sig)
		if err != nil {
			return err
		}
		if status != "" && status != "processed" {
			log.WithFields(log.Fields{"signature": sig.String(), "status": status}).Debug("transaction confirmed")
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("communication: confirming %s: %w", sig, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (c *Client) signatureStatus(ctx context.Context, sig solana.Signature) (string, error) {
	params := []interface{}{
		[]string{sig.String()},
		map[string]bool{"searchTransactionHistory": true},
	}
	var statuses []*struct {
		ConfirmationStatus string      `json:"confirmationStatus"`
		Err                interface{} `json:"err"`
	}
	if err := c.callValue(ctx, "getSignatureStatuses", params, &statuses); err != nil {
		return "", err
	}
	if len(statuses) == 0 || statuses[0] == nil {
		return "", nil
	}
	if statuses[0].Err != nil {
		return "", fmt.Errorf("communication: transaction %s failed on chain: %v", sig, statuses[0].Err)
	}
	return statuses[0].ConfirmationStatus, nil
}
