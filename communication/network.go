// Copyright © 2023 Antalpha
//
// This file is part of Antalpha. The full Antalpha copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package communication provides the chain-facing side of the service: the
// cluster selection and a JSON-RPC client covering the handful of methods
// the signing flows need. Everything that touches the network lives here,
// behind the Client type, so the protocol and template packages stay pure.
package communication

import "fmt"

// Network names a Solana cluster.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Devnet  Network = "devnet"
)

// clusterURLs maps each network to its public RPC endpoint.
var clusterURLs = map[Network]string{
	Mainnet: "https://api.mainnet-beta.solana.com",
	Testnet: "https://api.testnet.solana.com",
	Devnet:  "https://api.devnet.solana.com",
}

// ParseNetwork validates a network name from an API request.
func ParseNetwork(s string) (Network, error) {
	n := Network(s)
	if _, ok := clusterURLs[n]; !ok {
		return "", fmt.Errorf("communication: unrecognized network %q (want mainnet, testnet or devnet)", s)
	}
	return n, nil
}

// URL returns the RPC endpoint of the network.
func (n Network) URL() string {
	return clusterURLs[n]
}

// SupportsAirdrop reports whether the network faucet accepts requests.
// Mainnet has no faucet.
func (n Network) SupportsAirdrop() bool {
	return n != Mainnet
}
