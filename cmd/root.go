// Copyright © 2023 Antalpha
//
// This file is part of Antalpha. The full Antalpha copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package cmd wires the command line interface. Configuration is resolved
// by viper: flags take precedence, then environment variables with the
// SOLSIGN_ prefix, then defaults.
package cmd

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "solsign",
	Short: "Aggregated multi-party signing service for Solana transactions",
	Long: `solsign runs an HTTP service implementing a two-round aggregated
ed25519 signing protocol. A group of key holders jointly controls one
on-chain address and cooperates to sign transfers, token transfers and
stake operations without any participant learning another's key.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(viper.GetString("log-level"))
		if err != nil {
			return err
		}
		log.SetLevel(level)
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		return nil
	},
}

// Execute runs the CLI and returns its exit error, if any.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log verbosity (debug, info, warn, error)")

	viper.SetEnvPrefix("SOLSIGN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
}
