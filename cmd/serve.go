package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"MPC_EdDSA/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the signing API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := server.New(nil)
		return srv.Run(viper.GetString("listen"))
	},
}

func init() {
	serveCmd.Flags().String("listen", "127.0.0.1:8000", "address to listen on")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(serveCmd)
}
