package cmd

import (
	"github.com/spf13/cobra"

	"github.com/margined-protocol/cw-vault-standard/vault-cli/conf"
)

func Cmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vault-cli",
		Short: "Interact with contracts implementing the vault standard.",
	}

	rootCmd.AddCommand(vaultCmd())
	rootCmd.Version = conf.GetVersion()

	return rootCmd
}
