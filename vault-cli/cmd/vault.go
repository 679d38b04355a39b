package cmd

import (
	"github.com/spf13/cobra"

	"github.com/margined-protocol/cw-vault-standard/vault-cli/commands/vaultops"
)

func vaultCmd() *cobra.Command {
	subCmd := &cobra.Command{
		Use:   "vault",
		Short: "Vault related commands",
	}
	standardInfoCmd := &cobra.Command{
		Use:   "standard-info",
		Short: "To query the vault standard version and enabled extensions.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			vaultops.StandardInfo()
		},
	}
	standardInfoRawCmd := &cobra.Command{
		Use:   "standard-info-raw",
		Short: "To read the vault standard info from storage, without a smart query.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			vaultops.StandardInfoRaw()
		},
	}
	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "To query the vault's base and vault tokens.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			vaultops.Info()
		},
	}
	previewDepositCmd := &cobra.Command{
		Use:   "preview-deposit <amount>",
		Short: "To preview the shares minted for a deposit.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			vaultops.PreviewDeposit(args[0])
		},
	}
	previewRedeemCmd := &cobra.Command{
		Use:   "preview-redeem <amount>",
		Short: "To preview the assets returned for a redemption.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			vaultops.PreviewRedeem(args[0])
		},
	}
	maxDepositCmd := &cobra.Command{
		Use:   "max-deposit <recipient>",
		Short: "To query the deposit limit for a recipient.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			vaultops.MaxDeposit(args[0])
		},
	}
	maxRedeemCmd := &cobra.Command{
		Use:   "max-redeem <owner>",
		Short: "To query the redeem limit for an owner.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			vaultops.MaxRedeem(args[0])
		},
	}
	totalAssetsCmd := &cobra.Command{
		Use:   "total-assets",
		Short: "To query assets under management.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			vaultops.TotalAssets()
		},
	}
	totalSupplyCmd := &cobra.Command{
		Use:   "total-supply",
		Short: "To query the circulating vault token supply.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			vaultops.TotalVaultTokenSupply()
		},
	}
	convertToSharesCmd := &cobra.Command{
		Use:   "convert-to-shares <amount>",
		Short: "To convert an asset amount to shares at the average rate.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			vaultops.ConvertToShares(args[0])
		},
	}
	convertToAssetsCmd := &cobra.Command{
		Use:   "convert-to-assets <amount>",
		Short: "To convert a share amount to assets at the average rate.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			vaultops.ConvertToAssets(args[0])
		},
	}
	depositCmd := &cobra.Command{
		Use:   "deposit <userKeyName> <amount> [recipient]",
		Short: "To deposit into the vault.",
		Args:  cobra.RangeArgs(2, 3),
		Run: func(cmd *cobra.Command, args []string) {
			recipient := ""
			if len(args) == 3 {
				recipient = args[2]
			}
			vaultops.Deposit(args[0], args[1], recipient)
		},
	}
	redeemCmd := &cobra.Command{
		Use:   "redeem <userKeyName> <amount> [recipient]",
		Short: "To redeem vault tokens.",
		Args:  cobra.RangeArgs(2, 3),
		Run: func(cmd *cobra.Command, args []string) {
			recipient := ""
			if len(args) == 3 {
				recipient = args[2]
			}
			vaultops.Redeem(args[0], args[1], recipient)
		},
	}

	subCmd.AddCommand(standardInfoCmd)
	subCmd.AddCommand(standardInfoRawCmd)
	subCmd.AddCommand(infoCmd)
	subCmd.AddCommand(previewDepositCmd)
	subCmd.AddCommand(previewRedeemCmd)
	subCmd.AddCommand(maxDepositCmd)
	subCmd.AddCommand(maxRedeemCmd)
	subCmd.AddCommand(totalAssetsCmd)
	subCmd.AddCommand(totalSupplyCmd)
	subCmd.AddCommand(convertToSharesCmd)
	subCmd.AddCommand(convertToAssetsCmd)
	subCmd.AddCommand(depositCmd)
	subCmd.AddCommand(redeemCmd)

	return subCmd
}
