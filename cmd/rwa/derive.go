package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krazyTry/rwa-registry-go/registry"
)

var (
	deriveOwner string
	deriveID    uint64
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Print the program addresses of an asset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := parsePublicKey("owner", deriveOwner)
		if err != nil {
			return err
		}
		programID, err := cfg.Program()
		if err != nil {
			return err
		}

		assetRegistry, registryBump, err := registry.DeriveAssetRegistryAddress(programID, owner, deriveID)
		if err != nil {
			return err
		}
		mint, mintBump, err := registry.DeriveMintAddress(programID, deriveID)
		if err != nil {
			return err
		}
		metadata, _, err := registry.DeriveMetadataAddress(mint)
		if err != nil {
			return err
		}
		ata, _, err := registry.DeriveAssociatedTokenAddress(owner, mint)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "asset_registry  %s (bump %d)\n", assetRegistry, registryBump)
		fmt.Fprintf(out, "mint            %s (bump %d)\n", mint, mintBump)
		fmt.Fprintf(out, "metadata        %s\n", metadata)
		fmt.Fprintf(out, "token_account   %s\n", ata)
		return nil
	},
}

func init() {
	deriveCmd.Flags().StringVar(&deriveOwner, "owner", "", "asset owner address")
	deriveCmd.Flags().Uint64Var(&deriveID, "id", 0, "asset registry id")
	_ = deriveCmd.MarkFlagRequired("owner")
	_ = deriveCmd.MarkFlagRequired("id")
}
