package main

import (
	"github.com/spf13/cobra"

	rwa "github.com/krazyTry/rwa-registry-go"
	"github.com/krazyTry/rwa-registry-go/registry"
)

var listAuthority string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered assets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := rwa.Open(cmd.Context(), cfg, nil)
		if err != nil {
			return err
		}
		defer client.Close()

		records, err := listRecords(cmd, client)
		if err != nil {
			return err
		}

		cards := make([]registry.AssetCard, len(records))
		for i, record := range records {
			cards[i] = registry.NewAssetCard(record)
		}
		return printAssetCards(cmd.OutOrStdout(), cards)
	},
}

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "List the tokens of registered assets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := rwa.Open(cmd.Context(), cfg, nil)
		if err != nil {
			return err
		}
		defer client.Close()

		records, err := listRecords(cmd, client)
		if err != nil {
			return err
		}

		tokens := client.EnrichWithTokenMetadata(cmd.Context(), records)
		cards := make([]registry.TokenCard, len(tokens))
		for i, token := range tokens {
			cards[i] = registry.NewTokenCard(token)
		}
		return printTokenCards(cmd.OutOrStdout(), cards)
	},
}

func init() {
	listCmd.Flags().StringVar(&listAuthority, "authority", "", "only list assets created by this address")
	tokensCmd.Flags().StringVar(&listAuthority, "authority", "", "only list tokens of assets created by this address")
}

func listRecords(cmd *cobra.Command, client *rwa.Client) ([]registry.AssetRegistryRecord, error) {
	if listAuthority == "" {
		return client.ListRegistryRecords(cmd.Context())
	}
	authority, err := parsePublicKey("authority", listAuthority)
	if err != nil {
		return nil, err
	}
	return client.ListRegistryRecordsByAuthority(cmd.Context(), authority)
}
