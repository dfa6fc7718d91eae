package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	rwa "github.com/krazyTry/rwa-registry-go"
	"github.com/krazyTry/rwa-registry-go/registry"
	"github.com/krazyTry/rwa-registry-go/wallet"
)

var (
	createDraft     = registry.NewAssetDraft()
	createAssetType string
	createDecimals  uint
	keypairPath     string
	assumeYes       bool

	mintID     uint64
	mintAmount uint64
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new asset and mint its initial supply",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		assetType, err := parseAssetType(createAssetType)
		if err != nil {
			return err
		}
		if createDecimals > 255 {
			createDecimals = 255
		}
		draft := createDraft
		draft.Registry.AssetType = assetType
		draft.Token.Decimals = uint8(createDecimals)

		if err := draft.Validate(); err != nil {
			if errs, ok := err.(registry.ValidationErrors); ok {
				printValidationErrors(cmd.ErrOrStderr(), errs)
			}
			return err
		}

		client, session, err := openWithWallet(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		owner, err := session.Address()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Creating asset %s...\n", draft.Normalize().Registry.AssetSymbol)
		res, err := client.CreateAsset(cmd.Context(), owner, draft)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✅ Asset created: %d\n", res.ID)
		fmt.Fprintf(out, "   Registry: %s\n", res.AssetRegistry)
		fmt.Fprintf(out, "   Mint:     %s\n", res.Mint)
		fmt.Fprintf(out, "   %s\n", res.ExplorerURL)
		return nil
	},
}

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Mint supply of a registered asset to the wallet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, session, err := openWithWallet(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		owner, err := session.Address()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Minting %d base units of asset %d...\n", mintAmount, mintID)
		sig, err := client.MintSupply(cmd.Context(), owner, mintID, mintAmount)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Transaction confirmed: %s\n", registry.ExplorerURL(sig, cfg.Cluster))
		return nil
	},
}

func init() {
	flags := createCmd.Flags()
	flags.StringVar(&createDraft.Registry.AssetSymbol, "symbol", "", "asset symbol, at most 10 characters")
	flags.StringVar(&createDraft.Registry.AssetIsin, "isin", "", "ISIN or other identifier")
	flags.StringVar(&createDraft.Registry.LegalDocUri, "legal-doc", "", "URL of the legal document")
	flags.StringVar(&createAssetType, "type", "equity", "asset type: equity, bond, commodity or etf")
	flags.StringVar(&createDraft.Token.Name, "token-name", "", "token name, defaults to the symbol")
	flags.StringVar(&createDraft.Token.Symbol, "token-symbol", "", "token symbol, defaults to the symbol")
	flags.StringVar(&createDraft.Token.Uri, "token-uri", "", "token metadata URI, defaults to the legal document")
	flags.UintVar(&createDecimals, "decimals", registry.DefaultDecimals, "token decimals")
	flags.StringVar(&createDraft.InitialSupply, "supply", "", "initial supply in whole tokens")

	mintCmd.Flags().Uint64Var(&mintID, "id", 0, "asset registry id")
	mintCmd.Flags().Uint64Var(&mintAmount, "amount", 0, "amount in base units")
	_ = mintCmd.MarkFlagRequired("id")
	_ = mintCmd.MarkFlagRequired("amount")

	for _, c := range []*cobra.Command{createCmd, mintCmd} {
		c.Flags().StringVar(&keypairPath, "keypair", "", "keypair file (overrides config)")
		c.Flags().BoolVarP(&assumeYes, "yes", "y", false, "sign without asking")
	}
}

func openWithWallet(cmd *cobra.Command) (*rwa.Client, *wallet.Session, error) {
	path := keypairPath
	if path == "" {
		path = cfg.KeypairPath
	}
	if path == "" {
		return nil, nil, errors.New("no keypair configured, use --keypair or RWA_KEYPAIR_PATH")
	}

	var connector wallet.Connector = wallet.NewKeypairConnector(path)
	if !assumeYes {
		key, err := wallet.LoadKeypair(path)
		if err != nil {
			return nil, nil, err
		}
		signer := wallet.NewConfirmingSigner(wallet.NewKeypairSigner(key), promptApproval(cmd.InOrStdin(), cmd.OutOrStdout()))
		connector = wallet.NewStaticConnector(wallet.KeypairConnectorID, path, signer)
	}

	session := rwa.NewWalletSession(connector)
	if err := session.Connect(cmd.Context(), wallet.KeypairConnectorID); err != nil {
		return nil, nil, err
	}

	client, err := rwa.Open(cmd.Context(), cfg, session)
	if err != nil {
		_ = session.Close()
		return nil, nil, err
	}
	return client, session, nil
}
