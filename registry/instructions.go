package registry

import (
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	rwa "github.com/krazyTry/rwa-registry-go/gen/rwa_template"
)

func programOrDefault(programID solana.PublicKey) solana.PublicKey {
	if programID.IsZero() {
		return rwa.ProgramID
	}
	return programID
}

// BuildCreateAssetInstruction builds the initialize_asset instruction that
// registers an asset and creates its mint and metadata. It performs no I/O.
func BuildCreateAssetInstruction(params CreateAssetParams) (solana.Instruction, CreateAssetAccounts, error) {
	var accounts CreateAssetAccounts

	if params.Owner.IsZero() {
		return nil, accounts, ErrOwnerRequired
	}
	if !params.Registry.AssetType.Valid() {
		return nil, accounts, errors.Wrapf(ErrInvalidAssetType, "%d", params.Registry.AssetType)
	}
	programID := programOrDefault(params.ProgramID)
	payer := params.Payer
	if payer.IsZero() {
		payer = params.Owner
	}

	var err error
	if accounts.AssetRegistry, _, err = DeriveAssetRegistryAddress(programID, params.Owner, params.ID); err != nil {
		return nil, accounts, err
	}
	if accounts.Mint, _, err = DeriveMintAddress(programID, params.ID); err != nil {
		return nil, accounts, err
	}
	if accounts.Metadata, _, err = DeriveMetadataAddress(accounts.Mint); err != nil {
		return nil, accounts, err
	}

	ix, err := rwa.NewInitializeAssetInstruction(
		programID,
		// Params:
		rwa.InitializeAssetArgs{
			Id:          params.ID,
			AssetIsin:   params.Registry.AssetIsin,
			AssetSymbol: params.Registry.AssetSymbol,
			AssetType:   params.Registry.AssetType,
			LegalDocUri: params.Registry.LegalDocUri,
			Metadata: rwa.TokenMetadataArgs{
				Name:     params.Token.Name,
				Symbol:   params.Token.Symbol,
				Decimals: params.Token.Decimals,
				Uri:      params.Token.Uri,
			},
		},

		// Accounts:
		accounts.AssetRegistry,
		accounts.Mint,
		accounts.Metadata,
		params.Owner,
		payer,
		solana.SystemProgramID,
		solana.TokenProgramID,
		solana.TokenMetadataProgramID,
		solana.SysVarRentPubkey,
	)
	if err != nil {
		return nil, accounts, errors.Wrap(err, "failed to build initialize_asset instruction")
	}
	return ix, accounts, nil
}

// BuildMintSupplyInstruction builds the mint_supply instruction minting
// amount base units to the owner's associated token account. Registry and
// mint addresses are re-derived from AssetRegistryID.
func BuildMintSupplyInstruction(params MintSupplyParams) (solana.Instruction, error) {
	if params.Owner.IsZero() {
		return nil, ErrOwnerRequired
	}
	if params.Amount == 0 {
		return nil, ErrZeroAmount
	}
	programID := programOrDefault(params.ProgramID)
	payer := params.Payer
	if payer.IsZero() {
		payer = params.Owner
	}

	assetRegistry, _, err := DeriveAssetRegistryAddress(programID, params.Owner, params.AssetRegistryID)
	if err != nil {
		return nil, err
	}
	mint, _, err := DeriveMintAddress(programID, params.AssetRegistryID)
	if err != nil {
		return nil, err
	}
	if !params.Mint.IsZero() && !params.Mint.Equals(mint) {
		return nil, errors.Wrapf(ErrMintMismatch, "got %s, derived %s", params.Mint, mint)
	}
	ownerTokenAccount, _, err := DeriveAssociatedTokenAddress(params.Owner, mint)
	if err != nil {
		return nil, err
	}

	ix, err := rwa.NewMintSupplyInstruction(
		programID,
		// Params:
		params.Amount,

		// Accounts:
		assetRegistry,
		mint,
		ownerTokenAccount,
		params.Owner,
		payer,
		solana.TokenProgramID,
		solana.SPLAssociatedTokenAccountProgramID,
		solana.SystemProgramID,
		solana.SysVarRentPubkey,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build mint_supply instruction")
	}
	return ix, nil
}
