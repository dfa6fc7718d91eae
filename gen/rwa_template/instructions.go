package rwa_template

import (
	"bytes"
	"fmt"

	binary "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
)

// NewInitializeAssetInstruction builds an "initialize_asset" instruction
// targeting programID.
func NewInitializeAssetInstruction(
	programID solanago.PublicKey,
	// Params:
	args InitializeAssetArgs,

	// Accounts:
	assetRegistryAccount solanago.PublicKey,
	mintAccount solanago.PublicKey,
	metadataAccount solanago.PublicKey,
	authorityAccount solanago.PublicKey,
	payerAccount solanago.PublicKey,
	systemProgramAccount solanago.PublicKey,
	tokenProgramAccount solanago.PublicKey,
	tokenMetadataProgramAccount solanago.PublicKey,
	rentAccount solanago.PublicKey,
) (solanago.Instruction, error) {
	buf__ := new(bytes.Buffer)
	enc__ := binary.NewBorshEncoder(buf__)

	// Encode the instruction discriminator.
	if err := enc__.WriteBytes(Instruction_InitializeAsset[:], false); err != nil {
		return nil, fmt.Errorf("failed to write instruction discriminator: %w", err)
	}
	if err := args.MarshalWithEncoder(enc__); err != nil {
		return nil, fmt.Errorf("error while encoding args: %w", err)
	}

	accounts__ := solanago.AccountMetaSlice{}
	{
		// Account 0 "asset_registry": Writable, Non-signer, Required
		accounts__.Append(solanago.NewAccountMeta(assetRegistryAccount, true, false))
		// Account 1 "mint": Writable, Non-signer, Required
		accounts__.Append(solanago.NewAccountMeta(mintAccount, true, false))
		// Account 2 "metadata": Writable, Non-signer, Required
		accounts__.Append(solanago.NewAccountMeta(metadataAccount, true, false))
		// Account 3 "authority": Read-only, Signer, Required
		accounts__.Append(solanago.NewAccountMeta(authorityAccount, false, true))
		// Account 4 "payer": Writable, Signer, Required
		accounts__.Append(solanago.NewAccountMeta(payerAccount, true, true))
		// Account 5 "system_program": Read-only, Non-signer, Required
		accounts__.Append(solanago.NewAccountMeta(systemProgramAccount, false, false))
		// Account 6 "token_program": Read-only, Non-signer, Required
		accounts__.Append(solanago.NewAccountMeta(tokenProgramAccount, false, false))
		// Account 7 "token_metadata_program": Read-only, Non-signer, Required
		accounts__.Append(solanago.NewAccountMeta(tokenMetadataProgramAccount, false, false))
		// Account 8 "rent": Read-only, Non-signer, Required
		accounts__.Append(solanago.NewAccountMeta(rentAccount, false, false))
	}

	return solanago.NewInstruction(
		programID,
		accounts__,
		buf__.Bytes(),
	), nil
}

// NewMintSupplyInstruction builds a "mint_supply" instruction targeting programID.
func NewMintSupplyInstruction(
	programID solanago.PublicKey,
	// Params:
	amountParam uint64,

	// Accounts:
	assetRegistryAccount solanago.PublicKey,
	mintAccount solanago.PublicKey,
	authorityTokenAccount solanago.PublicKey,
	authorityAccount solanago.PublicKey,
	payerAccount solanago.PublicKey,
	tokenProgramAccount solanago.PublicKey,
	associatedTokenProgramAccount solanago.PublicKey,
	systemProgramAccount solanago.PublicKey,
	rentAccount solanago.PublicKey,
) (solanago.Instruction, error) {
	buf__ := new(bytes.Buffer)
	enc__ := binary.NewBorshEncoder(buf__)

	// Encode the instruction discriminator.
	if err := enc__.WriteBytes(Instruction_MintSupply[:], false); err != nil {
		return nil, fmt.Errorf("failed to write instruction discriminator: %w", err)
	}
	// Serialize `amountParam`:
	if err := enc__.WriteUint64(amountParam, binary.LE); err != nil {
		return nil, fmt.Errorf("error while encoding amountParam: %w", err)
	}

	accounts__ := solanago.AccountMetaSlice{}
	{
		// Account 0 "asset_registry": Read-only, Non-signer, Required
		accounts__.Append(solanago.NewAccountMeta(assetRegistryAccount, false, false))
		// Account 1 "mint": Writable, Non-signer, Required
		accounts__.Append(solanago.NewAccountMeta(mintAccount, true, false))
		// Account 2 "authority_token_account": Writable, Non-signer, Required
		// Created by the program when missing.
		accounts__.Append(solanago.NewAccountMeta(authorityTokenAccount, true, false))
		// Account 3 "authority": Read-only, Signer, Required
		accounts__.Append(solanago.NewAccountMeta(authorityAccount, false, true))
		// Account 4 "payer": Writable, Signer, Required
		accounts__.Append(solanago.NewAccountMeta(payerAccount, true, true))
		// Account 5 "token_program": Read-only, Non-signer, Required
		accounts__.Append(solanago.NewAccountMeta(tokenProgramAccount, false, false))
		// Account 6 "associated_token_program": Read-only, Non-signer, Required
		accounts__.Append(solanago.NewAccountMeta(associatedTokenProgramAccount, false, false))
		// Account 7 "system_program": Read-only, Non-signer, Required
		accounts__.Append(solanago.NewAccountMeta(systemProgramAccount, false, false))
		// Account 8 "rent": Read-only, Non-signer, Required
		accounts__.Append(solanago.NewAccountMeta(rentAccount, false, false))
	}

	return solanago.NewInstruction(
		programID,
		accounts__,
		buf__.Bytes(),
	), nil
}

// ParseInstruction_InitializeAsset decodes initialize_asset instruction data.
func ParseInstruction_InitializeAsset(data []byte) (*InitializeAssetArgs, error) {
	if len(data) < 8 || !bytes.Equal(data[:8], Instruction_InitializeAsset[:]) {
		return nil, fmt.Errorf("not an initialize_asset instruction")
	}
	args := new(InitializeAssetArgs)
	if err := args.UnmarshalWithDecoder(binary.NewBorshDecoder(data[8:])); err != nil {
		return nil, err
	}
	return args, nil
}

// ParseInstruction_MintSupply decodes mint_supply instruction data and returns the amount.
func ParseInstruction_MintSupply(data []byte) (uint64, error) {
	if len(data) != 16 || !bytes.Equal(data[:8], Instruction_MintSupply[:]) {
		return 0, fmt.Errorf("not a mint_supply instruction")
	}
	return binary.NewBorshDecoder(data[8:]).ReadUint64(binary.LE)
}
