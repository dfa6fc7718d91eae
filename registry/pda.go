package registry

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
	"github.com/krazyTry/rwa-registry-go/pda"
	"github.com/pkg/errors"
)

func idSeed(id uint64) []byte {
	seed := make([]byte, 8)
	binary.LittleEndian.PutUint64(seed, id)
	return seed
}

// DeriveAssetRegistryAddress derives the registry record owned by owner for id.
func DeriveAssetRegistryAddress(programID, owner solana.PublicKey, id uint64) (solana.PublicKey, uint8, error) {
	seeds := [][]byte{
		[]byte(AssetRegistrySeed),
		owner.Bytes(),
		idSeed(id),
	}
	return derive(seeds, programID)
}

// DeriveMintAddress derives the token mint created for registry id.
func DeriveMintAddress(programID solana.PublicKey, id uint64) (solana.PublicKey, uint8, error) {
	seeds := [][]byte{
		[]byte(MintSeed),
		idSeed(id),
	}
	return derive(seeds, programID)
}

// DeriveMetadataAddress derives the Metaplex metadata account of mint.
func DeriveMetadataAddress(mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	seeds := [][]byte{
		[]byte(MetadataSeed),
		solana.TokenMetadataProgramID.Bytes(),
		mint.Bytes(),
	}
	return derive(seeds, solana.TokenMetadataProgramID)
}

// DeriveAssociatedTokenAddress derives owner's token account for mint.
func DeriveAssociatedTokenAddress(owner, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	seeds := [][]byte{
		owner.Bytes(),
		solana.TokenProgramID.Bytes(),
		mint.Bytes(),
	}
	return derive(seeds, solana.SPLAssociatedTokenAccountProgramID)
}

func derive(seeds [][]byte, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	address, bump, err := pda.Derive(seeds, programID)
	if err != nil {
		return solana.PublicKey{}, 0, errors.Wrapf(ErrAddressDerivation, "%v", err)
	}
	return address, bump, nil
}
