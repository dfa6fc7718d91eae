package rwa_template

import (
	"bytes"
	"fmt"

	binary "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
)

// AssetRegistryAccountSize is the allocated size of an AssetRegistry account,
// discriminator included. Unused string capacity is left zeroed.
const AssetRegistryAccountSize = 320

type AssetRegistry struct {
	Id           uint64
	Authority    solanago.PublicKey
	Mint         solanago.PublicKey
	AssetSymbol  string
	AssetIsin    string
	LegalDocUri  string
	CreationDate int64
	AssetType    AssetType
	Bump         uint8
}

func (obj AssetRegistry) MarshalWithEncoder(encoder *binary.Encoder) (err error) {
	// Write account discriminator:
	if err = encoder.WriteBytes(Account_AssetRegistry[:], false); err != nil {
		return err
	}
	// Serialize `Id`:
	if err = encoder.WriteUint64(obj.Id, binary.LE); err != nil {
		return err
	}
	// Serialize `Authority`:
	if err = encoder.WriteBytes(obj.Authority[:], false); err != nil {
		return err
	}
	// Serialize `Mint`:
	if err = encoder.WriteBytes(obj.Mint[:], false); err != nil {
		return err
	}
	// Serialize `AssetSymbol`:
	if err = encoder.WriteString(obj.AssetSymbol); err != nil {
		return err
	}
	// Serialize `AssetIsin`:
	if err = encoder.WriteString(obj.AssetIsin); err != nil {
		return err
	}
	// Serialize `LegalDocUri`:
	if err = encoder.WriteString(obj.LegalDocUri); err != nil {
		return err
	}
	// Serialize `CreationDate`:
	if err = encoder.WriteInt64(obj.CreationDate, binary.LE); err != nil {
		return err
	}
	// Serialize `AssetType`:
	if err = encoder.WriteUint8(uint8(obj.AssetType)); err != nil {
		return err
	}
	// Serialize `Bump`:
	if err = encoder.WriteUint8(obj.Bump); err != nil {
		return err
	}
	return nil
}

func (obj *AssetRegistry) UnmarshalWithDecoder(decoder *binary.Decoder) (err error) {
	// Read and check account discriminator:
	{
		discriminator, err := decoder.ReadTypeID()
		if err != nil {
			return err
		}
		if !discriminator.Equal(Account_AssetRegistry[:]) {
			return fmt.Errorf(
				"wrong discriminator: wanted %v, got %v",
				Account_AssetRegistry[:],
				discriminator[:])
		}
	}
	// Deserialize `Id`:
	if obj.Id, err = decoder.ReadUint64(binary.LE); err != nil {
		return err
	}
	// Deserialize `Authority`:
	if err = decoder.Decode(&obj.Authority); err != nil {
		return err
	}
	// Deserialize `Mint`:
	if err = decoder.Decode(&obj.Mint); err != nil {
		return err
	}
	// Deserialize `AssetSymbol`:
	if obj.AssetSymbol, err = decoder.ReadString(); err != nil {
		return err
	}
	// Deserialize `AssetIsin`:
	if obj.AssetIsin, err = decoder.ReadString(); err != nil {
		return err
	}
	// Deserialize `LegalDocUri`:
	if obj.LegalDocUri, err = decoder.ReadString(); err != nil {
		return err
	}
	// Deserialize `CreationDate`:
	if obj.CreationDate, err = decoder.ReadInt64(binary.LE); err != nil {
		return err
	}
	// Deserialize `AssetType`:
	assetType, err := decoder.ReadUint8()
	if err != nil {
		return err
	}
	obj.AssetType = AssetType(assetType)
	// Deserialize `Bump`:
	if obj.Bump, err = decoder.ReadUint8(); err != nil {
		return err
	}
	return nil
}

// Marshal encodes the account into its full on-chain allocation.
func (obj AssetRegistry) Marshal() ([]byte, error) {
	if err := checkLen("asset_symbol", obj.AssetSymbol, MaxAssetSymbolLen); err != nil {
		return nil, err
	}
	if err := checkLen("asset_isin", obj.AssetIsin, MaxAssetIsinLen); err != nil {
		return nil, err
	}
	if err := checkLen("legal_doc_uri", obj.LegalDocUri, MaxLegalDocUriLen); err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := obj.MarshalWithEncoder(binary.NewBorshEncoder(buf)); err != nil {
		return nil, err
	}
	out := make([]byte, AssetRegistryAccountSize)
	copy(out, buf.Bytes())
	return out, nil
}

// ParseAccount_AssetRegistry decodes a raw AssetRegistry account.
func ParseAccount_AssetRegistry(accountData []byte) (*AssetRegistry, error) {
	if len(accountData) != AssetRegistryAccountSize {
		return nil, fmt.Errorf("asset registry account must be %d bytes, got %d", AssetRegistryAccountSize, len(accountData))
	}
	acc := new(AssetRegistry)
	if err := acc.UnmarshalWithDecoder(binary.NewBorshDecoder(accountData)); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account as AssetRegistry: %w", err)
	}
	return acc, nil
}
