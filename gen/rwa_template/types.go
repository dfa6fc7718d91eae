package rwa_template

import (
	"fmt"

	binary "github.com/gagliardetto/binary"
)

// Field limits enforced by the program.
const (
	MaxAssetSymbolLen = 10
	MaxAssetIsinLen   = 16
	MaxLegalDocUriLen = 192

	// Metaplex token metadata limits.
	MaxTokenNameLen   = 32
	MaxTokenSymbolLen = 10
	MaxTokenUriLen    = 200
)

type AssetType uint8

const (
	AssetTypeEquity AssetType = iota
	AssetTypeBond
	AssetTypeCommodity
	AssetTypeETF
)

func (value AssetType) String() string {
	switch value {
	case AssetTypeEquity:
		return "Equity"
	case AssetTypeBond:
		return "Bond"
	case AssetTypeCommodity:
		return "Commodity"
	case AssetTypeETF:
		return "ETF"
	default:
		return ""
	}
}

// Valid reports whether value is one of the variants known to the program.
func (value AssetType) Valid() bool {
	return value <= AssetTypeETF
}

type TokenMetadataArgs struct {
	Name     string
	Symbol   string
	Decimals uint8
	Uri      string
}

type InitializeAssetArgs struct {
	Id          uint64
	AssetIsin   string
	AssetSymbol string
	AssetType   AssetType
	LegalDocUri string
	Metadata    TokenMetadataArgs
}

func (obj InitializeAssetArgs) MarshalWithEncoder(encoder *binary.Encoder) (err error) {
	// Serialize `Id`:
	if err = encoder.WriteUint64(obj.Id, binary.LE); err != nil {
		return err
	}
	// Serialize `AssetIsin`:
	if err = encoder.WriteString(obj.AssetIsin); err != nil {
		return err
	}
	// Serialize `AssetSymbol`:
	if err = encoder.WriteString(obj.AssetSymbol); err != nil {
		return err
	}
	// Serialize `AssetType`:
	if err = encoder.WriteUint8(uint8(obj.AssetType)); err != nil {
		return err
	}
	// Serialize `LegalDocUri`:
	if err = encoder.WriteString(obj.LegalDocUri); err != nil {
		return err
	}
	// Serialize `Metadata`:
	if err = encoder.WriteString(obj.Metadata.Name); err != nil {
		return err
	}
	if err = encoder.WriteString(obj.Metadata.Symbol); err != nil {
		return err
	}
	if err = encoder.WriteUint8(obj.Metadata.Decimals); err != nil {
		return err
	}
	if err = encoder.WriteString(obj.Metadata.Uri); err != nil {
		return err
	}
	return nil
}

func (obj *InitializeAssetArgs) UnmarshalWithDecoder(decoder *binary.Decoder) (err error) {
	if obj.Id, err = decoder.ReadUint64(binary.LE); err != nil {
		return err
	}
	if obj.AssetIsin, err = decoder.ReadString(); err != nil {
		return err
	}
	if obj.AssetSymbol, err = decoder.ReadString(); err != nil {
		return err
	}
	assetType, err := decoder.ReadUint8()
	if err != nil {
		return err
	}
	obj.AssetType = AssetType(assetType)
	if obj.LegalDocUri, err = decoder.ReadString(); err != nil {
		return err
	}
	if obj.Metadata.Name, err = decoder.ReadString(); err != nil {
		return err
	}
	if obj.Metadata.Symbol, err = decoder.ReadString(); err != nil {
		return err
	}
	if obj.Metadata.Decimals, err = decoder.ReadUint8(); err != nil {
		return err
	}
	if obj.Metadata.Uri, err = decoder.ReadString(); err != nil {
		return err
	}
	return nil
}

func checkLen(field, value string, max int) error {
	if len(value) > max {
		return fmt.Errorf("%s exceeds %d bytes", field, max)
	}
	return nil
}
