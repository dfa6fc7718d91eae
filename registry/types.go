package registry

import (
	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	rwa "github.com/krazyTry/rwa-registry-go/gen/rwa_template"
)

// AccountRole is the access mode of an instruction account.
type AccountRole uint8

const (
	RoleReadonly AccountRole = iota
	RoleWritable
	RoleReadonlySigner
	RoleWritableSigner
)

func (r AccountRole) String() string {
	switch r {
	case RoleReadonly:
		return "readonly"
	case RoleWritable:
		return "writable"
	case RoleReadonlySigner:
		return "readonly-signer"
	case RoleWritableSigner:
		return "writable-signer"
	default:
		return "unknown"
	}
}

func (r AccountRole) IsSigner() bool   { return r >= RoleReadonlySigner }
func (r AccountRole) IsWritable() bool { return r == RoleWritable || r == RoleWritableSigner }

// RoleOf reads the access mode off an account meta.
func RoleOf(meta *solana.AccountMeta) AccountRole {
	var role AccountRole
	if meta.IsWritable {
		role |= RoleWritable
	}
	if meta.IsSigner {
		role |= RoleReadonlySigner
	}
	return role
}

// RegistryFields are the on-chain registration fields of an asset.
type RegistryFields struct {
	AssetSymbol string
	AssetIsin   string
	LegalDocUri string
	AssetType   rwa.AssetType
}

// TokenFields configure the SPL token minted for an asset.
type TokenFields struct {
	Name     string
	Symbol   string
	Decimals uint8
	Uri      string
}

// CreateAssetParams are the inputs of BuildCreateAssetInstruction.
type CreateAssetParams struct {
	// ProgramID defaults to the registry program when zero.
	ProgramID solana.PublicKey
	Owner     solana.PublicKey
	// Payer defaults to Owner when zero.
	Payer    solana.PublicKey
	ID       uint64
	Registry RegistryFields
	Token    TokenFields
}

// CreateAssetAccounts are the program addresses used by a create instruction.
type CreateAssetAccounts struct {
	AssetRegistry solana.PublicKey
	Mint          solana.PublicKey
	Metadata      solana.PublicKey
}

// MintSupplyParams are the inputs of BuildMintSupplyInstruction.
type MintSupplyParams struct {
	ProgramID       solana.PublicKey
	Owner           solana.PublicKey
	Payer           solana.PublicKey
	AssetRegistryID uint64
	// Mint is checked against the mint derived from AssetRegistryID.
	// The zero key means use the derived mint.
	Mint   solana.PublicKey
	Amount uint64
}

// AssetRegistryRecord is one decoded registry account.
type AssetRegistryRecord struct {
	Address   solana.PublicKey
	ProgramID solana.PublicKey
	Data      rwa.AssetRegistry
}

// TokenMetadataRecord joins a registry record's mint with its token metadata.
// Mint always equals the registry record's mint.
type TokenMetadataRecord struct {
	Mint            solana.PublicKey
	Symbol          string
	Name            string
	Decimals        uint8
	Supply          *decimal.Decimal
	Authority       solana.PublicKey
	ProgramID       solana.PublicKey
	AssetRegistryID uint64

	// Err is set when the metadata lookup failed and the record is a
	// placeholder built from the registry record and the mint account.
	Err error
}

// Placeholder reports whether the record was built without index metadata.
func (r TokenMetadataRecord) Placeholder() bool {
	return r.Err != nil
}
