package registry

import (
	"github.com/gagliardetto/solana-go/rpc"
	rwa "github.com/krazyTry/rwa-registry-go/gen/rwa_template"
)

// Seeds shared with the on-chain program.
const (
	AssetRegistrySeed = "asset_registry"
	MintSeed          = "mint"
	MetadataSeed      = "metadata"
)

const (
	// AccountKeyAssetRegistry is the anchor account name of registry records.
	AccountKeyAssetRegistry = "AssetRegistry"

	AssetRegistryAccountSize = rwa.AssetRegistryAccountSize

	MaxDecimals = 9

	DefaultDecimals    = 6
	DefaultConcurrency = 8
	DefaultCommitment  = rpc.CommitmentConfirmed
	DefaultCluster     = "devnet"

	maxAccountsPerRequest = 100
)
