package registry

import (
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	rwa "github.com/krazyTry/rwa-registry-go/gen/rwa_template"
)

const (
	solscanBaseURL = "https://solscan.io"
	cardDateLayout = "Jan 2, 2006"
	unknownSupply  = "∞"
)

// AssetCard is the display form of one registry record.
type AssetCard struct {
	Symbol      string
	Isin        string
	TypeLabel   string
	ID          uint64
	Authority   string
	Created     string
	Address     string
	LegalDocUri string
}

// TokenCard is the display form of one token metadata record.
type TokenCard struct {
	Symbol    string
	Name      string
	Decimals  uint8
	Supply    string
	Mint      string
	Authority string
	Program   string
	URL       string
	// Fallback is set when the card was built from a placeholder record.
	Fallback bool
}

// AssetTypeLabel names an asset type, "Unknown" outside the known variants.
func AssetTypeLabel(t rwa.AssetType) string {
	if !t.Valid() {
		return "Unknown"
	}
	return t.String()
}

// TruncateAddress keeps the first head and last tail characters of the
// base58 address. Addresses too short to shorten are returned whole.
func TruncateAddress(address solana.PublicKey, head, tail int) string {
	s := address.String()
	if head < 0 || tail < 0 || len(s) <= head+tail+3 {
		return s
	}
	return s[:head] + "..." + s[len(s)-tail:]
}

func NewAssetCard(record AssetRegistryRecord) AssetCard {
	data := record.Data
	return AssetCard{
		Symbol:      data.AssetSymbol,
		Isin:        data.AssetIsin,
		TypeLabel:   AssetTypeLabel(data.AssetType),
		ID:          data.Id,
		Authority:   TruncateAddress(data.Authority, 6, 4),
		Created:     time.Unix(data.CreationDate, 0).UTC().Format(cardDateLayout),
		Address:     record.Address.String(),
		LegalDocUri: data.LegalDocUri,
	}
}

func NewTokenCard(record TokenMetadataRecord) TokenCard {
	return TokenCard{
		Symbol:    record.Symbol,
		Name:      record.Name,
		Decimals:  record.Decimals,
		Supply:    formatSupply(record.Supply),
		Mint:      TruncateAddress(record.Mint, 8, 6),
		Authority: TruncateAddress(record.Authority, 8, 6),
		Program:   TruncateAddress(record.ProgramID, 8, 6),
		URL:       TokenURL(record.Mint),
		Fallback:  record.Placeholder(),
	}
}

func formatSupply(supply *decimal.Decimal) string {
	if supply == nil {
		return unknownSupply
	}
	return supply.String()
}

// TokenURL links a mint on Solscan.
func TokenURL(mint solana.PublicKey) string {
	return fmt.Sprintf("%s/token/%s", solscanBaseURL, mint)
}

// ExplorerURL links a transaction on Solscan. The cluster parameter is
// omitted for mainnet.
func ExplorerURL(signature solana.Signature, cluster string) string {
	link := fmt.Sprintf("%s/tx/%s", solscanBaseURL, signature)
	switch cluster {
	case "", "mainnet", "mainnet-beta":
		return link
	default:
		return link + "?cluster=" + cluster
	}
}
