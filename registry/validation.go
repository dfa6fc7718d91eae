package registry

import (
	"math"
	"math/big"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	rwa "github.com/krazyTry/rwa-registry-go/gen/rwa_template"
)

// Form field names used as ValidationErrors keys.
const (
	FieldAssetSymbol   = "assetSymbol"
	FieldAssetIsin     = "assetIsin"
	FieldLegalDocUri   = "legalDocUri"
	FieldAssetType     = "assetType"
	FieldTokenName     = "tokenName"
	FieldTokenSymbol   = "tokenSymbol"
	FieldTokenUri      = "tokenUri"
	FieldDecimals      = "decimals"
	FieldInitialSupply = "initialSupply"
)

// AssetDraft is the user input of the create asset form. Empty token name,
// symbol and URI default to the asset symbol and legal document URI.
type AssetDraft struct {
	Registry      RegistryFields
	Token         TokenFields
	InitialSupply string
}

// NewAssetDraft returns a draft with the form defaults.
func NewAssetDraft() AssetDraft {
	return AssetDraft{
		Registry: RegistryFields{AssetType: rwa.AssetTypeEquity},
		Token:    TokenFields{Decimals: DefaultDecimals},
	}
}

// Normalize trims every field, upper-cases the symbols and fills the token
// defaults.
func (d AssetDraft) Normalize() AssetDraft {
	d.Registry.AssetSymbol = strings.ToUpper(strings.TrimSpace(d.Registry.AssetSymbol))
	d.Registry.AssetIsin = strings.TrimSpace(d.Registry.AssetIsin)
	d.Registry.LegalDocUri = strings.TrimSpace(d.Registry.LegalDocUri)
	d.Token.Name = strings.TrimSpace(d.Token.Name)
	d.Token.Symbol = strings.ToUpper(strings.TrimSpace(d.Token.Symbol))
	d.Token.Uri = strings.TrimSpace(d.Token.Uri)
	d.InitialSupply = strings.TrimSpace(d.InitialSupply)

	if d.Token.Name == "" {
		d.Token.Name = d.Registry.AssetSymbol
	}
	if d.Token.Symbol == "" {
		d.Token.Symbol = d.Registry.AssetSymbol
	}
	if d.Token.Uri == "" {
		d.Token.Uri = d.Registry.LegalDocUri
	}
	return d
}

// Validate checks the normalized draft and returns nil or ValidationErrors.
func (d AssetDraft) Validate() error {
	d = d.Normalize()
	errs := ValidationErrors{}

	switch {
	case d.Registry.AssetSymbol == "":
		errs[FieldAssetSymbol] = "Asset symbol is required"
	case len(d.Registry.AssetSymbol) > rwa.MaxAssetSymbolLen:
		errs[FieldAssetSymbol] = "Symbol must be 10 characters or less"
	}

	switch {
	case d.Registry.AssetIsin == "":
		errs[FieldAssetIsin] = "ISIN is required"
	case len(d.Registry.AssetIsin) > rwa.MaxAssetIsinLen:
		errs[FieldAssetIsin] = "ISIN must be 16 characters or less"
	}

	switch {
	case d.Registry.LegalDocUri == "":
		errs[FieldLegalDocUri] = "Legal document URI is required"
	case !isURL(d.Registry.LegalDocUri):
		errs[FieldLegalDocUri] = "Please enter a valid URL"
	case len(d.Registry.LegalDocUri) > rwa.MaxLegalDocUriLen:
		errs[FieldLegalDocUri] = "Legal document URI must be 192 characters or less"
	}

	if !d.Registry.AssetType.Valid() {
		errs[FieldAssetType] = "Please select an asset type"
	}

	// Defaults from the asset symbol are covered by the checks above.
	if len(d.Token.Name) > rwa.MaxTokenNameLen {
		errs[FieldTokenName] = "Token name must be 32 characters or less"
	}
	if len(d.Token.Symbol) > rwa.MaxTokenSymbolLen && d.Token.Symbol != d.Registry.AssetSymbol {
		errs[FieldTokenSymbol] = "Symbol must be 10 characters or less"
	}
	if d.Token.Uri != d.Registry.LegalDocUri {
		switch {
		case !isURL(d.Token.Uri):
			errs[FieldTokenUri] = "Please enter a valid URL"
		case len(d.Token.Uri) > rwa.MaxTokenUriLen:
			errs[FieldTokenUri] = "Token URI must be 200 characters or less"
		}
	}

	decimalsOK := d.Token.Decimals <= MaxDecimals
	if !decimalsOK {
		errs[FieldDecimals] = "Decimals must be between 0 and 9"
	}

	if d.InitialSupply == "" {
		errs[FieldInitialSupply] = "Initial supply is required"
	} else if supply, err := decimal.NewFromString(d.InitialSupply); err != nil || !supply.IsPositive() {
		errs[FieldInitialSupply] = "Please enter a valid supply amount"
	} else if decimalsOK {
		if _, err := baseUnits(supply, d.Token.Decimals); err != nil {
			errs[FieldInitialSupply] = supplyMessages[err]
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// SupplyBaseUnits converts InitialSupply into base units of the token.
func (d AssetDraft) SupplyBaseUnits() (uint64, error) {
	d = d.Normalize()
	supply, err := decimal.NewFromString(d.InitialSupply)
	if err != nil || !supply.IsPositive() {
		return 0, ValidationErrors{FieldInitialSupply: "Please enter a valid supply amount"}
	}
	units, err := baseUnits(supply, d.Token.Decimals)
	if err != nil {
		return 0, ValidationErrors{FieldInitialSupply: supplyMessages[err]}
	}
	return units, nil
}

var (
	maxUint64 = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)

	errSupplyPrecision = errors.New("supply has more decimal places than the token")
	errSupplyOverflow  = errors.New("supply does not fit in 64 bits")
)

// supplyMessages are the form messages of the baseUnits errors.
var supplyMessages = map[error]string{
	errSupplyPrecision: "Supply has more decimal places than the token",
	errSupplyOverflow:  "Supply is too large",
}

func baseUnits(supply decimal.Decimal, decimals uint8) (uint64, error) {
	units := supply.Shift(int32(decimals))
	if !units.Equal(units.Truncate(0)) {
		return 0, errSupplyPrecision
	}
	if units.GreaterThan(maxUint64) {
		return 0, errSupplyOverflow
	}
	return units.BigInt().Uint64(), nil
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	return u.Host != "" || u.Opaque != ""
}
