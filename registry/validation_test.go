package registry

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rwa "github.com/krazyTry/rwa-registry-go/gen/rwa_template"
)

func validDraft() AssetDraft {
	d := NewAssetDraft()
	d.Registry.AssetSymbol = "waapl "
	d.Registry.AssetIsin = "VE-WAAPL-001"
	d.Registry.LegalDocUri = "https://example.com/waapl.pdf"
	d.InitialSupply = "1000000"
	return d
}

func TestAssetDraft_Valid(t *testing.T) {
	d := validDraft()
	require.NoError(t, d.Validate())

	n := d.Normalize()
	assert.Equal(t, "WAAPL", n.Registry.AssetSymbol)
	assert.Equal(t, "WAAPL", n.Token.Name)
	assert.Equal(t, "WAAPL", n.Token.Symbol)
	assert.Equal(t, n.Registry.LegalDocUri, n.Token.Uri)
	assert.Equal(t, uint8(DefaultDecimals), n.Token.Decimals)

	// The receiver is not modified.
	assert.Equal(t, "waapl ", d.Registry.AssetSymbol)
}

func TestAssetDraft_FourFieldErrors(t *testing.T) {
	d := AssetDraft{
		Registry: RegistryFields{
			AssetSymbol: "",
			AssetIsin:   "X",
			LegalDocUri: "not-a-url",
		},
		Token:         TokenFields{Decimals: 12},
		InitialSupply: "-5",
	}

	err := d.Validate()
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, ValidationErrors{
		FieldAssetSymbol:   "Asset symbol is required",
		FieldLegalDocUri:   "Please enter a valid URL",
		FieldDecimals:      "Decimals must be between 0 and 9",
		FieldInitialSupply: "Please enter a valid supply amount",
	}, errs)
	assert.Equal(t,
		"validation failed: assetSymbol: Asset symbol is required; decimals: Decimals must be between 0 and 9; "+
			"initialSupply: Please enter a valid supply amount; legalDocUri: Please enter a valid URL",
		err.Error())
}

func TestAssetDraft_FieldRules(t *testing.T) {
	cases := []struct {
		name   string
		edit   func(d *AssetDraft)
		field  string
		errMsg string
	}{
		{"long symbol", func(d *AssetDraft) { d.Registry.AssetSymbol = "ABCDEFGHIJK" }, FieldAssetSymbol, "Symbol must be 10 characters or less"},
		{"empty isin", func(d *AssetDraft) { d.Registry.AssetIsin = "  " }, FieldAssetIsin, "ISIN is required"},
		{"long isin", func(d *AssetDraft) { d.Registry.AssetIsin = strings.Repeat("X", 17) }, FieldAssetIsin, "ISIN must be 16 characters or less"},
		{"empty uri", func(d *AssetDraft) { d.Registry.LegalDocUri = "" }, FieldLegalDocUri, "Legal document URI is required"},
		{"relative uri", func(d *AssetDraft) { d.Registry.LegalDocUri = "/docs/waapl.pdf" }, FieldLegalDocUri, "Please enter a valid URL"},
		{"long uri", func(d *AssetDraft) { d.Registry.LegalDocUri = "https://example.com/" + strings.Repeat("a", 180) }, FieldLegalDocUri, "Legal document URI must be 192 characters or less"},
		{"asset type", func(d *AssetDraft) { d.Registry.AssetType = rwa.AssetType(9) }, FieldAssetType, "Please select an asset type"},
		{"long token name", func(d *AssetDraft) { d.Token.Name = strings.Repeat("N", 33) }, FieldTokenName, "Token name must be 32 characters or less"},
		{"long token symbol", func(d *AssetDraft) { d.Token.Symbol = "TOOLONGSYMBOL" }, FieldTokenSymbol, "Symbol must be 10 characters or less"},
		{"bad token uri", func(d *AssetDraft) { d.Token.Uri = "metadata.json" }, FieldTokenUri, "Please enter a valid URL"},
		{"decimals", func(d *AssetDraft) { d.Token.Decimals = 10 }, FieldDecimals, "Decimals must be between 0 and 9"},
		{"empty supply", func(d *AssetDraft) { d.InitialSupply = "" }, FieldInitialSupply, "Initial supply is required"},
		{"zero supply", func(d *AssetDraft) { d.InitialSupply = "0" }, FieldInitialSupply, "Please enter a valid supply amount"},
		{"text supply", func(d *AssetDraft) { d.InitialSupply = "lots" }, FieldInitialSupply, "Please enter a valid supply amount"},
		{"fractional supply", func(d *AssetDraft) { d.InitialSupply = "1.0000001" }, FieldInitialSupply, "Supply has more decimal places than the token"},
		{"huge supply", func(d *AssetDraft) { d.InitialSupply = "18446744073709551616" }, FieldInitialSupply, "Supply is too large"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := validDraft()
			c.edit(&d)

			var errs ValidationErrors
			require.ErrorAs(t, d.Validate(), &errs)
			assert.Equal(t, ValidationErrors{c.field: c.errMsg}, errs)
		})
	}
}

func TestAssetDraft_SupplyBaseUnits(t *testing.T) {
	d := validDraft()
	d.InitialSupply = "1.5"
	units, err := d.SupplyBaseUnits()
	require.NoError(t, err)
	assert.Equal(t, uint64(1_500_000), units)

	d.Token.Decimals = 0
	d.InitialSupply = "42"
	units, err = d.SupplyBaseUnits()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), units)

	d.InitialSupply = "-1"
	_, err = d.SupplyBaseUnits()
	assert.Error(t, err)
}

func TestBaseUnits_Errors(t *testing.T) {
	_, err := baseUnits(decimal.RequireFromString("0.0000001"), 6)
	assert.ErrorIs(t, err, errSupplyPrecision)
	assert.Equal(t, "supply has more decimal places than the token", err.Error())

	_, err = baseUnits(decimal.RequireFromString("18446744073709551616"), 0)
	assert.ErrorIs(t, err, errSupplyOverflow)

	units, err := baseUnits(decimal.RequireFromString("18446744073709551615"), 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), units)

	d := validDraft()
	d.InitialSupply = "0.0000001"
	_, err = d.SupplyBaseUnits()
	assert.Equal(t, ValidationErrors{FieldInitialSupply: "Supply has more decimal places than the token"}, err)
}
