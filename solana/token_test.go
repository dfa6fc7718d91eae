package solana

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenLayout_Decode(t *testing.T) {
	authority := solana.NewWallet().PublicKey()

	tok, err := new(TokenLayout).Decode(encodeMint(authority, 2_500_000_000, 9))
	require.NoError(t, err)

	assert.Equal(t, uint8(9), tok.Decimals)
	assert.Equal(t, uint64(2_500_000_000), tok.Supply)
	assert.True(t, tok.IsInitialized)
	require.NotNil(t, tok.MintAuthority)
	assert.Equal(t, authority, tok.MintAuthorityKey())
	assert.Nil(t, tok.FreezeAuthority)
	assert.True(t, decimal.RequireFromString("2.5").Equal(tok.UISupply()))
}

func TestTokenLayout_DecodeNoAuthority(t *testing.T) {
	data := encodeMint(solana.PublicKey{}, 7, 0)
	data[0] = 0

	tok, err := new(TokenLayout).Decode(data)
	require.NoError(t, err)
	assert.Nil(t, tok.MintAuthority)
	assert.True(t, tok.MintAuthorityKey().IsZero())
	assert.Equal(t, uint64(7), tok.Supply)
}

func TestTokenLayout_DecodeShort(t *testing.T) {
	_, err := new(TokenLayout).Decode([]byte{1, 0, 0})
	assert.Error(t, err)
}
