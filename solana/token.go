package solana

import (
	"math/big"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/shopspring/decimal"
)

// Token is a decoded SPL mint together with where it was read from.
type Token struct {
	token.Mint
	// Mint account address
	Address solana.PublicKey
	// Program owning the mint account
	Owner solana.PublicKey
}

// UISupply scales the raw supply down by the mint decimals.
func (t *Token) UISupply() decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(t.Supply), -int32(t.Decimals))
}

// MintAuthorityKey returns the mint authority or the zero key when it is unset.
func (t *Token) MintAuthorityKey() solana.PublicKey {
	if t.MintAuthority == nil {
		return solana.PublicKey{}
	}
	return *t.MintAuthority
}

// TokenLayout decodes SPL mint accounts.
type TokenLayout struct {
}

func (l *TokenLayout) Decode(data []byte) (*Token, error) {
	mint := token.Mint{}

	// token.Mint.Decode discards its result, so decode through the decoder.
	if err := mint.UnmarshalWithDecoder(bin.NewBinDecoder(data)); err != nil {
		return nil, err
	}
	return &Token{Mint: mint}, nil
}
