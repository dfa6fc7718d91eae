// Package metadata resolves token metadata for a mint from an off-chain
// index speaking the DAS getAsset JSON-RPC method.
package metadata

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/url"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/ybbus/jsonrpc/v3"
)

var (
	ErrAssetNotFound  = errors.New("asset not found")
	ErrMissingAPIKey  = errors.New("metadata api key is not configured")
	ErrMalformedAsset = errors.New("malformed asset response")
)

const defaultTimeout = 10 * time.Second

// Asset is the subset of an indexed fungible asset the registry displays.
type Asset struct {
	ID            solana.PublicKey
	Name          string
	Symbol        string
	Decimals      uint8
	Supply        uint64
	UISupply      decimal.Decimal
	MintAuthority solana.PublicKey
	TokenProgram  solana.PublicKey
}

// Client looks up a single asset by mint.
type Client interface {
	GetAsset(ctx context.Context, mint solana.PublicKey) (*Asset, error)
}

// DASClient implements Client over JSON-RPC.
type DASClient struct {
	log    *logrus.Entry
	client jsonrpc.RPCClient
}

type Option func(*jsonrpc.RPCClientOpts)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(opts *jsonrpc.RPCClientOpts) {
		opts.HTTPClient = httpClient
	}
}

// NewDASClient returns a client for endpoint, authenticated with apiKey.
func NewDASClient(endpoint, apiKey string, options ...Option) (*DASClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "invalid metadata endpoint")
	}
	q := u.Query()
	q.Set("api-key", apiKey)
	u.RawQuery = q.Encode()

	opts := &jsonrpc.RPCClientOpts{
		HTTPClient:         &http.Client{Timeout: defaultTimeout},
		AllowUnknownFields: true,
	}
	for _, o := range options {
		o(opts)
	}

	return &DASClient{
		log:    logrus.StandardLogger().WithField("type", "metadata/das"),
		client: jsonrpc.NewClientWithOpts(u.String(), opts),
	}, nil
}

// GetAsset calls getAsset with {"id": mint}. The request is abandoned when
// ctx is done.
func (c *DASClient) GetAsset(ctx context.Context, mint solana.PublicKey) (*Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := c.client.CallFor(ctx, &raw, "getAsset", map[string]string{"id": mint.String()}); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrapf(ctxErr, "getAsset(%s) aborted", mint)
		}
		if rpcErr, ok := err.(*jsonrpc.RPCError); ok {
			c.log.WithFields(logrus.Fields{
				"mint": mint,
				"code": rpcErr.Code,
			}).Debug("getAsset returned an error")
		}
		return nil, errors.Wrapf(err, "getAsset(%s) failed", mint)
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, ErrAssetNotFound
	}

	return parseAsset(mint, raw)
}

func parseAsset(mint solana.PublicKey, raw []byte) (*Asset, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrMalformedAsset
	}
	result := gjson.ParseBytes(raw)

	tokenInfo := result.Get("token_info")
	if !tokenInfo.Exists() {
		return nil, errors.Wrap(ErrMalformedAsset, "missing token_info")
	}

	decimals := tokenInfo.Get("decimals").Uint()
	if decimals > 255 {
		return nil, errors.Wrapf(ErrMalformedAsset, "decimals %d out of range", decimals)
	}

	asset := &Asset{
		ID:       mint,
		Name:     result.Get("content.metadata.name").String(),
		Symbol:   result.Get("content.metadata.symbol").String(),
		Decimals: uint8(decimals),
		Supply:   tokenInfo.Get("supply").Uint(),
	}
	asset.UISupply = decimal.NewFromBigInt(new(big.Int).SetUint64(asset.Supply), -int32(asset.Decimals))

	if id := result.Get("id").String(); id != "" && id != mint.String() {
		return nil, errors.Wrapf(ErrMalformedAsset, "asset id %s does not match mint", id)
	}

	var err error
	if asset.MintAuthority, err = optionalKey(tokenInfo.Get("mint_authority")); err != nil {
		return nil, err
	}
	if asset.TokenProgram, err = optionalKey(tokenInfo.Get("token_program")); err != nil {
		return nil, err
	}
	return asset, nil
}

func optionalKey(value gjson.Result) (solana.PublicKey, error) {
	if !value.Exists() || value.String() == "" {
		return solana.PublicKey{}, nil
	}
	key, err := solana.PublicKeyFromBase58(value.String())
	if err != nil {
		return solana.PublicKey{}, errors.Wrapf(ErrMalformedAsset, "invalid key %q", value.String())
	}
	return key, nil
}
