package metadata

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const testMint = "So11111111111111111111111111111111111111112"

const assetResponse = `{
	"jsonrpc": "2.0",
	"id": 1,
	"result": {
		"interface": "FungibleToken",
		"id": "So11111111111111111111111111111111111111112",
		"content": {
			"metadata": {"name": "Wrapped Apple", "symbol": "WAAPL"}
		},
		"token_info": {
			"decimals": 6,
			"supply": 2500000000,
			"mint_authority": "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU",
			"token_program": "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
		}
	}
}`

func newTestServer(t *testing.T, handler func(body gjson.Result) string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("api-key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, handler(gjson.ParseBytes(body)))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestDASClient_GetAsset(t *testing.T) {
	server := newTestServer(t, func(body gjson.Result) string {
		assert.Equal(t, "getAsset", body.Get("method").String())
		assert.Equal(t, testMint, body.Get("params.id").String())
		return assetResponse
	})

	client, err := NewDASClient(server.URL, "secret")
	require.NoError(t, err)

	asset, err := client.GetAsset(context.Background(), solana.MustPublicKeyFromBase58(testMint))
	require.NoError(t, err)

	assert.Equal(t, "Wrapped Apple", asset.Name)
	assert.Equal(t, "WAAPL", asset.Symbol)
	assert.Equal(t, uint8(6), asset.Decimals)
	assert.Equal(t, uint64(2500000000), asset.Supply)
	assert.True(t, decimal.RequireFromString("2500").Equal(asset.UISupply))
	assert.Equal(t, "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU", asset.MintAuthority.String())
	assert.Equal(t, solana.TokenProgramID, asset.TokenProgram)
}

func TestDASClient_RPCError(t *testing.T) {
	server := newTestServer(t, func(body gjson.Result) string {
		out, _ := json.Marshal(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      body.Get("id").Value(),
			"error":   map[string]interface{}{"code": -32000, "message": "Asset Not Found"},
		})
		return string(out)
	})

	client, err := NewDASClient(server.URL, "secret")
	require.NoError(t, err)

	_, err = client.GetAsset(context.Background(), solana.MustPublicKeyFromBase58(testMint))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Asset Not Found")
}

func TestDASClient_NullResult(t *testing.T) {
	server := newTestServer(t, func(gjson.Result) string {
		return `{"jsonrpc":"2.0","id":1,"result":null}`
	})

	client, err := NewDASClient(server.URL, "secret")
	require.NoError(t, err)

	_, err = client.GetAsset(context.Background(), solana.MustPublicKeyFromBase58(testMint))
	assert.Equal(t, ErrAssetNotFound, err)
}

func TestDASClient_CancelledContext(t *testing.T) {
	client, err := NewDASClient("http://127.0.0.1:1", "secret")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.GetAsset(ctx, solana.MustPublicKeyFromBase58(testMint))
	assert.Equal(t, context.Canceled, err)
}

func TestDASClient_DeadlineStopsPendingRequest(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		case <-time.After(3 * time.Second):
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, assetResponse)
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	client, err := NewDASClient(server.URL, "secret")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	asset, err := client.GetAsset(ctx, solana.MustPublicKeyFromBase58(testMint))
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Nil(t, asset)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, elapsed, 2*time.Second)
}

func TestNewDASClient_RequiresKey(t *testing.T) {
	_, err := NewDASClient("https://devnet.helius-rpc.com/", "")
	assert.Equal(t, ErrMissingAPIKey, err)
}

func TestParseAsset(t *testing.T) {
	mint := solana.MustPublicKeyFromBase58(testMint)

	_, err := parseAsset(mint, []byte(`{"id":"`+testMint+`"}`))
	assert.True(t, errors.Is(err, ErrMalformedAsset))

	_, err = parseAsset(mint, []byte(`{"token_info":{"decimals":6,"mint_authority":"not-a-key"}}`))
	assert.True(t, errors.Is(err, ErrMalformedAsset))

	_, err = parseAsset(mint, []byte(`{"id":"7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU","token_info":{"decimals":6}}`))
	assert.True(t, errors.Is(err, ErrMalformedAsset))

	// revoked authority is reported as the zero key
	asset, err := parseAsset(mint, []byte(`{"token_info":{"decimals":0,"supply":7,"mint_authority":null}}`))
	require.NoError(t, err)
	assert.True(t, asset.MintAuthority.IsZero())
	assert.True(t, decimal.NewFromInt(7).Equal(asset.UISupply))
}
