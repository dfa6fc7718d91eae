package rwa

import (
	"context"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/krazyTry/rwa-registry-go/config"
	"github.com/krazyTry/rwa-registry-go/metadata"
	"github.com/krazyTry/rwa-registry-go/registry"
	"github.com/krazyTry/rwa-registry-go/wallet"
)

// NewRegistryClient creates a registry client over an RPC connection.
//
// Example:
//
// registryClient := NewRegistryClient(rpcClient, registry.WithMetadataClient(dasClient))
//
// records, _ := registryClient.ListRegistryRecords(ctx)
//
// tokens := registryClient.EnrichWithTokenMetadata(ctx, records)
var NewRegistryClient = registry.New

// NewWalletSession creates a disconnected wallet session.
//
// Example:
//
// session := NewWalletSession(wallet.NewKeypairConnector("~/.config/solana/id.json"))
//
// session.Connect(ctx, wallet.KeypairConnectorID)
var NewWalletSession = wallet.NewSession

// NewMetadataClient creates a DAS metadata index client.
var NewMetadataClient = metadata.NewDASClient

// Client bundles the connections opened from a Config.
type Client struct {
	*registry.Registry

	RPC     *rpc.Client
	WS      *ws.Client
	Session *wallet.Session
}

// Open connects to the endpoints in cfg. A nil session leaves the client
// read-only. Metadata enrichment is disabled when no API key is configured.
func Open(ctx context.Context, cfg *config.Config, session *wallet.Session) (*Client, error) {
	log := logrus.StandardLogger().WithField("type", "rwa/client")

	programID, err := cfg.Program()
	if err != nil {
		return nil, err
	}

	c := &Client{
		RPC:     rpc.New(cfg.RPCEndpoint),
		Session: session,
	}

	if cfg.WSEndpoint != "" {
		if c.WS, err = ws.Connect(ctx, cfg.WSEndpoint); err != nil {
			return nil, errors.Wrap(err, "failed to connect websocket")
		}
	}

	opts := []registry.Option{
		registry.WithProgramID(programID),
		registry.WithCommitment(cfg.CommitmentType()),
		registry.WithCluster(cfg.Cluster),
		registry.WithConcurrency(cfg.MetadataConcurrency),
	}

	if cfg.MetadataEnabled() {
		das, err := metadata.NewDASClient(cfg.MetadataEndpoint, cfg.MetadataAPIKey)
		if err != nil {
			c.Close()
			return nil, err
		}
		opts = append(opts, registry.WithMetadataClient(das))
	} else {
		log.Warn("metadata api key not set, token metadata enrichment disabled")
	}

	if session != nil {
		submitterOpts := []registry.SubmitterOption{registry.WithSubmitCommitment(cfg.CommitmentType())}
		if c.WS != nil {
			submitterOpts = append(submitterOpts, registry.WithWsClient(c.WS))
		}
		opts = append(opts, registry.WithSubmitter(registry.NewWalletSubmitter(session, c.RPC, submitterOpts...)))
	}

	c.Registry = registry.New(c.RPC, opts...)
	return c, nil
}

// Close disconnects the wallet session and the websocket.
func (c *Client) Close() error {
	if c.Session != nil {
		_ = c.Session.Close()
	}
	if c.WS != nil {
		c.WS.Close()
	}
	return nil
}
