// Package config loads the client configuration. Environment variables take
// precedence over the config file, which takes precedence over defaults.
package config

import (
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	rwa "github.com/krazyTry/rwa-registry-go/gen/rwa_template"
)

type Config struct {
	LogLevel string `mapstructure:"log_level"`

	RPCEndpoint string `mapstructure:"rpc_endpoint"`
	WSEndpoint  string `mapstructure:"ws_endpoint"`
	Cluster     string `mapstructure:"cluster"`
	Commitment  string `mapstructure:"commitment"`

	ProgramID string `mapstructure:"program_id"`

	// MetadataAPIKey is the only secret. Without it token metadata
	// enrichment is disabled and cards fall back to on-chain data.
	MetadataEndpoint    string `mapstructure:"metadata_endpoint"`
	MetadataAPIKey      string `mapstructure:"metadata_api_key"`
	MetadataConcurrency int    `mapstructure:"metadata_concurrency"`

	KeypairPath string `mapstructure:"keypair_path"`
}

var defaultConfig = Config{
	LogLevel: "info",

	RPCEndpoint: rpc.DevNet_RPC,
	Cluster:     "devnet",
	Commitment:  string(rpc.CommitmentConfirmed),

	ProgramID: rwa.ProgramID.String(),

	MetadataEndpoint:    "https://devnet.helius-rpc.com/",
	MetadataConcurrency: 8,
}

var envBindings = map[string]string{
	"log_level":            "RWA_LOG_LEVEL",
	"rpc_endpoint":         "RWA_RPC_ENDPOINT",
	"ws_endpoint":          "RWA_WS_ENDPOINT",
	"cluster":              "RWA_CLUSTER",
	"commitment":           "RWA_COMMITMENT",
	"program_id":           "RWA_PROGRAM_ID",
	"metadata_endpoint":    "RWA_METADATA_ENDPOINT",
	"metadata_api_key":     "RWA_METADATA_API_KEY",
	"metadata_concurrency": "RWA_METADATA_CONCURRENCY",
	"keypair_path":         "RWA_KEYPAIR_PATH",
}

// Default returns the built-in configuration.
func Default() Config {
	return defaultConfig
}

// Load reads path when it is non-empty and exists, then applies the
// environment on top.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.Wrapf(err, "failed to bind %s", env)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrap(err, "failed to check if config exists")
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "failed to load config")
		}
	}

	config := defaultConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	if c.RPCEndpoint == "" {
		return errors.New("rpc_endpoint must be set")
	}
	if _, err := c.Program(); err != nil {
		return err
	}
	switch rpc.CommitmentType(c.Commitment) {
	case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
	default:
		return errors.Errorf("invalid commitment %q", c.Commitment)
	}
	if c.MetadataConcurrency <= 0 {
		return errors.Errorf("metadata_concurrency must be positive, got %d", c.MetadataConcurrency)
	}
	return nil
}

// Program parses ProgramID.
func (c *Config) Program() (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(c.ProgramID)
	if err != nil {
		return solana.PublicKey{}, errors.Wrapf(err, "invalid program_id %q", c.ProgramID)
	}
	return key, nil
}

func (c *Config) CommitmentType() rpc.CommitmentType {
	return rpc.CommitmentType(c.Commitment)
}

// MetadataEnabled reports whether an API key for the metadata index is set.
func (c *Config) MetadataEnabled() bool {
	return c.MetadataAPIKey != ""
}
