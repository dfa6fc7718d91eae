package main

import (
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"
)

// parsePublicKey decodes a base58 address given on the command line.
func parsePublicKey(flag, value string) (solana.PublicKey, error) {
	if value == "" {
		return solana.PublicKey{}, errors.Errorf("--%s is required", flag)
	}
	raw, err := base58.Decode(value)
	if err != nil {
		return solana.PublicKey{}, errors.Wrapf(err, "invalid --%s %q", flag, value)
	}
	if len(raw) != solana.PublicKeyLength {
		return solana.PublicKey{}, errors.Errorf("invalid --%s %q: %d bytes, want %d", flag, value, len(raw), solana.PublicKeyLength)
	}
	return solana.PublicKeyFromBytes(raw), nil
}
