// Package wallet manages the lifecycle of the wallet used to sign registry
// transactions.
package wallet

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

var (
	ErrNotConnected      = errors.New("wallet not connected")
	ErrUserRejected      = errors.New("user rejected the request")
	ErrUnknownConnector  = errors.New("unknown wallet connector")
	ErrConnectionPending = errors.New("wallet connection already in progress")
	ErrSessionClosed     = errors.New("wallet session closed")
)

type Status int

const (
	StatusDisconnected Status = iota
	StatusConnecting
	StatusConnected
)

func (s Status) String() string {
	switch s {
	case StatusDisconnected:
		return "disconnected"
	case StatusConnecting:
		return "connecting"
	case StatusConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// Signer produces ed25519 signatures for a single account.
type Signer interface {
	PublicKey() solana.PublicKey
	// SignMessage returns ErrUserRejected when the holder declines.
	SignMessage(ctx context.Context, message []byte) (solana.Signature, error)
}

// Connector knows how to obtain a Signer from one kind of wallet.
type Connector interface {
	ID() string
	Label() string
	Connect(ctx context.Context) (Signer, error)
}
