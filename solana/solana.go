// Package solana holds the RPC helpers used by the registry client.
package solana

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Filter narrows a program account query to accounts holding Owner at Offset.
type Filter struct {
	Owner  solana.PublicKey // Key to match
	Offset uint64           // Byte offset of the key inside the account data
}

// BlockhashRPC is the subset of *rpc.Client needed to fetch a recent blockhash.
type BlockhashRPC interface {
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
}

// AccountsRPC is the subset of *rpc.Client needed to read accounts.
type AccountsRPC interface {
	GetMultipleAccountsWithOpts(ctx context.Context, accounts []solana.PublicKey, opts *rpc.GetMultipleAccountsOpts) (*rpc.GetMultipleAccountsResult, error)
}

// ProgramAccountsRPC is the subset of *rpc.Client needed to enumerate program accounts.
type ProgramAccountsRPC interface {
	GetProgramAccountsWithOpts(ctx context.Context, programID solana.PublicKey, opts *rpc.GetProgramAccountsOpts) (rpc.GetProgramAccountsResult, error)
}

// TransactionRPC is the subset of *rpc.Client needed to submit a transaction
// and follow its status.
type TransactionRPC interface {
	BlockhashRPC
	SendTransactionWithOpts(ctx context.Context, transaction *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error)
	SimulateTransactionWithOpts(ctx context.Context, transaction *solana.Transaction, opts *rpc.SimulateTransactionOpts) (*rpc.SimulateTransactionResponse, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, transactionSignatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
}

var (
	_ AccountsRPC        = (*rpc.Client)(nil)
	_ ProgramAccountsRPC = (*rpc.Client)(nil)
	_ TransactionRPC     = (*rpc.Client)(nil)
)
