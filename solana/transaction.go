package solana

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	sendandconfirmtransaction "github.com/gagliardetto/solana-go/rpc/sendAndConfirmTransaction"
	"github.com/gagliardetto/solana-go/rpc/ws"
	"github.com/pkg/errors"
)

var (
	ErrTransactionFailed  = errors.New("transaction failed")
	ErrTransactionDropped = errors.New("transaction not found (maybe dropped)")
	ErrSimulationFailed   = errors.New("transaction simulation failed")
	ErrMissingSignature   = errors.New("missing signature for required signer")
)

const defaultPollInterval = time.Second

// SignFunc signs message on behalf of every key in signers and returns the
// signatures in the same order.
type SignFunc func(ctx context.Context, message []byte, signers []solana.PublicKey) ([]solana.Signature, error)

// SendOptions controls how a transaction is broadcast and followed.
type SendOptions struct {
	Commitment rpc.CommitmentType
	// Simulate only runs the transaction through simulateTransaction.
	Simulate bool
	// WsClient, when set, is used to wait for confirmation instead of polling.
	WsClient     *ws.Client
	PollInterval time.Duration
}

// BuildTransaction assembles instructions into a transaction paid by payer
// against a fresh blockhash.
func BuildTransaction(
	ctx context.Context,
	rpcClient BlockhashRPC,
	commitment rpc.CommitmentType,
	instructions []solana.Instruction,
	payer solana.PublicKey,
) (*solana.Transaction, error) {
	latestBlockhash, err := GetLatestBlockhash(ctx, rpcClient, commitment)
	if err != nil {
		return nil, err
	}

	tx, err := solana.NewTransaction(instructions, latestBlockhash, solana.TransactionPayer(payer))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build transaction")
	}
	return tx, nil
}

// SignTransaction collects one signature per required signer of tx.
func SignTransaction(ctx context.Context, tx *solana.Transaction, sign SignFunc) error {
	message, err := tx.Message.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, "failed to encode message")
	}

	signers := tx.Message.Signers()
	signatures, err := sign(ctx, message, signers)
	if err != nil {
		return err
	}
	if len(signatures) != len(signers) {
		return ErrMissingSignature
	}
	tx.Signatures = signatures
	return nil
}

// SendTransaction broadcasts a signed transaction with preflight checks and
// waits until it is confirmed or fails. No retries are attempted.
func SendTransaction(ctx context.Context, rpcClient TransactionRPC, tx *solana.Transaction, opts SendOptions) (solana.Signature, error) {
	if opts.Commitment == "" {
		opts.Commitment = rpc.CommitmentConfirmed
	}

	if opts.Simulate {
		out, err := rpcClient.SimulateTransactionWithOpts(
			ctx,
			tx,
			&rpc.SimulateTransactionOpts{
				SigVerify:  false,
				Commitment: opts.Commitment,
			})
		if err != nil {
			return solana.Signature{}, errors.Wrap(err, "failed to simulate transaction")
		}
		if out != nil && out.Value != nil && out.Value.Err != nil {
			return solana.Signature{}, errors.Wrapf(ErrSimulationFailed, "%v", out.Value.Err)
		}
		if len(tx.Signatures) == 0 {
			return solana.Signature{}, nil
		}
		return tx.Signatures[0], nil
	}

	sig, err := rpcClient.SendTransactionWithOpts(
		ctx,
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       false,
			PreflightCommitment: opts.Commitment,
		},
	)
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to send transaction")
	}

	if opts.WsClient != nil {
		confirmed, err := sendandconfirmtransaction.WaitForConfirmation(ctx, opts.WsClient, sig, nil)
		if confirmed {
			if err != nil {
				return sig, errors.Wrapf(ErrTransactionFailed, "%v", err)
			}
			return sig, nil
		}
	}

	return sig, WaitForSignature(ctx, rpcClient, sig, opts.Commitment, opts.PollInterval)
}

// WaitForSignature polls the signature status until it reaches commitment,
// fails on chain, or ctx is done.
func WaitForSignature(
	ctx context.Context,
	rpcClient TransactionRPC,
	sig solana.Signature,
	commitment rpc.CommitmentType,
	interval time.Duration,
) error {
	if interval <= 0 {
		interval = defaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		statusResp, err := rpcClient.GetSignatureStatuses(ctx, true, sig)
		if err != nil {
			return errors.Wrap(err, "rpc GetSignatureStatuses error")
		}
		if len(statusResp.Value) > 0 && statusResp.Value[0] != nil {
			status := statusResp.Value[0]
			if status.Err != nil {
				return errors.Wrapf(ErrTransactionFailed, "%v", status.Err)
			}
			if reached(status.ConfirmationStatus, commitment) {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return errors.Wrap(ErrTransactionDropped, fmt.Sprintf("%s: %v", sig, ctx.Err()))
		case <-ticker.C:
		}
	}
}

func reached(status rpc.ConfirmationStatusType, commitment rpc.CommitmentType) bool {
	switch status {
	case rpc.ConfirmationStatusFinalized:
		return true
	case rpc.ConfirmationStatusConfirmed:
		return commitment != rpc.CommitmentFinalized
	case rpc.ConfirmationStatusProcessed:
		return commitment == rpc.CommitmentProcessed
	default:
		return false
	}
}
