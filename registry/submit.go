package registry

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	solanago "github.com/krazyTry/rwa-registry-go/solana"
	"github.com/krazyTry/rwa-registry-go/wallet"
)

// Submitter turns an ordered list of instructions into one signed,
// broadcast transaction.
type Submitter interface {
	Submit(ctx context.Context, instructions []solana.Instruction) (solana.Signature, error)
}

// WalletSubmitter signs with the signer of a wallet session, which also pays
// the fee. Failures are returned as is; nothing is retried.
type WalletSubmitter struct {
	log     *logrus.Entry
	session *wallet.Session
	rpc     solanago.TransactionRPC
	opts    solanago.SendOptions
}

type SubmitterOption func(*WalletSubmitter)

// WithWsClient waits for confirmation over a websocket subscription.
func WithWsClient(client *ws.Client) SubmitterOption {
	return func(s *WalletSubmitter) {
		s.opts.WsClient = client
	}
}

// WithSimulation only simulates transactions.
func WithSimulation() SubmitterOption {
	return func(s *WalletSubmitter) {
		s.opts.Simulate = true
	}
}

func WithSubmitCommitment(commitment rpc.CommitmentType) SubmitterOption {
	return func(s *WalletSubmitter) {
		if commitment != "" {
			s.opts.Commitment = commitment
		}
	}
}

func WithPollInterval(interval time.Duration) SubmitterOption {
	return func(s *WalletSubmitter) {
		s.opts.PollInterval = interval
	}
}

func NewWalletSubmitter(session *wallet.Session, rpcClient solanago.TransactionRPC, opts ...SubmitterOption) *WalletSubmitter {
	s := &WalletSubmitter{
		log:     logrus.StandardLogger().WithField("type", "registry/submitter"),
		session: session,
		rpc:     rpcClient,
		opts:    solanago.SendOptions{Commitment: DefaultCommitment},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *WalletSubmitter) Submit(ctx context.Context, instructions []solana.Instruction) (solana.Signature, error) {
	if len(instructions) == 0 {
		return solana.Signature{}, ErrNoInstructions
	}
	signer, err := s.session.Signer()
	if err != nil {
		return solana.Signature{}, err
	}
	payer := signer.PublicKey()

	tx, err := solanago.BuildTransaction(ctx, s.rpc, s.opts.Commitment, instructions, payer)
	if err != nil {
		return solana.Signature{}, err
	}

	err = solanago.SignTransaction(ctx, tx, func(ctx context.Context, message []byte, signers []solana.PublicKey) ([]solana.Signature, error) {
		signatures := make([]solana.Signature, 0, len(signers))
		for _, key := range signers {
			if !key.Equals(payer) {
				return nil, errors.Wrapf(solanago.ErrMissingSignature, "%s", key)
			}
			sig, err := signer.SignMessage(ctx, message)
			if err != nil {
				return nil, err
			}
			signatures = append(signatures, sig)
		}
		return signatures, nil
	})
	if err != nil {
		return solana.Signature{}, err
	}

	log := s.log.WithFields(logrus.Fields{
		"payer":        payer,
		"instructions": len(instructions),
		"simulate":     s.opts.Simulate,
	})
	log.Info("submitting transaction")

	sig, err := solanago.SendTransaction(ctx, s.rpc, tx, s.opts)
	if err != nil {
		log.WithError(err).WithField("signature", sig).Warn("transaction failed")
		return sig, err
	}
	log.WithField("signature", sig).Info("transaction confirmed")
	return sig, nil
}
