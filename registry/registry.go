// Package registry is the client of the RWA template program, which keeps
// one registry record per tokenized security.
package registry

import (
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/sirupsen/logrus"

	rwa "github.com/krazyTry/rwa-registry-go/gen/rwa_template"
	"github.com/krazyTry/rwa-registry-go/metadata"
	solanago "github.com/krazyTry/rwa-registry-go/solana"
)

// RPC is the read side of *rpc.Client used by the registry.
type RPC interface {
	solanago.ProgramAccountsRPC
	solanago.AccountsRPC
}

// Registry is the client of one deployment of the registry program.
type Registry struct {
	log *logrus.Entry
	rpc RPC

	programID   solana.PublicKey
	commitment  rpc.CommitmentType
	cluster     string
	concurrency int

	metadata  metadata.Client
	submitter Submitter
	now       func() time.Time
}

type Option func(*Registry)

func WithProgramID(programID solana.PublicKey) Option {
	return func(r *Registry) {
		if !programID.IsZero() {
			r.programID = programID
		}
	}
}

func WithCommitment(commitment rpc.CommitmentType) Option {
	return func(r *Registry) {
		if commitment != "" {
			r.commitment = commitment
		}
	}
}

// WithCluster sets the cluster name used in explorer links.
func WithCluster(cluster string) Option {
	return func(r *Registry) {
		r.cluster = cluster
	}
}

// WithMetadataClient enables token metadata lookups. Without it every
// enriched record is a placeholder.
func WithMetadataClient(client metadata.Client) Option {
	return func(r *Registry) {
		r.metadata = client
	}
}

// WithConcurrency bounds the number of metadata lookups in flight.
func WithConcurrency(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

func WithSubmitter(submitter Submitter) Option {
	return func(r *Registry) {
		r.submitter = submitter
	}
}

// WithClock replaces the clock used to assign asset ids.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

func New(rpcClient RPC, opts ...Option) *Registry {
	r := &Registry{
		log:         logrus.StandardLogger().WithField("type", "registry/client"),
		rpc:         rpcClient,
		programID:   rwa.ProgramID,
		commitment:  DefaultCommitment,
		cluster:     DefaultCluster,
		concurrency: DefaultConcurrency,
		now:         time.Now,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *Registry) ProgramID() solana.PublicKey {
	return r.programID
}

func (r *Registry) Cluster() string {
	return r.cluster
}
