package registry

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// CreateAssetResult describes a submitted create asset transaction.
type CreateAssetResult struct {
	Signature     solana.Signature
	ID            uint64
	AssetRegistry solana.PublicKey
	Mint          solana.PublicKey
	ExplorerURL   string
}

// NextAssetID returns the id assigned to a new asset: the current time in
// milliseconds. Two creations in the same millisecond collide and the
// second is rejected by the program; no lookup of existing ids is made.
func (r *Registry) NextAssetID() uint64 {
	return uint64(r.now().UnixMilli())
}

// CreateAsset validates draft, then registers the asset and mints its
// initial supply to owner in a single transaction. draft is never modified,
// so a failed attempt can be corrected and retried.
func (r *Registry) CreateAsset(ctx context.Context, owner solana.PublicKey, draft AssetDraft) (*CreateAssetResult, error) {
	if r.submitter == nil {
		return nil, ErrSubmitterRequired
	}
	if owner.IsZero() {
		return nil, ErrOwnerRequired
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	draft = draft.Normalize()

	supply, err := draft.SupplyBaseUnits()
	if err != nil {
		return nil, err
	}

	id := r.NextAssetID()
	createIx, accounts, err := BuildCreateAssetInstruction(CreateAssetParams{
		ProgramID: r.programID,
		Owner:     owner,
		ID:        id,
		Registry:  draft.Registry,
		Token:     draft.Token,
	})
	if err != nil {
		return nil, err
	}
	mintIx, err := BuildMintSupplyInstruction(MintSupplyParams{
		ProgramID:       r.programID,
		Owner:           owner,
		AssetRegistryID: id,
		Mint:            accounts.Mint,
		Amount:          supply,
	})
	if err != nil {
		return nil, err
	}

	sig, err := r.submitter.Submit(ctx, []solana.Instruction{createIx, mintIx})
	if err != nil {
		return nil, err
	}

	r.log.WithField("id", id).WithField("signature", sig).Info("asset created")
	return &CreateAssetResult{
		Signature:     sig,
		ID:            id,
		AssetRegistry: accounts.AssetRegistry,
		Mint:          accounts.Mint,
		ExplorerURL:   ExplorerURL(sig, r.cluster),
	}, nil
}

// MintSupply mints amount base units of the asset registered under id to
// the owner's associated token account.
func (r *Registry) MintSupply(ctx context.Context, owner solana.PublicKey, id uint64, amount uint64) (solana.Signature, error) {
	if r.submitter == nil {
		return solana.Signature{}, ErrSubmitterRequired
	}
	ix, err := BuildMintSupplyInstruction(MintSupplyParams{
		ProgramID:       r.programID,
		Owner:           owner,
		AssetRegistryID: id,
		Amount:          amount,
	})
	if err != nil {
		return solana.Signature{}, err
	}
	return r.submitter.Submit(ctx, []solana.Instruction{ix})
}
