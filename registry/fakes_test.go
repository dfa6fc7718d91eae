package registry

import (
	"context"
	"encoding/binary"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/krazyTry/rwa-registry-go/metadata"
)

// fakeChain serves program accounts and mint accounts from memory.
type fakeChain struct {
	programAccounts rpc.GetProgramAccountsResult
	programErr      error
	mints           map[solana.PublicKey][]byte

	lastFilters []rpc.RPCFilter
	mintReads   int
}

func (f *fakeChain) GetProgramAccountsWithOpts(ctx context.Context, programID solana.PublicKey, opts *rpc.GetProgramAccountsOpts) (rpc.GetProgramAccountsResult, error) {
	if f.programErr != nil {
		return nil, f.programErr
	}
	f.lastFilters = opts.Filters
	return f.programAccounts, nil
}

func (f *fakeChain) GetMultipleAccountsWithOpts(ctx context.Context, accounts []solana.PublicKey, opts *rpc.GetMultipleAccountsOpts) (*rpc.GetMultipleAccountsResult, error) {
	f.mintReads++
	out := &rpc.GetMultipleAccountsResult{Value: make([]*rpc.Account, len(accounts))}
	for i, key := range accounts {
		if data, ok := f.mints[key]; ok {
			out.Value[i] = &rpc.Account{Owner: solana.TokenProgramID, Data: rpc.DataBytesOrJSONFromBytes(data)}
		}
	}
	return out, nil
}

func (f *fakeChain) addRegistry(address solana.PublicKey, data []byte) {
	f.programAccounts = append(f.programAccounts, &rpc.KeyedAccount{
		Pubkey:  address,
		Account: &rpc.Account{Data: rpc.DataBytesOrJSONFromBytes(data)},
	})
}

func encodeMint(authority solana.PublicKey, supply uint64, decimals uint8) []byte {
	data := make([]byte, 82)
	binary.LittleEndian.PutUint32(data[0:4], 1)
	copy(data[4:36], authority[:])
	binary.LittleEndian.PutUint64(data[36:44], supply)
	data[44] = decimals
	data[45] = 1
	return data
}

// fakeMetadata answers GetAsset from a map; unknown mints fail.
type fakeMetadata struct {
	mu     sync.Mutex
	assets map[solana.PublicKey]*metadata.Asset
	errs   map[solana.PublicKey]error
	calls  int
}

func (f *fakeMetadata) GetAsset(ctx context.Context, mint solana.PublicKey) (*metadata.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err, ok := f.errs[mint]; ok {
		return nil, err
	}
	if asset, ok := f.assets[mint]; ok {
		return asset, nil
	}
	return nil, metadata.ErrAssetNotFound
}

type fakeSubmitter struct {
	sig  solana.Signature
	err  error
	sent [][]solana.Instruction
}

func (f *fakeSubmitter) Submit(ctx context.Context, instructions []solana.Instruction) (solana.Signature, error) {
	f.sent = append(f.sent, instructions)
	if f.err != nil {
		return solana.Signature{}, f.err
	}
	return f.sig, nil
}

// fakeTxRPC confirms every transaction it receives.
type fakeTxRPC struct {
	sendErr error
	sent    []*solana.Transaction
}

func (f *fakeTxRPC) GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error) {
	return &rpc.GetLatestBlockhashResult{Value: &rpc.LatestBlockhashResult{Blockhash: solana.Hash{7}}}, nil
}

func (f *fakeTxRPC) SendTransactionWithOpts(ctx context.Context, tx *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error) {
	if f.sendErr != nil {
		return solana.Signature{}, f.sendErr
	}
	f.sent = append(f.sent, tx)
	return tx.Signatures[0], nil
}

func (f *fakeTxRPC) SimulateTransactionWithOpts(ctx context.Context, tx *solana.Transaction, opts *rpc.SimulateTransactionOpts) (*rpc.SimulateTransactionResponse, error) {
	return &rpc.SimulateTransactionResponse{Value: &rpc.SimulateTransactionResult{}}, nil
}

func (f *fakeTxRPC) GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, sigs ...solana.Signature) (*rpc.GetSignatureStatusesResult, error) {
	return &rpc.GetSignatureStatusesResult{Value: []*rpc.SignatureStatusesResult{
		{ConfirmationStatus: rpc.ConfirmationStatusConfirmed},
	}}, nil
}
