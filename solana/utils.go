package solana

import (
	"bytes"
	"context"
	"crypto/sha256"
	"reflect"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
)

func GetLatestBlockhash(ctx context.Context, rpcClient BlockhashRPC, commitment rpc.CommitmentType) (solana.Hash, error) {
	recent, err := rpcClient.GetLatestBlockhash(ctx, commitment)
	if err != nil {
		return solana.Hash{}, errors.Wrap(err, "failed to get latest blockhash")
	}
	return recent.Value.Blockhash, nil
}

// AccountDiscriminator returns the 8-byte anchor prefix of account type name.
func AccountDiscriminator(name string) []byte {
	hash := sha256.Sum256([]byte("account:" + name))
	var out [8]byte
	copy(out[:], hash[:8])
	return out[:]
}

// ComputeStructOffset returns the byte offset of field o inside the
// borsh-encoded account x, discriminator included. Fields preceding o must
// be fixed size.
func ComputeStructOffset(x any, o string) uint64 {
	t := reflect.TypeOf(x).Elem()
	fields := make([]reflect.StructField, 0)

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Name == o {
			break
		}
		fields = append(fields, f)
	}

	newType := reflect.StructOf(fields)
	newValue := reflect.New(newType).Elem()

	buf__ := new(bytes.Buffer)
	enc__ := binary.NewBorshEncoder(buf__)
	enc__.Encode(newValue.Interface())

	// account discriminator offset = 8
	return uint64(buf__.Len()) + 8
}

// CreateProgramAccountFilter matches accounts of type key with the exact
// dataSize, and optionally a key at a fixed offset.
func CreateProgramAccountFilter(key string, dataSize uint64, filter *Filter) []rpc.RPCFilter {
	filters := []rpc.RPCFilter{
		{DataSize: dataSize},
		{
			Memcmp: &rpc.RPCFilterMemcmp{
				Offset: 0,
				Bytes:  AccountDiscriminator(key),
			},
		},
	}

	if filter != nil {
		filters = append(filters, rpc.RPCFilter{
			Memcmp: &rpc.RPCFilterMemcmp{
				Offset: filter.Offset,
				Bytes:  filter.Owner[:],
			},
		})
	}
	return filters
}

func GetMultipleAccountInfo(ctx context.Context, rpcClient AccountsRPC, commitment rpc.CommitmentType, accounts []solana.PublicKey) (*rpc.GetMultipleAccountsResult, error) {
	return rpcClient.GetMultipleAccountsWithOpts(ctx, accounts, &rpc.GetMultipleAccountsOpts{Commitment: commitment, Encoding: solana.EncodingBase64})
}

// GetMultipleToken loads mint accounts. Entries for missing or undecodable
// accounts are nil; the result has one entry per requested mint.
func GetMultipleToken(ctx context.Context, rpcClient AccountsRPC, commitment rpc.CommitmentType, tokens ...solana.PublicKey) ([]*Token, error) {
	outs, err := GetMultipleAccountInfo(ctx, rpcClient, commitment, tokens)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get mint accounts")
	}
	list := make([]*Token, len(tokens))
	for i, out := range outs.Value {
		if out == nil || i >= len(list) {
			continue
		}

		token, err := new(TokenLayout).Decode(out.Data.GetBinary())
		if err != nil {
			continue
		}
		token.Address = tokens[i]
		token.Owner = out.Owner

		list[i] = token
	}
	return list, nil
}
