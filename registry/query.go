package registry

import (
	"bytes"
	"context"
	"sort"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	rwa "github.com/krazyTry/rwa-registry-go/gen/rwa_template"
	solanago "github.com/krazyTry/rwa-registry-go/solana"
)

// authorityOffset is where AssetRegistry.Authority starts in account data.
var authorityOffset = solanago.ComputeStructOffset(&rwa.AssetRegistry{}, "Authority")

// ListRegistryRecords returns every registry record of the program, ordered
// by id. Accounts that are not 320 bytes or fail to decode are skipped.
func (r *Registry) ListRegistryRecords(ctx context.Context) ([]AssetRegistryRecord, error) {
	return r.listRegistryRecords(ctx, nil)
}

// ListRegistryRecordsByAuthority returns the records created by authority.
func (r *Registry) ListRegistryRecordsByAuthority(ctx context.Context, authority solana.PublicKey) ([]AssetRegistryRecord, error) {
	if authority.IsZero() {
		return nil, ErrOwnerRequired
	}
	return r.listRegistryRecords(ctx, &solanago.Filter{Owner: authority, Offset: authorityOffset})
}

func (r *Registry) listRegistryRecords(ctx context.Context, filter *solanago.Filter) ([]AssetRegistryRecord, error) {
	accounts, err := r.rpc.GetProgramAccountsWithOpts(ctx, r.programID, &rpc.GetProgramAccountsOpts{
		Commitment: r.commitment,
		Encoding:   solana.EncodingBase64,
		Filters:    solanago.CreateProgramAccountFilter(AccountKeyAssetRegistry, AssetRegistryAccountSize, filter),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get program accounts")
	}

	records := make([]AssetRegistryRecord, 0, len(accounts))
	skipped := 0
	for _, acc := range accounts {
		if acc == nil || acc.Account == nil || acc.Account.Data == nil {
			skipped++
			continue
		}

		data := acc.Account.Data.GetBinary()
		if len(data) != AssetRegistryAccountSize {
			skipped++
			continue
		}

		parsed, err := rwa.ParseAccount_AssetRegistry(data)
		if err != nil {
			r.log.WithError(err).WithField("address", acc.Pubkey).Warn("skipping undecodable registry account")
			skipped++
			continue
		}
		if filter != nil && !parsed.Authority.Equals(filter.Owner) {
			skipped++
			continue
		}

		records = append(records, AssetRegistryRecord{
			Address:   acc.Pubkey,
			ProgramID: r.programID,
			Data:      *parsed,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Data.Id != records[j].Data.Id {
			return records[i].Data.Id < records[j].Data.Id
		}
		return bytes.Compare(records[i].Address[:], records[j].Address[:]) < 0
	})

	r.log.WithFields(logrus.Fields{
		"fetched": len(accounts),
		"decoded": len(records),
		"skipped": skipped,
	}).Debug("listed registry records")

	return records, nil
}

// EnrichWithTokenMetadata resolves token metadata for every record. The
// result has one entry per record, in input order. A failed lookup yields a
// placeholder carrying the registry symbol and whatever the mint account
// reports; its Err field holds the cause. The call itself never fails.
func (r *Registry) EnrichWithTokenMetadata(ctx context.Context, records []AssetRegistryRecord) []TokenMetadataRecord {
	out := make([]TokenMetadataRecord, len(records))

	if r.metadata == nil {
		for i := range records {
			out[i] = placeholder(records[i], ErrMetadataDisabled)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(r.concurrency)
		for i := range records {
			i := i
			g.Go(func() error {
				out[i] = r.lookup(ctx, records[i])
				return nil
			})
		}
		_ = g.Wait()
	}

	r.fillFromMintAccounts(ctx, out)
	return out
}

func (r *Registry) lookup(ctx context.Context, record AssetRegistryRecord) TokenMetadataRecord {
	asset, err := r.metadata.GetAsset(ctx, record.Data.Mint)
	if err != nil {
		r.log.WithError(err).WithFields(logrus.Fields{
			"mint":        record.Data.Mint,
			"registry_id": record.Data.Id,
		}).Warn("token metadata lookup failed")
		return placeholder(record, err)
	}

	supply := asset.UISupply
	return TokenMetadataRecord{
		Mint:            record.Data.Mint,
		Symbol:          asset.Symbol,
		Name:            asset.Name,
		Decimals:        asset.Decimals,
		Supply:          &supply,
		Authority:       asset.MintAuthority,
		ProgramID:       record.ProgramID,
		AssetRegistryID: record.Data.Id,
	}
}

func placeholder(record AssetRegistryRecord, cause error) TokenMetadataRecord {
	return TokenMetadataRecord{
		Mint:            record.Data.Mint,
		Symbol:          record.Data.AssetSymbol,
		Name:            record.Data.AssetSymbol,
		ProgramID:       record.ProgramID,
		AssetRegistryID: record.Data.Id,
		Err:             cause,
	}
}

// fillFromMintAccounts completes placeholders with decimals, supply and
// authority read from the mint accounts.
func (r *Registry) fillFromMintAccounts(ctx context.Context, out []TokenMetadataRecord) {
	var pending []int
	for i := range out {
		if out[i].Placeholder() {
			pending = append(pending, i)
		}
	}

	for start := 0; start < len(pending); start += maxAccountsPerRequest {
		end := start + maxAccountsPerRequest
		if end > len(pending) {
			end = len(pending)
		}
		chunk := pending[start:end]

		mints := make([]solana.PublicKey, len(chunk))
		for i, idx := range chunk {
			mints[i] = out[idx].Mint
		}

		tokens, err := solanago.GetMultipleToken(ctx, r.rpc, r.commitment, mints...)
		if err != nil {
			r.log.WithError(err).WithField("count", len(mints)).Warn("failed to read mint accounts")
			continue
		}
		for i, idx := range chunk {
			token := tokens[i]
			if token == nil {
				continue
			}
			supply := token.UISupply()
			out[idx].Decimals = token.Decimals
			out[idx].Supply = &supply
			out[idx].Authority = token.MintAuthorityKey()
		}
	}
}
