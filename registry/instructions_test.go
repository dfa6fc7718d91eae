package registry

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rwa "github.com/krazyTry/rwa-registry-go/gen/rwa_template"
)

func testCreateParams() CreateAssetParams {
	return CreateAssetParams{
		Owner: testOwner,
		ID:    1769315914076,
		Registry: RegistryFields{
			AssetSymbol: "WAAPL",
			AssetIsin:   "VE-WAAPL-001",
			LegalDocUri: "https://example.com/waapl.pdf",
			AssetType:   rwa.AssetTypeEquity,
		},
		Token: TokenFields{
			Name:     "Wrapped Apple Inc.",
			Symbol:   "WAAPL",
			Decimals: 6,
		},
	}
}

func roles(ix solana.Instruction) []AccountRole {
	out := make([]AccountRole, 0)
	for _, meta := range ix.Accounts() {
		out = append(out, RoleOf(meta))
	}
	return out
}

func TestBuildCreateAssetInstruction(t *testing.T) {
	params := testCreateParams()

	ix, accounts, err := BuildCreateAssetInstruction(params)
	require.NoError(t, err)
	assert.Equal(t, rwa.ProgramID, ix.ProgramID())

	registry, _, err := DeriveAssetRegistryAddress(rwa.ProgramID, testOwner, params.ID)
	require.NoError(t, err)
	mint, _, err := DeriveMintAddress(rwa.ProgramID, params.ID)
	require.NoError(t, err)
	metadata, _, err := DeriveMetadataAddress(mint)
	require.NoError(t, err)

	assert.Equal(t, CreateAssetAccounts{AssetRegistry: registry, Mint: mint, Metadata: metadata}, accounts)

	metas := ix.Accounts()
	require.Len(t, metas, 9)
	expectedKeys := []solana.PublicKey{
		registry,
		mint,
		metadata,
		testOwner,
		testOwner,
		solana.SystemProgramID,
		solana.TokenProgramID,
		solana.TokenMetadataProgramID,
		solana.SysVarRentPubkey,
	}
	for i, meta := range metas {
		assert.Equal(t, expectedKeys[i], meta.PublicKey, "account %d", i)
	}
	assert.Equal(t, []AccountRole{
		RoleWritable,
		RoleWritable,
		RoleWritable,
		RoleReadonlySigner,
		RoleWritableSigner,
		RoleReadonly,
		RoleReadonly,
		RoleReadonly,
		RoleReadonly,
	}, roles(ix))

	data, err := ix.Data()
	require.NoError(t, err)
	args, err := rwa.ParseInstruction_InitializeAsset(data)
	require.NoError(t, err)
	assert.Equal(t, params.ID, args.Id)
	assert.Equal(t, "VE-WAAPL-001", args.AssetIsin)
	assert.Equal(t, "WAAPL", args.AssetSymbol)
	assert.Equal(t, rwa.AssetTypeEquity, args.AssetType)
	assert.Equal(t, "Wrapped Apple Inc.", args.Metadata.Name)
	assert.Equal(t, uint8(6), args.Metadata.Decimals)
}

func TestBuildCreateAssetInstruction_SeparatePayer(t *testing.T) {
	params := testCreateParams()
	params.Payer = solana.NewWallet().PublicKey()

	ix, _, err := BuildCreateAssetInstruction(params)
	require.NoError(t, err)

	metas := ix.Accounts()
	assert.Equal(t, testOwner, metas[3].PublicKey)
	assert.Equal(t, params.Payer, metas[4].PublicKey)
}

func TestBuildCreateAssetInstruction_Errors(t *testing.T) {
	params := testCreateParams()
	params.Owner = solana.PublicKey{}
	_, _, err := BuildCreateAssetInstruction(params)
	assert.Equal(t, ErrOwnerRequired, err)

	params = testCreateParams()
	params.Registry.AssetType = 7
	_, _, err = BuildCreateAssetInstruction(params)
	assert.True(t, errors.Is(err, ErrInvalidAssetType))
}

func TestBuildMintSupplyInstruction(t *testing.T) {
	ix, err := BuildMintSupplyInstruction(MintSupplyParams{
		Owner:           testOwner,
		AssetRegistryID: 1769315914076,
		Amount:          1_000_000,
	})
	require.NoError(t, err)

	metas := ix.Accounts()
	require.Len(t, metas, 9)
	assert.Equal(t, []AccountRole{
		RoleReadonly,
		RoleWritable,
		RoleWritable,
		RoleReadonlySigner,
		RoleWritableSigner,
		RoleReadonly,
		RoleReadonly,
		RoleReadonly,
		RoleReadonly,
	}, roles(ix))

	ata, _, err := solana.FindAssociatedTokenAddress(testOwner, metas[1].PublicKey)
	require.NoError(t, err)
	assert.Equal(t, ata, metas[2].PublicKey)
	assert.Equal(t, solana.TokenProgramID, metas[5].PublicKey)
	assert.Equal(t, solana.SPLAssociatedTokenAccountProgramID, metas[6].PublicKey)
	assert.Equal(t, solana.SystemProgramID, metas[7].PublicKey)
	assert.Equal(t, solana.SysVarRentPubkey, metas[8].PublicKey)

	data, err := ix.Data()
	require.NoError(t, err)
	amount, err := rwa.ParseInstruction_MintSupply(data)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000), amount)
}

func TestBuildMintSupplyInstruction_CorrelatesWithCreate(t *testing.T) {
	params := testCreateParams()
	_, accounts, err := BuildCreateAssetInstruction(params)
	require.NoError(t, err)

	ix, err := BuildMintSupplyInstruction(MintSupplyParams{
		Owner:           testOwner,
		AssetRegistryID: params.ID,
		Mint:            accounts.Mint,
		Amount:          1,
	})
	require.NoError(t, err)

	metas := ix.Accounts()
	assert.Equal(t, accounts.AssetRegistry, metas[0].PublicKey)
	assert.Equal(t, accounts.Mint, metas[1].PublicKey)
}

func TestBuildMintSupplyInstruction_Errors(t *testing.T) {
	_, err := BuildMintSupplyInstruction(MintSupplyParams{AssetRegistryID: 1, Amount: 1})
	assert.Equal(t, ErrOwnerRequired, err)

	_, err = BuildMintSupplyInstruction(MintSupplyParams{Owner: testOwner, AssetRegistryID: 1})
	assert.Equal(t, ErrZeroAmount, err)

	otherMint, _, err := DeriveMintAddress(rwa.ProgramID, 2)
	require.NoError(t, err)
	_, err = BuildMintSupplyInstruction(MintSupplyParams{
		Owner:           testOwner,
		AssetRegistryID: 1,
		Mint:            otherMint,
		Amount:          1,
	})
	assert.True(t, errors.Is(err, ErrMintMismatch))
}

func TestRoleOf(t *testing.T) {
	key := solana.NewWallet().PublicKey()
	assert.Equal(t, RoleReadonly, RoleOf(solana.NewAccountMeta(key, false, false)))
	assert.Equal(t, RoleWritable, RoleOf(solana.NewAccountMeta(key, true, false)))
	assert.Equal(t, RoleReadonlySigner, RoleOf(solana.NewAccountMeta(key, false, true)))
	assert.Equal(t, RoleWritableSigner, RoleOf(solana.NewAccountMeta(key, true, true)))

	assert.True(t, RoleWritableSigner.IsSigner())
	assert.True(t, RoleWritableSigner.IsWritable())
	assert.False(t, RoleReadonlySigner.IsWritable())
	assert.Equal(t, "readonly-signer", RoleReadonlySigner.String())
}
