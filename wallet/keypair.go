package wallet

import (
	"context"
	"encoding/json"
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

const KeypairConnectorID = "keypair"

// KeypairSigner signs with an in-memory private key.
type KeypairSigner struct {
	key solana.PrivateKey
}

func NewKeypairSigner(key solana.PrivateKey) *KeypairSigner {
	return &KeypairSigner{key: key}
}

func (k *KeypairSigner) PublicKey() solana.PublicKey {
	return k.key.PublicKey()
}

func (k *KeypairSigner) SignMessage(ctx context.Context, message []byte) (solana.Signature, error) {
	if err := ctx.Err(); err != nil {
		return solana.Signature{}, err
	}
	return k.key.Sign(message)
}

// KeypairConnector loads a solana-keygen JSON keypair file on connect.
type KeypairConnector struct {
	path string
}

func NewKeypairConnector(path string) *KeypairConnector {
	return &KeypairConnector{path: path}
}

func (c *KeypairConnector) ID() string {
	return KeypairConnectorID
}

func (c *KeypairConnector) Label() string {
	return "Keypair file (" + c.path + ")"
}

func (c *KeypairConnector) Connect(ctx context.Context) (Signer, error) {
	key, err := LoadKeypair(c.path)
	if err != nil {
		return nil, err
	}
	return NewKeypairSigner(key), nil
}

// LoadKeypair reads a keypair stored as a JSON array of 64 bytes.
func LoadKeypair(path string) (solana.PrivateKey, error) {
	keypairData, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read keypair")
	}

	var secretKey []byte
	if err := json.Unmarshal(keypairData, &secretKey); err != nil {
		return nil, errors.Wrap(err, "failed to parse keypair")
	}
	if len(secretKey) != 64 {
		return nil, errors.Errorf("keypair must hold 64 bytes, got %d", len(secretKey))
	}

	key := solana.PrivateKey(secretKey)
	if _, err := solana.WalletFromPrivateKeyBase58(key.String()); err != nil {
		return nil, errors.Wrap(err, "invalid keypair")
	}
	return key, nil
}

// StaticConnector hands out a Signer that already exists.
type StaticConnector struct {
	id     string
	label  string
	signer Signer
}

func NewStaticConnector(id, label string, signer Signer) *StaticConnector {
	return &StaticConnector{id: id, label: label, signer: signer}
}

func (c *StaticConnector) ID() string    { return c.id }
func (c *StaticConnector) Label() string { return c.label }

func (c *StaticConnector) Connect(ctx context.Context) (Signer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.signer, nil
}

// ApprovalFunc asks the wallet holder to approve signing message.
type ApprovalFunc func(ctx context.Context, signer solana.PublicKey, message []byte) (bool, error)

// ConfirmingSigner asks for approval before every signature.
type ConfirmingSigner struct {
	Signer
	approve ApprovalFunc
}

func NewConfirmingSigner(signer Signer, approve ApprovalFunc) *ConfirmingSigner {
	return &ConfirmingSigner{Signer: signer, approve: approve}
}

func (c *ConfirmingSigner) SignMessage(ctx context.Context, message []byte) (solana.Signature, error) {
	ok, err := c.approve(ctx, c.PublicKey(), message)
	if err != nil {
		return solana.Signature{}, err
	}
	if !ok {
		return solana.Signature{}, ErrUserRejected
	}
	return c.Signer.SignMessage(ctx, message)
}
