package solana

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/sentinel/internal/crypto"
	"github.com/AlexZinkM/sentinel/internal/model"
	"github.com/AlexZinkM/sentinel/internal/store"
)

// ImportCWT moves a wallet from a legacy .cwt file into the credential store,
// re-sealed under this manager's master key.
// cwtPassword must be []byte for security (caller should zero it after use)
func (m *WalletManager) ImportCWT(ctx context.Context, credentials store.CredentialStore, filePath string, cwtPassword []byte, label *string) (*model.WalletRecord, error) {
	cwtFile, walletData, err := crypto.DecryptCWT(filePath, cwtPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt wallet: %w", err)
	}
	defer clear(walletData.PrivateKey)

	raw := walletData.PrivateKey
	if len(raw) != KeypairLen {
		// oldest files stored only the 32-byte seed
		raw = expandSeed(raw)
		defer clear(raw)
	}

	kp, ok := newKeypair(raw)
	if !ok {
		return nil, model.NewError(model.KindEncoding, "legacy wallet holds an invalid keypair", nil)
	}
	defer kp.Zero()

	if cwtFile.Address != "" && cwtFile.Address != kp.PublicKey().String() {
		return nil, model.NewError(model.KindEncoding, "private key does not match address", nil)
	}

	return m.Register(ctx, credentials, kp, label)
}
