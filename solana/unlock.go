package solana

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/AlexZinkM/sentinel/internal/crypto"
	"github.com/AlexZinkM/sentinel/internal/model"
	"github.com/AlexZinkM/sentinel/internal/store"
)

// verifierPlaintext is sealed at first unlock so later unlocks can reject a
// wrong password before any wallet is touched.
const verifierPlaintext = "sentinel/master-key-verifier/v1"

// Unlock returns a WalletManager for password.
//
// On first run it generates the installation salt and stores it, together with
// the Argon2id parameters and a verifier envelope, in params. Later runs derive
// with the stored salt and parameters and fail with model.ErrAuthentication if
// the password is wrong.
// password must be []byte for security (caller should zero it after use)
func Unlock(ctx context.Context, params store.ParamsStore, password []byte) (*WalletManager, error) {
	return unlock(ctx, params, password, crypto.DefaultKDFParams)
}

func unlock(ctx context.Context, params store.ParamsStore, password []byte, kdf crypto.KDFParams) (*WalletManager, error) {
	stored, err := params.LoadKDFParams(ctx)
	switch {
	case err == nil:
		return unlockExisting(stored, password)
	case errors.Is(err, model.ErrNotFound):
		return initialize(ctx, params, password, kdf)
	default:
		return nil, fmt.Errorf("failed to load key derivation parameters: %w", err)
	}
}

func initialize(ctx context.Context, params store.ParamsStore, password []byte, kdf crypto.KDFParams) (*WalletManager, error) {
	salt, err := crypto.NewSalt()
	if err != nil {
		return nil, err
	}

	m, err := newWalletManager(password, salt, kdf)
	if err != nil {
		return nil, err
	}

	verifier, err := crypto.Seal(m.key, []byte(verifierPlaintext))
	if err != nil {
		m.Close()
		return nil, fmt.Errorf("failed to seal verifier: %w", err)
	}

	err = params.SaveKDFParams(ctx, &model.KDFParams{
		Algorithm: crypto.AlgorithmArgon2id,
		Salt:      salt,
		TimeCost:  kdf.Time,
		MemoryKiB: kdf.MemoryKiB,
		Threads:   kdf.Threads,
		Verifier:  verifier.Bytes(),
	})
	if err != nil {
		m.Close()
		return nil, err
	}
	return m, nil
}

func unlockExisting(stored *model.KDFParams, password []byte) (*WalletManager, error) {
	if stored.Algorithm != crypto.AlgorithmArgon2id {
		return nil, model.NewError(model.KindDerivation,
			fmt.Sprintf("unsupported key derivation algorithm %q", stored.Algorithm), nil)
	}

	m, err := newWalletManager(password, stored.Salt, crypto.KDFParams{
		Time:      stored.TimeCost,
		MemoryKiB: stored.MemoryKiB,
		Threads:   stored.Threads,
	})
	if err != nil {
		return nil, err
	}

	env, err := crypto.ParseEnvelope(stored.Verifier)
	if err != nil {
		m.Close()
		return nil, err
	}
	plaintext, err := crypto.Open(m.key, env)
	if err != nil {
		m.Close()
		return nil, model.NewError(model.KindAuthentication, "invalid password", nil)
	}
	if subtle.ConstantTimeCompare(plaintext, []byte(verifierPlaintext)) != 1 {
		m.Close()
		return nil, model.NewError(model.KindAuthentication, "invalid password", nil)
	}
	return m, nil
}
