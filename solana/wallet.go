package solana

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/sentinel/internal/crypto"
	"github.com/AlexZinkM/sentinel/internal/model"
	"github.com/AlexZinkM/sentinel/internal/store"

	"github.com/gagliardetto/solana-go"
)

// Register seals kp and saves it as a new wallet record.
// A duplicate public key fails with model.ErrConflict and leaves the stored record untouched.
func (m *WalletManager) Register(ctx context.Context, credentials store.CredentialStore, kp *Keypair, label *string) (*model.WalletRecord, error) {
	env, err := m.SealForStorage(kp)
	if err != nil {
		return nil, fmt.Errorf("failed to seal wallet: %w", err)
	}

	record := &model.WalletRecord{
		PublicKey: kp.PublicKey().String(),
		Envelope:  env.Bytes(),
		Label:     label,
	}
	if err := credentials.Save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// LoadKeypair opens the stored wallet for publicKey.
// Caller must Zero the keypair when done.
func (m *WalletManager) LoadKeypair(ctx context.Context, credentials store.CredentialStore, publicKey string) (*Keypair, error) {
	record, err := credentials.Get(ctx, publicKey)
	if err != nil {
		return nil, err
	}

	env, err := crypto.ParseEnvelope(record.Envelope)
	if err != nil {
		return nil, err
	}

	kp, err := m.OpenFromStorage(env)
	if err != nil {
		return nil, err
	}

	// The envelope must belong to the record it is stored under
	if kp.PublicKey().String() != record.PublicKey {
		kp.Zero()
		return nil, model.NewError(model.KindAuthentication, "sealed key does not match wallet address", nil)
	}
	return kp, nil
}

// SignMessage signs message with the stored wallet for publicKey.
// The plaintext key exists only for the duration of this call.
func (m *WalletManager) SignMessage(ctx context.Context, credentials store.CredentialStore, publicKey string, message []byte) (solana.Signature, error) {
	kp, err := m.LoadKeypair(ctx, credentials, publicKey)
	if err != nil {
		return solana.Signature{}, err
	}
	defer kp.Zero()

	sig, err := kp.Sign(message)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to sign message: %w", err)
	}
	return sig, nil
}
