// Package store persists sealed wallets and the installation's key-derivation setup.
package store

import (
	"context"

	"github.com/AlexZinkM/sentinel/internal/model"
)

// CredentialStore is durable keyed storage for wallet records.
type CredentialStore interface {
	// Save inserts record. It returns model.ErrConflict if a record with the
	// same public key exists; it never overwrites.
	Save(ctx context.Context, record *model.WalletRecord) error
	// Get returns model.ErrNotFound when no record matches publicKey.
	Get(ctx context.Context, publicKey string) (*model.WalletRecord, error)
	// List returns all records in insertion order.
	List(ctx context.Context) ([]model.WalletRecord, error)
}

// ParamsStore keeps the single KDF parameter record of an installation.
type ParamsStore interface {
	// LoadKDFParams returns model.ErrNotFound before the first unlock.
	LoadKDFParams(ctx context.Context) (*model.KDFParams, error)
	// SaveKDFParams returns model.ErrConflict if parameters already exist.
	SaveKDFParams(ctx context.Context, params *model.KDFParams) error
}
