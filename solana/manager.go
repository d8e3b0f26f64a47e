package solana

import (
	"crypto/ed25519"
	"errors"
	"sync"

	"github.com/AlexZinkM/sentinel/internal/crypto"
	"github.com/AlexZinkM/sentinel/internal/model"
)

// ErrManagerClosed is returned by every key operation after Close.
var ErrManagerClosed = errors.New("wallet manager is closed")

// WalletManager seals and opens wallet keys under one master key.
// The key is immutable until Close; mu only keeps Close from wiping it
// under an operation in flight.
type WalletManager struct {
	mu     sync.RWMutex
	closed bool
	key    *crypto.MasterKey
}

// NewWalletManager derives the master key from password and salt.
// password must be []byte for security (caller should zero it after use)
func NewWalletManager(password, salt []byte) (*WalletManager, error) {
	return newWalletManager(password, salt, crypto.DefaultKDFParams)
}

func newWalletManager(password, salt []byte, params crypto.KDFParams) (*WalletManager, error) {
	key, err := crypto.DeriveKey(password, salt, params)
	if err != nil {
		return nil, err
	}
	return &WalletManager{key: key}, nil
}

// SealForStorage encrypts the keypair bytes into an envelope.
func (m *WalletManager) SealForStorage(kp *Keypair) (*crypto.Envelope, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrManagerClosed
	}
	return crypto.Seal(m.key, kp.key)
}

// OpenFromStorage decrypts an envelope back into a keypair.
// Structurally invalid keys are reported as authentication failures.
func (m *WalletManager) OpenFromStorage(env *crypto.Envelope) (*Keypair, error) {
	raw, err := m.open(env)
	if err != nil {
		return nil, err
	}
	defer clear(raw)

	kp, ok := newKeypair(raw)
	if !ok {
		return nil, model.NewError(model.KindAuthentication, "decrypted key is not a valid keypair", nil)
	}
	return kp, nil
}

func (m *WalletManager) open(env *crypto.Envelope) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrManagerClosed
	}
	return crypto.Open(m.key, env)
}

// Close waits for operations in flight, then wipes the master key.
// Every later Seal or Open fails with ErrManagerClosed.
func (m *WalletManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	m.key.Zero()
}

// expandSeed turns a 32-byte ed25519 seed into a full keypair.
func expandSeed(seed []byte) []byte {
	return ed25519.NewKeyFromSeed(seed)
}
