package solana

import (
	"encoding/base64"
	"fmt"

	"github.com/AlexZinkM/sentinel/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/skip2/go-qrcode"
)

// CreateWallet generates a new Solana keypair.
// The portable key string is returned for one-time backup display; nothing is persisted.
// Caller must Zero the keypair when done.
func (m *WalletManager) CreateWallet() (*Keypair, string, error) {
	privateKey, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate keypair: %w", err)
	}
	defer clear(privateKey)

	kp, ok := newKeypair(privateKey)
	if !ok {
		return nil, "", fmt.Errorf("generated keypair is inconsistent")
	}
	return kp, encodePortable(kp), nil
}

// ImportWallet decodes a base58 portable key string into a keypair.
// Malformed input fails with model.ErrEncoding before any use of the bytes.
func (m *WalletManager) ImportWallet(portable string) (*Keypair, error) {
	raw, err := decodePortable(portable)
	if err != nil {
		return nil, err
	}
	defer clear(raw)

	kp, ok := newKeypair(raw)
	if !ok {
		return nil, model.NewError(model.KindEncoding, "public key does not match private key", nil)
	}
	return kp, nil
}

// AddressQR renders a QR code of address as base64 PNG
func AddressQR(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	// Get PNG image
	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
