package model

import "time"

// WalletRecord is the persisted shape of a custody wallet.
// Envelope is the opaque nonce||ciphertext||tag blob; it is never sent to API clients.
type WalletRecord struct {
	PublicKey string
	Envelope  []byte
	Label     *string
	CreatedAt time.Time
}

// KDFParams is the persisted derivation setup of one installation.
// It holds the salt and cost parameters, never the derived key.
type KDFParams struct {
	Algorithm string
	Salt      []byte
	TimeCost  uint32
	MemoryKiB uint32
	Threads   uint8
	Verifier  []byte // envelope of a fixed plaintext, used to reject a wrong password at unlock
	CreatedAt time.Time
}

// CWTFile represents the legacy .cwt file structure
type CWTFile struct {
	Network    string `json:"network"`
	Address    string `json:"address"`
	QR         string `json:"QR"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// CWTWalletData represents decrypted legacy wallet data
type CWTWalletData struct {
	PrivateKey []byte `json:"privateKey"` // 64 bytes (stored as base64 in JSON)
	CreatedAt  string `json:"createdAt"`
}
