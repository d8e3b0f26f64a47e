package model

import "time"

// CreateWalletRequest represents request for POST /wallets/create
type CreateWalletRequest struct {
	Label *string `json:"label,omitempty"`
}

// CreateWalletResponse represents response for POST /wallets/create.
// PrivateKey is shown exactly once and is never stored in plaintext.
type CreateWalletResponse struct {
	Address    string `json:"address"`
	PrivateKey string `json:"privateKey"`
	QR         string `json:"QR"`
}

// ImportWalletRequest represents request for POST /wallets/import
type ImportWalletRequest struct {
	PrivateKey string  `json:"privateKey"`
	Label      *string `json:"label,omitempty"`
}

// WalletResponse is the public view of a stored wallet
type WalletResponse struct {
	Address   string    `json:"address"`
	Label     *string   `json:"label,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewWalletResponse builds the public view of a record, dropping the envelope.
func NewWalletResponse(r *WalletRecord) WalletResponse {
	return WalletResponse{
		Address:   r.PublicKey,
		Label:     r.Label,
		CreatedAt: r.CreatedAt,
	}
}

// SignRequest represents request for POST /wallets/{pubkey}/sign
type SignRequest struct {
	Message []byte `json:"message"` // base64 in JSON
}

// SignResponse represents response for POST /wallets/{pubkey}/sign
type SignResponse struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
}

// BalanceResponse represents response for GET /wallets/{pubkey}/balance
type BalanceResponse struct {
	Address string `json:"address"`
	SOL     string `json:"sol"`
}

// HealthResponse represents response for GET /rpc/health
type HealthResponse struct {
	Blockhash            string `json:"blockhash"`
	LastValidBlockHeight uint64 `json:"lastValidBlockHeight"`
}
