package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/AlexZinkM/sentinel/internal/config"
	"github.com/AlexZinkM/sentinel/internal/model"
	"github.com/AlexZinkM/sentinel/internal/store"
	"github.com/AlexZinkM/sentinel/solana"

	solanago "github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies; the largest is a sign request.
const maxBodyBytes = 1 << 20

// RPCClient is the part of the Solana RPC the handlers use.
type RPCClient interface {
	solana.BalanceClient
	LatestBlockhash(ctx context.Context) (solanago.Hash, uint64, error)
}

// WalletHandler serves the wallet custody endpoints
type WalletHandler struct {
	manager     *solana.WalletManager
	credentials store.CredentialStore
	rpc         RPCClient
	cfg         *config.Config
	log         *zap.Logger
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(manager *solana.WalletManager, credentials store.CredentialStore, rpc RPCClient, cfg *config.Config, log *zap.Logger) *WalletHandler {
	return &WalletHandler{
		manager:     manager,
		credentials: credentials,
		rpc:         rpc,
		cfg:         cfg,
		log:         log,
	}
}

// Create handles POST /wallets/create
// @Summary      Create new wallet
// @Description  Generates a new Solana wallet and stores it sealed. The private key is returned only in this response.
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateWalletRequest  false  "Optional label"
// @Success      200      {object}  model.CreateWalletResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /wallets/create [post]
func (h *WalletHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.CreateWalletRequest
	// Body is optional here
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.writeBadRequest(w, err)
		return
	}

	kp, portable, err := h.manager.CreateWallet()
	if err != nil {
		h.writeError(w, err)
		return
	}
	defer kp.Zero()

	record, err := h.manager.Register(r.Context(), h.credentials, kp, req.Label)
	if err != nil {
		h.writeError(w, err)
		return
	}

	qr, err := solana.AddressQR(record.PublicKey)
	if err != nil {
		// The wallet is stored; a missing QR is not worth losing the one-time key
		h.log.Warn("failed to render address QR", zap.String("address", record.PublicKey), zap.Error(err))
	}

	h.log.Info("wallet created", zap.String("address", record.PublicKey))
	writeJSON(w, http.StatusOK, model.CreateWalletResponse{
		Address:    record.PublicKey,
		PrivateKey: portable,
		QR:         qr,
	})
}

// Import handles POST /wallets/import
// @Summary      Import wallet
// @Description  Imports a base58 private key (64-byte Solana keypair) and stores it sealed
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportWalletRequest  true  "Private key and optional label"
// @Success      200      {object}  model.WalletResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /wallets/import [post]
func (h *WalletHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ImportWalletRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeBadRequest(w, err)
		return
	}

	kp, err := h.manager.ImportWallet(req.PrivateKey)
	if err != nil {
		h.writeError(w, err)
		return
	}
	defer kp.Zero()

	record, err := h.manager.Register(r.Context(), h.credentials, kp, req.Label)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.log.Info("wallet imported", zap.String("address", record.PublicKey))
	writeJSON(w, http.StatusOK, model.NewWalletResponse(record))
}

// List handles GET /wallets
// @Summary      List wallets
// @Description  Lists stored wallets in the order they were added
// @Tags         wallets
// @Produce      json
// @Success      200  {array}  model.WalletResponse
// @Router       /wallets [get]
func (h *WalletHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	records, err := h.credentials.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := make([]model.WalletResponse, 0, len(records))
	for i := range records {
		resp = append(resp, model.NewWalletResponse(&records[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /wallets/{pubkey}
// @Summary      Get wallet
// @Tags         wallets
// @Produce      json
// @Param        pubkey  path      string  true  "Wallet address"
// @Success      200     {object}  model.WalletResponse
// @Failure      404     {object}  model.ErrorResponse
// @Router       /wallets/{pubkey} [get]
func (h *WalletHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	record, err := h.credentials.Get(r.Context(), r.PathValue("pubkey"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.NewWalletResponse(record))
}

// Sign handles POST /wallets/{pubkey}/sign
// @Summary      Sign message
// @Description  Signs a message (base64) with the stored wallet. Returns a base58 ed25519 signature.
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        pubkey   path      string             true  "Wallet address"
// @Param        request  body      model.SignRequest  true  "Message"
// @Success      200      {object}  model.SignResponse
// @Failure      401      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /wallets/{pubkey}/sign [post]
func (h *WalletHandler) Sign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.SignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeBadRequest(w, err)
		return
	}

	address := r.PathValue("pubkey")
	sig, err := h.manager.SignMessage(r.Context(), h.credentials, address, req.Message)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.log.Info("message signed", zap.String("address", address), zap.Int("messageLen", len(req.Message)))
	writeJSON(w, http.StatusOK, model.SignResponse{
		Address:   address,
		Signature: sig.String(),
	})
}

// GetBalance handles GET /wallets/{pubkey}/balance
// @Summary      Get wallet balance
// @Description  Gets SOL balance of a stored wallet
// @Tags         wallets
// @Produce      json
// @Param        pubkey  path      string  true  "Wallet address"
// @Success      200     {object}  model.BalanceResponse
// @Failure      404     {object}  model.ErrorResponse
// @Failure      502     {object}  model.ErrorResponse
// @Router       /wallets/{pubkey}/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	record, err := h.credentials.Get(r.Context(), r.PathValue("pubkey"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	balance, err := solana.GetBalance(r.Context(), h.rpc, record.PublicKey)
	if err != nil {
		h.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

// Health handles GET /rpc/health
// @Summary      Test RPC connection
// @Description  Fetches the latest blockhash from the configured Solana RPC
// @Tags         rpc
// @Produce      json
// @Success      200  {object}  model.HealthResponse
// @Failure      502  {object}  model.ErrorResponse
// @Router       /rpc/health [get]
func (h *WalletHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	hash, lastValid, err := h.rpc.LatestBlockhash(r.Context())
	if err != nil {
		h.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.HealthResponse{
		Blockhash:            hash.String(),
		LastValidBlockHeight: lastValid,
	})
}

// Config handles GET /config
// @Summary      Get configuration
// @Description  Returns the running configuration without secrets
// @Tags         config
// @Produce      json
// @Success      200  {object}  config.PublicConfig
// @Router       /config [get]
func (h *WalletHandler) Config(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.cfg.Public())
}
