package api

import (
	"net/http"

	_ "github.com/AlexZinkM/sentinel/docs" // registers the swagger spec
	"github.com/AlexZinkM/sentinel/internal/handler"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(walletHandler *handler.WalletHandler) http.Handler {
	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("/wallets", walletHandler.List)
	mux.HandleFunc("/wallets/create", walletHandler.Create)
	mux.HandleFunc("/wallets/import", walletHandler.Import)
	mux.HandleFunc("/wallets/{pubkey}", walletHandler.Get)
	mux.HandleFunc("/wallets/{pubkey}/sign", walletHandler.Sign)
	mux.HandleFunc("/wallets/{pubkey}/balance", walletHandler.GetBalance)

	// Service endpoints
	mux.HandleFunc("/rpc/health", walletHandler.Health)
	mux.HandleFunc("/config", walletHandler.Config)

	return mux
}
