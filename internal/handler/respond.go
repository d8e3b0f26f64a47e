package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/sentinel/internal/model"
	"github.com/AlexZinkM/sentinel/solana"

	"go.uber.org/zap"
)

// statusFor maps a custody error kind to its HTTP status.
func statusFor(kind model.ErrorKind) int {
	switch kind {
	case model.KindDerivation:
		return http.StatusInternalServerError
	case model.KindEncoding:
		return http.StatusBadRequest
	case model.KindAuthentication:
		return http.StatusUnauthorized
	case model.KindConflict:
		return http.StatusConflict
	case model.KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes err as model.ErrorResponse with the status of its kind.
// Unclassified errors are logged and reported without detail.
func (h *WalletHandler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, solana.ErrManagerClosed) {
		writeJSON(w, http.StatusServiceUnavailable, model.ErrorResponse{Error: "shutting down", Code: "unavailable"})
		return
	}

	kind := model.KindOf(err)
	if kind == 0 {
		h.log.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: "internal error", Code: "internal"})
		return
	}

	h.log.Warn("request rejected", zap.Stringer("kind", kind), zap.Error(err))
	writeJSON(w, statusFor(kind), model.ErrorResponse{Error: err.Error(), Code: kind.Code()})
}

func (h *WalletHandler) writeBadRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "invalid_request"})
}

// writeUpstreamError reports RPC failures as 502; custody errors keep their own status.
func (h *WalletHandler) writeUpstreamError(w http.ResponseWriter, err error) {
	if model.KindOf(err) != 0 {
		h.writeError(w, err)
		return
	}
	h.log.Error("solana rpc failed", zap.Error(err))
	writeJSON(w, http.StatusBadGateway, model.ErrorResponse{Error: err.Error(), Code: "rpc_unavailable"})
}

// decodeJSON reads at most maxBodyBytes of JSON into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
