package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"affiliate-escrow/internal/core/domain"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code    domain.Code `json:"code"`
	Message string      `json:"message"`
}

// statusOf maps a domain error code to an HTTP status.
func statusOf(code domain.Code) int {
	switch code {
	case domain.CodeInvalidInput, domain.CodeInvalidPrice, domain.CodeInvalidCommissionRate:
		return http.StatusBadRequest
	case domain.CodeUnauthorized:
		return http.StatusForbidden
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeAlreadyExists, domain.CodeConflict:
		return http.StatusConflict
	case domain.CodeCampaignNotActive, domain.CodeInvalidInfluencer, domain.CodeInvalidAccountOwner,
		domain.CodeLinkCampaignMismatch, domain.CodeEscrowEmpty, domain.CodeMintMismatch,
		domain.CodeInsufficientFunds, domain.CodeCalculationError, domain.CodeDerivationExhausted:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError reports err to the client. Internal errors are logged and
// returned without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		h.logger.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorBody{Code: "INTERNAL", Message: "internal error"})
		return
	}
	h.writeJSON(w, statusOf(derr.Code), errorBody{Code: derr.Code, Message: err.Error()})
}

func (h *Handler) badRequest(w http.ResponseWriter, message string) {
	h.writeJSON(w, http.StatusBadRequest, errorBody{Code: domain.CodeInvalidInput, Message: message})
}

// signer reads the caller identity from SignerHeader. It writes a 401 and
// returns false when the header is missing or malformed.
func (h *Handler) signer(w http.ResponseWriter, r *http.Request) (domain.Address, bool) {
	raw := r.Header.Get(SignerHeader)
	if raw == "" {
		h.writeJSON(w, http.StatusUnauthorized, errorBody{Code: domain.CodeUnauthorized, Message: "missing " + SignerHeader + " header"})
		return domain.Address{}, false
	}
	a, err := domain.ParseAddress(raw)
	if err != nil {
		h.writeJSON(w, http.StatusUnauthorized, errorBody{Code: domain.CodeUnauthorized, Message: "malformed " + SignerHeader + " header"})
		return domain.Address{}, false
	}
	return a, true
}

// addressParam parses the named path parameter. "native" is accepted as
// the payment unit when allowNative is set.
func (h *Handler) addressParam(w http.ResponseWriter, r *http.Request, name string, allowNative bool) (domain.Address, bool) {
	raw := chi.URLParam(r, name)
	if allowNative && raw == "native" {
		return domain.NativeAsset, true
	}
	a, err := domain.ParseAddress(raw)
	if err != nil {
		h.badRequest(w, "invalid "+name)
		return domain.Address{}, false
	}
	return a, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		h.badRequest(w, "invalid JSON: "+err.Error())
		return false
	}
	return true
}
