package httpadapter

import (
	"net/http"

	"affiliate-escrow/internal/core/domain"
)

type balanceResponse struct {
	Holder domain.Address `json:"holder"`
	Asset  domain.Address `json:"asset"`
	Amount uint64         `json:"amount"`
}

// handleBalance returns the holding of asset by holder. The asset segment
// may be "native".
func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	holder, ok := h.addressParam(w, r, "holder", false)
	if !ok {
		return
	}
	asset, ok := h.addressParam(w, r, "asset", true)
	if !ok {
		return
	}
	amount, err := h.svc.Balance(r.Context(), holder, asset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, balanceResponse{Holder: holder, Asset: asset, Amount: amount})
}
