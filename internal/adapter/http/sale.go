package httpadapter

import (
	"net/http"
	"strconv"

	"affiliate-escrow/internal/core/domain"
)

type processSaleRequest struct {
	AffiliateLink domain.Address `json:"affiliate_link"`
	Seller        domain.Address `json:"seller"`
	Affiliate     domain.Address `json:"affiliate"`
	Asset         domain.Address `json:"asset"`
}

// handleProcessSale settles one sale of the campaign in the path. The
// signer is the buyer. Precondition failures produce 422 with the code.
func (h *Handler) handleProcessSale(w http.ResponseWriter, r *http.Request) {
	buyer, ok := h.signer(w, r)
	if !ok {
		return
	}
	campaignID, ok := h.addressParam(w, r, "id", false)
	if !ok {
		return
	}
	var req processSaleRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.svc.ProcessSale(r.Context(), domain.SaleRequest{
		CampaignID:      campaignID,
		AffiliateLinkID: req.AffiliateLink,
		Buyer:           buyer,
		SellerPayout:    req.Seller,
		AffiliatePayout: req.Affiliate,
		Asset:           req.Asset,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// handleListSettlements returns the newest settlements first. The optional
// limit query parameter is capped by the use case.
func (h *Handler) handleListSettlements(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.addressParam(w, r, "id", false)
	if !ok {
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.badRequest(w, "invalid limit")
			return
		}
		limit = n
	}
	list, err := h.svc.ListSettlements(r.Context(), campaignID, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []domain.Settlement{}
	}
	h.writeJSON(w, http.StatusOK, list)
}
