package httpadapter

import (
	"net/http"

	"affiliate-escrow/internal/core/domain"
)

// handleCreateAffiliateLink registers the signer as an affiliate of the
// campaign in the path. The request has no body.
func (h *Handler) handleCreateAffiliateLink(w http.ResponseWriter, r *http.Request) {
	signer, ok := h.signer(w, r)
	if !ok {
		return
	}
	campaignID, ok := h.addressParam(w, r, "id", false)
	if !ok {
		return
	}
	l, err := h.svc.CreateAffiliateLink(r.Context(), signer, campaignID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/affiliates/"+l.ID.String())
	h.writeJSON(w, http.StatusCreated, l)
}

func (h *Handler) handleGetAffiliateLink(w http.ResponseWriter, r *http.Request) {
	id, ok := h.addressParam(w, r, "id", false)
	if !ok {
		return
	}
	l, err := h.svc.GetAffiliateLink(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, l)
}

func (h *Handler) handleAffiliateLinkRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := h.addressParam(w, r, "id", false)
	if !ok {
		return
	}
	l, err := h.svc.GetAffiliateLink(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeRecord(w, domain.EncodeAffiliateLink(l))
}
