package httpadapter

import (
	"log/slog"
	"net/http"

	"affiliate-escrow/internal/core/domain"
)

type createCampaignRequest struct {
	Owner          domain.Address `json:"owner"`
	AssetRef       domain.Address `json:"asset_ref"`
	Price          uint64         `json:"price"`
	CommissionRate uint16         `json:"commission_rate"`
	Name           string         `json:"name"`
	Details        string         `json:"details"`
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

// handleCreateCampaign registers a campaign and escrows its asset. The
// owner defaults to the signer when omitted. Returns 201 with the campaign.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	signer, ok := h.signer(w, r)
	if !ok {
		return
	}
	var req createCampaignRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Owner.IsZero() {
		req.Owner = signer
	}
	c, err := h.svc.CreateCampaign(r.Context(), signer, domain.CampaignParams{
		Owner:          req.Owner,
		AssetRef:       req.AssetRef,
		Price:          req.Price,
		CommissionRate: req.CommissionRate,
		Name:           req.Name,
		Details:        req.Details,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/campaigns/"+c.ID.String())
	h.writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.addressParam(w, r, "id", false)
	if !ok {
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleCampaignRecord returns the campaign in its persisted binary layout.
func (h *Handler) handleCampaignRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := h.addressParam(w, r, "id", false)
	if !ok {
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	data, err := domain.EncodeCampaign(c)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeRecord(w, data)
}

func (h *Handler) handleSetCampaignActive(w http.ResponseWriter, r *http.Request) {
	signer, ok := h.signer(w, r)
	if !ok {
		return
	}
	id, ok := h.addressParam(w, r, "id", false)
	if !ok {
		return
	}
	var req setActiveRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.SetCampaignActive(r.Context(), signer, id, req.Active)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) writeRecord(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("write record error", slog.Any("error", err))
	}
}
