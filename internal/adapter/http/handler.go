package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"affiliate-escrow/internal/core/port"
)

// SignerHeader carries the identity of the already authenticated caller.
// Signature verification happens before requests reach this service.
const SignerHeader = "X-Signer"

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the escrow use case to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.EscrowUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. When metrics is
// not nil it is served at /metrics.
func NewHandler(svc port.EscrowUseCase, logger *slog.Logger, metrics http.Handler) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Get("/record", h.handleCampaignRecord)
				r.Put("/active", h.handleSetCampaignActive)
				r.Post("/affiliates", h.handleCreateAffiliateLink)
				r.Post("/sales", h.handleProcessSale)
				r.Get("/settlements", h.handleListSettlements)
			})
		})
		r.Get("/affiliates/{id}", h.handleGetAffiliateLink)
		r.Get("/affiliates/{id}/record", h.handleAffiliateLinkRecord)
		r.Get("/holdings/{holder}/{asset}", h.handleBalance)
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
