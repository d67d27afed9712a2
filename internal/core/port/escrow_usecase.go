package port

import (
	"context"

	"affiliate-escrow/internal/core/domain"
)

// EscrowUseCase defines the business operations exposed by the engine. It
// is the primary port into the application domain. Every mutating call is
// one atomic unit: it either commits entirely or returns a coded
// domain.Error and leaves all records as they were.
type EscrowUseCase interface {
	// CreateCampaign registers a campaign and moves one unit of its asset
	// from the owner into escrow. signer must be the owner.
	CreateCampaign(ctx context.Context, signer domain.Address, p domain.CampaignParams) (*domain.Campaign, error)

	// SetCampaignActive toggles whether the campaign can be settled.
	// Only the owner may call it.
	SetCampaignActive(ctx context.Context, signer, campaignID domain.Address, active bool) (*domain.Campaign, error)

	// CreateAffiliateLink registers signer as an affiliate of the campaign.
	CreateAffiliateLink(ctx context.Context, signer, campaignID domain.Address) (*domain.AffiliateLink, error)

	// ProcessSale splits the campaign price between affiliate and seller
	// and releases the escrowed asset to the buyer. req.Buyer is the signer.
	ProcessSale(ctx context.Context, req domain.SaleRequest) (*domain.SettlementResult, error)

	GetCampaign(ctx context.Context, id domain.Address) (*domain.Campaign, error)
	GetAffiliateLink(ctx context.Context, id domain.Address) (*domain.AffiliateLink, error)
	ListSettlements(ctx context.Context, campaignID domain.Address, limit int) ([]domain.Settlement, error)
	Balance(ctx context.Context, holder, asset domain.Address) (uint64, error)
}
