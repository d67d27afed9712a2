package port

import (
	"context"

	"affiliate-escrow/internal/core/domain"
)

// Store is the persistence layer of the engine. It is an outbound port in
// hexagonal architecture. Atomically runs fn as one atomic unit: every
// change made through tx is applied together when fn returns nil, and
// none is applied otherwise. Units touching the same records are
// serialized relative to one another.
type Store interface {
	Atomically(ctx context.Context, fn func(tx Tx) error) error

	// Read-only queries outside of an atomic unit.
	GetCampaign(ctx context.Context, id domain.Address) (*domain.Campaign, error)
	GetAffiliateLink(ctx context.Context, id domain.Address) (*domain.AffiliateLink, error)
	ListSettlements(ctx context.Context, campaignID domain.Address, limit int) ([]domain.Settlement, error)
	Balance(ctx context.Context, holder, asset domain.Address) (uint64, error)
}

// Tx is the view of the store inside an atomic unit. Reads lock the
// returned records until the unit ends.
type Tx interface {
	CampaignRepository
	AffiliateLinkRepository
	SettlementJournal
	Ledger
}

// CampaignRepository owns Campaign records.
type CampaignRepository interface {
	// Campaign returns domain.ErrNotFound when no record exists.
	Campaign(ctx context.Context, id domain.Address) (*domain.Campaign, error)
	// InsertCampaign returns domain.ErrAlreadyExists when the id or the
	// (owner, name) pair is taken.
	InsertCampaign(ctx context.Context, c *domain.Campaign) error
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
}

// AffiliateLinkRepository owns AffiliateLink records.
type AffiliateLinkRepository interface {
	AffiliateLink(ctx context.Context, id domain.Address) (*domain.AffiliateLink, error)
	// InsertAffiliateLink returns domain.ErrAlreadyExists when the
	// (campaign, affiliate) pair is taken.
	InsertAffiliateLink(ctx context.Context, l *domain.AffiliateLink) error
	UpdateAffiliateLink(ctx context.Context, l *domain.AffiliateLink) error
}

// SettlementJournal records successful settlements.
type SettlementJournal interface {
	InsertSettlement(ctx context.Context, s *domain.Settlement) error
}

// Ledger is the asset transfer primitive the engine consumes. Transfer
// validates t.Authorizer against t.From, fails with
// domain.ErrInsufficientFunds when the source lacks t.Amount, and is
// undone together with the rest of the atomic unit.
type Ledger interface {
	Transfer(ctx context.Context, t domain.Transfer) error
	HoldingBalance(ctx context.Context, holder, asset domain.Address) (uint64, error)
}
