package usecase

import (
	"context"
	"math"
	"time"

	"affiliate-escrow/internal/core/authority"
	"affiliate-escrow/internal/core/domain"
	"affiliate-escrow/internal/core/port"
)

// AffiliateLinkRegistry creates AffiliateLink records.
type AffiliateLinkRegistry struct {
	deriver *authority.Deriver
	now     func() time.Time
}

func NewAffiliateLinkRegistry(deriver *authority.Deriver, now func() time.Time) *AffiliateLinkRegistry {
	return &AffiliateLinkRegistry{deriver: deriver, now: now}
}

// Create binds affiliate to the campaign and bumps the campaign's
// affiliate count. A second link for the same pair is rejected by the
// store with domain.ErrAlreadyExists.
func (r *AffiliateLinkRegistry) Create(ctx context.Context, tx port.Tx, affiliate, campaignID domain.Address) (*domain.AffiliateLink, error) {
	c, err := tx.Campaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	id, err := r.deriver.AffiliateLinkID(c.ID, affiliate)
	if err != nil {
		return nil, err
	}
	l := &domain.AffiliateLink{
		ID:         id,
		CampaignID: c.ID,
		Affiliate:  affiliate,
		CreatedAt:  r.now().UTC().Truncate(time.Second),
	}
	if err = tx.InsertAffiliateLink(ctx, l); err != nil {
		return nil, err
	}

	if c.AffiliateCount == math.MaxUint64 {
		return nil, domain.ErrCalculationError
	}
	c.AffiliateCount++
	if err = tx.UpdateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return l, nil
}
