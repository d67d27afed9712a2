package usecase

import (
	"context"
	"time"

	"affiliate-escrow/internal/core/authority"
	"affiliate-escrow/internal/core/domain"
	"affiliate-escrow/internal/core/port"
)

// CampaignRegistry creates and mutates Campaign records.
type CampaignRegistry struct {
	deriver *authority.Deriver
	custody *EscrowCustody
	now     func() time.Time
}

func NewCampaignRegistry(deriver *authority.Deriver, custody *EscrowCustody, now func() time.Time) *CampaignRegistry {
	return &CampaignRegistry{deriver: deriver, custody: custody, now: now}
}

// Create validates p, stores the campaign and funds its escrow with one
// unit taken from the owner. Must run inside one atomic unit so that a
// failed deposit leaves no campaign behind.
func (r *CampaignRegistry) Create(ctx context.Context, tx port.Tx, signer domain.Address, p domain.CampaignParams) (*domain.Campaign, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if signer != p.Owner {
		return nil, domain.ErrUnauthorized
	}

	id, err := r.deriver.CampaignID(p.Owner, p.Name)
	if err != nil {
		return nil, err
	}
	custody, bump, err := r.deriver.Custody(id)
	if err != nil {
		return nil, err
	}

	c := &domain.Campaign{
		ID:               id,
		Owner:            p.Owner,
		AssetRef:         p.AssetRef,
		CustodyAuthority: custody,
		CustodyBump:      bump,
		Price:            p.Price,
		CommissionRate:   p.CommissionRate,
		Active:           true,
		Name:             p.Name,
		Details:          p.Details,
		CreatedAt:        r.now().UTC().Truncate(time.Second),
	}
	if err = tx.InsertCampaign(ctx, c); err != nil {
		return nil, err
	}
	if err = r.custody.Deposit(ctx, tx, c, p.Owner); err != nil {
		return nil, err
	}
	return c, nil
}

// SetActive changes whether the campaign accepts settlements.
func (r *CampaignRegistry) SetActive(ctx context.Context, tx port.Tx, signer, id domain.Address, active bool) (*domain.Campaign, error) {
	c, err := tx.Campaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if signer != c.Owner {
		return nil, domain.ErrUnauthorized
	}
	if c.Active == active {
		return c, nil
	}
	c.Active = active
	if err = tx.UpdateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
