package usecase

import (
	"context"
	"fmt"
	"math/bits"
	"time"

	"github.com/jaevor/go-nanoid"

	"affiliate-escrow/internal/core/domain"
	"affiliate-escrow/internal/core/port"
)

// SettlementEngine executes a sale: it checks preconditions, splits the
// price, pays affiliate and seller, releases the escrowed asset and
// updates the counters. It relies on the surrounding atomic unit for
// all-or-nothing semantics and never compensates a transfer by hand.
type SettlementEngine struct {
	custody *EscrowCustody
	now     func() time.Time
}

func NewSettlementEngine(custody *EscrowCustody, now func() time.Time) *SettlementEngine {
	return &SettlementEngine{custody: custody, now: now}
}

// ProcessSale runs inside tx. On any error the caller must abort the unit.
func (e *SettlementEngine) ProcessSale(ctx context.Context, tx port.Tx, req domain.SaleRequest) (*domain.SettlementResult, error) {
	c, err := tx.Campaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	l, err := tx.AffiliateLink(ctx, req.AffiliateLinkID)
	if err != nil {
		return nil, err
	}
	if l.CampaignID != c.ID {
		return nil, domain.ErrLinkCampaignMismatch
	}

	// Preconditions, in reporting order.
	if !c.Active {
		return nil, domain.ErrCampaignNotActive
	}
	if req.AffiliatePayout != l.Affiliate {
		return nil, domain.ErrInvalidInfluencer
	}
	if req.SellerPayout != c.Owner {
		return nil, domain.ErrInvalidAccountOwner
	}
	if err = e.custody.CheckRelease(ctx, tx, c, req.Asset); err != nil {
		return nil, err
	}

	split, err := domain.SplitPayment(c.Price, c.CommissionRate)
	if err != nil {
		return nil, err
	}

	buyer := domain.Signer(req.Buyer)
	if err = tx.Transfer(ctx, domain.Transfer{
		From: req.Buyer, To: req.AffiliatePayout, Asset: domain.NativeAsset,
		Amount: split.Commission, Authorizer: buyer,
	}); err != nil {
		return nil, fmt.Errorf("pay affiliate: %w", err)
	}
	if err = tx.Transfer(ctx, domain.Transfer{
		From: req.Buyer, To: req.SellerPayout, Asset: domain.NativeAsset,
		Amount: split.SellerShare, Authorizer: buyer,
	}); err != nil {
		return nil, fmt.Errorf("pay seller: %w", err)
	}
	if err = e.custody.Release(ctx, tx, c, req.Buyer, req.Asset); err != nil {
		return nil, fmt.Errorf("release asset: %w", err)
	}

	if c.TotalSettlements, err = addUint64(c.TotalSettlements, 1); err != nil {
		return nil, err
	}
	if l.SettlementCount, err = addUint64(l.SettlementCount, 1); err != nil {
		return nil, err
	}
	if l.CumulativeEarnings, err = addUint64(l.CumulativeEarnings, split.Commission); err != nil {
		return nil, err
	}
	if err = tx.UpdateCampaign(ctx, c); err != nil {
		return nil, err
	}
	if err = tx.UpdateAffiliateLink(ctx, l); err != nil {
		return nil, err
	}

	newID, err := nanoid.Standard(21)
	if err != nil {
		return nil, err
	}
	s := domain.Settlement{
		ID:              newID(),
		CampaignID:      c.ID,
		AffiliateLinkID: l.ID,
		Buyer:           req.Buyer,
		Seller:          req.SellerPayout,
		Affiliate:       req.AffiliatePayout,
		Asset:           c.AssetRef,
		Split:           split,
		SettledAt:       e.now().UTC().Truncate(time.Microsecond),
	}
	if err = tx.InsertSettlement(ctx, &s); err != nil {
		return nil, err
	}

	held, err := e.custody.Held(ctx, tx, c)
	if err != nil {
		return nil, err
	}
	return &domain.SettlementResult{
		Settlement:    s,
		Campaign:      *c,
		AffiliateLink: *l,
		EscrowBalance: held,
	}, nil
}

// addUint64 adds with an overflow check.
func addUint64(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, domain.ErrCalculationError
	}
	return sum, nil
}
