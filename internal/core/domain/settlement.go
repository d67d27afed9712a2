package domain

import (
	"math/bits"
	"time"
)

// Split is the division of one sale price between affiliate and seller.
// Commission + SellerShare == Price always; the floor-division remainder
// stays with the seller.
type Split struct {
	Price       uint64 `json:"price"`
	Commission  uint64 `json:"commission"`
	SellerShare uint64 `json:"seller_share"`
}

// SplitPayment computes floor(price*rate/RateDenominator) with a 128-bit
// intermediate and a checked narrowing back to 64 bits.
func SplitPayment(price uint64, rate uint16) (Split, error) {
	hi, lo := bits.Mul64(price, uint64(rate))
	// bits.Div64 panics when the quotient does not fit in 64 bits.
	if hi >= RateDenominator {
		return Split{}, ErrCalculationError
	}
	commission, _ := bits.Div64(hi, lo, RateDenominator)
	if commission > price {
		return Split{}, ErrCalculationError
	}
	return Split{
		Price:       price,
		Commission:  commission,
		SellerShare: price - commission,
	}, nil
}

// SaleRequest carries the accounts of one process_sale call. Buyer is the
// authenticated signer. Asset is the asset the buyer expects to receive.
type SaleRequest struct {
	CampaignID      Address
	AffiliateLinkID Address
	Buyer           Address
	SellerPayout    Address
	AffiliatePayout Address
	Asset           Address
}

// Settlement is the journal entry written by a successful sale.
type Settlement struct {
	ID              string  `json:"id"`
	CampaignID      Address `json:"campaign_id"`
	AffiliateLinkID Address `json:"affiliate_link_id"`
	Buyer           Address `json:"buyer"`
	Seller          Address `json:"seller"`
	Affiliate       Address `json:"affiliate"`
	Asset           Address `json:"asset"`
	Split
	SettledAt time.Time `json:"settled_at"`
}

// SettlementResult is returned to the caller of process_sale.
type SettlementResult struct {
	Settlement    Settlement    `json:"settlement"`
	Campaign      Campaign      `json:"campaign"`
	AffiliateLink AffiliateLink `json:"affiliate_link"`
	EscrowBalance uint64        `json:"escrow_balance"`
}
