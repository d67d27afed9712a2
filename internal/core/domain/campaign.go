package domain

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const (
	// MaxNameLength and MaxDetailsLength bound the campaign text fields in bytes.
	MaxNameLength    = 32
	MaxDetailsLength = 200

	// RateDenominator is the commission rate unit: rates are basis points.
	RateDenominator = 10000
)

// Campaign binds one escrowed asset to a fixed price and commission rate.
// Owner, AssetRef, CustodyAuthority and CustodyBump never change after
// creation. AffiliateCount and TotalSettlements only grow.
type Campaign struct {
	ID               Address   `json:"id"`
	Owner            Address   `json:"owner"`
	AssetRef         Address   `json:"asset_ref"`
	CustodyAuthority Address   `json:"custody_authority"`
	CustodyBump      uint8     `json:"custody_bump"`
	Price            uint64    `json:"price"`
	CommissionRate   uint16    `json:"commission_rate"` // basis points
	Active           bool      `json:"active"`
	AffiliateCount   uint64    `json:"affiliate_count"`
	TotalSettlements uint64    `json:"total_settlements"`
	Name             string    `json:"name"`
	Details          string    `json:"details"`
	CreatedAt        time.Time `json:"created_at"`
}

// CampaignParams are the caller-supplied fields of a new campaign.
type CampaignParams struct {
	Owner          Address
	AssetRef       Address
	Price          uint64
	CommissionRate uint16
	Name           string
	Details        string
}

// Validate checks the creation preconditions in the order they are reported.
func (p CampaignParams) Validate() error {
	if p.Price == 0 {
		return ErrInvalidPrice
	}
	if p.CommissionRate > RateDenominator {
		return Wrap(CodeInvalidCommissionRate, ErrInvalidCommissionRate.Message,
			fmt.Errorf("got %d", p.CommissionRate))
	}
	if len(p.Name) > MaxNameLength || !utf8.ValidString(p.Name) {
		return New(CodeInvalidInput, fmt.Sprintf("name must be at most %d bytes of utf-8", MaxNameLength))
	}
	if len(p.Details) > MaxDetailsLength || !utf8.ValidString(p.Details) {
		return New(CodeInvalidInput, fmt.Sprintf("details must be at most %d bytes of utf-8", MaxDetailsLength))
	}
	if p.Owner.IsZero() {
		return New(CodeInvalidInput, "owner is required")
	}
	if p.AssetRef.IsZero() {
		return New(CodeInvalidInput, "asset reference must not be the native asset")
	}
	return nil
}
