package domain

import "time"

// AffiliateLink credits one affiliate for sales of one campaign.
// CumulativeEarnings is the sum of all commissions paid through the link.
type AffiliateLink struct {
	ID                 Address   `json:"id"`
	CampaignID         Address   `json:"campaign_id"`
	Affiliate          Address   `json:"affiliate"`
	SettlementCount    uint64    `json:"settlement_count"`
	CumulativeEarnings uint64    `json:"cumulative_earnings"`
	CreatedAt          time.Time `json:"created_at"`
}
