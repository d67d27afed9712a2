package domain

import (
	"time"
)

// EventType names a committed state change.
type EventType string

const (
	EventCampaignCreated      EventType = "campaign.created"
	EventCampaignActiveSet    EventType = "campaign.active_set"
	EventAffiliateLinkCreated EventType = "affiliate_link.created"
	EventSaleSettled          EventType = "sale.settled"
)

// Event is published after the atomic unit that produced it has committed.
// Key orders events of one campaign on the transport.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Key        Address   `json:"key"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}
