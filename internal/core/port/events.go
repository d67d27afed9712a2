package port

import (
	"context"

	"affiliate-escrow/internal/core/domain"
)

// EventPublisher delivers committed domain events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...domain.Event) error
}

// Recorder receives operation outcomes for monitoring.
type Recorder interface {
	CampaignCreated()
	AffiliateLinkCreated()
	SaleSettled(split domain.Split)
	OperationFailed(operation string, code domain.Code)
}
