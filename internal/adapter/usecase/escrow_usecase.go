package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"affiliate-escrow/internal/core/authority"
	"affiliate-escrow/internal/core/domain"
	"affiliate-escrow/internal/core/port"
)

// EscrowUseCase implements port.EscrowUseCase. It opens one atomic unit per
// operation, delegates to the registries and the settlement engine, and
// publishes events only after the unit has committed.
type EscrowUseCase struct {
	store     port.Store
	campaigns *CampaignRegistry
	links     *AffiliateLinkRegistry
	engine    *SettlementEngine

	publisher port.EventPublisher
	recorder  port.Recorder
	logger    *slog.Logger
	now       func() time.Time
}

// Option customises an EscrowUseCase.
type Option func(*EscrowUseCase)

func WithPublisher(p port.EventPublisher) Option {
	return func(u *EscrowUseCase) { u.publisher = p }
}

func WithRecorder(r port.Recorder) Option {
	return func(u *EscrowUseCase) { u.recorder = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(u *EscrowUseCase) { u.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(u *EscrowUseCase) { u.now = now }
}

// NewEscrowUseCase wires the engine components over store. Without
// options events are dropped, metrics are not recorded and logs go to
// slog.Default.
func NewEscrowUseCase(store port.Store, deriver *authority.Deriver, opts ...Option) *EscrowUseCase {
	u := &EscrowUseCase{
		store:     store,
		publisher: nopPublisher{},
		recorder:  nopRecorder{},
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	custody := NewEscrowCustody(deriver)
	u.campaigns = NewCampaignRegistry(deriver, custody, u.now)
	u.links = NewAffiliateLinkRegistry(deriver, u.now)
	u.engine = NewSettlementEngine(custody, u.now)
	return u
}

// CreateCampaign registers a campaign and funds its escrow atomically.
func (u *EscrowUseCase) CreateCampaign(ctx context.Context, signer domain.Address, p domain.CampaignParams) (*domain.Campaign, error) {
	var c *domain.Campaign
	err := u.store.Atomically(ctx, func(tx port.Tx) error {
		var err error
		c, err = u.campaigns.Create(ctx, tx, signer, p)
		return err
	})
	if err != nil {
		u.fail(ctx, "create_campaign", err)
		return nil, err
	}
	u.recorder.CampaignCreated()
	u.logger.InfoContext(ctx, "campaign created",
		slog.String("campaign", c.ID.String()),
		slog.String("owner", c.Owner.String()),
		slog.Uint64("price", c.Price),
		slog.Uint64("commission_bps", uint64(c.CommissionRate)))
	u.publish(ctx, domain.EventCampaignCreated, c.ID, c)
	return c, nil
}

// SetCampaignActive toggles the campaign's active flag.
func (u *EscrowUseCase) SetCampaignActive(ctx context.Context, signer, campaignID domain.Address, active bool) (*domain.Campaign, error) {
	var c *domain.Campaign
	err := u.store.Atomically(ctx, func(tx port.Tx) error {
		var err error
		c, err = u.campaigns.SetActive(ctx, tx, signer, campaignID, active)
		return err
	})
	if err != nil {
		u.fail(ctx, "set_campaign_active", err)
		return nil, err
	}
	u.logger.InfoContext(ctx, "campaign active flag set",
		slog.String("campaign", c.ID.String()),
		slog.Bool("active", c.Active))
	u.publish(ctx, domain.EventCampaignActiveSet, c.ID, c)
	return c, nil
}

// CreateAffiliateLink registers the signer as an affiliate of a campaign.
func (u *EscrowUseCase) CreateAffiliateLink(ctx context.Context, signer, campaignID domain.Address) (*domain.AffiliateLink, error) {
	var l *domain.AffiliateLink
	err := u.store.Atomically(ctx, func(tx port.Tx) error {
		var err error
		l, err = u.links.Create(ctx, tx, signer, campaignID)
		return err
	})
	if err != nil {
		u.fail(ctx, "create_affiliate_link", err)
		return nil, err
	}
	u.recorder.AffiliateLinkCreated()
	u.logger.InfoContext(ctx, "affiliate link created",
		slog.String("link", l.ID.String()),
		slog.String("campaign", l.CampaignID.String()),
		slog.String("affiliate", l.Affiliate.String()))
	u.publish(ctx, domain.EventAffiliateLinkCreated, l.CampaignID, l)
	return l, nil
}

// ProcessSale settles one sale. Nothing is retried: a failed call leaves
// every record untouched and the caller decides what to do next.
func (u *EscrowUseCase) ProcessSale(ctx context.Context, req domain.SaleRequest) (*domain.SettlementResult, error) {
	var res *domain.SettlementResult
	err := u.store.Atomically(ctx, func(tx port.Tx) error {
		var err error
		res, err = u.engine.ProcessSale(ctx, tx, req)
		return err
	})
	if err != nil {
		u.fail(ctx, "process_sale", err)
		return nil, err
	}
	u.recorder.SaleSettled(res.Settlement.Split)
	u.logger.InfoContext(ctx, "sale settled",
		slog.String("settlement", res.Settlement.ID),
		slog.String("campaign", res.Campaign.ID.String()),
		slog.String("buyer", req.Buyer.String()),
		slog.Uint64("commission", res.Settlement.Commission),
		slog.Uint64("seller_share", res.Settlement.SellerShare))
	u.publish(ctx, domain.EventSaleSettled, res.Campaign.ID, res.Settlement)
	return res, nil
}

func (u *EscrowUseCase) GetCampaign(ctx context.Context, id domain.Address) (*domain.Campaign, error) {
	return u.store.GetCampaign(ctx, id)
}

func (u *EscrowUseCase) GetAffiliateLink(ctx context.Context, id domain.Address) (*domain.AffiliateLink, error) {
	return u.store.GetAffiliateLink(ctx, id)
}

// ListSettlements returns the newest settlements of a campaign first.
func (u *EscrowUseCase) ListSettlements(ctx context.Context, campaignID domain.Address, limit int) ([]domain.Settlement, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return u.store.ListSettlements(ctx, campaignID, limit)
}

func (u *EscrowUseCase) Balance(ctx context.Context, holder, asset domain.Address) (uint64, error) {
	return u.store.Balance(ctx, holder, asset)
}

// fail records and logs a failed operation. Coded domain errors are
// expected outcomes and logged at warn; anything else is an error.
func (u *EscrowUseCase) fail(ctx context.Context, op string, err error) {
	code := domain.CodeOf(err)
	u.recorder.OperationFailed(op, code)
	if code != "" {
		u.logger.WarnContext(ctx, "operation rejected",
			slog.String("operation", op),
			slog.String("code", string(code)),
			slog.Any("error", err))
		return
	}
	u.logger.ErrorContext(ctx, "operation failed",
		slog.String("operation", op),
		slog.Any("error", err))
}

// publish delivers a committed event. Failures are logged and do not
// change the outcome of the operation.
func (u *EscrowUseCase) publish(ctx context.Context, typ domain.EventType, key domain.Address, payload any) {
	ev := domain.Event{
		ID:         uuid.NewString(),
		Type:       typ,
		Key:        key,
		OccurredAt: u.now().UTC(),
		Payload:    payload,
	}
	if err := u.publisher.Publish(ctx, ev); err != nil && !errors.Is(err, context.Canceled) {
		u.logger.ErrorContext(ctx, "failed to publish event",
			slog.String("type", string(typ)),
			slog.Any("error", err))
	}
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, ...domain.Event) error { return nil }

type nopRecorder struct{}

func (nopRecorder) CampaignCreated()                    {}
func (nopRecorder) AffiliateLinkCreated()               {}
func (nopRecorder) SaleSettled(domain.Split)            {}
func (nopRecorder) OperationFailed(string, domain.Code) {}
