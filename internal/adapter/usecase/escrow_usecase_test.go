package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"affiliate-escrow/internal/adapter/memory"
	"affiliate-escrow/internal/adapter/metrics"
	"affiliate-escrow/internal/core/authority"
	"affiliate-escrow/internal/core/domain"
	"affiliate-escrow/internal/core/port/mocks"
)

var (
	program   = domain.MustParseAddress("5151515151515151515151515151515151515151515151515151515151515151")
	owner     = domain.MustParseAddress("0a0000000000000000000000000000000000000000000000000000000000000a")
	buyer     = domain.MustParseAddress("0b0000000000000000000000000000000000000000000000000000000000000b")
	affiliate = domain.MustParseAddress("0c0000000000000000000000000000000000000000000000000000000000000c")
	stranger  = domain.MustParseAddress("0d0000000000000000000000000000000000000000000000000000000000000d")
	asset     = domain.MustParseAddress("a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5")

	fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

type fixture struct {
	store *memory.Store
	svc   *EscrowUseCase
	reg   *prometheus.Registry
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	store := memory.NewStore()
	reg := prometheus.NewRegistry()
	opts = append([]Option{
		WithClock(func() time.Time { return fixedNow }),
		WithRecorder(metrics.NewRecorder(reg)),
	}, opts...)
	return &fixture{
		store: store,
		svc:   NewEscrowUseCase(store, authority.NewDeriver(program), opts...),
		reg:   reg,
	}
}

func (f *fixture) mint(t *testing.T, holder, a domain.Address, amount uint64) {
	t.Helper()
	require.NoError(t, f.store.Mint(context.Background(), holder, a, amount))
}

func (f *fixture) balance(t *testing.T, holder, a domain.Address) uint64 {
	t.Helper()
	b, err := f.svc.Balance(context.Background(), holder, a)
	require.NoError(t, err)
	return b
}

func params(price uint64, rate uint16) domain.CampaignParams {
	return domain.CampaignParams{
		Owner:          owner,
		AssetRef:       asset,
		Price:          price,
		CommissionRate: rate,
		Name:           "genesis print",
		Details:        "one of one",
	}
}

// campaignWithLink creates a funded campaign with one affiliate link and
// gives the buyer enough native units to pay for it.
func (f *fixture) campaignWithLink(t *testing.T, price uint64, rate uint16) (*domain.Campaign, *domain.AffiliateLink) {
	t.Helper()
	ctx := context.Background()
	f.mint(t, owner, asset, 1)
	f.mint(t, buyer, domain.NativeAsset, price)

	c, err := f.svc.CreateCampaign(ctx, owner, params(price, rate))
	require.NoError(t, err)
	l, err := f.svc.CreateAffiliateLink(ctx, affiliate, c.ID)
	require.NoError(t, err)
	return c, l
}

func sale(c *domain.Campaign, l *domain.AffiliateLink) domain.SaleRequest {
	return domain.SaleRequest{
		CampaignID:      c.ID,
		AffiliateLinkID: l.ID,
		Buyer:           buyer,
		SellerPayout:    owner,
		AffiliatePayout: affiliate,
		Asset:           asset,
	}
}

func TestProcessSaleWorkedExample(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c, l := f.campaignWithLink(t, 1_000_000, 500)

	assert.Equal(t, uint64(1), f.balance(t, c.CustodyAuthority, asset))
	assert.Equal(t, uint64(0), f.balance(t, owner, asset))

	res, err := f.svc.ProcessSale(ctx, sale(c, l))
	require.NoError(t, err)

	assert.Equal(t, uint64(50_000), res.Settlement.Commission)
	assert.Equal(t, uint64(950_000), res.Settlement.SellerShare)
	assert.Equal(t, uint64(0), res.EscrowBalance)
	assert.Equal(t, uint64(1), res.Campaign.TotalSettlements)
	assert.Equal(t, uint64(1), res.AffiliateLink.SettlementCount)
	assert.Equal(t, uint64(50_000), res.AffiliateLink.CumulativeEarnings)
	assert.Equal(t, fixedNow, res.Settlement.SettledAt)
	assert.NotEmpty(t, res.Settlement.ID)

	assert.Equal(t, uint64(0), f.balance(t, buyer, domain.NativeAsset))
	assert.Equal(t, uint64(1), f.balance(t, buyer, asset))
	assert.Equal(t, uint64(50_000), f.balance(t, affiliate, domain.NativeAsset))
	assert.Equal(t, uint64(950_000), f.balance(t, owner, domain.NativeAsset))
	assert.Equal(t, uint64(0), f.balance(t, c.CustodyAuthority, asset))

	// A retry after the escrow is drained fails the same way every time.
	f.mint(t, buyer, domain.NativeAsset, 1_000_000)
	for i := 0; i < 3; i++ {
		_, err = f.svc.ProcessSale(ctx, sale(c, l))
		require.ErrorIs(t, err, domain.ErrEscrowEmpty)
	}

	stored, err := f.svc.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stored.TotalSettlements)
	storedLink, err := f.svc.GetAffiliateLink(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), storedLink.SettlementCount)
	assert.Equal(t, uint64(50_000), storedLink.CumulativeEarnings)
	assert.Equal(t, uint64(1_000_000), f.balance(t, buyer, domain.NativeAsset))

	list, err := f.svc.ListSettlements(ctx, c.ID, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, res.Settlement, list[0])
}

func TestCreateCampaign(t *testing.T) {
	ctx := context.Background()

	t.Run("escrows one unit", func(t *testing.T) {
		f := newFixture(t)
		f.mint(t, owner, asset, 3)

		c, err := f.svc.CreateCampaign(ctx, owner, params(10, 2500))
		require.NoError(t, err)

		assert.True(t, c.Active)
		assert.Equal(t, fixedNow, c.CreatedAt)
		assert.Equal(t, uint64(0), c.AffiliateCount)
		assert.Equal(t, uint64(2), f.balance(t, owner, asset))
		assert.Equal(t, uint64(1), f.balance(t, c.CustodyAuthority, asset))

		stored, err := f.svc.GetCampaign(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c, stored)
	})

	tests := []struct {
		name    string
		signer  domain.Address
		params  domain.CampaignParams
		holding uint64
		want    error
	}{
		{"zero price", owner, params(0, 500), 1, domain.ErrInvalidPrice},
		{"rate above denominator", owner, params(10, domain.RateDenominator+1), 1, domain.ErrInvalidCommissionRate},
		{"signer is not owner", stranger, params(10, 500), 1, domain.ErrUnauthorized},
		{"owner lacks the asset", owner, params(10, 500), 0, domain.ErrInsufficientFunds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.holding > 0 {
				f.mint(t, owner, asset, tt.holding)
			}

			_, err := f.svc.CreateCampaign(ctx, tt.signer, tt.params)
			require.ErrorIs(t, err, tt.want)

			id, derr := authority.NewDeriver(program).CampaignID(owner, tt.params.Name)
			require.NoError(t, derr)
			_, err = f.svc.GetCampaign(ctx, id)
			assert.ErrorIs(t, err, domain.ErrNotFound)
			assert.Equal(t, tt.holding, f.balance(t, owner, asset))
		})
	}

	t.Run("duplicate name", func(t *testing.T) {
		f := newFixture(t)
		f.mint(t, owner, asset, 2)
		_, err := f.svc.CreateCampaign(ctx, owner, params(10, 500))
		require.NoError(t, err)

		_, err = f.svc.CreateCampaign(ctx, owner, params(20, 500))
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
		assert.Equal(t, uint64(1), f.balance(t, owner, asset))
	})
}

func TestCreateAffiliateLink(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c, l := f.campaignWithLink(t, 100, 1000)

	assert.Equal(t, c.ID, l.CampaignID)
	assert.Equal(t, affiliate, l.Affiliate)
	assert.Zero(t, l.SettlementCount)

	_, err := f.svc.CreateAffiliateLink(ctx, affiliate, c.ID)
	require.ErrorIs(t, err, domain.ErrAlreadyExists)

	second, err := f.svc.CreateAffiliateLink(ctx, stranger, c.ID)
	require.NoError(t, err)
	assert.NotEqual(t, l.ID, second.ID)

	stored, err := f.svc.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), stored.AffiliateCount)

	_, err = f.svc.CreateAffiliateLink(ctx, affiliate, stranger)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProcessSaleRejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(t *testing.T, f *fixture, c *domain.Campaign, req *domain.SaleRequest)
		want  error
	}{
		{
			name: "inactive campaign",
			setup: func(t *testing.T, f *fixture, c *domain.Campaign, _ *domain.SaleRequest) {
				_, err := f.svc.SetCampaignActive(ctx, owner, c.ID, false)
				require.NoError(t, err)
			},
			want: domain.ErrCampaignNotActive,
		},
		{
			name: "affiliate payout mismatch",
			setup: func(_ *testing.T, _ *fixture, _ *domain.Campaign, req *domain.SaleRequest) {
				req.AffiliatePayout = stranger
			},
			want: domain.ErrInvalidInfluencer,
		},
		{
			name: "seller payout mismatch",
			setup: func(_ *testing.T, _ *fixture, _ *domain.Campaign, req *domain.SaleRequest) {
				req.SellerPayout = stranger
			},
			want: domain.ErrInvalidAccountOwner,
		},
		{
			name: "asset mismatch",
			setup: func(_ *testing.T, _ *fixture, _ *domain.Campaign, req *domain.SaleRequest) {
				req.Asset = domain.NativeAsset
			},
			want: domain.ErrMintMismatch,
		},
		{
			name: "buyer cannot pay",
			setup: func(_ *testing.T, _ *fixture, _ *domain.Campaign, req *domain.SaleRequest) {
				req.Buyer = stranger
			},
			want: domain.ErrInsufficientFunds,
		},
		{
			name: "link of another campaign",
			setup: func(t *testing.T, f *fixture, _ *domain.Campaign, req *domain.SaleRequest) {
				f.mint(t, owner, asset, 1)
				p := params(5, 0)
				p.Name = "other"
				other, err := f.svc.CreateCampaign(ctx, owner, p)
				require.NoError(t, err)
				l, err := f.svc.CreateAffiliateLink(ctx, affiliate, other.ID)
				require.NoError(t, err)
				req.AffiliateLinkID = l.ID
			},
			want: domain.ErrLinkCampaignMismatch,
		},
		{
			name: "unknown link",
			setup: func(_ *testing.T, _ *fixture, _ *domain.Campaign, req *domain.SaleRequest) {
				req.AffiliateLinkID = stranger
			},
			want: domain.ErrNotFound,
		},
		{
			name: "campaign id as link",
			setup: func(_ *testing.T, _ *fixture, c *domain.Campaign, req *domain.SaleRequest) {
				req.AffiliateLinkID = c.ID
			},
			want: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			c, l := f.campaignWithLink(t, 1_000, 1500)
			req := sale(c, l)
			tt.setup(t, f, c, &req)

			before, err := f.svc.GetCampaign(ctx, c.ID)
			require.NoError(t, err)

			_, err = f.svc.ProcessSale(ctx, req)
			require.ErrorIs(t, err, tt.want)

			after, err := f.svc.GetCampaign(ctx, c.ID)
			require.NoError(t, err)
			assert.Equal(t, before, after)
			storedLink, err := f.svc.GetAffiliateLink(ctx, l.ID)
			require.NoError(t, err)
			assert.Zero(t, storedLink.SettlementCount)
			assert.Zero(t, storedLink.CumulativeEarnings)

			assert.Equal(t, uint64(1), f.balance(t, c.CustodyAuthority, asset))
			assert.Equal(t, uint64(1_000), f.balance(t, buyer, domain.NativeAsset))
			assert.Zero(t, f.balance(t, affiliate, domain.NativeAsset))
			assert.Zero(t, f.balance(t, owner, domain.NativeAsset))

			list, err := f.svc.ListSettlements(ctx, c.ID, 10)
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}

func TestProcessSaleRollsBackPartialPayment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c, l := f.campaignWithLink(t, 1_000, 5000)

	// Enough for the commission but not for the seller share.
	req := sale(c, l)
	req.Buyer = stranger
	f.mint(t, stranger, domain.NativeAsset, 600)

	_, err := f.svc.ProcessSale(ctx, req)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Contains(t, err.Error(), "pay seller")

	assert.Equal(t, uint64(600), f.balance(t, stranger, domain.NativeAsset))
	assert.Zero(t, f.balance(t, affiliate, domain.NativeAsset))
	assert.Equal(t, uint64(1), f.balance(t, c.CustodyAuthority, asset))
}

func TestProcessSaleZeroCommission(t *testing.T) {
	f := newFixture(t)
	c, l := f.campaignWithLink(t, 999, 1)

	res, err := f.svc.ProcessSale(context.Background(), sale(c, l))
	require.NoError(t, err)
	assert.Zero(t, res.Settlement.Commission)
	assert.Equal(t, uint64(999), res.Settlement.SellerShare)
	assert.Equal(t, uint64(999), f.balance(t, owner, domain.NativeAsset))
}

func TestSetCampaignActive(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c, l := f.campaignWithLink(t, 100, 100)

	_, err := f.svc.SetCampaignActive(ctx, stranger, c.ID, false)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	off, err := f.svc.SetCampaignActive(ctx, owner, c.ID, false)
	require.NoError(t, err)
	assert.False(t, off.Active)

	_, err = f.svc.ProcessSale(ctx, sale(c, l))
	require.ErrorIs(t, err, domain.ErrCampaignNotActive)

	on, err := f.svc.SetCampaignActive(ctx, owner, c.ID, true)
	require.NoError(t, err)
	assert.True(t, on.Active)

	_, err = f.svc.ProcessSale(ctx, sale(c, l))
	require.NoError(t, err)
}

func TestConcurrentSalesSettleOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c, l := f.campaignWithLink(t, 100, 1000)

	const buyers = 8
	reqs := make([]domain.SaleRequest, buyers)
	for i := range reqs {
		var b domain.Address
		b[0], b[31] = 0xb0, byte(i)
		f.mint(t, b, domain.NativeAsset, 100)
		reqs[i] = sale(c, l)
		reqs[i].Buyer = b
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		wins  int
		empty int
	)
	for _, req := range reqs {
		wg.Add(1)
		go func(req domain.SaleRequest) {
			defer wg.Done()
			_, err := f.svc.ProcessSale(ctx, req)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, domain.ErrEscrowEmpty):
				empty++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(req)
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, buyers-1, empty)

	stored, err := f.svc.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stored.TotalSettlements)
	assert.Equal(t, uint64(10), f.balance(t, affiliate, domain.NativeAsset))
}

func TestEventsPublishedAfterCommit(t *testing.T) {
	ctx := context.Background()
	publisher := mocks.NewMockEventPublisher(t)
	f := newFixture(t, WithPublisher(publisher))
	f.mint(t, owner, asset, 1)
	f.mint(t, buyer, domain.NativeAsset, 40)

	ofType := func(typ domain.EventType) any {
		return mock.MatchedBy(func(ev domain.Event) bool { return ev.Type == typ && ev.ID != "" })
	}
	publisher.EXPECT().Publish(mock.Anything, ofType(domain.EventCampaignCreated)).Return(nil).Once()
	publisher.EXPECT().Publish(mock.Anything, ofType(domain.EventAffiliateLinkCreated)).Return(nil).Once()
	// A failing transport does not undo a committed settlement.
	publisher.EXPECT().Publish(mock.Anything, ofType(domain.EventSaleSettled)).Return(errors.New("broker down")).Once()

	c, err := f.svc.CreateCampaign(ctx, owner, params(40, 2500))
	require.NoError(t, err)
	l, err := f.svc.CreateAffiliateLink(ctx, affiliate, c.ID)
	require.NoError(t, err)
	_, err = f.svc.ProcessSale(ctx, sale(c, l))
	require.NoError(t, err)

	// Failed operations publish nothing; the mock fails on unexpected calls.
	_, err = f.svc.ProcessSale(ctx, sale(c, l))
	require.ErrorIs(t, err, domain.ErrEscrowEmpty)
	_, err = f.svc.CreateCampaign(ctx, owner, params(0, 0))
	require.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestMetricsRecorded(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c, l := f.campaignWithLink(t, 1_000_000, 500)

	_, err := f.svc.ProcessSale(ctx, sale(c, l))
	require.NoError(t, err)
	_, err = f.svc.ProcessSale(ctx, sale(c, l))
	require.ErrorIs(t, err, domain.ErrEscrowEmpty)

	expected := `
# HELP affiliate_escrow_sales_settled_total Number of sales settled.
# TYPE affiliate_escrow_sales_settled_total counter
affiliate_escrow_sales_settled_total 1
# HELP affiliate_escrow_settled_volume_total Native units paid out by settlements, by recipient.
# TYPE affiliate_escrow_settled_volume_total counter
affiliate_escrow_settled_volume_total{recipient="affiliate"} 50000
affiliate_escrow_settled_volume_total{recipient="seller"} 950000
# HELP affiliate_escrow_operations_failed_total Failed engine operations by operation and error code.
# TYPE affiliate_escrow_operations_failed_total counter
affiliate_escrow_operations_failed_total{code="ESCROW_EMPTY",operation="process_sale"} 1
`
	require.NoError(t, testutil.GatherAndCompare(f.reg, strings.NewReader(expected),
		"affiliate_escrow_sales_settled_total",
		"affiliate_escrow_settled_volume_total",
		"affiliate_escrow_operations_failed_total",
	))
}

func TestListSettlementsLimit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.ListSettlements(ctx, stranger, 500)
	require.NoError(t, err)

	c, l := f.campaignWithLink(t, 10, 0)
	_, err = f.svc.ProcessSale(ctx, sale(c, l))
	require.NoError(t, err)

	list, err := f.svc.ListSettlements(ctx, c.ID, 500)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	list, err = f.svc.ListSettlements(ctx, stranger, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDefaultsDiscardEventsAndMetrics(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Mint(ctx, owner, asset, 2))
	svc := NewEscrowUseCase(store, authority.NewDeriver(program))

	c, err := svc.CreateCampaign(ctx, owner, params(10, 100))
	require.NoError(t, err)
	_, err = svc.CreateAffiliateLink(ctx, affiliate, c.ID)
	require.NoError(t, err)
	_, err = svc.CreateCampaign(ctx, owner, params(10, 100))
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}
