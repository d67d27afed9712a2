// Package memory is an in-process implementation of port.Store. Campaign
// and affiliate link records are kept in their persisted binary layout,
// keyed by record identity. Atomic units are serialized by a mutex and run
// against a copy of the state that replaces the committed state only when
// the unit succeeds.
package memory

import (
	"context"
	"fmt"
	"math/bits"
	"sort"
	"sync"

	"affiliate-escrow/internal/core/domain"
	"affiliate-escrow/internal/core/port"
)

type nameKey struct {
	owner domain.Address
	name  string
}

type linkKey struct {
	campaign  domain.Address
	affiliate domain.Address
}

type holdingKey struct {
	holder domain.Address
	asset  domain.Address
}

type state struct {
	records     map[domain.Address][]byte
	names       map[nameKey]domain.Address
	links       map[linkKey]domain.Address
	holdings    map[holdingKey]uint64
	settlements []domain.Settlement
}

func newState() *state {
	return &state{
		records:  make(map[domain.Address][]byte),
		names:    make(map[nameKey]domain.Address),
		links:    make(map[linkKey]domain.Address),
		holdings: make(map[holdingKey]uint64),
	}
}

// clone copies the maps. Record byte slices are never modified in place,
// so they are shared.
func (s *state) clone() *state {
	c := &state{
		records:     make(map[domain.Address][]byte, len(s.records)),
		names:       make(map[nameKey]domain.Address, len(s.names)),
		links:       make(map[linkKey]domain.Address, len(s.links)),
		holdings:    make(map[holdingKey]uint64, len(s.holdings)),
		settlements: append([]domain.Settlement(nil), s.settlements...),
	}
	for k, v := range s.records {
		c.records[k] = v
	}
	for k, v := range s.names {
		c.names[k] = v
	}
	for k, v := range s.links {
		c.links[k] = v
	}
	for k, v := range s.holdings {
		c.holdings[k] = v
	}
	return c
}

// Store implements port.Store in memory.
type Store struct {
	mu sync.Mutex
	st *state
}

func NewStore() *Store {
	return &Store{st: newState()}
}

var _ port.Store = (*Store)(nil)

// Atomically runs fn against a private copy of the state and commits it
// when fn returns nil.
func (s *Store) Atomically(ctx context.Context, fn func(tx port.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.st.clone()
	if err := fn(&tx{st: work}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.st = work
	return nil
}

// Mint credits amount units of asset to holder. It stands in for the
// external ledger's issuance and is used for seeding and tests.
func (s *Store) Mint(ctx context.Context, holder, asset domain.Address, amount uint64) error {
	return s.Atomically(ctx, func(t port.Tx) error {
		return t.(*tx).credit(holder, asset, amount)
	})
}

func (s *Store) GetCampaign(ctx context.Context, id domain.Address) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&tx{st: s.st}).Campaign(ctx, id)
}

func (s *Store) GetAffiliateLink(ctx context.Context, id domain.Address) (*domain.AffiliateLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&tx{st: s.st}).AffiliateLink(ctx, id)
}

func (s *Store) ListSettlements(_ context.Context, campaignID domain.Address, limit int) ([]domain.Settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Settlement
	for _, st := range s.st.settlements {
		if st.CampaignID == campaignID {
			out = append(out, st)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SettledAt.After(out[j].SettledAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) Balance(_ context.Context, holder, asset domain.Address) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.holdings[holdingKey{holder, asset}], nil
}

// tx implements port.Tx over one working copy of the state.
type tx struct {
	st *state
}

func (t *tx) Campaign(_ context.Context, id domain.Address) (*domain.Campaign, error) {
	data, ok := t.st.records[id]
	if !ok || !domain.IsKind(data, domain.CampaignKind) {
		return nil, domain.New(domain.CodeNotFound, "campaign not found")
	}
	return domain.DecodeCampaign(id, data)
}

func (t *tx) InsertCampaign(_ context.Context, c *domain.Campaign) error {
	key := nameKey{c.Owner, c.Name}
	if _, ok := t.st.records[c.ID]; ok {
		return domain.New(domain.CodeAlreadyExists, "campaign already exists")
	}
	if _, ok := t.st.names[key]; ok {
		return domain.New(domain.CodeAlreadyExists, "owner already has a campaign with this name")
	}
	data, err := domain.EncodeCampaign(c)
	if err != nil {
		return err
	}
	t.st.records[c.ID] = data
	t.st.names[key] = c.ID
	return nil
}

func (t *tx) UpdateCampaign(_ context.Context, c *domain.Campaign) error {
	if data, ok := t.st.records[c.ID]; !ok || !domain.IsKind(data, domain.CampaignKind) {
		return domain.New(domain.CodeNotFound, "campaign not found")
	}
	data, err := domain.EncodeCampaign(c)
	if err != nil {
		return err
	}
	t.st.records[c.ID] = data
	return nil
}

func (t *tx) AffiliateLink(_ context.Context, id domain.Address) (*domain.AffiliateLink, error) {
	data, ok := t.st.records[id]
	if !ok || !domain.IsKind(data, domain.AffiliateLinkKind) {
		return nil, domain.New(domain.CodeNotFound, "affiliate link not found")
	}
	return domain.DecodeAffiliateLink(id, data)
}

func (t *tx) InsertAffiliateLink(_ context.Context, l *domain.AffiliateLink) error {
	key := linkKey{l.CampaignID, l.Affiliate}
	if _, ok := t.st.links[key]; ok {
		return domain.New(domain.CodeAlreadyExists, "affiliate link already exists")
	}
	if _, ok := t.st.records[l.ID]; ok {
		return domain.New(domain.CodeAlreadyExists, "affiliate link already exists")
	}
	t.st.records[l.ID] = domain.EncodeAffiliateLink(l)
	t.st.links[key] = l.ID
	return nil
}

func (t *tx) UpdateAffiliateLink(_ context.Context, l *domain.AffiliateLink) error {
	if data, ok := t.st.records[l.ID]; !ok || !domain.IsKind(data, domain.AffiliateLinkKind) {
		return domain.New(domain.CodeNotFound, "affiliate link not found")
	}
	t.st.records[l.ID] = domain.EncodeAffiliateLink(l)
	return nil
}

func (t *tx) InsertSettlement(_ context.Context, s *domain.Settlement) error {
	for _, existing := range t.st.settlements {
		if existing.ID == s.ID {
			return domain.New(domain.CodeAlreadyExists, "settlement already exists")
		}
	}
	t.st.settlements = append(t.st.settlements, *s)
	return nil
}

func (t *tx) HoldingBalance(_ context.Context, holder, asset domain.Address) (uint64, error) {
	return t.st.holdings[holdingKey{holder, asset}], nil
}

func (t *tx) Transfer(_ context.Context, tr domain.Transfer) error {
	if tr.Authorizer == nil {
		return domain.ErrUnauthorized
	}
	if err := tr.Authorizer.Authorize(tr.From); err != nil {
		return err
	}
	from := holdingKey{tr.From, tr.Asset}
	if t.st.holdings[from] < tr.Amount {
		return domain.Wrap(domain.CodeInsufficientFunds,
			fmt.Sprintf("holder %s has %d of %d units", tr.From, t.st.holdings[from], tr.Amount),
			domain.ErrInsufficientFunds)
	}
	if tr.From == tr.To || tr.Amount == 0 {
		return nil
	}
	t.st.holdings[from] -= tr.Amount
	return t.credit(tr.To, tr.Asset, tr.Amount)
}

func (t *tx) credit(holder, asset domain.Address, amount uint64) error {
	key := holdingKey{holder, asset}
	sum, carry := bits.Add64(t.st.holdings[key], amount, 0)
	if carry != 0 {
		return domain.ErrCalculationError
	}
	t.st.holdings[key] = sum
	return nil
}
