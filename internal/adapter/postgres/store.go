package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"affiliate-escrow/internal/core/domain"
	"affiliate-escrow/internal/core/port"
)

// SQLSTATE codes the store translates into domain errors.
const (
	uniqueViolation      = "23505"
	checkViolation       = "23514"
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

// Store implements port.Store using pgxpool for PostgreSQL. Campaign and
// affiliate link records are stored in their binary layout next to the
// columns needed for uniqueness and lookups. Amounts are numeric(20,0)
// so the full uint64 range fits.
type Store struct {
	db database
}

// database is the part of *pgxpool.Pool the store uses.
type database interface {
	querier
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// NewStore returns a new store instance.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{db: pool}
}

var _ port.Store = (*Store)(nil)

// Atomically runs fn inside one serializable transaction. The transaction
// commits when fn returns nil and rolls back otherwise, including when fn
// panics.
func (s *Store) Atomically(ctx context.Context, fn func(tx port.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
			err = translate(err)
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = translate(fmt.Errorf("commit tx: %w", err))
		}
	}()
	return fn(&pgTx{tx: tx})
}

// Mint credits amount units of asset to holder outside of any engine
// operation. Used for seeding.
func (s *Store) Mint(ctx context.Context, holder, asset domain.Address, amount uint64) error {
	return s.Atomically(ctx, func(t port.Tx) error {
		return t.(*pgTx).credit(ctx, holder, asset, amount)
	})
}

func (s *Store) GetCampaign(ctx context.Context, id domain.Address) (*domain.Campaign, error) {
	return loadCampaign(ctx, s.db, id, false)
}

func (s *Store) GetAffiliateLink(ctx context.Context, id domain.Address) (*domain.AffiliateLink, error) {
	return loadAffiliateLink(ctx, s.db, id, false)
}

// ListSettlements returns the newest settlements of a campaign first.
func (s *Store) ListSettlements(ctx context.Context, campaignID domain.Address, limit int) ([]domain.Settlement, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, campaign_id, affiliate_link_id, buyer, seller, affiliate, asset,
               price::text, commission::text, seller_share::text, settled_at
        FROM settlements
        WHERE campaign_id = $1
        ORDER BY settled_at DESC, id
        LIMIT $2`, campaignID.Bytes(), limit)
	if err != nil {
		return nil, fmt.Errorf("query settlements: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Settlement, error) {
		var (
			st                                      domain.Settlement
			campaign, link, buyer, seller, aff, ast []byte
			price, commission, sellerShare          string
		)
		if err := row.Scan(&st.ID, &campaign, &link, &buyer, &seller, &aff, &ast,
			&price, &commission, &sellerShare, &st.SettledAt); err != nil {
			return st, err
		}
		var err error
		for _, f := range []struct {
			dst *domain.Address
			src []byte
		}{
			{&st.CampaignID, campaign}, {&st.AffiliateLinkID, link}, {&st.Buyer, buyer},
			{&st.Seller, seller}, {&st.Affiliate, aff}, {&st.Asset, ast},
		} {
			if *f.dst, err = toAddress(f.src); err != nil {
				return st, err
			}
		}
		if st.Price, err = strconv.ParseUint(price, 10, 64); err != nil {
			return st, err
		}
		if st.Commission, err = strconv.ParseUint(commission, 10, 64); err != nil {
			return st, err
		}
		if st.SellerShare, err = strconv.ParseUint(sellerShare, 10, 64); err != nil {
			return st, err
		}
		st.SettledAt = st.SettledAt.UTC()
		return st, nil
	})
}

func (s *Store) Balance(ctx context.Context, holder, asset domain.Address) (uint64, error) {
	return balance(ctx, s.db, holder, asset, false)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgTx implements port.Tx on top of one pgx transaction.
type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) Campaign(ctx context.Context, id domain.Address) (*domain.Campaign, error) {
	return loadCampaign(ctx, t.tx, id, true)
}

func (t *pgTx) InsertCampaign(ctx context.Context, c *domain.Campaign) error {
	data, err := domain.EncodeCampaign(c)
	if err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx, `INSERT INTO campaigns (id, owner, name, data, created_at) VALUES ($1,$2,$3,$4,$5)`,
		c.ID.Bytes(), c.Owner.Bytes(), c.Name, data, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

func (t *pgTx) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	data, err := domain.EncodeCampaign(c)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx, `UPDATE campaigns SET data = $2, updated_at = $3 WHERE id = $1`,
		c.ID.Bytes(), data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.New(domain.CodeNotFound, "campaign not found")
	}
	return nil
}

func (t *pgTx) AffiliateLink(ctx context.Context, id domain.Address) (*domain.AffiliateLink, error) {
	return loadAffiliateLink(ctx, t.tx, id, true)
}

func (t *pgTx) InsertAffiliateLink(ctx context.Context, l *domain.AffiliateLink) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO affiliate_links (id, campaign_id, affiliate, data, created_at) VALUES ($1,$2,$3,$4,$5)`,
		l.ID.Bytes(), l.CampaignID.Bytes(), l.Affiliate.Bytes(), domain.EncodeAffiliateLink(l), l.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert affiliate link: %w", err)
	}
	return nil
}

func (t *pgTx) UpdateAffiliateLink(ctx context.Context, l *domain.AffiliateLink) error {
	tag, err := t.tx.Exec(ctx, `UPDATE affiliate_links SET data = $2, updated_at = $3 WHERE id = $1`,
		l.ID.Bytes(), domain.EncodeAffiliateLink(l), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update affiliate link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.New(domain.CodeNotFound, "affiliate link not found")
	}
	return nil
}

func (t *pgTx) InsertSettlement(ctx context.Context, s *domain.Settlement) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO settlements
    (id, campaign_id, affiliate_link_id, buyer, seller, affiliate, asset, price, commission, seller_share, settled_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8::text::numeric,$9::text::numeric,$10::text::numeric,$11)`,
		s.ID, s.CampaignID.Bytes(), s.AffiliateLinkID.Bytes(), s.Buyer.Bytes(), s.Seller.Bytes(),
		s.Affiliate.Bytes(), s.Asset.Bytes(),
		strconv.FormatUint(s.Price, 10), strconv.FormatUint(s.Commission, 10),
		strconv.FormatUint(s.SellerShare, 10), s.SettledAt)
	if err != nil {
		return fmt.Errorf("insert settlement: %w", err)
	}
	return nil
}

func (t *pgTx) HoldingBalance(ctx context.Context, holder, asset domain.Address) (uint64, error) {
	return balance(ctx, t.tx, holder, asset, false)
}

// Transfer moves amount units of asset between holdings. The source row is
// locked for the rest of the transaction.
func (t *pgTx) Transfer(ctx context.Context, tr domain.Transfer) error {
	if tr.Authorizer == nil {
		return domain.ErrUnauthorized
	}
	if err := tr.Authorizer.Authorize(tr.From); err != nil {
		return err
	}
	held, err := balance(ctx, t.tx, tr.From, tr.Asset, true)
	if err != nil {
		return err
	}
	if held < tr.Amount {
		return domain.Wrap(domain.CodeInsufficientFunds,
			fmt.Sprintf("holder %s has %d of %d units", tr.From, held, tr.Amount),
			domain.ErrInsufficientFunds)
	}
	if tr.From == tr.To || tr.Amount == 0 {
		return nil
	}
	_, err = t.tx.Exec(ctx, `UPDATE holdings SET amount = amount - $3::text::numeric WHERE holder = $1 AND asset = $2`,
		tr.From.Bytes(), tr.Asset.Bytes(), strconv.FormatUint(tr.Amount, 10))
	if err != nil {
		return fmt.Errorf("debit holding: %w", err)
	}
	return t.credit(ctx, tr.To, tr.Asset, tr.Amount)
}

func (t *pgTx) credit(ctx context.Context, holder, asset domain.Address, amount uint64) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO holdings (holder, asset, amount) VALUES ($1,$2,$3::text::numeric)
ON CONFLICT (holder, asset) DO UPDATE SET amount = holdings.amount + EXCLUDED.amount`,
		holder.Bytes(), asset.Bytes(), strconv.FormatUint(amount, 10))
	if err != nil {
		return fmt.Errorf("credit holding: %w", err)
	}
	return nil
}

func loadCampaign(ctx context.Context, q querier, id domain.Address, lock bool) (*domain.Campaign, error) {
	var data []byte
	err := q.QueryRow(ctx, `SELECT data FROM campaigns WHERE id = $1`+forUpdate(lock), id.Bytes()).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.New(domain.CodeNotFound, "campaign not found")
	}
	if err != nil {
		return nil, fmt.Errorf("select campaign: %w", err)
	}
	return domain.DecodeCampaign(id, data)
}

func loadAffiliateLink(ctx context.Context, q querier, id domain.Address, lock bool) (*domain.AffiliateLink, error) {
	var data []byte
	err := q.QueryRow(ctx, `SELECT data FROM affiliate_links WHERE id = $1`+forUpdate(lock), id.Bytes()).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.New(domain.CodeNotFound, "affiliate link not found")
	}
	if err != nil {
		return nil, fmt.Errorf("select affiliate link: %w", err)
	}
	return domain.DecodeAffiliateLink(id, data)
}

func balance(ctx context.Context, q querier, holder, asset domain.Address, lock bool) (uint64, error) {
	var amount string
	err := q.QueryRow(ctx, `SELECT amount::text FROM holdings WHERE holder = $1 AND asset = $2`+forUpdate(lock),
		holder.Bytes(), asset.Bytes()).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("select holding: %w", err)
	}
	return strconv.ParseUint(amount, 10, 64)
}

func forUpdate(lock bool) string {
	if lock {
		return ` FOR UPDATE`
	}
	return ""
}

func toAddress(b []byte) (domain.Address, error) {
	var a domain.Address
	if len(b) != domain.AddressLength {
		return a, fmt.Errorf("address column has %d bytes", len(b))
	}
	copy(a[:], b)
	return a, nil
}

// translate maps PostgreSQL failures onto domain error codes. Coded
// errors pass through unchanged.
func translate(err error) error {
	if domain.CodeOf(err) != "" {
		return err
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case uniqueViolation:
		return domain.Wrap(domain.CodeAlreadyExists, "record already exists", err)
	case checkViolation:
		return domain.Wrap(domain.CodeCalculationError, "amount out of range", err)
	case serializationFailure, deadlockDetected:
		return domain.Wrap(domain.CodeConflict, "concurrent update, retry", err)
	}
	return err
}
