package usecase

import (
	"context"
	"fmt"

	"affiliate-escrow/internal/core/authority"
	"affiliate-escrow/internal/core/domain"
	"affiliate-escrow/internal/core/port"
)

// EscrowCustody holds the single unit of a campaign's asset under the
// campaign's derived custody authority.
type EscrowCustody struct {
	deriver *authority.Deriver
}

func NewEscrowCustody(deriver *authority.Deriver) *EscrowCustody {
	return &EscrowCustody{deriver: deriver}
}

// Deposit moves one unit of the campaign asset from `from` into escrow,
// authorized by from's signature. The escrow must be empty.
func (e *EscrowCustody) Deposit(ctx context.Context, tx port.Ledger, c *domain.Campaign, from domain.Address) error {
	held, err := e.Held(ctx, tx, c)
	if err != nil {
		return err
	}
	if held != 0 {
		return domain.New(domain.CodeAlreadyExists, fmt.Sprintf("escrow already holds %d units", held))
	}
	return tx.Transfer(ctx, domain.Transfer{
		From:       from,
		To:         c.CustodyAuthority,
		Asset:      c.AssetRef,
		Amount:     1,
		Authorizer: domain.Signer(from),
	})
}

// Held returns the number of asset units in the campaign's escrow.
func (e *EscrowCustody) Held(ctx context.Context, tx port.Ledger, c *domain.Campaign) (uint64, error) {
	return tx.HoldingBalance(ctx, c.CustodyAuthority, c.AssetRef)
}

// CheckRelease reports whether Release would find the asset in escrow and
// whether asset names the campaign's asset.
func (e *EscrowCustody) CheckRelease(ctx context.Context, tx port.Ledger, c *domain.Campaign, asset domain.Address) error {
	held, err := e.Held(ctx, tx, c)
	if err != nil {
		return err
	}
	if held < 1 {
		return domain.ErrEscrowEmpty
	}
	if asset != c.AssetRef {
		return domain.ErrMintMismatch
	}
	return nil
}

// Release moves the escrowed unit to `to`. Authority is re-derived from the
// campaign record on every call.
func (e *EscrowCustody) Release(ctx context.Context, tx port.Ledger, c *domain.Campaign, to, asset domain.Address) error {
	if err := e.CheckRelease(ctx, tx, c, asset); err != nil {
		return err
	}
	capability, err := e.deriver.Issue(c)
	if err != nil {
		return err
	}
	return tx.Transfer(ctx, domain.Transfer{
		From:       c.CustodyAuthority,
		To:         to,
		Asset:      c.AssetRef,
		Amount:     1,
		Authorizer: capability,
	})
}
