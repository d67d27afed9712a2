package db

import (
	"context"
	"fmt"

	"affiliate-escrow/internal/config/configs"
	"affiliate-escrow/internal/core/domain"
)

// Minter credits holdings outside of engine operations. Both the memory and
// the postgres stores implement it.
type Minter interface {
	Mint(ctx context.Context, holder, asset domain.Address, amount uint64) error
}

// Seed mints the configured startup holdings. Seeding is additive: running
// it twice credits the grants twice.
func Seed(ctx context.Context, m Minter, grants []configs.Grant) error {
	for _, g := range grants {
		if err := m.Mint(ctx, g.Holder, g.Asset, g.Amount); err != nil {
			return fmt.Errorf("mint %d of %s to %s: %w", g.Amount, g.Asset, g.Holder, err)
		}
	}
	return nil
}
