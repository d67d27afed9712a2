package configs

import (
	"fmt"
	"strconv"
	"strings"

	"affiliate-escrow/internal/core/domain"
)

// Storage backends selectable with ENGINE_STORAGE.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Engine configures the settlement engine itself.
type Engine struct {
	// Storage selects the account store: "memory" or "postgres".
	Storage string `env:"STORAGE" envDefault:"memory"`
	// ProgramID scopes every derived address. Changing it changes every
	// campaign, affiliate link and custody address.
	ProgramID string `env:"PROGRAM_ID" envDefault:"616666696c696174652d657363726f772d70726f6772616d2d30303030303001"`
	// Seed lists holdings minted at startup as holder:asset:amount.
	// The asset may be "native" for the payment unit.
	Seed []string `env:"SEED" envSeparator:","`
}

// Grant is one holding minted at startup.
type Grant struct {
	Holder domain.Address
	Asset  domain.Address
	Amount uint64
}

// Program parses ProgramID.
func (c Engine) Program() (domain.Address, error) {
	return domain.ParseAddress(c.ProgramID)
}

// Grants parses Seed.
func (c Engine) Grants() ([]Grant, error) {
	grants := make([]Grant, 0, len(c.Seed))
	for _, entry := range c.Seed {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("seed entry %q: want holder:asset:amount", entry)
		}
		holder, err := domain.ParseAddress(parts[0])
		if err != nil {
			return nil, fmt.Errorf("seed entry %q: %w", entry, err)
		}
		var asset domain.Address
		if parts[1] != "native" {
			if asset, err = domain.ParseAddress(parts[1]); err != nil {
				return nil, fmt.Errorf("seed entry %q: %w", entry, err)
			}
		}
		amount, err := strconv.ParseUint(parts[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("seed entry %q: %w", entry, err)
		}
		grants = append(grants, Grant{Holder: holder, Asset: asset, Amount: amount})
	}
	return grants, nil
}
