package authority

import (
	"affiliate-escrow/internal/core/domain"
)

// Capability lets the engine act as one campaign's custody authority for a
// single operation. It carries no secret; Authorize re-runs the derivation
// each time it is presented.
type Capability struct {
	Program   domain.Address
	Campaign  domain.Address
	Authority domain.Address
	Bump      uint8
}

// Issue re-derives the custody authority of c and returns a capability for
// it. The derivation must reproduce both the authority and the bump stored
// on the campaign record.
func (d *Deriver) Issue(c *domain.Campaign) (Capability, error) {
	addr, bump, err := d.Custody(c.ID)
	if err != nil {
		return Capability{}, err
	}
	if addr != c.CustodyAuthority || bump != c.CustodyBump {
		return Capability{}, domain.Wrap(domain.CodeUnauthorized, "custody authority does not match campaign", domain.ErrUnauthorized)
	}
	return Capability{
		Program:   d.program,
		Campaign:  c.ID,
		Authority: addr,
		Bump:      bump,
	}, nil
}

// Authorize implements domain.Authorizer. It accepts only the capability's
// own authority as holder and only if seeds and bump still produce it.
func (c Capability) Authorize(holder domain.Address) error {
	if holder != c.Authority {
		return domain.ErrUnauthorized
	}
	addr, err := CreateAddress(c.Program, EscrowSeed, c.Campaign.Bytes(), []byte{c.Bump})
	if err != nil || addr != c.Authority {
		return domain.ErrUnauthorized
	}
	return nil
}
