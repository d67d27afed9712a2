// Package authority derives keyless, program-scoped identities.
//
// A derived address is a SHA3-256 digest of a set of seeds, a bump byte and
// the program identity that does not decode to a point on the ed25519
// curve. No private key can exist for such an address, so the only way to
// act as it is to present the seeds and bump that produce it.
package authority

import (
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"affiliate-escrow/internal/core/domain"
)

const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

var marker = []byte("ProgramDerivedAddress")

// Seed prefixes of the records the engine derives.
var (
	CampaignSeed  = []byte("campaign")
	AffiliateSeed = []byte("affiliate")
	EscrowSeed    = []byte("escrow")
)

var errOnCurve = errors.New("derived address lies on the ed25519 curve")

// CreateAddress hashes seeds, program and marker and returns the address if
// it is off the curve. The bump, when used, is the last seed.
func CreateAddress(program domain.Address, seeds ...[]byte) (domain.Address, error) {
	var addr domain.Address
	if len(seeds) > MaxSeeds {
		return addr, domain.New(domain.CodeInvalidInput, fmt.Sprintf("at most %d seeds", MaxSeeds))
	}
	h := sha3.New256()
	for _, s := range seeds {
		if len(s) > MaxSeedLength {
			return addr, domain.New(domain.CodeInvalidInput, fmt.Sprintf("seed longer than %d bytes", MaxSeedLength))
		}
		h.Write(s)
	}
	h.Write(program[:])
	h.Write(marker)
	copy(addr[:], h.Sum(nil))

	if onCurve(addr) {
		return domain.Address{}, errOnCurve
	}
	return addr, nil
}

// FindAddress searches bumps from 255 down to 0 and returns the first
// off-curve address together with its bump.
func FindAddress(program domain.Address, seeds ...[]byte) (domain.Address, uint8, error) {
	if len(seeds) >= MaxSeeds {
		return domain.Address{}, 0, domain.New(domain.CodeInvalidInput, fmt.Sprintf("at most %d seeds besides the bump", MaxSeeds-1))
	}
	return findAddress(CreateAddress, program, seeds)
}

// findAddress runs the bump search with create as the candidate function.
func findAddress(create func(domain.Address, ...[]byte) (domain.Address, error), program domain.Address, seeds [][]byte) (domain.Address, uint8, error) {
	withBump := append(append(make([][]byte, 0, len(seeds)+1), seeds...), nil)
	for bump := 255; bump >= 0; bump-- {
		withBump[len(seeds)] = []byte{byte(bump)}
		addr, err := create(program, withBump...)
		if err == nil {
			return addr, uint8(bump), nil
		}
		if !errors.Is(err, errOnCurve) {
			return domain.Address{}, 0, err
		}
	}
	return domain.Address{}, 0, domain.ErrDerivationExhausted
}

func onCurve(a domain.Address) bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return err == nil
}

// Deriver derives the record and custody identities of one program.
type Deriver struct {
	program domain.Address
}

func NewDeriver(program domain.Address) *Deriver {
	return &Deriver{program: program}
}

// Program returns the identity all derivations are scoped to.
func (d *Deriver) Program() domain.Address {
	return d.program
}

// CampaignID returns the record identity of (owner, name).
func (d *Deriver) CampaignID(owner domain.Address, name string) (domain.Address, error) {
	addr, _, err := FindAddress(d.program, CampaignSeed, owner.Bytes(), []byte(name))
	return addr, err
}

// AffiliateLinkID returns the record identity of (campaign, affiliate).
func (d *Deriver) AffiliateLinkID(campaign, affiliate domain.Address) (domain.Address, error) {
	addr, _, err := FindAddress(d.program, AffiliateSeed, campaign.Bytes(), affiliate.Bytes())
	return addr, err
}

// Custody derives the escrow authority of a campaign and the bump that
// proves it.
func (d *Deriver) Custody(campaign domain.Address) (domain.Address, uint8, error) {
	return FindAddress(d.program, EscrowSeed, campaign.Bytes())
}
