package domain

import (
	"encoding/hex"
	"fmt"
)

// AddressLength is the size in bytes of every identity handled by the engine.
const AddressLength = 32

// Address identifies a signer, an asset, a derived authority or a stored
// record. It is rendered as lowercase hex.
type Address [AddressLength]byte

// NativeAsset is the payment unit moved between buyer, seller and affiliate.
var NativeAsset Address

// ParseAddress decodes a 64 character hex string.
func ParseAddress(s string) (Address, error) {
	var a Address
	b, err := hex.DecodeString(s)
	if err != nil {
		return a, Wrap(CodeInvalidInput, "address is not hex", err)
	}
	if len(b) != AddressLength {
		return a, New(CodeInvalidInput, fmt.Sprintf("address must be %d bytes, got %d", AddressLength, len(b)))
	}
	copy(a[:], b)
	return a, nil
}

// MustParseAddress is ParseAddress for constants and tests.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// IsZero reports whether a is the all-zero address.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Bytes returns a copy of the address as a slice, suitable as a derivation seed.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressLength)
	copy(b, a[:])
	return b
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
