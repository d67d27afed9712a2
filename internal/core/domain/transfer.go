package domain

// Authorizer proves the right to move value out of a holder's account.
type Authorizer interface {
	Authorize(holder Address) error
}

// Signer is a human-held identity that signed the current operation. It
// authorizes movements out of its own holdings only.
type Signer Address

func (s Signer) Authorize(holder Address) error {
	if Address(s) != holder {
		return ErrUnauthorized
	}
	return nil
}

// Transfer is one movement of Amount units of Asset between holders.
type Transfer struct {
	From       Address
	To         Address
	Asset      Address
	Amount     uint64
	Authorizer Authorizer
}
