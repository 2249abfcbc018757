package models

import (
	id "quorumid/pkg/domain"
	dErrors "quorumid/pkg/domain-errors"
)

// Identity is the record an address owns in the registry.
//
// Invariants:
//   - exactly one Identity per address
//   - Address only changes through recovery completion
//   - Verified mirrors the address-keyed verification mark; it is not stored
//     on the record and is filled in on read
type Identity struct {
	Address   id.Address `json:"address"`
	Name      string     `json:"name"`
	Contact   string     `json:"contact"`
	Verified  bool       `json:"verified"`
	TwoFactor bool       `json:"two_factor"`
}

// NewIdentity builds an unverified identity without two-factor. Name and
// contact are stored exactly as given.
func NewIdentity(address id.Address, name, contact string) (*Identity, error) {
	if address.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "identity address is required")
	}
	return &Identity{
		Address: address,
		Name:    name,
		Contact: contact,
	}, nil
}

// Rekeyed returns a copy of the identity keyed at address with every other
// attribute unchanged.
func (i Identity) Rekeyed(address id.Address) *Identity {
	i.Address = address
	return &i
}
