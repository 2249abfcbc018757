// Package access holds the role checks shared by every owner-gated operation.
package access

import (
	id "quorumid/pkg/domain"
	dErrors "quorumid/pkg/domain-errors"
)

// Authority is the single designated address permitted to verify identities,
// advance the clock and blacklist addresses.
type Authority struct {
	address id.Address
}

// NewAuthority fixes the designated address for the lifetime of an engine.
func NewAuthority(address id.Address) Authority {
	return Authority{address: address}
}

// Address returns the designated address.
func (a Authority) Address() id.Address {
	return a.address
}

// IsAuthority reports whether caller is the designated address. An unset
// authority matches nobody.
func (a Authority) IsAuthority(caller id.Address) bool {
	return !a.address.IsNil() && caller == a.address
}

// Require returns CodeNotAuthorized for every caller other than the authority.
func (a Authority) Require(caller id.Address) error {
	if !a.IsAuthority(caller) {
		return dErrors.New(dErrors.CodeNotAuthorized, "caller is not the designated authority")
	}
	return nil
}
