package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	dErrors "quorumid/pkg/domain-errors"
)

// MaxAddressLength bounds the size of an address accepted at trust boundaries.
const MaxAddressLength = 128

// Address identifies an account. Every keyed record in the registry is keyed by
// an Address.
//
// Usage: construct via ParseAddress when the value comes from outside the
// process (config, decoded batches). Direct casting is fine for literals in tests.
type Address string

// ParseAddress validates an address from external input.
//
// Errors: returns CodeInvalidInput when the value is empty, not valid UTF-8,
// contains whitespace or control characters, or exceeds MaxAddressLength.
func ParseAddress(s string) (Address, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "address cannot be empty")
	}
	if !utf8.ValidString(s) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "address must be valid UTF-8")
	}
	if len(s) > MaxAddressLength {
		return "", dErrors.New(dErrors.CodeInvalidInput, "address is too long")
	}
	if strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) >= 0 {
		return "", dErrors.New(dErrors.CodeInvalidInput, "address contains whitespace or control characters")
	}
	return Address(s), nil
}

func (a Address) String() string {
	return string(a)
}

// IsNil returns true if the address is empty.
func (a Address) IsNil() bool {
	return a == ""
}

// Height is a reading of the simulated block counter.
type Height uint64

// BlockID correlates the operations applied together in one block.
type BlockID uuid.UUID

// NewBlockID returns a random block identifier.
func NewBlockID() BlockID {
	return BlockID(uuid.New())
}

func (id BlockID) String() string {
	return uuid.UUID(id).String()
}

// IsNil returns true if the ID is the zero UUID.
func (id BlockID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}
