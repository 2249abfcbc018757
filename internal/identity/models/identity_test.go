package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "quorumid/pkg/domain"
	dErrors "quorumid/pkg/domain-errors"
)

func TestNewIdentity(t *testing.T) {
	t.Run("defaults flags to false", func(t *testing.T) {
		identity, err := NewIdentity("ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG", "Alice", "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Alice", identity.Name)
		assert.Equal(t, "alice@example.com", identity.Contact)
		assert.False(t, identity.Verified)
		assert.False(t, identity.TwoFactor)
	})

	t.Run("requires an address", func(t *testing.T) {
		_, err := NewIdentity("", "Alice", "alice@example.com")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func TestRekeyed(t *testing.T) {
	original := Identity{Address: "A", Name: "Alice", Contact: "a@x", Verified: true, TwoFactor: true}
	moved := original.Rekeyed(id.Address("B"))

	assert.Equal(t, id.Address("B"), moved.Address)
	assert.Equal(t, id.Address("A"), original.Address)
	moved.Address = original.Address
	assert.Equal(t, original, *moved)
}
