package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"quorumid/internal/identity/models"
	id "quorumid/pkg/domain"
	"quorumid/pkg/platform/sentinel"
)

// Store invariants (conflict on duplicate create, verification independent of
// registration) are validated here because the services rely on them directly.
type InMemoryIdentityStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestInMemoryIdentityStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryIdentityStoreSuite))
}

func (s *InMemoryIdentityStoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func (s *InMemoryIdentityStoreSuite) newIdentity(address id.Address) *models.Identity {
	identity, err := models.NewIdentity(address, "Alice", "alice@example.com")
	s.Require().NoError(err)
	return identity
}

func (s *InMemoryIdentityStoreSuite) TestCreateAndLookup() {
	s.Run("creates and finds identity by address", func() {
		identity := s.newIdentity("alice")
		s.Require().NoError(s.store.Create(s.ctx, identity))

		found, err := s.store.FindByAddress(s.ctx, "alice")
		s.Require().NoError(err)
		s.Equal(identity, found)

		exists, err := s.store.Exists(s.ctx, "alice")
		s.Require().NoError(err)
		s.True(exists)
	})

	s.Run("rejects a second record at the same address", func() {
		err := s.store.Create(s.ctx, s.newIdentity("alice"))
		s.Require().ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("returns ErrNotFound for unknown address", func() {
		_, err := s.store.FindByAddress(s.ctx, "nobody")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("returned records are copies", func() {
		found, err := s.store.FindByAddress(s.ctx, "alice")
		s.Require().NoError(err)
		found.Name = "Mallory"

		again, err := s.store.FindByAddress(s.ctx, "alice")
		s.Require().NoError(err)
		s.Equal("Alice", again.Name)
	})
}

func (s *InMemoryIdentityStoreSuite) TestVerificationMarks() {
	s.Run("an unregistered address can be verified", func() {
		s.Require().NoError(s.store.SetVerified(s.ctx, "ghost", true))
		verified, err := s.store.IsVerified(s.ctx, "ghost")
		s.Require().NoError(err)
		s.True(verified)

		exists, err := s.store.Exists(s.ctx, "ghost")
		s.Require().NoError(err)
		s.False(exists)
	})

	s.Run("verified flag is reflected on read", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newIdentity("bob")))
		s.Require().NoError(s.store.SetVerified(s.ctx, "bob", true))

		found, err := s.store.FindByAddress(s.ctx, "bob")
		s.Require().NoError(err)
		s.True(found.Verified)
	})

	s.Run("writes never persist the verified projection", func() {
		identity := s.newIdentity("carol")
		identity.Verified = true
		s.Require().NoError(s.store.Create(s.ctx, identity))

		found, err := s.store.FindByAddress(s.ctx, "carol")
		s.Require().NoError(err)
		s.False(found.Verified)
	})

	s.Run("marks can be cleared", func() {
		s.Require().NoError(s.store.SetVerified(s.ctx, "bob", false))
		verified, err := s.store.IsVerified(s.ctx, "bob")
		s.Require().NoError(err)
		s.False(verified)
	})
}

func (s *InMemoryIdentityStoreSuite) TestUpdateAndDelete() {
	s.Run("update of a missing record fails", func() {
		err := s.store.Update(s.ctx, s.newIdentity("nobody"))
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("update persists the two-factor flag", func() {
		identity := s.newIdentity("dave")
		s.Require().NoError(s.store.Create(s.ctx, identity))
		identity.TwoFactor = true
		s.Require().NoError(s.store.Update(s.ctx, identity))

		found, err := s.store.FindByAddress(s.ctx, "dave")
		s.Require().NoError(err)
		s.True(found.TwoFactor)
	})

	s.Run("delete removes the record", func() {
		s.Require().NoError(s.store.Delete(s.ctx, "dave"))
		_, err := s.store.FindByAddress(s.ctx, "dave")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
		s.Require().ErrorIs(s.store.Delete(s.ctx, "dave"), sentinel.ErrNotFound)
	})
}

func (s *InMemoryIdentityStoreSuite) TestReset() {
	s.Require().NoError(s.store.Create(s.ctx, s.newIdentity("erin")))
	s.Require().NoError(s.store.SetVerified(s.ctx, "erin", true))

	s.store.Reset()

	count, err := s.store.Count(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)
	verified, err := s.store.IsVerified(s.ctx, "erin")
	s.Require().NoError(err)
	s.False(verified)
}
