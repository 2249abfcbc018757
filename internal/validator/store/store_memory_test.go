package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"quorumid/internal/validator/models"
	"quorumid/pkg/platform/sentinel"
)

type InMemoryValidatorStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestInMemoryValidatorStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryValidatorStoreSuite))
}

func (s *InMemoryValidatorStoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func (s *InMemoryValidatorStoreSuite) TestMembership() {
	s.Run("unknown address is not a member", func() {
		exists, err := s.store.Exists(s.ctx, "v1")
		s.Require().NoError(err)
		s.False(exists)

		_, err = s.store.FindByAddress(s.ctx, "v1")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("saved record is a member", func() {
		s.Require().NoError(s.store.Save(s.ctx, models.NewValidator("v1")))

		exists, err := s.store.Exists(s.ctx, "v1")
		s.Require().NoError(err)
		s.True(exists)
	})

	s.Run("save overwrites", func() {
		v, err := s.store.FindByAddress(s.ctx, "v1")
		s.Require().NoError(err)
		v.TrustScore = 9
		s.Require().NoError(s.store.Save(s.ctx, v))
		s.Require().NoError(s.store.Save(s.ctx, models.NewValidator("v1")))

		found, err := s.store.FindByAddress(s.ctx, "v1")
		s.Require().NoError(err)
		s.Equal(models.InitialTrustScore, found.TrustScore)

		count, err := s.store.Count(s.ctx)
		s.Require().NoError(err)
		s.Equal(1, count)
	})
}
