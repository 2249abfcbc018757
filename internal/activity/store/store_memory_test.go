package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	id "quorumid/pkg/domain"
	"quorumid/pkg/platform/sentinel"
)

func TestInMemoryLastActive(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.LastActive(ctx, "alice")
	require.ErrorIs(t, err, sentinel.ErrNotFound)

	require.NoError(t, s.Touch(ctx, "alice", 0))
	height, err := s.LastActive(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, id.Height(0), height)

	require.NoError(t, s.Touch(ctx, "alice", 7))
	height, err = s.LastActive(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, id.Height(7), height)
}
