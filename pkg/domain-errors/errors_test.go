package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodes(t *testing.T) {
	t.Run("New carries its code", func(t *testing.T) {
		err := New(CodeNotAuthorized, "caller is not the authority")
		require.Error(t, err)
		assert.True(t, HasCode(err, CodeNotAuthorized))
		assert.False(t, HasCode(err, CodeNotRegistered))
		assert.Equal(t, CodeNotAuthorized, CodeOf(err))
	})

	t.Run("Wrap keeps the cause reachable", func(t *testing.T) {
		cause := errors.New("store down")
		err := Wrap(cause, CodeInternal, "failed to load identity")
		assert.ErrorIs(t, err, cause)
		assert.True(t, Is(err, CodeInternal))
		assert.Contains(t, err.Error(), "store down")
	})

	t.Run("Wrap of nil is nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeInternal, "unused"))
	})

	t.Run("inner codes are found through fmt wrapping", func(t *testing.T) {
		inner := New(CodeInsufficientApprovals, "2 of 3 approvals")
		outer := Wrap(fmt.Errorf("complete: %w", inner), CodeInternal, "transfer aborted")
		assert.True(t, HasCode(outer, CodeInsufficientApprovals))
		assert.Equal(t, CodeInternal, CodeOf(outer))
	})

	t.Run("uncoded errors report internal", func(t *testing.T) {
		assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
		assert.False(t, HasCode(errors.New("plain"), CodeInternal))
	})
}
