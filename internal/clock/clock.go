// Package clock holds the simulated block height. It is a caller-advanced
// counter, not a consensus clock.
package clock

import (
	"context"
	"log/slog"

	"quorumid/internal/access"
	id "quorumid/pkg/domain"
)

// Clock is a monotonically non-decreasing height counter starting at 0.
type Clock struct {
	height    id.Height
	authority access.Authority
	logger    *slog.Logger
}

type Option func(c *Clock)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Clock) {
		c.logger = logger
	}
}

// New constructs a Clock at height 0 gated by authority.
func New(authority access.Authority, opts ...Option) *Clock {
	c := &Clock{authority: authority}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Height returns the current counter.
func (c *Clock) Height() id.Height {
	return c.height
}

// Advance increments the counter and returns the new height. Only the
// designated authority may advance.
func (c *Clock) Advance(ctx context.Context, caller id.Address) (id.Height, error) {
	if err := c.authority.Require(caller); err != nil {
		return c.height, err
	}
	c.height++
	if c.logger != nil {
		c.logger.InfoContext(ctx, "block_advanced",
			"height", uint64(c.height),
			"event", "block_advanced",
			"log_type", "audit",
		)
	}
	return c.height, nil
}

// Reset returns the counter to 0.
func (c *Clock) Reset() {
	c.height = 0
}
