// Package requestcontext provides context accessors for values scoped to the
// block and operation being applied.
//
// The engine sets these before routing an operation; services read them when
// they log or emit audit events.
//
//	ctx = requestcontext.WithBlockID(ctx, blockID)
//	ctx = requestcontext.WithHeight(ctx, clock.Height())
//	ctx = requestcontext.WithOpIndex(ctx, i)
//
//	blockID := requestcontext.BlockID(ctx)
package requestcontext

import (
	"context"

	id "quorumid/pkg/domain"
)

type (
	blockIDKey struct{}
	heightKey  struct{}
	opIndexKey struct{}
)

// WithBlockID adds the block correlation ID to the context.
func WithBlockID(ctx context.Context, blockID id.BlockID) context.Context {
	return context.WithValue(ctx, blockIDKey{}, blockID)
}

// BlockID returns the block correlation ID, or the zero ID outside a block.
func BlockID(ctx context.Context) id.BlockID {
	if v, ok := ctx.Value(blockIDKey{}).(id.BlockID); ok {
		return v
	}
	return id.BlockID{}
}

// WithHeight adds the height at which the operation is applied.
func WithHeight(ctx context.Context, height id.Height) context.Context {
	return context.WithValue(ctx, heightKey{}, height)
}

// Height returns the height at which the operation is applied, or 0.
func Height(ctx context.Context) id.Height {
	if v, ok := ctx.Value(heightKey{}).(id.Height); ok {
		return v
	}
	return 0
}

// WithOpIndex adds the operation's position within its block.
func WithOpIndex(ctx context.Context, index int) context.Context {
	return context.WithValue(ctx, opIndexKey{}, index)
}

// OpIndex returns the operation's position within its block and whether one was set.
func OpIndex(ctx context.Context) (int, bool) {
	v, ok := ctx.Value(opIndexKey{}).(int)
	return v, ok
}
