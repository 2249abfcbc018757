package engine

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	id "quorumid/pkg/domain"
	dErrors "quorumid/pkg/domain-errors"
	"quorumid/pkg/requestcontext"
)

var tracer = otel.Tracer("quorumid/engine")

// Apply runs a single operation to completion and reports its outcome. A
// rejected operation leaves state untouched.
func (e *Engine) Apply(ctx context.Context, op Operation) Receipt {
	var kind Kind
	if op != nil {
		kind = op.Kind()
	}
	ctx, span := tracer.Start(ctx, "engine.Apply", trace.WithAttributes(
		attribute.String("op.kind", string(kind)),
		attribute.Int64("block.height", int64(e.clock.Height())),
	))
	defer span.End()

	ctx = requestcontext.WithHeight(ctx, e.clock.Height())
	value, err := e.dispatch(ctx, op)
	e.metrics.ObserveOperation(string(kind), err == nil)
	if err != nil {
		receipt := errReceipt(kind, err)
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, string(dErrors.CodeOf(err)))
		span.SetAttributes(attribute.Int("receipt.code", int(receipt.Code)))
		if e.logger != nil {
			e.logger.DebugContext(ctx, "operation rejected",
				"kind", string(kind),
				"code", uint32(receipt.Code),
				"error", err,
			)
		}
		return receipt
	}
	return okReceipt(kind, value)
}

// ApplyBlock applies ops strictly in order and returns one receipt per
// operation. A rejected operation does not affect the others. Applying a block
// does not advance the height; submit AdvanceBlock for that.
func (e *Engine) ApplyBlock(ctx context.Context, ops []Operation) Block {
	block := Block{
		ID:       id.NewBlockID(),
		Height:   e.clock.Height(),
		Receipts: make([]Receipt, 0, len(ops)),
	}
	ctx, span := tracer.Start(ctx, "engine.ApplyBlock", trace.WithAttributes(
		attribute.String("block.id", block.ID.String()),
		attribute.Int("block.ops", len(ops)),
	))
	defer span.End()

	ctx = requestcontext.WithBlockID(ctx, block.ID)
	for i, op := range ops {
		block.Receipts = append(block.Receipts, e.Apply(requestcontext.WithOpIndex(ctx, i), op))
	}
	return block
}

func (e *Engine) dispatch(ctx context.Context, op Operation) (any, error) {
	switch op := op.(type) {
	case RegisterIdentity:
		return true, e.identities.Register(ctx, op.Caller, op.Name, op.Contact)
	case VerifyIdentity:
		return true, e.identities.Verify(ctx, op.Caller, op.Target)
	case IsVerified:
		return e.identities.IsVerified(ctx, op.Address)
	case EnableTwoFactor:
		return true, e.identities.EnableTwoFactor(ctx, op.Caller)
	case GetHeight:
		return e.clock.Height(), nil
	case AdvanceBlock:
		height, err := e.clock.Advance(ctx, op.Caller)
		if err != nil {
			return nil, err
		}
		e.metrics.SetHeight(height)
		return height, nil
	case RegisterValidator:
		return true, e.validators.Register(ctx, op.Caller)
	case GetValidatorStats:
		stats, err := e.validators.Stats(ctx, op.Address)
		if err != nil || stats == nil {
			return nil, err
		}
		return stats, nil
	case BlacklistAddress:
		return true, e.blacklist.Blacklist(ctx, op.Caller, op.Target, op.Reason)
	case IsBlacklisted:
		return e.blacklist.IsBlacklisted(ctx, op.Address)
	case InitiateRecovery:
		return true, e.recovery.Initiate(ctx, op.Caller, op.NewAddress)
	case ApproveRecovery:
		return true, e.recovery.Approve(ctx, op.Caller, op.OldAddress)
	case CompleteRecovery:
		return true, e.recovery.Complete(ctx, op.Caller, op.OldAddress)
	case UpdateActivity:
		return true, e.activity.Touch(ctx, op.Caller)
	case GetIdentity:
		identity, err := e.identities.Get(ctx, op.Address)
		if err != nil || identity == nil {
			return nil, err
		}
		return identity, nil
	case GetLastActivity:
		height, ok, err := e.activity.LastActive(ctx, op.Address)
		if err != nil || !ok {
			return nil, err
		}
		return height, nil
	case GetRecoveryStatus:
		status, err := e.recovery.Status(ctx, op.OldAddress)
		if err != nil || status == nil {
			return nil, err
		}
		return status, nil
	default:
		return nil, dErrors.New(dErrors.CodeInvalidInput, "unknown operation")
	}
}
