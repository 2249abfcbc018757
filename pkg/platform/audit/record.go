package audit

import (
	"context"
	"log/slog"

	id "quorumid/pkg/domain"
	"quorumid/pkg/requestcontext"
)

// Publisher is the emission port services depend on.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

// Record logs an applied transition as an audit line and, when a publisher is
// configured, emits the matching event stamped with the block context. Emission
// errors are dropped: the transition has already been applied.
func Record(ctx context.Context, logger *slog.Logger, publisher Publisher, action AuditEvent, subject, actor id.Address, reason string) {
	blockID := requestcontext.BlockID(ctx)
	height := requestcontext.Height(ctx)
	if logger != nil {
		args := []any{
			"subject", subject.String(),
			"height", uint64(height),
			"event", action.String(),
			"log_type", "audit",
		}
		if !actor.IsNil() && actor != subject {
			args = append(args, "actor", actor.String())
		}
		if reason != "" {
			args = append(args, "reason", reason)
		}
		if !blockID.IsNil() {
			args = append(args, "block_id", blockID.String())
		}
		logger.InfoContext(ctx, action.String(), args...)
	}
	if publisher == nil {
		return
	}
	_ = publisher.Emit(ctx, Event{
		Category: action.Category(),
		Height:   height,
		BlockID:  blockID,
		Subject:  subject,
		ActorID:  actor,
		Action:   action.String(),
		Reason:   reason,
	})
}
