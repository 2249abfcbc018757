package audit

import (
	"context"
	"time"

	id "quorumid/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose.
type EventCategory string

const (
	// CategoryCompliance covers changes to who an identity is or where it lives:
	// registration, verification and recovery completion.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers privileged or protective actions: blacklisting,
	// validator enrollment and recovery approvals.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers routine bookkeeping such as activity and the clock.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted after a state transition has been applied. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	// Height is the simulated block height at which the transition was applied.
	Height id.Height
	// BlockID correlates events emitted while applying the same block.
	BlockID id.BlockID
	// Subject is the address whose record changed.
	Subject id.Address
	// ActorID is the caller when it differs from Subject (authority, validator,
	// new-address holder).
	ActorID id.Address
	Action  string
	Reason  string
}

type AuditEvent string

const (
	// Identity events
	EventIdentityRegistered AuditEvent = "identity_registered"
	EventIdentityVerified   AuditEvent = "identity_verified"
	EventTwoFactorEnabled   AuditEvent = "two_factor_enabled"

	// Validator events
	EventValidatorRegistered AuditEvent = "validator_registered"

	// Blacklist events
	EventAddressBlacklisted AuditEvent = "address_blacklisted"

	// Recovery events
	EventRecoveryInitiated AuditEvent = "recovery_initiated"
	EventRecoveryApproved  AuditEvent = "recovery_approved"
	EventRecoveryCompleted AuditEvent = "recovery_completed"

	// Routine events
	EventActivityRecorded AuditEvent = "activity_recorded"
	EventBlockAdvanced    AuditEvent = "block_advanced"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventIdentityRegistered: CategoryCompliance,
	EventIdentityVerified:   CategoryCompliance,
	EventRecoveryCompleted:  CategoryCompliance,

	EventTwoFactorEnabled:    CategorySecurity,
	EventValidatorRegistered: CategorySecurity,
	EventAddressBlacklisted:  CategorySecurity,
	EventRecoveryInitiated:   CategorySecurity,
	EventRecoveryApproved:    CategorySecurity,

	EventActivityRecorded: CategoryOperations,
	EventBlockAdvanced:    CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

func (e AuditEvent) String() string {
	return string(e)
}

// Store persists audit events in emission order.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListBySubject(ctx context.Context, subject id.Address) ([]Event, error)
	ListAll(ctx context.Context) ([]Event, error)
}
