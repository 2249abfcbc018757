package engine

import id "quorumid/pkg/domain"

// Kind names an operation the way callers submit it.
type Kind string

const (
	KindRegisterIdentity  Kind = "register-identity"
	KindVerifyIdentity    Kind = "verify-identity"
	KindIsVerified        Kind = "is-verified"
	KindEnableTwoFactor   Kind = "enable-two-factor"
	KindGetHeight         Kind = "get-height"
	KindAdvanceBlock      Kind = "advance-block"
	KindRegisterValidator Kind = "register-validator"
	KindGetValidatorStats Kind = "get-validator-stats"
	KindBlacklistAddress  Kind = "blacklist-address"
	KindIsBlacklisted     Kind = "is-blacklisted"
	KindInitiateRecovery  Kind = "initiate-recovery"
	KindApproveRecovery   Kind = "approve-recovery"
	KindCompleteRecovery  Kind = "complete-recovery"
	KindUpdateActivity    Kind = "update-activity"
	KindGetIdentity       Kind = "get-identity"
	KindGetLastActivity   Kind = "get-last-activity"
	KindGetRecoveryStatus Kind = "get-recovery-status"
)

// Operation is one submitted transaction. The set of operations is closed:
// only types in this package implement it.
type Operation interface {
	Kind() Kind
	operation()
}

type RegisterIdentity struct {
	Caller  id.Address
	Name    string
	Contact string
}

type VerifyIdentity struct {
	Caller id.Address
	Target id.Address
}

type IsVerified struct {
	Address id.Address
}

type EnableTwoFactor struct {
	Caller id.Address
}

type GetHeight struct{}

type AdvanceBlock struct {
	Caller id.Address
}

type RegisterValidator struct {
	Caller id.Address
}

type GetValidatorStats struct {
	Address id.Address
}

type BlacklistAddress struct {
	Caller id.Address
	Target id.Address
	Reason string
}

type IsBlacklisted struct {
	Address id.Address
}

type InitiateRecovery struct {
	Caller     id.Address
	NewAddress id.Address
}

type ApproveRecovery struct {
	Caller     id.Address
	OldAddress id.Address
}

type CompleteRecovery struct {
	Caller     id.Address
	OldAddress id.Address
}

type UpdateActivity struct {
	Caller id.Address
}

type GetIdentity struct {
	Address id.Address
}

type GetLastActivity struct {
	Address id.Address
}

type GetRecoveryStatus struct {
	OldAddress id.Address
}

func (RegisterIdentity) Kind() Kind  { return KindRegisterIdentity }
func (VerifyIdentity) Kind() Kind    { return KindVerifyIdentity }
func (IsVerified) Kind() Kind        { return KindIsVerified }
func (EnableTwoFactor) Kind() Kind   { return KindEnableTwoFactor }
func (GetHeight) Kind() Kind         { return KindGetHeight }
func (AdvanceBlock) Kind() Kind      { return KindAdvanceBlock }
func (RegisterValidator) Kind() Kind { return KindRegisterValidator }
func (GetValidatorStats) Kind() Kind { return KindGetValidatorStats }
func (BlacklistAddress) Kind() Kind  { return KindBlacklistAddress }
func (IsBlacklisted) Kind() Kind     { return KindIsBlacklisted }
func (InitiateRecovery) Kind() Kind  { return KindInitiateRecovery }
func (ApproveRecovery) Kind() Kind   { return KindApproveRecovery }
func (CompleteRecovery) Kind() Kind  { return KindCompleteRecovery }
func (UpdateActivity) Kind() Kind    { return KindUpdateActivity }
func (GetIdentity) Kind() Kind       { return KindGetIdentity }
func (GetLastActivity) Kind() Kind   { return KindGetLastActivity }
func (GetRecoveryStatus) Kind() Kind { return KindGetRecoveryStatus }

func (RegisterIdentity) operation()  {}
func (VerifyIdentity) operation()    {}
func (IsVerified) operation()        {}
func (EnableTwoFactor) operation()   {}
func (GetHeight) operation()         {}
func (AdvanceBlock) operation()      {}
func (RegisterValidator) operation() {}
func (GetValidatorStats) operation() {}
func (BlacklistAddress) operation()  {}
func (IsBlacklisted) operation()     {}
func (InitiateRecovery) operation()  {}
func (ApproveRecovery) operation()   {}
func (CompleteRecovery) operation()  {}
func (UpdateActivity) operation()    {}
func (GetIdentity) operation()       {}
func (GetLastActivity) operation()   {}
func (GetRecoveryStatus) operation() {}
