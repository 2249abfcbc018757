package engine

import (
	id "quorumid/pkg/domain"
	dErrors "quorumid/pkg/domain-errors"
)

// ErrorCode is the stable numeric code reported on a failed receipt.
type ErrorCode uint32

const (
	ErrNotAuthorized          ErrorCode = 100
	ErrAlreadyRegistered      ErrorCode = 101
	ErrNotRegistered          ErrorCode = 102
	ErrNotVerified            ErrorCode = 103
	ErrNotAValidator          ErrorCode = 104
	ErrNoActiveRecovery       ErrorCode = 105
	ErrInvalidRecoveryRequest ErrorCode = 106
	ErrInsufficientApprovals  ErrorCode = 108
	ErrInvalidInput           ErrorCode = 400
	ErrInternal               ErrorCode = 500
)

var errorCodes = map[dErrors.Code]ErrorCode{
	dErrors.CodeNotAuthorized:         ErrNotAuthorized,
	dErrors.CodeAlreadyRegistered:     ErrAlreadyRegistered,
	dErrors.CodeNotRegistered:         ErrNotRegistered,
	dErrors.CodeNotVerified:           ErrNotVerified,
	dErrors.CodeNotAValidator:         ErrNotAValidator,
	dErrors.CodeNoActiveRecovery:      ErrNoActiveRecovery,
	dErrors.CodeInvalidRequest:        ErrInvalidRecoveryRequest,
	dErrors.CodeInsufficientApprovals: ErrInsufficientApprovals,
	dErrors.CodeInvalidInput:          ErrInvalidInput,
	dErrors.CodeInvariantViolation:    ErrInvalidInput,
}

// CodeFor maps an error onto its receipt code. Uncoded errors are internal.
func CodeFor(err error) ErrorCode {
	if err == nil {
		return 0
	}
	if code, ok := errorCodes[dErrors.CodeOf(err)]; ok {
		return code
	}
	return ErrInternal
}

// Receipt is the outcome of one operation. On success Value carries the
// operation's result; on failure Code identifies the rejection.
type Receipt struct {
	Kind  Kind      `json:"kind"`
	OK    bool      `json:"ok"`
	Value any       `json:"value,omitempty"`
	Code  ErrorCode `json:"code,omitempty"`
	Err   error     `json:"-"`
}

func okReceipt(kind Kind, value any) Receipt {
	return Receipt{Kind: kind, OK: true, Value: value}
}

func errReceipt(kind Kind, err error) Receipt {
	return Receipt{Kind: kind, Code: CodeFor(err), Err: err}
}

// Block is the result of applying a list of operations. Receipts are in
// submission order.
type Block struct {
	ID       id.BlockID `json:"id"`
	Height   id.Height  `json:"height"`
	Receipts []Receipt  `json:"receipts"`
}
