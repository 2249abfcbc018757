package models

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	id "quorumid/pkg/domain"
	dErrors "quorumid/pkg/domain-errors"
)

// QuorumThreshold is the number of distinct validator approvals required to
// complete a recovery.
const QuorumThreshold = 3

// Request is a pending recovery keyed by the address being recovered.
//
// Invariants:
//   - approvals is a set keyed by validator address, so a validator counts once
//     no matter how often it approves
//   - a Request exists only while a recovery is pending
type Request struct {
	OldAddress id.Address
	NewAddress id.Address
	approvals  map[id.Address]struct{}
}

// NewRequest opens a recovery from old to new with no approvals.
func NewRequest(oldAddress, newAddress id.Address) (*Request, error) {
	if oldAddress.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "recovery requires the address being recovered")
	}
	return &Request{
		OldAddress: oldAddress,
		NewAddress: newAddress,
		approvals:  make(map[id.Address]struct{}),
	}, nil
}

// Approve records validator's approval and reports whether it was new.
func (r *Request) Approve(validator id.Address) bool {
	if r.approvals == nil {
		r.approvals = make(map[id.Address]struct{})
	}
	if _, seen := r.approvals[validator]; seen {
		return false
	}
	r.approvals[validator] = struct{}{}
	return true
}

// HasApproved reports whether validator is in the approval set.
func (r *Request) HasApproved(validator id.Address) bool {
	_, ok := r.approvals[validator]
	return ok
}

// ApprovalCount is the size of the approval set.
func (r *Request) ApprovalCount() int {
	return len(r.approvals)
}

// Approvers lists the approval set in ascending address order.
func (r *Request) Approvers() []id.Address {
	approvers := maps.Keys(r.approvals)
	slices.Sort(approvers)
	return approvers
}

// HasQuorum reports whether the approval set has reached QuorumThreshold.
func (r *Request) HasQuorum() bool {
	return r.ApprovalCount() >= QuorumThreshold
}

// IsFor reports whether caller is the recorded new address.
func (r *Request) IsFor(caller id.Address) bool {
	return r.NewAddress == caller
}

// Clone returns a deep copy so stores never share the approval set.
func (r *Request) Clone() *Request {
	c := &Request{
		OldAddress: r.OldAddress,
		NewAddress: r.NewAddress,
		approvals:  make(map[id.Address]struct{}, len(r.approvals)),
	}
	for v := range r.approvals {
		c.approvals[v] = struct{}{}
	}
	return c
}

// Status is the read-only view of a pending recovery.
type Status struct {
	OldAddress id.Address   `json:"old_address"`
	NewAddress id.Address   `json:"new_address"`
	Approvers  []id.Address `json:"approvers"`
	Approvals  int          `json:"approvals"`
	Threshold  int          `json:"threshold"`
}

// Status returns the read-only view of r.
func (r *Request) Status() Status {
	return Status{
		OldAddress: r.OldAddress,
		NewAddress: r.NewAddress,
		Approvers:  r.Approvers(),
		Approvals:  r.ApprovalCount(),
		Threshold:  QuorumThreshold,
	}
}
