package models

import id "quorumid/pkg/domain"

// InitialTrustScore is the trust score every validator record starts with.
const InitialTrustScore = 1

// Validator is the record that makes an address a validator. Membership in
// the validator store is the only definition of "is a validator".
type Validator struct {
	Address         id.Address `json:"address"`
	TrustScore      int        `json:"trust_score"`
	ValidationCount int        `json:"validation_count"`
}

// NewValidator returns a fresh record with the initial trust score and no
// validations.
func NewValidator(address id.Address) *Validator {
	return &Validator{Address: address, TrustScore: InitialTrustScore}
}

// Stats is the public view returned by stats lookups.
type Stats struct {
	TrustScore int `json:"trust-score"`
}
