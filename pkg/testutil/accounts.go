package testutil

import id "quorumid/pkg/domain"

// Well-known test accounts. Deployer is the designated authority in every
// scenario.
const (
	Deployer   = id.Address("ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM")
	Alice      = id.Address("ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG")
	Bob        = id.Address("ST2JHG361ZXG51QTKY2NQCVBPPRRE2KZB1HR05NNC")
	Charlie    = id.Address("ST2NEB84ASENDXKYGJPQW86YXQCEFEX2ZQPG87ND")
	Validator1 = id.Address("ST2REHHS5J3CERCRBEPMGH7921Q6PYKAADT7JP2VB")
	Validator2 = id.Address("ST3AM1A56AK2C1XAFJ4115ZSV26EB49BVQ10MGCS0")
	Validator3 = id.Address("ST3NBRSFKX28FQ2ZJ1MAKX58HKHSDGNV5N7R21XCP")
)

// Validators returns the three fixture validators in a fresh slice.
func Validators() []id.Address {
	return []id.Address{Validator1, Validator2, Validator3}
}
