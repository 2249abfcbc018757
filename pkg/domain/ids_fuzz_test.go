//go:build go1.18

package domain

import (
	"testing"
	"unicode/utf8"
)

// FuzzParseAddress tests that parsing never panics on arbitrary input
// and always returns either a valid address or an error.
//
// Justification: trust boundary functions must handle arbitrary input safely.
func FuzzParseAddress(f *testing.F) {
	f.Add("")
	f.Add("ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM")
	f.Add(" leading")
	f.Add("'; DROP TABLE identities;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM\x00suffix")

	f.Fuzz(func(t *testing.T, input string) {
		addr, err := ParseAddress(input)

		if err == nil {
			roundTrip, err2 := ParseAddress(addr.String())
			if err2 != nil {
				t.Errorf("valid address failed round-trip: %v", err2)
			}
			if roundTrip != addr {
				t.Error("round-trip changed address value")
			}
			if addr.IsNil() {
				t.Error("empty address was accepted")
			}
		}

		if !utf8.ValidString(input) && err == nil {
			t.Error("non-UTF8 input was accepted")
		}
	})
}
