package validate

import (
	"net/netip"

	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s carries a valid Luhn check digit. Deposit
// reference codes are generated with one so mistyped codes fail fast.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// NewReferenceCode returns a numeric code of length n ending in a Luhn
// check digit.
func NewReferenceCode(n int) string {
	return goluhn.Generate(n)
}

func IsIPAddress(s string) bool {
	_, err := netip.ParseAddr(s)
	return err == nil
}
