// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is assumed for numbers without an international prefix.
const DefaultRegion = "DE"

// NormalizeE164 formats a phone number to E.164 using DefaultRegion.
func NormalizeE164(input string) string {
	return NormalizeE164In(input, DefaultRegion)
}

// NormalizeE164In formats a phone number to E.164, treating numbers without an
// explicit country prefix as domestic to region. Normalization is best effort:
// if parsing fails the input is returned unchanged.
func NormalizeE164In(input, region string) string {
	if input == "" {
		return ""
	}

	number, err := phonenumbers.Parse(input, region)
	if err != nil {
		return input
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}
