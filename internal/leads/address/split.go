// Package address splits combined street and house number strings.
package address

import "regexp"

// Lazy street part, then everything from the first digit run onwards.
var streetHouseNumber = regexp.MustCompile(`^(.*?)[\s\p{Zs}]+(\d+.*)$`)

var anyDigit = regexp.MustCompile(`\d`)

// Split separates street name from house number ("Venner Straße 23 Und 24" ->
// "Venner Straße", "23 Und 24"). Without a digit run the whole string is the street.
func Split(full string) (street, houseNumber string) {
	if full == "" {
		return "", ""
	}

	if m := streetHouseNumber.FindStringSubmatch(full); m != nil {
		return m[1], m[2]
	}

	return full, ""
}

// Resolve returns the street and house number to send downstream. Splitting
// only happens when no house number was supplied and the street has a digit.
func Resolve(street, houseNumber string) (string, string) {
	if houseNumber == "" && anyDigit.MatchString(street) {
		return Split(street)
	}
	return street, houseNumber
}
