// Package region gates leads on their postal code before any other work runs.
package region

import "regexp"

// Only postal codes in the 66xxx area are served.
var servedPostalCode = regexp.MustCompile(`^66\d{3}$`)

// Eligible reports whether postalCode lies in the served region. The code is
// expected to be trimmed already.
func Eligible(postalCode string) bool {
	return servedPostalCode.MatchString(postalCode)
}
