package domain

// OwnershipDecision is the outcome of the property-ownership check.
type OwnershipDecision string

const (
	OwnershipConfirmed OwnershipDecision = "CONFIRMED"
	OwnershipDenied    OwnershipDecision = "DENIED"
	// OwnershipUnknown is intermediate only and never leaves the classifier.
	OwnershipUnknown OwnershipDecision = "UNKNOWN"
)

// ParseOwnershipDecision accepts exactly one of the two terminal labels.
func ParseOwnershipDecision(s string) (OwnershipDecision, bool) {
	switch OwnershipDecision(s) {
	case OwnershipConfirmed:
		return OwnershipConfirmed, true
	case OwnershipDenied:
		return OwnershipDenied, true
	default:
		return "", false
	}
}
