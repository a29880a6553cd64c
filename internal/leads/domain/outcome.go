package domain

import "encoding/json"

const (
	StatusSkipped   = "skipped"
	StatusProcessed = "processed"
	StatusError     = "error"
)

// Skip reasons reported to the webhook caller.
const (
	ReasonWrongRegion          = "Wrong region"
	ReasonMissingOwnershipData = "Missing ownership data"
	ReasonNotOwner             = "Not owner"
)

// Outcome is the result of one pipeline run, serialized as the webhook response.
type Outcome struct {
	Status           string          `json:"status"`
	Reason           string          `json:"reason,omitempty"`
	UpstreamResponse json.RawMessage `json:"upstream_response,omitempty"`
	Message          string          `json:"message,omitempty"`
}

// Skipped builds an ineligibility outcome.
func Skipped(reason string) Outcome {
	return Outcome{Status: StatusSkipped, Reason: reason}
}

// Processed builds a success outcome carrying the upstream body.
func Processed(upstream json.RawMessage) Outcome {
	if len(upstream) == 0 {
		upstream = json.RawMessage("null")
	}
	return Outcome{Status: StatusProcessed, UpstreamResponse: upstream}
}

// Failed builds a hard-failure outcome.
func Failed(message string) Outcome {
	return Outcome{Status: StatusError, Message: message}
}
