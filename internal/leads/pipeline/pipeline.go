// Package pipeline runs the per-lead decision sequence: region gate, ownership
// check, payload transformation, then hand-off to the customer API.
package pipeline

import (
	"context"
	"encoding/json"

	"solar_lead_backend/internal/leads/domain"
	"solar_lead_backend/internal/leads/ownership"
	"solar_lead_backend/internal/leads/region"
	"solar_lead_backend/platform/apperr"
	"solar_lead_backend/platform/logger"
)

// OwnershipDecider resolves a raw owner answer to CONFIRMED or DENIED.
type OwnershipDecider interface {
	Decide(ctx context.Context, answer string) domain.OwnershipDecision
}

// Transformer builds the downstream payload for an accepted lead.
type Transformer interface {
	Transform(lead domain.RawLead) domain.DownstreamPayload
}

// Forwarder delivers a payload and returns the upstream response body.
type Forwarder interface {
	Forward(ctx context.Context, payload domain.DownstreamPayload) (json.RawMessage, error)
}

// Pipeline holds no per-request state and may be shared across goroutines.
type Pipeline struct {
	owner       OwnershipDecider
	transformer Transformer
	forwarder   Forwarder
	log         *logger.Logger
}

// New creates a Pipeline.
func New(owner OwnershipDecider, transformer Transformer, forwarder Forwarder, log *logger.Logger) *Pipeline {
	return &Pipeline{
		owner:       owner,
		transformer: transformer,
		forwarder:   forwarder,
		log:         log,
	}
}

// Process runs one lead through the gates. Each failed gate returns at once,
// so an out-of-region lead never reaches the classifier.
func (p *Pipeline) Process(ctx context.Context, lead domain.RawLead) domain.Outcome {
	log := p.log.WithContext(ctx)
	postalCode := lead.PostalCode()
	log.LeadReceived(lead.FirstName, lead.LastName, postalCode)

	if !region.Eligible(postalCode) {
		log.LeadSkipped(domain.ReasonWrongRegion, "postal_code", postalCode)
		return domain.Skipped(domain.ReasonWrongRegion)
	}

	answer, ok := ownership.ExtractAnswer(lead.Questions)
	if !ok {
		log.LeadSkipped(domain.ReasonMissingOwnershipData)
		return domain.Skipped(domain.ReasonMissingOwnershipData)
	}

	if decision := p.owner.Decide(ctx, answer); decision != domain.OwnershipConfirmed {
		log.LeadSkipped(domain.ReasonNotOwner, "answer", answer, "decision", string(decision))
		return domain.Skipped(domain.ReasonNotOwner)
	}

	payload := p.transformer.Transform(lead)
	log.LeadAccepted(postalCode, payload.MetaAttributes.UniqueID)

	upstream, err := p.forwarder.Forward(ctx, payload)
	if err != nil {
		log.Error("lead forward failed", "error", err, "kind", apperr.GetKind(err).String())
		return domain.Failed(err.Error())
	}

	return domain.Processed(upstream)
}
