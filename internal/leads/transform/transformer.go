// Package transform builds the customer API payload for an accepted lead.
package transform

import (
	"strconv"
	"time"

	"solar_lead_backend/internal/leads/address"
	"solar_lead_backend/internal/leads/attributes"
	"solar_lead_backend/internal/leads/domain"
	"solar_lead_backend/platform/phone"
)

// Transformer turns a RawLead into a DownstreamPayload.
type Transformer struct {
	mapper *attributes.Mapper
	now    func() time.Time
}

// New creates a Transformer using the wall clock for default unique IDs.
func New(mapper *attributes.Mapper) *Transformer {
	return &Transformer{mapper: mapper, now: time.Now}
}

// WithClock returns a copy of the Transformer that reads time from now.
func (t *Transformer) WithClock(now func() time.Time) *Transformer {
	return &Transformer{mapper: t.mapper, now: now}
}

// Transform builds the payload. Ownership must already be confirmed: the
// solar_owner attribute is stamped unconditionally.
func (t *Transformer) Transform(lead domain.RawLead) domain.DownstreamPayload {
	attrs := t.mapper.Map(lead.Questions)
	attrs[domain.SolarOwnerAttribute] = domain.SolarOwnerConfirmed

	street, houseNumber := address.Resolve(lead.Street, lead.HouseNumber)

	uniqueID := lead.UniqueID
	if uniqueID == "" {
		uniqueID = strconv.FormatInt(t.now().UnixMilli(), 10)
	}

	return domain.DownstreamPayload{
		Lead: domain.PayloadLead{
			Email:       lead.Email,
			FirstName:   lead.FirstName,
			LastName:    lead.LastName,
			Street:      street,
			HouseNumber: houseNumber,
			Postcode:    lead.PostalCode(),
			City:        lead.City,
			Phone:       phone.NormalizeE164(lead.Phone),
			Country:     domain.CountryCode,
		},
		Product: domain.PayloadProduct{
			Name: domain.ProductName,
		},
		LeadAttributes: attrs,
		MetaAttributes: domain.PayloadMeta{
			LandingPageURL: lead.LandingPageURL,
			UniqueID:       uniqueID,
			UTMCampaign:    lead.UTMCampaign,
			IP:             lead.IP,
			OptIn:          true,
		},
	}
}
