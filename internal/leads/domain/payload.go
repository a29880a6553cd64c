package domain

const (
	// CountryCode is the fixed country sent to the customer API.
	CountryCode = "de"
	// ProductName is the constant product descriptor.
	ProductName = "Solaranlagen"
	// SolarOwnerAttribute is stamped on every forwarded lead.
	SolarOwnerAttribute = "solar_owner"
	// SolarOwnerConfirmed is the value stamped under SolarOwnerAttribute.
	SolarOwnerConfirmed = "Ja"
)

// DownstreamPayload is the request body accepted by the customer API.
type DownstreamPayload struct {
	Lead           PayloadLead       `json:"lead"`
	Product        PayloadProduct    `json:"product"`
	LeadAttributes map[string]string `json:"lead_attributes"`
	MetaAttributes PayloadMeta       `json:"meta_attributes"`
}

type PayloadLead struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Street      string `json:"street"`
	HouseNumber string `json:"housenumber"`
	Postcode    string `json:"postcode"`
	City        string `json:"city"`
	Phone       string `json:"phone"`
	Country     string `json:"country"`
}

type PayloadProduct struct {
	Name string `json:"name"`
}

type PayloadMeta struct {
	LandingPageURL string `json:"landingpage_url"`
	UniqueID       string `json:"unique_id"`
	UTMCampaign    string `json:"utm_campaign"`
	IP             string `json:"ip"`
	OptIn          bool   `json:"optin"`
}
