package request

import (
	"strings"

	"eventos_api/internal/domain/entities"
	"eventos_api/internal/usecase"
)

type ServiceSelectionRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// QuoteDetailsRequest holds the customer and event fields shared by both quote flows.
type QuoteDetailsRequest struct {
	CustomerName  string `json:"customer_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	EventType     string `json:"event_type"`
	EventDate     string `json:"event_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Theme         string `json:"theme"`
	VenueAddress  string `json:"venue_address"`
	StreetAddress string `json:"street_address"`
	Neighborhood  string `json:"neighborhood"`
	Notes         string `json:"notes"`
	ReferralCode  string `json:"referral_code"`
}

func (r QuoteDetailsRequest) customer() usecase.CustomerDetails {
	return usecase.CustomerDetails{Name: r.CustomerName, Email: r.Email, Phone: r.Phone}
}

func (r QuoteDetailsRequest) event() usecase.EventDetails {
	return usecase.EventDetails{
		EventType:     r.EventType,
		EventDate:     r.EventDate,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Theme:         r.Theme,
		VenueAddress:  r.VenueAddress,
		StreetAddress: r.StreetAddress,
		Neighborhood:  r.Neighborhood,
		Notes:         r.Notes,
	}
}

// ResolveReferralCode prefers the code in the body and falls back to the ?ref= link parameter.
func (r QuoteDetailsRequest) ResolveReferralCode(queryRef string) string {
	if v := strings.TrimSpace(r.ReferralCode); v != "" {
		return v
	}
	return strings.TrimSpace(queryRef)
}

// ModularQuoteRequest is the "build your event" submission.
type ModularQuoteRequest struct {
	QuoteDetailsRequest
	Services []ServiceSelectionRequest `json:"services"`
}

func (r ModularQuoteRequest) ToInput(queryRef string) usecase.ModularQuoteInput {
	return usecase.ModularQuoteInput{
		Customer:     r.customer(),
		Event:        r.event(),
		Services:     toSelections(r.Services),
		ReferralCode: r.ResolveReferralCode(queryRef),
	}
}

// PackagedQuoteRequest is the packaged plan submission. The venue is included unless include_venue is false.
// A missing or unoffered people_count falls back to the first tier.
type PackagedQuoteRequest struct {
	QuoteDetailsRequest
	EventCategory string `json:"event_category"`
	PeopleCount   int    `json:"people_count"`
	IncludeVenue  *bool  `json:"include_venue"`
}

func (r PackagedQuoteRequest) ToInput(queryRef string) usecase.PackagedQuoteInput {
	return usecase.PackagedQuoteInput{
		Customer:      r.customer(),
		Event:         r.event(),
		EventCategory: r.EventCategory,
		PeopleCount:   r.PeopleCount,
		IncludeVenue:  includeVenue(r.IncludeVenue),
		ReferralCode:  r.ResolveReferralCode(queryRef),
	}
}

type ModularPreviewRequest struct {
	Services []ServiceSelectionRequest `json:"services"`
}

func (r ModularPreviewRequest) Selections() []usecase.ServiceSelection {
	return toSelections(r.Services)
}

type PackagedPreviewRequest struct {
	EventCategory string `json:"event_category"`
	PeopleCount   int    `json:"people_count"`
	IncludeVenue  *bool  `json:"include_venue"`
}

func (r PackagedPreviewRequest) ResolveIncludeVenue() bool {
	return includeVenue(r.IncludeVenue)
}

type QuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r QuoteStatusRequest) ResolveStatus() entities.QuoteStatus {
	return entities.QuoteStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

func toSelections(in []ServiceSelectionRequest) []usecase.ServiceSelection {
	out := make([]usecase.ServiceSelection, len(in))
	for i, s := range in {
		out[i] = usecase.ServiceSelection{ServiceID: s.ServiceID, Quantity: s.Quantity}
	}
	return out
}

func includeVenue(v *bool) bool {
	return v == nil || *v
}
