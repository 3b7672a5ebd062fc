package response

import (
	"time"

	"eventos_api/internal/domain/entities"
	"eventos_api/internal/domain/money"
	"eventos_api/internal/usecase"
)

type QuoteItemResponse struct {
	Category  string `json:"category"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Subtotal  int64  `json:"subtotal"`
}

type QuoteResponse struct {
	ID             string              `json:"id"`
	OwnerID        string              `json:"owner_id"`
	Kind           string              `json:"kind"`
	CustomerName   string              `json:"customer_name"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Items          []QuoteItemResponse `json:"items"`
	Total          int64               `json:"total"`
	TotalFormatted string              `json:"total_formatted"`
	Status         string              `json:"status"`
	Origin         string              `json:"origin"`
	EventType      string              `json:"event_type"`
	EventDate      string              `json:"event_date"`
	StartTime      string              `json:"start_time,omitempty"`
	EndTime        string              `json:"end_time,omitempty"`
	Theme          string              `json:"theme,omitempty"`
	VenueAddress   string              `json:"venue_address,omitempty"`
	StreetAddress  string              `json:"street_address,omitempty"`
	Neighborhood   string              `json:"neighborhood,omitempty"`
	Notes          string              `json:"notes,omitempty"`
	PeopleCount    int                 `json:"people_count,omitempty"`
	IncludeVenue   *bool               `json:"include_venue,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func FromQuoteItems(items []entities.QuoteItem) []QuoteItemResponse {
	out := make([]QuoteItemResponse, len(items))
	for i, it := range items {
		out[i] = QuoteItemResponse{
			Category:  it.Category,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		}
	}
	return out
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:             q.ID,
		OwnerID:        q.OwnerID,
		Kind:           string(q.Kind),
		CustomerName:   q.CustomerName,
		Email:          q.Email,
		Phone:          q.Phone,
		Items:          FromQuoteItems(q.Items),
		Total:          q.Total,
		TotalFormatted: money.Format(q.Total),
		Status:         string(q.Status),
		Origin:         q.Origin,
		EventType:      q.EventType,
		EventDate:      q.EventDate,
		StartTime:      q.StartTime,
		EndTime:        q.EndTime,
		Theme:          q.Theme,
		VenueAddress:   q.VenueAddress,
		StreetAddress:  q.StreetAddress,
		Neighborhood:   q.Neighborhood,
		Notes:          q.Notes,
		PeopleCount:    q.PeopleCount,
		IncludeVenue:   q.IncludeVenue,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		out[i] = FromQuote(q)
	}
	return out
}

// QuoteSubmissionResponse is returned after a quote is stored.
// MessageURL opens a chat with the sales team prefilled with Summary.
type QuoteSubmissionResponse struct {
	Quote      QuoteResponse `json:"quote"`
	Summary    string        `json:"summary"`
	MessageURL string        `json:"message_url"`
}

func FromQuoteSubmission(s usecase.QuoteSubmission) QuoteSubmissionResponse {
	return QuoteSubmissionResponse{
		Quote:      FromQuote(s.Quote),
		Summary:    s.Summary,
		MessageURL: s.MessageURL,
	}
}

type QuotePreviewResponse struct {
	Items            []QuoteItemResponse        `json:"items"`
	Total            int64                      `json:"total"`
	TotalFormatted   string                     `json:"total_formatted"`
	BasePrice        int64                      `json:"base_price,omitempty"`
	PeopleCount      int                        `json:"people_count,omitempty"`
	IncludedServices []entities.IncludedService `json:"included_services,omitempty"`
}

func FromQuotePreview(p usecase.QuotePreview) QuotePreviewResponse {
	return QuotePreviewResponse{
		Items:            FromQuoteItems(p.Items),
		Total:            p.Total,
		TotalFormatted:   money.Format(p.Total),
		BasePrice:        p.BasePrice,
		PeopleCount:      p.PeopleCount,
		IncludedServices: p.IncludedServices,
	}
}
