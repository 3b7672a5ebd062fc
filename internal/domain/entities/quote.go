package entities

import (
	"math"
	"time"
)

// QuoteStatus represents the back-office lifecycle of a quote.
//
// Quotes are created as pending. Every later transition is driven by the sales team.
type QuoteStatus string

const (
	QuoteStatusPending     QuoteStatus = "pending"
	QuoteStatusSent        QuoteStatus = "sent"
	QuoteStatusContacted   QuoteStatus = "contacted"
	QuoteStatusNegotiating QuoteStatus = "negotiating"
	QuoteStatusClosed      QuoteStatus = "closed"
	QuoteStatusDiscarded   QuoteStatus = "discarded"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusSent, QuoteStatusContacted,
		QuoteStatusNegotiating, QuoteStatusClosed, QuoteStatusDiscarded:
		return true
	}
	return false
}

// QuoteKind tells which assembly flow produced the quote.
type QuoteKind string

const (
	QuoteKindModular  QuoteKind = "modular"
	QuoteKindPackaged QuoteKind = "packaged"
)

// OriginWeb is the origin of quotes that did not come through an affiliate link.
const OriginWeb = "web"

// QuoteItem is one priced line of a quote.
// Subtotal is derived; build items with NewQuoteItem.
type QuoteItem struct {
	Category  string `json:"category"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Subtotal  int64  `json:"subtotal"`
}

// MaxItemQuantity is the largest quantity a single line item can carry.
const MaxItemQuantity = 1000

// ClampQuantity bounds quantity to [0, MaxItemQuantity].
func ClampQuantity(quantity int) int {
	return min(max(quantity, 0), MaxItemQuantity)
}

// NewQuoteItem builds a line item with quantity clamped to MaxItemQuantity.
// Subtotals that would not fit in an int64 saturate at math.MaxInt64.
func NewQuoteItem(category, name string, quantity int, unitPrice int64) QuoteItem {
	quantity = ClampQuantity(quantity)
	return QuoteItem{
		Category:  category,
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  mulSaturating(unitPrice, int64(quantity)),
	}
}

func mulSaturating(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > 0 && b > 0 && a > math.MaxInt64/b {
		return math.MaxInt64
	}
	return a * b
}

// AddAmounts adds two non-negative amounts, saturating at math.MaxInt64.
func AddAmounts(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// Quote is a priced, itemized proposal tied to a customer and an event date.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id
//   - GSI2 (origin-index): origin
//
// Monetary values are integers in the smallest currency unit.
// Total always equals the sum of item subtotals.
type Quote struct {
	ID           string      `json:"id"`
	OwnerID      string      `json:"owner_id"`
	Kind         QuoteKind   `json:"kind"`
	CustomerName string      `json:"customer_name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Items        []QuoteItem `json:"items"`
	Total        int64       `json:"total"`
	Status       QuoteStatus `json:"status"`
	Origin       string      `json:"origin"`
	EventType    string      `json:"event_type"`
	EventDate    string      `json:"event_date"`
	StartTime    string      `json:"start_time,omitempty"`
	EndTime      string      `json:"end_time,omitempty"`

	Theme         string `json:"theme,omitempty"`
	VenueAddress  string `json:"venue_address,omitempty"`
	StreetAddress string `json:"street_address,omitempty"`
	Neighborhood  string `json:"neighborhood,omitempty"`
	Notes         string `json:"notes,omitempty"`

	PeopleCount  int   `json:"people_count,omitempty"`
	IncludeVenue *bool `json:"include_venue,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SumItems returns the sum of item subtotals.
func SumItems(items []QuoteItem) int64 {
	var total int64
	for _, it := range items {
		total = AddAmounts(total, it.Subtotal)
	}
	return total
}

// QuoteTracking is the sales follow-up record created alongside every quote.
type QuoteTracking struct {
	QuoteID         string      `json:"quote_id"`
	Status          QuoteStatus `json:"status"`
	ContactAttempts int         `json:"contact_attempts"`
	LastContactAt   *time.Time  `json:"last_contact_at,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}
