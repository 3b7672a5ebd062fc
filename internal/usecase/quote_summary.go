package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"eventos_api/internal/domain/entities"
	"eventos_api/internal/domain/money"
)

const messageBaseURL = "https://wa.me/"

// BuildQuoteSummary renders the plain-text summary sent to the sales team.
// The output depends only on the quote, so the same quote always yields the same text.
func BuildQuoteSummary(q entities.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Quote %s\n", q.ID)
	fmt.Fprintf(&b, "Customer: %s\n", q.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n", q.Phone)
	fmt.Fprintf(&b, "Email: %s\n", q.Email)
	if q.EventType != "" {
		fmt.Fprintf(&b, "Event: %s\n", q.EventType)
	}
	fmt.Fprintf(&b, "Date: %s\n", q.EventDate)
	if q.StartTime != "" && q.EndTime != "" {
		fmt.Fprintf(&b, "Time: %s - %s\n", q.StartTime, q.EndTime)
	}
	if q.PeopleCount > 0 {
		fmt.Fprintf(&b, "Guests: %d\n", q.PeopleCount)
	}
	if q.Theme != "" {
		fmt.Fprintf(&b, "Theme: %s\n", q.Theme)
	}
	if venue := venueLine(q); venue != "" {
		fmt.Fprintf(&b, "Venue: %s\n", venue)
	}
	b.WriteString("Services:\n")
	for _, it := range q.Items {
		fmt.Fprintf(&b, "- %d x %s: %s\n", it.Quantity, it.Name, money.Format(it.Subtotal))
	}
	if q.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", q.Notes)
	}
	fmt.Fprintf(&b, "Total: %s", money.Format(q.Total))
	return b.String()
}

func venueLine(q entities.Quote) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{q.VenueAddress, q.StreetAddress, q.Neighborhood} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// BuildMessageURL returns the WhatsApp deep link that opens a chat with number
// prefilled with text. Non-digits are stripped from number and spaces in text
// are encoded as %20.
func BuildMessageURL(number, text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	return messageBaseURL + digits + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
