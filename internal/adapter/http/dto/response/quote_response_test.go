package response

import (
	"testing"

	"eventos_api/internal/domain/entities"
	"eventos_api/internal/usecase"
)

func TestFromQuote(t *testing.T) {
	q := entities.Quote{
		ID:     "EV-261205-ABC123",
		Kind:   entities.QuoteKindModular,
		Status: entities.QuoteStatusPending,
		Items:  []entities.QuoteItem{entities.NewQuoteItem("Music", "DJ", 2, 900000)},
		Total:  1800000,
	}

	got := FromQuote(q)
	if got.ID != q.ID || got.Kind != "modular" || got.Status != "pending" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.TotalFormatted != "$1,800,000" {
		t.Fatalf("unexpected formatted total: %s", got.TotalFormatted)
	}
	if len(got.Items) != 1 || got.Items[0].Subtotal != 1800000 {
		t.Fatalf("unexpected items: %+v", got.Items)
	}
}

func TestFromQuotes_EmptyIsNotNil(t *testing.T) {
	got := FromQuotes(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestFromQuotePreview(t *testing.T) {
	p := usecase.QuotePreview{Total: 4500000, BasePrice: 4500000, PeopleCount: 100}
	got := FromQuotePreview(p)
	if got.Total != 4500000 || got.TotalFormatted != "$4,500,000" || got.PeopleCount != 100 {
		t.Fatalf("unexpected preview: %+v", got)
	}
	if got.Items == nil {
		t.Fatalf("expected non-nil items")
	}
}
