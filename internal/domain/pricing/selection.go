// Package pricing assembles quote line items and totals from catalog selections.
//
// Everything here is a pure in-memory computation. Totals are derived on every
// call, so they are always consistent with the latest mutation.
package pricing

import (
	"iter"
	"slices"

	"eventos_api/internal/domain/entities"
)

// SelectedService is a catalog service with the quantity the customer chose.
type SelectedService struct {
	Service  entities.ServiceItem
	Quantity int
}

// Selection is the modular ("build your event") quote state.
// The zero value is an empty selection ready to use.
type Selection struct {
	entries map[string]*SelectedService
	order   []string
}

func NewSelection() *Selection {
	return &Selection{}
}

// Select toggles a service. Selecting an already selected service keeps its quantity.
// Deselecting removes the entry entirely.
func (s *Selection) Select(service entities.ServiceItem, isSelected bool) {
	if !isSelected {
		s.remove(service.ID)
		return
	}
	if s.entries == nil {
		s.entries = make(map[string]*SelectedService)
	}
	if _, ok := s.entries[service.ID]; ok {
		return
	}
	s.entries[service.ID] = &SelectedService{Service: service, Quantity: 1}
	s.order = append(s.order, service.ID)
}

// SetQuantity replaces the quantity of a selected service.
// Quantities below 1 remove the service and quantities above
// entities.MaxItemQuantity are clamped to it. Unknown ids are ignored.
func (s *Selection) SetQuantity(serviceID string, quantity int) {
	if quantity < 1 {
		s.remove(serviceID)
		return
	}
	if e, ok := s.entries[serviceID]; ok {
		e.Quantity = entities.ClampQuantity(quantity)
	}
}

func (s *Selection) remove(serviceID string) {
	if _, ok := s.entries[serviceID]; !ok {
		return
	}
	delete(s.entries, serviceID)
	if i := slices.Index(s.order, serviceID); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

func (s *Selection) Len() int {
	return len(s.order)
}

func (s *Selection) Quantity(serviceID string) (int, bool) {
	e, ok := s.entries[serviceID]
	if !ok {
		return 0, false
	}
	return e.Quantity, true
}

// Items yields one line item per selected service in selection order.
// The sequence reads the current state each time it is ranged over.
func (s *Selection) Items() iter.Seq[entities.QuoteItem] {
	return func(yield func(entities.QuoteItem) bool) {
		for _, id := range s.order {
			e := s.entries[id]
			item := entities.NewQuoteItem(e.Service.Category, e.Service.Name, e.Quantity, e.Service.UnitPrice)
			if !yield(item) {
				return
			}
		}
	}
}

// Total is the sum of all line subtotals, 0 for an empty selection.
func (s *Selection) Total() int64 {
	var total int64
	for it := range s.Items() {
		total = entities.AddAmounts(total, it.Subtotal)
	}
	return total
}
