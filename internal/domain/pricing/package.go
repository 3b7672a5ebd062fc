package pricing

import (
	"fmt"
	"strings"

	"eventos_api/internal/domain/catalog"
	"eventos_api/internal/domain/entities"
)

const packageItemCategory = "Package"

// Package is a priced packaged-plan quote.
type Package struct {
	// PeopleCount is the resolved tier count, coerced to the first tier when the requested count is not offered.
	PeopleCount  int
	IncludeVenue bool
	BasePrice    int64
	Total        int64
	Category     entities.EventCategory
}

// NewPackage prices a packaged plan. eventCategory only drives the checklist wording.
func NewPackage(peopleCount int, includeVenue bool, eventCategory string) Package {
	tier, _ := catalog.TierFor(peopleCount)

	total := tier.FlatPrice
	if !includeVenue {
		total -= catalog.FixedVenuePrice
	}

	category, ok := catalog.EventCategoryByID(eventCategory)
	if !ok {
		category = entities.EventCategory{ID: eventCategory, DisplayName: eventCategory}
	}

	return Package{
		PeopleCount:  tier.PeopleCount,
		IncludeVenue: includeVenue,
		BasePrice:    tier.FlatPrice,
		Total:        total,
		Category:     category,
	}
}

// Items returns the single package line. Its subtotal equals Total.
func (p Package) Items() []entities.QuoteItem {
	name := fmt.Sprintf("Event package for %d guests", p.PeopleCount)
	if !p.IncludeVenue {
		name += " (without venue)"
	}
	return []entities.QuoteItem{entities.NewQuoteItem(packageItemCategory, name, 1, p.Total)}
}

// IncludedServices returns the checklist shown with the package, worded for its event category.
func (p Package) IncludedServices() []entities.IncludedService {
	return includedServicesFor(p.Category)
}

func includedServicesFor(category entities.EventCategory) []entities.IncludedService {
	base := catalog.IncludedServices()

	switch category.ID {
	case catalog.CategoryFifteenthBday:
		return base
	case catalog.CategoryWedding:
		for i := range base {
			switch base[i].Key {
			case catalog.IncludedKit:
				base[i].Title = "Wedding kit"
				base[i].Description = "Ring pillow, unity candle, toasting glasses and guest book"
			case catalog.IncludedCake:
				base[i].Description = "Three-tier wedding cake decorated for the couple"
			}
		}
		return base
	}

	name := strings.ToLower(category.DisplayName)
	out := make([]entities.IncludedService, 0, len(base))
	for _, s := range base {
		switch s.Key {
		case catalog.IncludedKit:
			continue
		case catalog.IncludedCake:
			s.Description = fmt.Sprintf("Three-tier cake decorated for your %s", name)
		case catalog.IncludedDecoration:
			s.Description = fmt.Sprintf("Centerpieces and backdrop themed for your %s", name)
		}
		out = append(out, s)
	}
	return out
}
