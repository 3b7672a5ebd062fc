// Package catalog holds the static event, theme, service and packaged-plan tables.
//
// Accessors return copies so callers can never mutate the shared tables.
package catalog

import (
	"slices"

	"eventos_api/internal/domain/entities"
)

func EventCategories() []entities.EventCategory {
	return slices.Clone(eventCategories)
}

func EventCategoryByID(id string) (entities.EventCategory, bool) {
	for _, c := range eventCategories {
		if c.ID == id {
			return c, true
		}
	}
	return entities.EventCategory{}, false
}

func Events() []entities.EventType {
	return slices.Clone(events)
}

func EventsByCategory(category string) []entities.EventType {
	out := make([]entities.EventType, 0)
	for _, e := range events {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

func Themes() []entities.Theme {
	out := make([]entities.Theme, len(themes))
	for i, t := range themes {
		t.Categories = slices.Clone(t.Categories)
		out[i] = t
	}
	return out
}

func ThemeByID(id string) (entities.Theme, bool) {
	for _, t := range themes {
		if t.ID == id {
			t.Categories = slices.Clone(t.Categories)
			return t, true
		}
	}
	return entities.Theme{}, false
}

// ServiceCategories returns every service group with each item's Category set.
func ServiceCategories() []entities.ServiceCategory {
	out := make([]entities.ServiceCategory, len(serviceCategories))
	for i, c := range serviceCategories {
		services := make([]entities.ServiceItem, len(c.Services))
		for j, s := range c.Services {
			s.Category = c.Name
			services[j] = s
		}
		out[i] = entities.ServiceCategory{ID: c.ID, Name: c.Name, Services: services}
	}
	return out
}

func ServiceByID(id string) (entities.ServiceItem, bool) {
	for _, c := range serviceCategories {
		for _, s := range c.Services {
			if s.ID == id {
				s.Category = c.Name
				return s, true
			}
		}
	}
	return entities.ServiceItem{}, false
}

func PackagedPlans() []entities.PackagedPlan {
	return slices.Clone(packagedPlans)
}

// TierFor returns the tier whose people count matches exactly.
// Unmatched counts resolve to the first (smallest) tier; ok reports an exact match.
func TierFor(peopleCount int) (plan entities.PackagedPlan, ok bool) {
	for _, p := range packagedPlans {
		if p.PeopleCount == peopleCount {
			return p, true
		}
	}
	return packagedPlans[0], false
}

func IncludedServices() []entities.IncludedService {
	return slices.Clone(includedServices)
}
