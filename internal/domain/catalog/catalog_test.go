package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierFor(t *testing.T) {
	plan, ok := TierFor(100)
	require.True(t, ok)
	assert.Equal(t, int64(4_500_000), plan.FlatPrice)

	plan, ok = TierFor(120)
	assert.False(t, ok)
	assert.Equal(t, 50, plan.PeopleCount)
	assert.Equal(t, int64(3_000_000), plan.FlatPrice)

	plan, _ = TierFor(0)
	assert.Equal(t, PackagedPlans()[0], plan)
}

func TestTiersAreSortedAndCoverVenuePrice(t *testing.T) {
	plans := PackagedPlans()
	for i, p := range plans {
		assert.Greater(t, p.FlatPrice, FixedVenuePrice, "tier %d must stay positive without venue", p.PeopleCount)
		if i > 0 {
			assert.Greater(t, p.PeopleCount, plans[i-1].PeopleCount)
		}
	}
}

func TestServiceByIDCarriesCategory(t *testing.T) {
	s, ok := ServiceByID("dj")
	require.True(t, ok)
	assert.Equal(t, "Entertainment", s.Category)
	assert.Positive(t, s.UnitPrice)

	_, ok = ServiceByID("does-not-exist")
	assert.False(t, ok)
}

func TestCatalogIntegrity(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range ServiceCategories() {
		for _, s := range c.Services {
			assert.False(t, seen[s.ID], "duplicate service id %s", s.ID)
			seen[s.ID] = true
			assert.Positive(t, s.UnitPrice, s.ID)
			assert.Equal(t, c.Name, s.Category)
		}
	}

	descriptions := map[string]bool{}
	for _, e := range Events() {
		_, ok := EventCategoryByID(e.Category)
		assert.True(t, ok, "event %s has unknown category %s", e.ID, e.Category)
		assert.False(t, descriptions[e.Description], "duplicate description for %s", e.ID)
		descriptions[e.Description] = true
	}

	for _, th := range Themes() {
		for _, c := range th.Categories {
			_, ok := EventCategoryByID(c)
			assert.True(t, ok, "theme %s has unknown category %s", th.ID, c)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	cats := ServiceCategories()
	cats[0].Services[0].UnitPrice = 1

	s, _ := ServiceByID(cats[0].Services[0].ID)
	assert.NotEqual(t, int64(1), s.UnitPrice)

	th := Themes()
	th[0].Categories[0] = "mutated"
	again, _ := ThemeByID(th[0].ID)
	assert.NotEqual(t, "mutated", again.Categories[0])
}

func TestEventsByCategory(t *testing.T) {
	weddings := EventsByCategory(CategoryWedding)
	require.NotEmpty(t, weddings)
	for _, e := range weddings {
		assert.Equal(t, CategoryWedding, e.Category)
	}
	assert.Empty(t, EventsByCategory("unknown"))
}
