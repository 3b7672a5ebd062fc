package pricing

import (
	"testing"

	"eventos_api/internal/domain/catalog"
	"eventos_api/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackage(t *testing.T) {
	t.Run("100 guests without venue", func(t *testing.T) {
		p := NewPackage(100, false, catalog.CategoryFifteenthBday)
		assert.Equal(t, int64(4_500_000), p.BasePrice)
		assert.Equal(t, int64(3_000_000), p.Total)
		assert.Equal(t, 100, p.PeopleCount)
	})

	t.Run("venue difference holds for every tier", func(t *testing.T) {
		for _, tier := range catalog.PackagedPlans() {
			with := NewPackage(tier.PeopleCount, true, "birthday")
			without := NewPackage(tier.PeopleCount, false, "birthday")
			assert.Equal(t, with.Total-catalog.FixedVenuePrice, without.Total, "tier %d", tier.PeopleCount)
			assert.Equal(t, tier.FlatPrice, with.Total)
		}
	})

	t.Run("unknown count falls back to first tier", func(t *testing.T) {
		first := catalog.PackagedPlans()[0]
		for _, n := range []int{0, -5, 75, 1000} {
			p := NewPackage(n, true, catalog.CategoryWedding)
			assert.Equal(t, first.PeopleCount, p.PeopleCount)
			assert.Equal(t, first.FlatPrice, p.Total)
		}
	})

	t.Run("items sum to total", func(t *testing.T) {
		p := NewPackage(200, false, "corporate")
		items := p.Items()
		require.Len(t, items, 1)
		assert.Equal(t, p.Total, entities.SumItems(items))
		assert.Contains(t, items[0].Name, "without venue")
	})
}

func TestIncludedServices(t *testing.T) {
	find := func(list []entities.IncludedService, key string) (entities.IncludedService, bool) {
		for _, s := range list {
			if s.Key == key {
				return s, true
			}
		}
		return entities.IncludedService{}, false
	}
	base := catalog.IncludedServices()

	t.Run("quinceañera keeps boilerplate", func(t *testing.T) {
		got := NewPackage(100, true, catalog.CategoryFifteenthBday).IncludedServices()
		assert.Equal(t, base, got)
	})

	t.Run("wedding relabels kit and cake", func(t *testing.T) {
		got := NewPackage(100, true, catalog.CategoryWedding).IncludedServices()
		require.Len(t, got, len(base))

		kit, ok := find(got, catalog.IncludedKit)
		require.True(t, ok)
		assert.Equal(t, "Wedding kit", kit.Title)

		cake, _ := find(got, catalog.IncludedCake)
		assert.Contains(t, cake.Description, "wedding")

		deco, _ := find(got, catalog.IncludedDecoration)
		baseDeco, _ := find(base, catalog.IncludedDecoration)
		assert.Equal(t, baseDeco, deco)
	})

	t.Run("other categories drop kit and use display name", func(t *testing.T) {
		got := NewPackage(100, true, "baby-shower").IncludedServices()
		assert.Len(t, got, len(base)-1)

		_, ok := find(got, catalog.IncludedKit)
		assert.False(t, ok)

		cake, _ := find(got, catalog.IncludedCake)
		assert.Contains(t, cake.Description, "baby shower")
		deco, _ := find(got, catalog.IncludedDecoration)
		assert.Contains(t, deco.Description, "baby shower")
	})

	t.Run("checklist never changes the price", func(t *testing.T) {
		a := NewPackage(150, false, catalog.CategoryWedding)
		b := NewPackage(150, false, "graduation")
		assert.Equal(t, a.Total, b.Total)
	})

	t.Run("does not mutate catalog boilerplate", func(t *testing.T) {
		_ = NewPackage(100, true, catalog.CategoryWedding).IncludedServices()
		assert.Equal(t, base, catalog.IncludedServices())
	})
}
