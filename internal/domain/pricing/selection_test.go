package pricing

import (
	"slices"
	"testing"

	"eventos_api/internal/domain/entities"
)

func svc(id string, price int64) entities.ServiceItem {
	return entities.ServiceItem{ID: id, Category: "Test", Name: "Service " + id, UnitPrice: price, Unit: entities.UnitEach}
}

func TestSelection_Total(t *testing.T) {
	t.Run("empty selection totals zero", func(t *testing.T) {
		s := NewSelection()
		if got := s.Total(); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
		var zero Selection
		if got := zero.Total(); got != 0 {
			t.Fatalf("expected 0 for zero value, got %d", got)
		}
	})

	t.Run("A 10000 x1 and B 5000 x3", func(t *testing.T) {
		s := NewSelection()
		s.Select(svc("a", 10000), true)
		s.Select(svc("b", 5000), true)
		s.SetQuantity("b", 3)

		if got := s.Total(); got != 25000 {
			t.Fatalf("expected 25000, got %d", got)
		}
	})

	t.Run("total equals sum of unit price times quantity", func(t *testing.T) {
		s := NewSelection()
		prices := map[string]int64{"a": 1, "b": 250, "c": 99_999, "d": 1_500_000}
		quantities := map[string]int{"a": 7, "b": 1, "c": 12, "d": 2}
		var want int64
		for _, id := range []string{"a", "b", "c", "d"} {
			s.Select(svc(id, prices[id]), true)
			s.SetQuantity(id, quantities[id])
			want += prices[id] * int64(quantities[id])
		}
		if got := s.Total(); got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	})
}

func TestSelection_Select(t *testing.T) {
	s := NewSelection()
	s.Select(svc("a", 100), true)
	s.SetQuantity("a", 4)
	s.Select(svc("a", 100), true)

	if q, _ := s.Quantity("a"); q != 4 {
		t.Fatalf("reselecting must keep quantity, got %d", q)
	}

	s.Select(svc("a", 100), false)
	if _, ok := s.Quantity("a"); ok {
		t.Fatalf("deselected service must be removed")
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty selection, got %d", s.Len())
	}

	s.Select(svc("a", 100), false)
	if s.Len() != 0 {
		t.Fatalf("deselecting twice must be a no-op")
	}
}

func TestSelection_SetQuantity(t *testing.T) {
	t.Run("below one removes", func(t *testing.T) {
		s := NewSelection()
		s.Select(svc("a", 100), true)
		s.Select(svc("b", 200), true)

		s.SetQuantity("a", 0)
		if _, ok := s.Quantity("a"); ok {
			t.Fatalf("expected a removed")
		}
		s.SetQuantity("a", 0)
		s.SetQuantity("a", -3)
		if s.Len() != 1 || s.Total() != 200 {
			t.Fatalf("removing twice must be a no-op, len=%d total=%d", s.Len(), s.Total())
		}
	})

	t.Run("unknown id is ignored", func(t *testing.T) {
		s := NewSelection()
		s.SetQuantity("ghost", 5)
		if s.Len() != 0 {
			t.Fatalf("unknown id must not be inserted")
		}
	})

	t.Run("huge quantity is clamped", func(t *testing.T) {
		s := NewSelection()
		s.Select(svc("hall", 1_500_000), true)
		s.SetQuantity("hall", 1<<53)

		q, _ := s.Quantity("hall")
		if q != entities.MaxItemQuantity {
			t.Fatalf("expected quantity %d, got %d", entities.MaxItemQuantity, q)
		}
		want := int64(1_500_000) * entities.MaxItemQuantity
		items := slices.Collect(s.Items())
		if items[0].Subtotal != want || s.Total() != want {
			t.Fatalf("expected subtotal and total %d, got %d and %d", want, items[0].Subtotal, s.Total())
		}
	})

	t.Run("replaces quantity", func(t *testing.T) {
		s := NewSelection()
		s.Select(svc("a", 100), true)
		s.SetQuantity("a", 9)
		s.SetQuantity("a", 2)
		if got := s.Total(); got != 200 {
			t.Fatalf("expected 200, got %d", got)
		}
	})
}

func TestSelection_Items(t *testing.T) {
	s := NewSelection()
	s.Select(svc("c", 30), true)
	s.Select(svc("a", 10), true)
	s.Select(svc("b", 20), true)
	s.SetQuantity("a", 5)
	s.Select(svc("c", 30), false)

	items := slices.Collect(s.Items())
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "Service a" || items[1].Name != "Service b" {
		t.Fatalf("expected selection order, got %+v", items)
	}
	if items[0].Subtotal != 50 || items[0].Quantity != 5 || items[0].UnitPrice != 10 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}

	again := slices.Collect(s.Items())
	if !slices.Equal(items, again) {
		t.Fatalf("sequence must be restartable")
	}

	s.SetQuantity("b", 3)
	after := slices.Collect(s.Items())
	if after[1].Subtotal != 60 {
		t.Fatalf("sequence must reflect latest state, got %+v", after[1])
	}

	for range s.Items() {
		break
	}
}
