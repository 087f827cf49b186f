package cart

import (
	"sync"
	"testing"
)

func line(id int, name, price string) Line {
	return Line{ProductID: id, Name: name, PriceLabel: price}
}

func TestAddAppendsInOrder(t *testing.T) {
	var c Cart
	c.Add(line(1, "Detergente", "10.000"))
	c.Add(line(2, "Suavizante", "8.990"))
	c.Add(line(1, "Detergente", "10.000"))

	if c.Len() != 3 {
		t.Fatalf("expected 3 lines, got %d", c.Len())
	}
	got := c.Lines()
	want := []int{1, 2, 1}
	for i, id := range want {
		if got[i].ProductID != id {
			t.Fatalf("line %d: expected product %d, got %d", i, id, got[i].ProductID)
		}
	}
}

func TestRemoveShiftsAndIgnoresOutOfRange(t *testing.T) {
	var c Cart
	c.Add(line(1, "a", "100"))
	c.Add(line(2, "b", "200"))
	c.Add(line(3, "c", "300"))

	c.Remove(1)
	got := c.Lines()
	if len(got) != 2 || got[0].ProductID != 1 || got[1].ProductID != 3 {
		t.Fatalf("unexpected lines after remove: %+v", got)
	}

	// stale indexes are a silent no-op
	c.Remove(5)
	c.Remove(-1)
	if c.Len() != 2 {
		t.Fatalf("out-of-range remove mutated the cart: %d lines", c.Len())
	}
}

func TestTotalRecomputedAfterEveryMutation(t *testing.T) {
	var c Cart
	if c.Total() != 0 {
		t.Fatalf("empty cart total = %v, want 0", c.Total())
	}
	c.Add(line(1, "a", "10.000"))
	c.Add(line(2, "b", "8.990"))
	if got := c.Total(); got != 18990 {
		t.Fatalf("total = %v, want 18990", got)
	}
	c.Remove(0)
	if got := c.Total(); got != 8990 {
		t.Fatalf("total after remove = %v, want 8990", got)
	}
}

func TestCheckoutSnapshotsAndEmpties(t *testing.T) {
	var c Cart
	c.Add(line(1, "a", "10.000"))
	c.Add(line(2, "b", "4.990"))

	res := c.Checkout()
	if res.Items != 2 || res.Total != 14990 || len(res.Lines) != 2 {
		t.Fatalf("unexpected checkout result: %+v", res)
	}
	if c.Len() != 0 || c.Total() != 0 {
		t.Fatalf("cart not emptied after checkout: len=%d total=%v", c.Len(), c.Total())
	}

	// empty checkout degenerates to a zero-item success
	res = c.Checkout()
	if res.Items != 0 || res.Total != 0 || len(res.Lines) != 0 {
		t.Fatalf("empty checkout result: %+v", res)
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"10.000", 10000},
		{"8.990", 8990},
		{"1,234,567", 1234567},
		{" 4.990 ", 4990},
		{"500", 500},
		{"", 0},
		{"gratis", 0},
	}
	for _, tc := range cases {
		if got := ParsePrice(tc.in); got != tc.want {
			t.Errorf("ParsePrice(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestStoreIsolatesSessions(t *testing.T) {
	s := NewStore()
	s.Add("alice", line(1, "a", "100"))
	s.Add("bob", line(2, "b", "200"))

	if got := s.Count("alice"); got != 1 {
		t.Fatalf("alice count = %d, want 1", got)
	}
	lines, total, count := s.View("bob")
	if count != 1 || total != 200 || lines[0].ProductID != 2 {
		t.Fatalf("bob view: lines=%+v total=%v count=%d", lines, total, count)
	}

	s.Clear("alice")
	if got := s.Count("alice"); got != 0 {
		t.Fatalf("alice count after clear = %d, want 0", got)
	}
	if got := s.Count("bob"); got != 1 {
		t.Fatalf("clear leaked into bob's cart: count = %d", got)
	}
}

func TestStoreConcurrentAdds(t *testing.T) {
	s := NewStore()
	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add("sess", line(1, "a", "1.000"))
		}()
	}
	wg.Wait()
	if got := s.Count("sess"); got != n {
		t.Fatalf("count after %d concurrent adds = %d", n, got)
	}
	if _, total, _ := s.View("sess"); total != n*1000 {
		t.Fatalf("total = %v, want %d", total, n*1000)
	}
}
