package cart

import (
	"encoding/json"
	"testing"

	"github.com/allithy/storefront-backend/internal/domain/catalog"
)

func product(id string, price float64) catalog.Product {
	return catalog.Product{
		ID:            id,
		TitleAR:       "منتج " + id,
		TitleEN:       "Product " + id,
		DescriptionAR: "وصف",
		DescriptionEN: "Description",
		Price:         price,
	}
}

func TestAddMergesSameProduct(t *testing.T) {
	c := New("s1")

	for i := 0; i < 3; i++ {
		c.Add(product("p1", 10))
	}

	if len(c.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(c.Items))
	}
	if c.Items[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", c.Items[0].Quantity)
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	c := New("s1")
	c.Add(product("p1", 10))
	c.Add(product("p2", 0))
	c.Add(product("p1", 10))
	c.Add(product("p3", 5))

	want := []string{"p1", "p2", "p3"}
	if len(c.Items) != len(want) {
		t.Fatalf("got %d items, want %d", len(c.Items), len(want))
	}
	for i, id := range want {
		if c.Items[i].Product.ID != id {
			t.Errorf("item %d = %q, want %q", i, c.Items[i].Product.ID, id)
		}
	}
}

func TestTotalItemsSumsQuantities(t *testing.T) {
	c := New("s1")
	c.Add(product("a", 10))
	c.Add(product("a", 10))
	c.Add(product("b", 0))

	if got := c.TotalItems(); got != 3 {
		t.Errorf("TotalItems() = %d, want 3", got)
	}
}

func TestSetQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantLen  int
		wantQty  int
	}{
		{"absolute set", 5, 1, 5},
		{"zero removes", 0, 0, 0},
		{"negative removes", -2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New("s1")
			c.Add(product("p1", 10))
			c.SetQuantity("p1", tt.quantity)

			if len(c.Items) != tt.wantLen {
				t.Fatalf("got %d items, want %d", len(c.Items), tt.wantLen)
			}
			if tt.wantLen > 0 && c.Items[0].Quantity != tt.wantQty {
				t.Errorf("quantity = %d, want %d", c.Items[0].Quantity, tt.wantQty)
			}
		})
	}
}

func TestSetQuantityAbsentIsNoop(t *testing.T) {
	c := New("s1")
	c.Add(product("p1", 10))
	c.SetQuantity("ghost", 7)

	if len(c.Items) != 1 || c.Items[0].Quantity != 1 {
		t.Errorf("no-op expected, cart changed: %+v", c.Items)
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	c := New("s1")
	c.Add(product("p1", 10))
	c.Remove("ghost")

	if len(c.Items) != 1 {
		t.Errorf("no-op expected, got %d items", len(c.Items))
	}
}

func TestClear(t *testing.T) {
	c := New("s1")
	c.Add(product("p1", 10))
	c.Add(product("p2", 0))
	c.Clear()

	if !c.IsEmpty() {
		t.Errorf("cart not empty after Clear: %d items", len(c.Items))
	}
	if c.TotalItems() != 0 {
		t.Errorf("TotalItems() = %d after Clear", c.TotalItems())
	}
}

func TestSummarizePartition(t *testing.T) {
	c := New("s1")
	c.Add(product("unpriced", 0))
	c.Add(product("unpriced", 0)) // qty 2
	c.Add(product("priced", 10))
	c.SetQuantity("priced", 3)

	s := c.Summarize()
	if s.Subtotal != 30 {
		t.Errorf("Subtotal = %v, want 30", s.Subtotal)
	}
	if s.UnpricedCount != 2 {
		t.Errorf("UnpricedCount = %d, want 2", s.UnpricedCount)
	}
	if s.TotalItems != 5 {
		t.Errorf("TotalItems = %d, want 5", s.TotalItems)
	}
}

func TestSummarizeEmptyCart(t *testing.T) {
	s := New("s1").Summarize()
	if s.Subtotal != 0 || s.UnpricedCount != 0 || s.TotalItems != 0 {
		t.Errorf("empty cart summary not zero: %+v", s)
	}
}

func TestSerializationRoundTrip(t *testing.T) {
	c := New("s1")
	c.Add(product("p1", 12.50))
	c.Add(product("p2", 0))
	c.SetQuantity("p1", 4)

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var restored Cart
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	if len(restored.Items) != len(c.Items) {
		t.Fatalf("got %d items, want %d", len(restored.Items), len(c.Items))
	}
	for i, item := range c.Items {
		if restored.Items[i].Product.ID != item.Product.ID {
			t.Errorf("item %d product = %q, want %q", i, restored.Items[i].Product.ID, item.Product.ID)
		}
		if restored.Items[i].Quantity != item.Quantity {
			t.Errorf("item %d quantity = %d, want %d", i, restored.Items[i].Quantity, item.Quantity)
		}
	}
}

func TestCorruptPayloadYieldsEmptyCart(t *testing.T) {
	// The store treats undecodable payloads as an empty cart; the same
	// decode path is exercised here without Redis.
	var c Cart
	if err := json.Unmarshal([]byte("{not json"), &c); err == nil {
		t.Fatal("expected decode error for corrupt payload")
	}

	fresh := New("s1")
	if !fresh.IsEmpty() {
		t.Error("replacement cart should be empty")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	p := product("p1", 10)
	c := New("s1")
	c.Add(p)

	// Catalog edits after the add must not leak into the cart item.
	p.TitleEN = "Renamed"
	p.Price = 99

	if c.Items[0].Product.TitleEN != "Product p1" {
		t.Errorf("cart item title changed to %q", c.Items[0].Product.TitleEN)
	}
	if c.Items[0].Product.Price != 10 {
		t.Errorf("cart item price changed to %v", c.Items[0].Product.Price)
	}
}
