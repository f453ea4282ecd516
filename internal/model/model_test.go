package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderItemToppings(t *testing.T) {
	item := NewOrderItem(1, "Pizza   Salami", decimal.RequireFromString("9.50"))
	if item.Name != "Pizza Salami" {
		t.Errorf("Name = %q", item.Name)
	}

	item.AddTopping(Topping{Quantity: 2, Name: "extra  cheese", Price: decimal.RequireFromString("0.75")})
	item.AddTopping(Topping{Quantity: 1, Name: "no onions"})

	if !item.TotalPrice.Equal(decimal.RequireFromString("11.00")) {
		t.Errorf("TotalPrice = %s, want 11.00", item.TotalPrice)
	}
	if len(item.Toppings) != 2 || item.Toppings[0].Name != "extra cheese" {
		t.Errorf("Toppings = %+v", item.Toppings)
	}
}

func TestCents(t *testing.T) {
	tests := map[string]int64{
		"9.5":    950,
		"0.005":  1,
		"12.344": 1234,
		"-1.25":  -125,
		"100":    10000,
	}
	for in, want := range tests {
		if got := Cents(decimal.RequireFromString(in)); got != want {
			t.Errorf("Cents(%s) = %d, want %d", in, got, want)
		}
	}
}

func TestJSONObjectScan(t *testing.T) {
	var obj JSONObject
	if err := obj.Scan([]byte(`{"place_id":"12"}`)); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if obj["place_id"] != "12" {
		t.Errorf("obj = %v", obj)
	}
	if err := obj.Scan(42); err == nil {
		t.Error("expected error scanning an int")
	}
	if err := obj.Scan(nil); err != nil || obj != nil {
		t.Errorf("Scan(nil) = %v, %v", obj, err)
	}
}

func TestReceiptFilterNormalize(t *testing.T) {
	f := ReceiptFilter{Limit: 10000, Offset: -3}
	f.Normalize()
	if f.Limit != 50 || f.Offset != 0 {
		t.Errorf("filter = %+v", f)
	}
}
