package receipt

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

const sampleText = `Ristorante Da Mario
Tisch: 12
-------------------------
1 x Pizza Salami       9,50
  extra Kaese
2 Cola 0,3l            5,80
*1* Tiramisu           4.20
  + Sahne 0,50
-------------------------
Rechnungsbetrag EUR 20,00
Vielen Dank
`

func TestParse(t *testing.T) {
	orderTime := time.Date(2024, 3, 1, 19, 30, 0, 0, time.UTC)
	order, err := Parse(sampleText, "m-42", orderTime)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if order.PlaceID != "12" || order.MerchantID != "m-42" || !order.OrderTime.Equal(orderTime) {
		t.Errorf("order header = %+v", order)
	}
	if !order.BillAmount.Equal(decimal.RequireFromString("20.00")) {
		t.Errorf("BillAmount = %s", order.BillAmount)
	}

	want := []struct {
		qty      int
		name     string
		price    string
		total    string
		toppings int
	}{
		{1, "Pizza Salami", "9.50", "9.50", 1},
		{2, "Cola 0,3l", "5.80", "5.80", 0},
		{1, "Tiramisu", "4.20", "4.70", 1},
	}
	if len(order.Items) != len(want) {
		t.Fatalf("got %d items, want %d: %v", len(order.Items), len(want), order)
	}
	for i, w := range want {
		item := order.Items[i]
		if item.Quantity != w.qty || item.Name != w.name {
			t.Errorf("item %d = %dx %q, want %dx %q", i, item.Quantity, item.Name, w.qty, w.name)
		}
		if !item.Price.Equal(decimal.RequireFromString(w.price)) || !item.TotalPrice.Equal(decimal.RequireFromString(w.total)) {
			t.Errorf("item %d price = %s total = %s, want %s / %s", i, item.Price, item.TotalPrice, w.price, w.total)
		}
		if len(item.Toppings) != w.toppings {
			t.Errorf("item %d toppings = %+v", i, item.Toppings)
		}
	}
	if order.Items[0].Toppings[0].Name != "extra Kaese" {
		t.Errorf("topping = %+v", order.Items[0].Toppings[0])
	}
	if order.Items[2].Toppings[0].Name != "+ Sahne" {
		t.Errorf("topping = %+v", order.Items[2].Toppings[0])
	}
}

func TestParseIgnoresLinesOutsideItemSection(t *testing.T) {
	text := "1 Kaffee 2,00\n" +
		"-------------------------\n" +
		"1 Wasser 1,50\n" +
		"-------------------------\n" +
		"3 Bier 9,00\n"

	order, err := Parse(text, "m", time.Now())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(order.Items) != 1 || order.Items[0].Name != "Wasser" {
		t.Fatalf("items = %v", order)
	}
	if !order.BillAmount.Equal(decimal.RequireFromString("1.50")) {
		t.Errorf("BillAmount without total line = %s, want item sum", order.BillAmount)
	}
	if order.PlaceID != "" {
		t.Errorf("PlaceID = %q", order.PlaceID)
	}
}

func TestParseNoItems(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no separator", "Tisch: 3\n1 Pizza 9,50\n"},
		{"empty section", "-------------------------\nhello\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.text, "m", time.Now()); !errors.Is(err, ErrNoItems) {
				t.Errorf("Parse() error = %v, want ErrNoItems", err)
			}
		})
	}
}

func TestStripMultiplier(t *testing.T) {
	tests := map[string]string{
		"x Pizza":  "Pizza",
		"X  Pasta": "Pasta",
		"Xavier":   "Xavier",
		" Salat ":  "Salat",
	}
	for in, want := range tests {
		if got := stripMultiplier(in); got != want {
			t.Errorf("stripMultiplier(%q) = %q, want %q", in, got, want)
		}
	}
}
