// internal/model/order.go
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Order is the order a receipt describes
type Order struct {
	MerchantID string          `json:"merchant_id"`
	PlaceID    string          `json:"place_id,omitempty"`
	OrderTime  time.Time       `json:"order_time"`
	BillAmount decimal.Decimal `json:"bill_amount"`
	Items      []*OrderItem    `json:"items"`
}

// OrderItem is one item line of a receipt
type OrderItem struct {
	Quantity   int             `json:"quantity"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Toppings   []Topping       `json:"toppings"`
}

// Topping is a modifier line printed under an item
type Topping struct {
	Quantity int             `json:"quantity"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
}

// NewOrderItem creates an item whose total starts at its own price
func NewOrderItem(quantity int, name string, price decimal.Decimal) *OrderItem {
	return &OrderItem{
		Quantity:   quantity,
		Name:       collapseSpaces(name),
		Price:      price,
		TotalPrice: price,
		Toppings:   []Topping{},
	}
}

// AddTopping attaches a topping and adds its cost to the item total
func (i *OrderItem) AddTopping(t Topping) {
	t.Name = collapseSpaces(t.Name)
	i.Toppings = append(i.Toppings, t)
	i.TotalPrice = i.TotalPrice.Add(t.Price.Mul(decimal.NewFromInt(int64(t.Quantity))))
}

// ItemsTotal sums the item totals
func (o *Order) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.Items {
		sum = sum.Add(item.TotalPrice)
	}
	return sum
}

func (o *Order) String() string {
	names := make([]string, len(o.Items))
	for i, item := range o.Items {
		names[i] = fmt.Sprintf("%dx %s", item.Quantity, item.Name)
	}
	return fmt.Sprintf("merchant=%s place=%s total=%s items=[%s]",
		o.MerchantID, o.PlaceID, o.BillAmount.StringFixed(2), strings.Join(names, "; "))
}

// Cents converts an amount to integer cents, rounding half away from zero
func Cents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
