// internal/receipt/parser.go
package receipt

import (
	"bufio"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"escpos-service/internal/model"
)

// ErrNoItems is returned when the decoded text holds no item lines
var ErrNoItems = errors.New("receipt contains no items")

var (
	placePattern     = regexp.MustCompile(`^Tisch:\s*(\d+).*$`)
	separatorPattern = regexp.MustCompile(`^-{25,}$`)
	itemPattern      = regexp.MustCompile(`^[.*\s]*(\d{1,2})[.*]*\s*(\p{L}+.*)\s+(\d+[.,]\d+).*$`)
	toppingPattern   = regexp.MustCompile(`^\s*(?:(\d{1,2})\s*[xX]?\s+)?([+\-]?\s*\p{L}[\p{L}\s]*?)(?:\s+(\d+[.,]\d+))?\s*$`)
	totalPattern     = regexp.MustCompile(`^.*Rechnungsbetrag[\p{L}\s]+(\d+[.,]\d+)$`)
)

// Parse extracts the order printed on a decoded receipt.
//
// Item lines are only read between the first dashed separator and the next
// separator that follows at least one item. Letter-only lines in that section
// are toppings of the item above them.
func Parse(text, merchantID string, orderTime time.Time) (*model.Order, error) {
	order := &model.Order{
		MerchantID: merchantID,
		OrderTime:  orderTime,
		Items:      []*model.OrderItem{},
	}

	var (
		sectionStarted bool
		sectionEnded   bool
		totalSeen      bool
	)

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 4096), len(text)+1)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if order.PlaceID == "" {
			if m := placePattern.FindStringSubmatch(line); m != nil {
				order.PlaceID = m[1]
			}
		}

		separator := separatorPattern.MatchString(strings.TrimSpace(line))
		switch {
		case !sectionStarted:
			sectionStarted = separator
		case separator && len(order.Items) > 0:
			sectionEnded = true
		case !sectionEnded && !separator:
			if err := parseItemLine(line, order); err != nil {
				return nil, err
			}
		}

		if !totalSeen {
			if m := totalPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
				amount, err := parseAmount(m[1])
				if err != nil {
					return nil, fmt.Errorf("invalid bill amount %q: %w", m[1], err)
				}
				order.BillAmount = amount
				totalSeen = true
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read receipt text: %w", err)
	}

	if len(order.Items) == 0 {
		return nil, ErrNoItems
	}
	if !totalSeen {
		order.BillAmount = order.ItemsTotal()
	}
	return order, nil
}

func parseItemLine(line string, order *model.Order) error {
	if m := itemPattern.FindStringSubmatch(line); m != nil {
		quantity, err := strconv.Atoi(m[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q: %w", m[1], err)
		}
		price, err := parseAmount(m[3])
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", m[3], err)
		}
		order.Items = append(order.Items, model.NewOrderItem(quantity, stripMultiplier(m[2]), price))
		return nil
	}

	if len(order.Items) == 0 || strings.TrimSpace(line) == "" {
		return nil
	}
	m := toppingPattern.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	topping := model.Topping{Quantity: 1, Name: strings.TrimSpace(m[2])}
	if m[1] != "" {
		topping.Quantity, _ = strconv.Atoi(m[1])
	}
	if m[3] != "" {
		price, err := parseAmount(m[3])
		if err != nil {
			return fmt.Errorf("invalid topping price %q: %w", m[3], err)
		}
		topping.Price = price
	}
	order.Items[len(order.Items)-1].AddTopping(topping)
	return nil
}

// stripMultiplier drops the "x" some POS systems print between quantity and name
func stripMultiplier(name string) string {
	name = strings.TrimSpace(name)
	if len(name) > 1 && (name[0] == 'x' || name[0] == 'X') && name[1] == ' ' {
		return strings.TrimSpace(name[1:])
	}
	return name
}

func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.Replace(s, ",", ".", 1))
}
