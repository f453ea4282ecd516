package orderclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"escpos-service/internal/config"
	"escpos-service/internal/model"
)

func testOrder() *model.Order {
	pizza := model.NewOrderItem(1, "Pizza Salami", decimal.RequireFromString("9.50"))
	pizza.AddTopping(model.Topping{Quantity: 1, Name: "extra Kaese", Price: decimal.RequireFromString("1.25")})
	return &model.Order{
		MerchantID: "m-42",
		PlaceID:    "12",
		OrderTime:  time.Date(2024, 3, 1, 19, 30, 5, 0, time.UTC),
		BillAmount: decimal.RequireFromString("15.55"),
		Items: []*model.OrderItem{
			pizza,
			model.NewOrderItem(2, "Cola", decimal.RequireFromString("2.90")),
		},
	}
}

func TestSend(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm() error = %v", err)
		}
		got = r
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := New(&config.OrderAPIConfig{
		BaseURL:       srv.URL + "/",
		Authorization: "token-1",
		PlaceUUID:     "place-uuid",
	}, zap.NewNop())

	if err := client.Send(context.Background(), testOrder()); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if got.URL.Path != "/order/test" || got.Method != http.MethodPost {
		t.Errorf("request = %s %s", got.Method, got.URL.Path)
	}
	if got.Header.Get("Authorization") != "token-1" || got.Header.Get("Accept") != "application/json" {
		t.Errorf("headers = %v", got.Header)
	}

	fields := map[string]string{
		"merchantId": "m-42",
		"placeUuid":  "place-uuid",
		"orderTime":  "01.03.2024 19:30:05",
		"billAmount": "1555",
	}
	for key, want := range fields {
		if v := got.PostForm.Get(key); v != want {
			t.Errorf("%s = %q, want %q", key, v, want)
		}
	}

	var item itemBody
	if err := json.Unmarshal([]byte(got.PostForm.Get("items[0]")), &item); err != nil {
		t.Fatalf("items[0] is not JSON: %v", err)
	}
	if item.Name != "Pizza Salami" || item.Price != 950 || item.PosID != 1 || item.ID == "" {
		t.Errorf("items[0] = %+v", item)
	}
	if len(item.Toppings) != 1 || item.Toppings[0].Price != 125 {
		t.Errorf("toppings = %+v", item.Toppings)
	}
	if got.PostForm.Get("items[1]") == "" || got.PostForm.Get("items[2]") != "" {
		t.Errorf("items = %v", got.PostForm)
	}
}

func TestSendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad merchant", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := New(&config.OrderAPIConfig{BaseURL: srv.URL}, zap.NewNop())
	err := client.Send(context.Background(), testOrder())
	if !errors.Is(err, ErrOrderRejected) {
		t.Fatalf("Send() error = %v, want ErrOrderRejected", err)
	}
}

func TestSendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := New(&config.OrderAPIConfig{BaseURL: url, Timeout: time.Second}, zap.NewNop())
	err := client.Send(context.Background(), testOrder())
	if err == nil || errors.Is(err, ErrOrderRejected) {
		t.Errorf("Send() error = %v, want transport error", err)
	}
}
