package service

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"escpos-service/internal/config"
	"escpos-service/internal/model"
	"escpos-service/internal/repository"
	"escpos-service/pkg/escpos"
)

type fakeSender struct {
	err    error
	orders []*model.Order
}

func (f *fakeSender) Send(ctx context.Context, order *model.Order) error {
	f.orders = append(f.orders, order)
	return f.err
}

type fakePublisher struct {
	mu     sync.Mutex
	events []model.EventType
}

func (f *fakePublisher) Publish(event *model.ReceiptEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event.EventType)
}

// receiptStream prints a small restaurant bill and cuts the paper
func receiptStream() []byte {
	var b bytes.Buffer
	b.Write([]byte{0x1B, 0x40})
	b.WriteString("Tisch: 7\n")
	b.WriteString("-------------------------\n")
	b.WriteString("2 Pizza Margherita  15,00\n")
	b.WriteString("  extra Oliven\n")
	b.WriteString("-------------------------\n")
	b.WriteString("Rechnungsbetrag EUR 15,00\n")
	b.Write([]byte{0x1D, 0x76, 0x30, 0x00, 0x01, 0x00, 0x02, 0x00, 0xFF, 0x81})
	b.Write([]byte{0x1B, 0x6D})
	return b.Bytes()
}

func newTestService(t *testing.T, sender OrderSender, enabled bool) (*ReceiptService, repository.ReceiptRepository, *fakePublisher) {
	t.Helper()
	decoder, err := escpos.New(escpos.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewMemoryRepository()
	events := &fakePublisher{}
	cfg := &config.Config{
		OrderAPI: config.OrderAPIConfig{Enabled: enabled},
		Database: config.DatabaseConfig{Retention: time.Hour},
	}
	return NewReceiptService(decoder, repo, sender, events, cfg, zap.NewNop()), repo, events
}

func TestProcessSendsOrder(t *testing.T) {
	sender := &fakeSender{}
	svc, repo, events := newTestService(t, sender, true)
	ctx := context.Background()

	res, err := svc.Process(ctx, "m-1", receiptStream(), model.ReceiptSourceHTTP)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	wantText := "Tisch: 7\n-------------------------\n2 Pizza Margherita  15,00\n  extra Oliven\n" +
		"-------------------------\nRechnungsbetrag EUR 15,00\n"
	if res.Text != wantText {
		t.Errorf("Text = %q, want %q", res.Text, wantText)
	}
	if !res.SentToAPI || res.Order == nil || res.ParseError != "" {
		t.Fatalf("result = %+v", res)
	}
	if len(res.Bitmaps) != 1 || res.Bitmaps[0].Width != 8 || res.Bitmaps[0].Height != 2 {
		t.Errorf("bitmaps = %+v", res.Bitmaps)
	}

	if len(sender.orders) != 1 {
		t.Fatalf("sent %d orders", len(sender.orders))
	}
	order := sender.orders[0]
	if order.PlaceID != "7" || order.MerchantID != "m-1" || !order.BillAmount.Equal(decimal.NewFromInt(15)) {
		t.Errorf("order = %v", order)
	}
	if len(order.Items) != 1 || len(order.Items[0].Toppings) != 1 {
		t.Errorf("items = %v", order)
	}

	stored, err := repo.GetByID(ctx, res.ReceiptID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !stored.SentToAPI || stored.SentAt == nil || stored.OrderData["place_id"] != "7" {
		t.Errorf("stored = %+v", stored)
	}
	if stored.BitmapCount != 1 || stored.Text != wantText {
		t.Errorf("stored counts = %d bitmaps, text %q", stored.BitmapCount, stored.Text)
	}

	want := []model.EventType{model.EventReceiptDecoded, model.EventOrderSent}
	if len(events.events) != len(want) || events.events[0] != want[0] || events.events[1] != want[1] {
		t.Errorf("events = %v, want %v", events.events, want)
	}
}

func TestProcessSendFailure(t *testing.T) {
	svc, repo, events := newTestService(t, &fakeSender{err: errors.New("503")}, true)

	res, err := svc.Process(context.Background(), "m-1", receiptStream(), model.ReceiptSourceSerial)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if res.SentToAPI || res.Order == nil {
		t.Errorf("result = %+v", res)
	}
	stored, _ := repo.GetByID(context.Background(), res.ReceiptID)
	if stored.SentToAPI || stored.Source != model.ReceiptSourceSerial {
		t.Errorf("stored = %+v", stored)
	}
	if events.events[len(events.events)-1] != model.EventOrderFailed {
		t.Errorf("events = %v", events.events)
	}
}

func TestProcessWithoutOrderAPI(t *testing.T) {
	sender := &fakeSender{}
	svc, _, _ := newTestService(t, sender, false)

	res, err := svc.Process(context.Background(), "m-1", receiptStream(), model.ReceiptSourceHTTP)
	if err != nil {
		t.Fatal(err)
	}
	if res.SentToAPI || len(sender.orders) != 0 || res.Order == nil {
		t.Errorf("result = %+v, sent = %d", res, len(sender.orders))
	}
}

func TestProcessUnparseableText(t *testing.T) {
	svc, repo, _ := newTestService(t, &fakeSender{}, true)

	res, err := svc.Process(context.Background(), "m-1", []byte("just text\n\x1bm"), model.ReceiptSourceHTTP)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if res.Text != "just text\n" || res.Order != nil || res.ParseError == "" {
		t.Errorf("result = %+v", res)
	}
	if n, _ := repo.Count(context.Background()); n != 1 {
		t.Errorf("stored %d receipts, want 1", n)
	}
}

func TestProcessEmpty(t *testing.T) {
	svc, _, _ := newTestService(t, nil, false)
	for _, raw := range [][]byte{nil, {}} {
		if _, err := svc.Process(context.Background(), "m", raw, model.ReceiptSourceHTTP); !errors.Is(err, ErrEmptyReceipt) {
			t.Errorf("Process(%v) error = %v, want ErrEmptyReceipt", raw, err)
		}
	}
}

func TestCleanup(t *testing.T) {
	svc, repo, _ := newTestService(t, nil, false)
	ctx := context.Background()

	if _, err := svc.Process(ctx, "m", []byte("a\n"), model.ReceiptSourceHTTP); err != nil {
		t.Fatal(err)
	}
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	removed, err := svc.Cleanup(ctx)
	if err != nil || removed != 1 {
		t.Errorf("Cleanup() = %d, %v", removed, err)
	}
	if n, _ := repo.Count(ctx); n != 0 {
		t.Errorf("Count() = %d", n)
	}
}
