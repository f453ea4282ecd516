package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"escpos-service/internal/model"
)

func newReceipt(merchant string, created time.Time) *model.Receipt {
	return &model.Receipt{
		ID:         uuid.New(),
		MerchantID: merchant,
		Source:     model.ReceiptSourceHTTP,
		Raw:        []byte{0x1B, 0x40, 'h', 'i', 0x0A},
		Text:       "hi\n",
		CreatedAt:  created,
	}
}

func TestMemoryRepositoryCreateGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	receipt := newReceipt("m1", time.Now())
	if err := repo.Create(ctx, receipt); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Create(ctx, receipt); err == nil {
		t.Error("expected duplicate id error")
	}

	got, err := repo.GetByID(ctx, receipt.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Text != "hi\n" || len(got.Raw) != 5 {
		t.Errorf("got = %+v", got)
	}

	got.Raw[0] = 0
	again, _ := repo.GetByID(ctx, receipt.ID)
	if again.Raw[0] != 0x1B {
		t.Error("stored receipt shares its raw buffer with callers")
	}

	if _, err := repo.GetByID(ctx, uuid.New()); !errors.Is(err, ErrReceiptNotFound) {
		t.Errorf("GetByID(unknown) error = %v, want ErrReceiptNotFound", err)
	}
}

func TestMemoryRepositoryList(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		merchant := "m1"
		if i%2 == 1 {
			merchant = "m2"
		}
		if err := repo.Create(ctx, newReceipt(merchant, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatal(err)
		}
	}

	all, total, err := repo.List(ctx, &model.ReceiptFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 5 || len(all) != 5 {
		t.Fatalf("total = %d, len = %d", total, len(all))
	}
	if !all[0].CreatedAt.After(all[4].CreatedAt) {
		t.Error("receipts not sorted newest first")
	}

	m1, total, _ := repo.List(ctx, &model.ReceiptFilter{MerchantID: "m1"})
	if total != 3 || len(m1) != 3 {
		t.Errorf("m1 total = %d", total)
	}

	page, total, _ := repo.List(ctx, &model.ReceiptFilter{Limit: 2, Offset: 4})
	if total != 5 || len(page) != 1 {
		t.Errorf("page total = %d, len = %d", total, len(page))
	}

	since := base.Add(3 * time.Minute)
	recent, _, _ := repo.List(ctx, &model.ReceiptFilter{Since: &since})
	if len(recent) != 2 {
		t.Errorf("recent = %d, want 2", len(recent))
	}

	empty, _, _ := repo.List(ctx, &model.ReceiptFilter{Offset: 10})
	if len(empty) != 0 {
		t.Errorf("offset past end returned %d receipts", len(empty))
	}
}

func TestMemoryRepositoryMarkSentAndCleanup(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	old := newReceipt("m1", time.Now().Add(-48*time.Hour))
	fresh := newReceipt("m1", time.Now())
	for _, r := range []*model.Receipt{old, fresh} {
		if err := repo.Create(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	sentAt := time.Now().UTC()
	if err := repo.MarkSent(ctx, fresh.ID, model.JSONObject{"place_id": "12"}, sentAt); err != nil {
		t.Fatalf("MarkSent() error = %v", err)
	}
	if err := repo.MarkSent(ctx, uuid.New(), nil, sentAt); !errors.Is(err, ErrReceiptNotFound) {
		t.Errorf("MarkSent(unknown) error = %v", err)
	}

	sent := true
	list, _, _ := repo.List(ctx, &model.ReceiptFilter{SentToAPI: &sent})
	if len(list) != 1 || list[0].ID != fresh.ID || list[0].SentAt == nil {
		t.Errorf("sent receipts = %+v", list)
	}

	removed, err := repo.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
	if err != nil || removed != 1 {
		t.Errorf("DeleteOlderThan() = %d, %v", removed, err)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
}
