package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"escpos-service/internal/config"
	"escpos-service/internal/discovery"
	"escpos-service/internal/model"
	"escpos-service/internal/repository"
	"escpos-service/internal/service"
	"escpos-service/pkg/escpos"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

type testServer struct {
	router *gin.Engine
	repo   repository.ReceiptRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	decoder, err := escpos.New(escpos.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{App: config.AppConfig{Name: "escpos-service", Version: "test"}}
	repo := repository.NewMemoryRepository()
	svc := service.NewReceiptService(decoder, repo, nil, nil, cfg, zap.NewNop())

	receipts := NewReceiptHandler(svc, 64, zap.NewNop())
	decode := NewDecodeHandler(decoder, 1024, zap.NewNop())
	health := NewHealthHandler(nil, repo, nil, cfg, zap.NewNop())

	r := gin.New()
	r.GET("/health", health.HealthCheck)
	r.GET("/ready", health.ReadinessCheck)
	r.POST("/receipt/create/:merchant_id", receipts.CreateReceiptLegacy)
	api := r.Group("/api/v1")
	api.POST("/decode", decode.Decode)
	api.POST("/receipts/:merchant_id", receipts.CreateReceipt)
	api.GET("/receipts", receipts.ListReceipts)
	api.GET("/receipts/:id", receipts.GetReceipt)
	api.GET("/receipts/:id/raw", receipts.GetReceiptRaw)

	return &testServer{router: r, repo: repo}
}

func (s *testServer) do(t *testing.T, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/octet-stream")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v: %s", err, w.Body.String())
	}
	if data != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("data: %v", err)
		}
	}
	return env
}

func TestCreateReceipt(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/receipts/m-1", []byte("\x1b@Hallo\n\x1bm"))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var result service.ProcessResult
	env := decodeEnvelope(t, w, &result)
	if !env.Success || result.Text != "Hallo\n" || result.SentToAPI {
		t.Errorf("result = %+v", result)
	}

	w = s.do(t, http.MethodGet, "/api/v1/receipts/"+result.ReceiptID.String(), nil)
	var stored model.Receipt
	decodeEnvelope(t, w, &stored)
	if w.Code != http.StatusOK || stored.MerchantID != "m-1" || stored.Text != "Hallo\n" {
		t.Errorf("GET status = %d, receipt = %+v", w.Code, stored)
	}

	w = s.do(t, http.MethodGet, "/api/v1/receipts/"+result.ReceiptID.String()+"/raw", nil)
	if w.Code != http.StatusOK || w.Body.String() != "\x1b@Hallo\n\x1bm" {
		t.Errorf("raw = %d %q", w.Code, w.Body.String())
	}
}

func TestCreateReceiptErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body []byte
		code int
		err  string
	}{
		{"empty body", nil, http.StatusBadRequest, "BAD_REQUEST"},
		{"too large", bytes.Repeat([]byte("x"), 65), http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/api/v1/receipts/m-1", tt.body)
			if w.Code != tt.code {
				t.Fatalf("status = %d, want %d", w.Code, tt.code)
			}
			env := decodeEnvelope(t, w, nil)
			if env.Success || env.Error == nil || env.Error.Code != tt.err {
				t.Errorf("envelope = %+v", env)
			}
		})
	}
}

func TestCreateReceiptLegacy(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/receipt/create/m-9", []byte("ok\n"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var text string
	if err := json.Unmarshal(w.Body.Bytes(), &text); err != nil || text != "ok\n" {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestGetReceiptNotFound(t *testing.T) {
	s := newTestServer(t)

	if w := s.do(t, http.MethodGet, "/api/v1/receipts/not-a-uuid", nil); w.Code != http.StatusBadRequest {
		t.Errorf("invalid id status = %d", w.Code)
	}
	if w := s.do(t, http.MethodGet, "/api/v1/receipts/6f1c1d0e-8c1a-4a53-9b1e-2f7a3c0d9e11", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d", w.Code)
	}
}

func TestListReceipts(t *testing.T) {
	s := newTestServer(t)
	for _, m := range []string{"a", "b", "a"} {
		if w := s.do(t, http.MethodPost, "/api/v1/receipts/"+m, []byte("x\n")); w.Code != http.StatusCreated {
			t.Fatalf("create status = %d", w.Code)
		}
	}

	w := s.do(t, http.MethodGet, "/api/v1/receipts?merchant_id=a&limit=1", nil)
	var page struct {
		Receipts []model.Receipt `json:"receipts"`
		Total    int             `json:"total"`
	}
	decodeEnvelope(t, w, &page)
	if w.Code != http.StatusOK || page.Total != 2 || len(page.Receipts) != 1 {
		t.Errorf("status = %d, page = %+v", w.Code, page)
	}

	w = s.do(t, http.MethodGet, "/api/v1/receipts?sent_to_api=maybe&limit=x", nil)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "sent_to_api") {
		t.Errorf("validation response = %d %s", w.Code, w.Body.String())
	}
}

func TestDecode(t *testing.T) {
	s := newTestServer(t)
	stream := []byte{0x1B, 0x40, 0x1B, 0x2D, 0x01, 'A', 0x0A, 0x1D, 0x76, 0x30, 0x00, 0x01, 0x00, 0x01, 0x00, 0xAA}

	w := s.do(t, http.MethodPost, "/api/v1/decode", stream)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp DecodeResponse
	decodeEnvelope(t, w, &resp)
	if resp.Text != "A\n" {
		t.Errorf("Text = %q", resp.Text)
	}
	if len(resp.Records) != 5 || resp.Records[1].Description != "ON 1 dot" || resp.Records[0].Hex != "1B 40" {
		t.Errorf("records = %+v", resp.Records)
	}
	if len(resp.Bitmaps) != 1 || resp.Bitmaps[0].Record != 4 || resp.Bitmaps[0].Width != 8 {
		t.Errorf("bitmaps = %+v", resp.Bitmaps)
	}

	w = s.do(t, http.MethodPost, "/api/v1/decode?format=text&code_page=437", []byte{0x9B, 0x0A})
	if w.Code != http.StatusOK || w.Body.String() != "¢\n" {
		t.Errorf("text response = %d %q", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodPost, "/api/v1/decode?format=text&code_page=0", []byte{0x9B, 0x0A})
	if w.Code != http.StatusOK || w.Body.String() != "<9B>\n" {
		t.Errorf("code page 0 response = %d %q", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodPost, "/api/v1/decode?device=toaster", stream)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad device status = %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", nil)
	var health HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusOK || health.Status != "healthy" || health.Checks["receipts"].Status != "healthy" {
		t.Errorf("health = %d %+v", w.Code, health)
	}
	if _, ok := health.Checks["database"]; ok {
		t.Error("database check reported without a database")
	}

	if w := s.do(t, http.MethodGet, "/ready", nil); w.Code != http.StatusOK {
		t.Errorf("ready status = %d", w.Code)
	}
}

func TestEventBusFanOut(t *testing.T) {
	bus := NewEventBus(zap.NewNop())
	go bus.Start()
	defer bus.Stop()

	a, b := bus.Subscribe(), bus.Subscribe()
	bus.Publish(model.NewReceiptEvent(model.EventReceiptDecoded, [16]byte{1}, "m", "HTTP", nil))

	for _, sub := range []<-chan *model.ReceiptEvent{a, b} {
		select {
		case ev := <-sub:
			if ev.EventType != model.EventReceiptDecoded {
				t.Errorf("event = %+v", ev)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("event not delivered")
		}
	}

	bus.Unsubscribe(a)
	if _, ok := <-a; ok {
		t.Error("unsubscribed channel still open")
	}
}

func TestClientWants(t *testing.T) {
	ev := model.NewReceiptEvent(model.EventOrderSent, [16]byte{}, "m-1", "SERIAL", nil)

	tests := []struct {
		name   string
		client *Client
		want   bool
	}{
		{"everything", &Client{}, true},
		{"same merchant", &Client{MerchantID: "m-1"}, true},
		{"other merchant", &Client{MerchantID: "m-2"}, false},
		{"subscribed", &Client{Subscriptions: map[model.EventType]bool{model.EventOrderSent: true}}, true},
		{"not subscribed", &Client{Subscriptions: map[model.EventType]bool{model.EventOrderFailed: true}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.client.Wants(ev); got != tt.want {
				t.Errorf("Wants() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://pos.example"})

	req := httptest.NewRequest(http.MethodGet, "http://svc.local/ws/receipts", nil)
	if !check(req) {
		t.Error("request without Origin rejected")
	}
	req.Header.Set("Origin", "https://pos.example")
	if !check(req) {
		t.Error("allowed origin rejected")
	}
	req.Header.Set("Origin", "https://evil.example")
	if check(req) {
		t.Error("foreign origin accepted")
	}
	req.Header.Set("Origin", "http://svc.local")
	if !check(req) {
		t.Error("same host origin rejected")
	}
}

type fakePorts struct{ ports []*discovery.Port }

func (f *fakePorts) ScanAll(context.Context) ([]*discovery.Port, error) { return f.ports, nil }

type fakeCapture struct{}

func (fakeCapture) Connected() bool { return true }
func (fakeCapture) BytesRead() int64 { return 42 }

func TestCaptureHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ports := &fakePorts{ports: []*discovery.Port{{Source: model.ReceiptSourceSerial, Name: "/dev/ttyUSB0", Printer: true}}}
	cfg := &config.CaptureConfig{Source: "serial", MerchantID: "m-1"}

	r := gin.New()
	h := NewCaptureHandler(ports, fakeCapture{}, cfg, zap.NewNop())
	r.GET("/ports", h.ListPorts)
	r.GET("/status", h.GetStatus)
	idle := NewCaptureHandler(ports, nil, cfg, zap.NewNop())
	r.GET("/idle", idle.GetStatus)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ports", nil))
	var found []discovery.Port
	decodeEnvelope(t, w, &found)
	if w.Code != http.StatusOK || len(found) != 1 || found[0].Name != "/dev/ttyUSB0" {
		t.Errorf("ports = %d %+v", w.Code, found)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	var status CaptureStatusResponse
	decodeEnvelope(t, w, &status)
	if !status.Enabled || !status.Connected || status.BytesRead != 42 || status.Source != "serial" {
		t.Errorf("status = %+v", status)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/idle", nil))
	status = CaptureStatusResponse{}
	decodeEnvelope(t, w, &status)
	if status.Enabled || status.Connected {
		t.Errorf("idle status = %+v", status)
	}
}
