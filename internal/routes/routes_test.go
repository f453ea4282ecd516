package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"escpos-service/internal/config"
	"escpos-service/internal/discovery"
	"escpos-service/internal/repository"
	"escpos-service/internal/service"
	"escpos-service/pkg/escpos"
)

func TestSetupRouter(t *testing.T) {
	decoder, err := escpos.New(escpos.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{
		App:      config.AppConfig{Name: "escpos-service", Environment: "test"},
		Server:   config.ServerConfig{MaxBodyBytes: 1 << 20},
		Security: config.SecurityConfig{AllowedOrigins: []string{"*"}},
	}
	repo := repository.NewMemoryRepository()
	svc := service.NewReceiptService(decoder, repo, nil, nil, cfg, zap.NewNop())

	router := NewRouter(cfg, zap.NewNop(), nil, repo, svc, nil, discovery.NewManager(zap.NewNop()), nil).SetupRouter()

	tests := []struct {
		method string
		path   string
		body   []byte
		code   int
	}{
		{http.MethodGet, "/live", nil, http.StatusOK},
		{http.MethodGet, "/health", nil, http.StatusOK},
		{http.MethodGet, "/ready", nil, http.StatusOK},
		{http.MethodPost, "/api/v1/receipts/m-1", []byte("hi\n"), http.StatusCreated},
		{http.MethodGet, "/api/v1/receipts", nil, http.StatusOK},
		{http.MethodPost, "/api/v1/decode", []byte("hi\n"), http.StatusOK},
		{http.MethodPost, "/receipt/create/m-1", []byte("hi\n"), http.StatusOK},
		{http.MethodGet, "/api/v1/capture/status", nil, http.StatusOK},
		{http.MethodGet, "/api/v1/capture/ports", nil, http.StatusOK},
		{http.MethodGet, "/docs", nil, http.StatusMovedPermanently},
		{http.MethodGet, "/ws/receipts", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, bytes.NewReader(tt.body)))
			if w.Code != tt.code {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.code, w.Body.String())
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Error("request id header missing")
			}
		})
	}
}
