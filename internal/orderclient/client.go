// internal/orderclient/client.go
package orderclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"escpos-service/internal/config"
	"escpos-service/internal/model"
)

// OrderTimeLayout is the timestamp format the order API expects
const OrderTimeLayout = "02.01.2006 15:04:05"

// ErrOrderRejected is returned when the order API answers with a non-2xx status
var ErrOrderRejected = errors.New("order rejected by order api")

// Client posts parsed orders to the order ingestion API
type Client struct {
	baseURL       string
	authorization string
	placeUUID     string
	httpClient    *http.Client
	logger        *zap.Logger
}

// New creates an order API client
func New(cfg *config.OrderAPIConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		authorization: cfg.Authorization,
		placeUUID:     cfg.PlaceUUID,
		httpClient:    &http.Client{Timeout: timeout},
		logger:        logger.With(zap.String("component", "orderclient")),
	}
}

type toppingBody struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

type itemBody struct {
	ID       string        `json:"id"`
	PosID    int           `json:"posId"`
	Name     string        `json:"name"`
	Quantity int           `json:"quantity"`
	Price    int64         `json:"price"`
	Toppings []toppingBody `json:"toppings"`
}

// Form builds the form body for an order; amounts are integer cents
func (c *Client) Form(order *model.Order) (url.Values, error) {
	form := url.Values{}
	form.Set("merchantId", order.MerchantID)
	form.Set("placeUuid", c.placeUUID)
	form.Set("orderTime", order.OrderTime.Format(OrderTimeLayout))
	form.Set("billAmount", strconv.FormatInt(model.Cents(order.BillAmount), 10))

	for i, item := range order.Items {
		body := itemBody{
			ID:       uuid.NewString(),
			PosID:    i + 1,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    model.Cents(item.Price),
			Toppings: make([]toppingBody, 0, len(item.Toppings)),
		}
		for _, t := range item.Toppings {
			body.Toppings = append(body.Toppings, toppingBody{
				Name:     t.Name,
				Quantity: t.Quantity,
				Price:    model.Cents(t.Price),
			})
		}
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode item %d: %w", i, err)
		}
		form.Set(fmt.Sprintf("items[%d]", i), string(data))
	}
	return form, nil
}

// Send posts the order; a non-2xx answer wraps ErrOrderRejected
func (c *Client) Send(ctx context.Context, order *model.Order) error {
	form, err := c.Form(order)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/order/test", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if c.authorization != "" {
		req.Header.Set("Authorization", c.authorization)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send order: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	fields := []zap.Field{
		zap.String("merchant_id", order.MerchantID),
		zap.Int("status", resp.StatusCode),
		zap.Int("items", len(order.Items)),
		zap.Duration("duration", time.Since(start)),
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Order API rejected order", append(fields, zap.ByteString("response", body))...)
		return fmt.Errorf("%w: status %d: %s", ErrOrderRejected, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	c.logger.Info("Order sent", fields...)
	return nil
}
