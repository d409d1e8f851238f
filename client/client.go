package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/brunolapastina/rinha-de-backend-2025/config"
	"github.com/brunolapastina/rinha-de-backend-2025/model"
	"github.com/mailru/easyjson"
)

const (
	paymentsPath      = "/payments"
	serviceHealthPath = "/payments/service-health"
	purgePath         = "/admin/purge-payments"
	tokenHeader       = "X-Rinha-Token"

	maxErrorBody = 512
)

// ProcessorError reports a non 2xx answer from a payment processor.
type ProcessorError struct {
	Processor  model.Processor
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("%s processor %s returned %d: %s", e.Processor, e.Endpoint, e.StatusCode, e.Body)
}

// Client talks to one payment processor instance.
type Client struct {
	Processor model.Processor
	BaseUrl   string
	Token     string
	Client    *http.Client
}

func NewClient(processor model.Processor, cfg config.ProcessorConfig) *Client {
	transport := &http.Transport{
		MaxIdleConns:        2000,
		MaxIdleConnsPerHost: 2000,
		IdleConnTimeout:     90 * time.Second,
		DisableKeepAlives:   false,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 60 * time.Second,
		}).DialContext,
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	client := &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
	slog.Info("Payment processor client created", "processor", processor, "baseUrl", cfg.URL)
	return &Client{
		Processor: processor,
		BaseUrl:   cfg.URL,
		Token:     cfg.Token,
		Client:    client,
	}
}

// SendPayment posts one payment. Any transport error or non 2xx status is
// a failure.
func (c *Client) SendPayment(ctx context.Context, req model.ProcessorRequest) error {
	body, err := easyjson.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode payment: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseUrl+paymentsPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s processor %s: %w", c.Processor, paymentsPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(paymentsPath, resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) ServiceHealth(ctx context.Context) (model.ServiceHealthResponse, error) {
	var health model.ServiceHealthResponse

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseUrl+serviceHealthPath, nil)
	if err != nil {
		return health, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.Client.Do(httpReq)
	if err != nil {
		return health, fmt.Errorf("%s processor %s: %w", c.Processor, serviceHealthPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return health, c.statusError(serviceHealthPath, resp)
	}
	if err := easyjson.UnmarshalFromReader(resp.Body, &health); err != nil {
		return health, fmt.Errorf("failed to decode %s processor health: %w", c.Processor, err)
	}
	return health, nil
}

// PurgePayments asks the processor to forget every payment it processed.
func (c *Client) PurgePayments(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseUrl+purgePath, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set(tokenHeader, c.Token)

	resp, err := c.Client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s processor %s: %w", c.Processor, purgePath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(purgePath, resp)
	}
	return nil
}

func (c *Client) statusError(endpoint string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &ProcessorError{
		Processor:  c.Processor,
		Endpoint:   endpoint,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
}
