// Package client runs a love calculation the way the web form does: score
// locally, show the result, then save it through the HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a single save request.
const DefaultTimeout = 10 * time.Second

// SaveRequest is the body of POST /api/calculate.
type SaveRequest struct {
	YourName             string `json:"yourName"`
	YourAge              int    `json:"yourAge"`
	CrushName            string `json:"crushName"`
	CalculatedPercentage int    `json:"calculatedPercentage"`
}

// API talks to a lovecalc server.
type API struct {
	baseURL string
	client  *http.Client
}

// NewAPI creates a client for the server at baseURL.
func NewAPI(baseURL string, timeout time.Duration) *API {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type messageBody struct {
	Message     string `json:"message"`
	ErrorDetail string `json:"errorDetail"`
}

// Save posts req. Non-2xx answers are returned as *SaveError.
func (a *API) Save(ctx context.Context, req SaveRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/calculate", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %w", ErrConnection, err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var msg messageBody
	_ = json.Unmarshal(body, &msg)
	if msg.Message == "" {
		msg.Message = http.StatusText(resp.StatusCode)
	}
	return &SaveError{Status: resp.StatusCode, Message: msg.Message, Detail: msg.ErrorDetail}
}
