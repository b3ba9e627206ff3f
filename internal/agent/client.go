package agent

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

// Client invokes a remote decision agent with a natural-language message
// and returns the service's success/failure envelope. A transport-level
// fault is an error; a Failure envelope is not.
type Client interface {
	Invoke(ctx context.Context, req InvokeRequest) (Envelope, error)
}

type InvokeRequest struct {
	Message   string
	AgentID   string
	UserID    string
	SessionID string
	Timeout   time.Duration
}

// Envelope is the discriminated response wrapper: exactly one of Response
// or Error is populated, discriminated by Success.
type Envelope struct {
	Success  bool            `json:"success"`
	Response json.RawMessage `json:"response,omitempty"`
	Error    string          `json:"error,omitempty"`
}

type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

type invokePayload struct {
	Message   string `json:"message"`
	AgentID   string `json:"agent_id"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

func (c *HTTPClient) Invoke(ctx context.Context, req InvokeRequest) (Envelope, error) {
	if req.AgentID == "" {
		return Envelope{}, fmt.Errorf("agent id is required")
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(invokePayload{
		Message:   req.Message,
		AgentID:   req.AgentID,
		UserID:    req.UserID,
		SessionID: req.SessionID,
	})
	if err != nil {
		return Envelope{}, err
	}

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return Envelope{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Envelope{}, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Envelope{}, err
	}

	var envelope Envelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return Envelope{}, fmt.Errorf("unable to parse decision service response: %w", err)
	}

	if resp.StatusCode >= 400 {
		if envelope.Error != "" {
			return Envelope{}, fmt.Errorf("decision service request failed: %s", envelope.Error)
		}
		return Envelope{}, fmt.Errorf("decision service request failed with status %d", resp.StatusCode)
	}

	return envelope, nil
}
