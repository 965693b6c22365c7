package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/creditpilot/credit-wizard/pkg/model"
	"github.com/creditpilot/credit-wizard/pkg/parser"
)

// Client talks to a remote agent service over HTTP. Each call is a single
// POST with no retries; the response body is free-form text expected to
// contain a JSON payload.
type Client struct {
	baseURL string
	apiKey  string
	userID  string
	client  *http.Client
}

type invokeRequest struct {
	UserID    string `json:"user_id"`
	AgentID   string `json:"agent_id"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

func NewClient(baseURL, apiKey, userID string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		userID:  userID,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *Client) Invoke(ctx context.Context, agentID, message string) (*model.AgentResponse, error) {
	// Fresh correlation id per call; uniqueness within a session is all
	// that is needed.
	body := invokeRequest{
		UserID:    c.userID,
		AgentID:   agentID,
		SessionID: uuid.NewString(),
		Message:   message,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/agents/invoke", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContactFailed, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrContactFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrContactFailed, resp.StatusCode)
	}

	raw, ok := parser.Parse(string(respBytes))
	if !ok {
		return nil, fmt.Errorf("%w: no JSON found in response", ErrBadPayload)
	}
	return normalize(raw), nil
}

// normalize shapes recovered JSON into the response envelope. A body that
// already is an envelope is used as-is; a bare record is wrapped with
// confidence zero.
func normalize(raw json.RawMessage) *model.AgentResponse {
	var envelope model.AgentResponse
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Result) > 0 {
		if envelope.Metadata == nil {
			envelope.Metadata = map[string]any{}
		}
		return &envelope
	}
	return &model.AgentResponse{
		Result:   raw,
		Metadata: map[string]any{},
	}
}
