// internal/suada/client.go
package suada

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"suada-mcp/internal/common/config"
	"suada-mcp/internal/common/errors"
	httpclient "suada-mcp/internal/common/http"
	"suada-mcp/internal/common/logger"
)

const userAgent = "SuadaMCP/1.0 Go"

// Client issues chat requests against the Suada API. It performs exactly one
// attempt per call: no retries, no circuit breaking.
type Client struct {
	apiKey            string
	baseURL           string
	defaultIdentifier string
	httpClient        *httpclient.Client
	logger            logger.Logger
}

func NewClient(cfg config.SuadaConfig, log logger.Logger) *Client {
	return &Client{
		apiKey:            cfg.APIKey,
		baseURL:           strings.TrimRight(cfg.BaseURL, "/"),
		defaultIdentifier: cfg.ExternalUserIdentifier,
		httpClient:        httpclient.NewClient(cfg.Timeout),
		logger:            log.With(map[string]interface{}{"component": "suada-client"}),
	}
}

func (c *Client) headers() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + c.apiKey,
		"Accept":        "application/json",
		"User-Agent":    userAgent,
	}
}

// Chat sends one chat request and resolves the dual response shape into a
// ChatResult. All guards run before any network I/O.
func (c *Client) Chat(ctx context.Context, payload ChatPayload) (*ChatResult, error) {
	if strings.TrimSpace(payload.Message) == "" {
		return nil, errors.NewValidationError("message is required")
	}

	if payload.ExternalUserIdentifier == "" {
		payload.ExternalUserIdentifier = c.defaultIdentifier
	}
	if payload.ExternalUserIdentifier == "" {
		return nil, errors.NewValidationError("User identifier is required. Provide it in the request or during initialization.")
	}

	if payload.Context == nil {
		payload.Context = map[string]interface{}{}
	}

	c.logger.Info("sending chat request", map[string]interface{}{
		"message": payload.Message,
	})

	resp, err := c.httpClient.PostJSON(ctx, c.baseURL+"/chat", c.headers(), payload)
	if err != nil {
		c.logger.WithError(err).Error("chat request failed", nil)
		return nil, errors.NewTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp errorBody
		_ = json.Unmarshal(body, &errResp)
		c.logger.Error("chat request rejected", map[string]interface{}{
			"status":  resp.StatusCode,
			"message": errResp.Message,
		})
		return nil, errors.NewSuadaAPIError(resp.StatusCode, errResp.Message)
	}

	return decodeResult(body), nil
}

// decodeResult resolves which API variant answered. A JSON object becomes the
// structured arm; a JSON string or anything undecodable becomes the raw arm.
// Malformed upstream bodies degrade to raw text rather than failing the call.
func decodeResult(body []byte) *ChatResult {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return &ChatResult{Raw: ""}
	}

	switch trimmed[0] {
	case '{':
		var structured ChatResponse
		if err := json.Unmarshal([]byte(trimmed), &structured); err == nil {
			return &ChatResult{Structured: &structured}
		}
	case '"':
		var raw string
		if err := json.Unmarshal([]byte(trimmed), &raw); err == nil {
			return &ChatResult{Raw: raw}
		}
	}

	return &ChatResult{Raw: trimmed}
}
