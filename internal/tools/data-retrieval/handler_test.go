// internal/tools/data-retrieval/handler_test.go
package dataretrieval

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suada-mcp/internal/common/config"
	"suada-mcp/internal/common/logger"
	"suada-mcp/internal/suada"
)

func newTestHandler(t *testing.T, baseURL string) *Handler {
	client := suada.NewClient(config.SuadaConfig{
		APIKey:                 "test-key",
		BaseURL:                baseURL,
		ExternalUserIdentifier: "default-user",
		Timeout:                5 * time.Second,
	}, logger.NewTestLogger(t))
	return NewHandler(client, logger.NewTestLogger(t))
}

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = ToolName
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestHandle_SynthesizedMessage(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"response":"$4.2M across 310 invoices"}`))
	}))
	defer srv.Close()

	handler := newTestHandler(t, srv.URL)
	result, err := handler.Handle(context.Background(), callRequest(map[string]interface{}{
		"data_source": "stripe",
		"query":       "total revenue last month",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	assert.Equal(t, "Retrieve data from stripe: total revenue last month", gotBody["message"])

	var out Output
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Equal(t, "$4.2M across 310 invoices", out.Data)
	assert.Equal(t, "stripe", out.Metadata.Source)
	assert.Equal(t, "total revenue last month", out.Metadata.Query)
}

func TestHandle_RawTextUsesResponseSection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<response>42 open tickets</response><metrics>open: 42</metrics>"))
	}))
	defer srv.Close()

	handler := newTestHandler(t, srv.URL)
	result, err := handler.Handle(context.Background(), callRequest(map[string]interface{}{
		"data_source": "zendesk",
		"query":       "open tickets",
	}))
	require.NoError(t, err)

	var out Output
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Equal(t, "42 open tickets", out.Data)
}

func TestHandle_RawTextWithoutTagsPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("42 open tickets"))
	}))
	defer srv.Close()

	handler := newTestHandler(t, srv.URL)
	result, err := handler.Handle(context.Background(), callRequest(map[string]interface{}{
		"data_source": "zendesk",
		"query":       "open tickets",
	}))
	require.NoError(t, err)

	var out Output
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Equal(t, "42 open tickets", out.Data)
}

func TestHandle_RawTextWithOtherTagsButNoResponseSection(t *testing.T) {
	const blob = "<metrics>open: 42</metrics>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(blob))
	}))
	defer srv.Close()

	handler := newTestHandler(t, srv.URL)
	result, err := handler.Handle(context.Background(), callRequest(map[string]interface{}{
		"data_source": "zendesk",
		"query":       "open tickets",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var out Output
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Equal(t, blob, out.Data)
}

func TestHandle_APIErrorBecomesToolError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"pipeline offline"}`))
	}))
	defer srv.Close()

	handler := newTestHandler(t, srv.URL)
	result, err := handler.Handle(context.Background(), callRequest(map[string]interface{}{
		"data_source": "stripe",
		"query":       "total revenue",
	}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Equal(t, "Failed to retrieve data: pipeline offline", resultText(t, result))
}

func TestHandle_MissingParameters(t *testing.T) {
	handler := newTestHandler(t, "http://localhost:1")

	result, err := handler.Handle(context.Background(), callRequest(map[string]interface{}{
		"query": "total revenue",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "Failed to retrieve data: data_source is required", resultText(t, result))

	result, err = handler.Handle(context.Background(), callRequest(map[string]interface{}{
		"data_source": "stripe",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "Failed to retrieve data: query is required", resultText(t, result))
}
