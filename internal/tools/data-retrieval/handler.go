// internal/tools/data-retrieval/handler.go
package dataretrieval

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"suada-mcp/internal/common/errors"
	"suada-mcp/internal/common/logger"
	"suada-mcp/internal/extract"
	"suada-mcp/internal/suada"
)

const (
	ToolName    = "suada_data_retrieval"
	Description = "Retrieve specific data from a connected data source in Suada."
)

type Handler struct {
	client *suada.Client
	logger logger.Logger
}

func NewHandler(client *suada.Client, log logger.Logger) *Handler {
	return &Handler{
		client: client,
		logger: log.With(map[string]interface{}{"tool": ToolName}),
	}
}

func (h *Handler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	callID := uuid.NewString()
	log := h.logger.With(map[string]interface{}{"callId": callID})

	dataSource, err := request.RequireString("data_source")
	if err != nil {
		return failure(log, errors.NewValidationError("data_source is required")), nil
	}
	query, err := request.RequireString("query")
	if err != nil {
		return failure(log, errors.NewValidationError("query is required")), nil
	}

	log.Info("executing data retrieval tool", map[string]interface{}{
		"dataSource": dataSource,
		"query":      query,
	})

	// The data-source routing lives entirely in the synthesized instruction;
	// the client has no data-source-specific logic.
	result, err := h.client.Chat(ctx, suada.ChatPayload{
		Message:                fmt.Sprintf("Retrieve data from %s: %s", dataSource, query),
		ExternalUserIdentifier: request.GetString("user_identifier", ""),
	})
	if err != nil {
		return failure(log, err), nil
	}

	output := &Output{
		Data: responseText(result),
		Metadata: Metadata{
			Source: dataSource,
			Query:  query,
		},
	}

	data, err := json.Marshal(output)
	if err != nil {
		return failure(log, err), nil
	}

	log.Info("data retrieval tool execution successful", nil)
	return mcp.NewToolResultText(string(data)), nil
}

// responseText extracts the answer body from either response arm. Raw text
// prefers the <response> section and falls back to the whole blob when the
// tag is absent.
func responseText(result *suada.ChatResult) string {
	if result.Structured != nil {
		return result.Structured.Response
	}
	if section := extract.Section(result.Raw, "response"); section != "" {
		return section
	}
	return result.Raw
}

func failure(log logger.Logger, err error) *mcp.CallToolResult {
	log.WithError(err).Error("data retrieval tool execution failed", nil)
	return mcp.NewToolResultError(fmt.Sprintf("Failed to retrieve data: %s", errors.MessageOf(err)))
}
