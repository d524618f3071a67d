// internal/tools/business-analyst/handler.go
package businessanalyst

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
	ToolName    = "suada_business_analyst"
	Description = "Get business insights and analysis from Suada AI. Input should be a specific business question."
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

	query, err := request.RequireString("query")
	if err != nil {
		return failure(log, errors.NewValidationError("query is required")), nil
	}

	log.Info("executing business analyst tool", map[string]interface{}{
		"query": query,
	})

	result, err := h.client.Chat(ctx, suada.ChatPayload{
		Message:                query,
		ExternalUserIdentifier: request.GetString("user_identifier", ""),
	})
	if err != nil {
		return failure(log, err), nil
	}

	output := buildOutput(result)

	data, err := json.Marshal(output)
	if err != nil {
		return failure(log, err), nil
	}

	log.Info("business analyst tool execution successful", nil)
	return mcp.NewToolResultText(string(data)), nil
}

// buildOutput assembles the tool result from either response arm. Structured
// fields pass through verbatim; raw text goes through the section extractor.
func buildOutput(result *suada.ChatResult) *Output {
	if result.Structured != nil {
		out := &Output{
			Response:        result.Structured.Response,
			Metrics:         result.Structured.Metrics,
			Insights:        result.Structured.Insights,
			Recommendations: result.Structured.Recommendations,
			Risks:           result.Structured.Risks,
		}
		if out.Metrics == nil {
			out.Metrics = map[string]string{}
		}
		if out.Insights == nil {
			out.Insights = []string{}
		}
		if out.Recommendations == nil {
			out.Recommendations = []string{}
		}
		if out.Risks == nil {
			out.Risks = []string{}
		}
		return out
	}

	return &Output{
		Response:        extract.Section(result.Raw, "response"),
		Metrics:         extract.Metrics(result.Raw),
		Insights:        extract.List(result.Raw, "insights"),
		Recommendations: extract.List(result.Raw, "recommendations"),
		Risks:           extract.List(result.Raw, "risks"),
	}
}

func failure(log logger.Logger, err error) *mcp.CallToolResult {
	log.WithError(err).Error("business analyst tool execution failed", nil)
	return mcp.NewToolResultError(fmt.Sprintf("Failed to get business insights: %s", errors.MessageOf(err)))
}
