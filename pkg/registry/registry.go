// pkg/registry/registry.go
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"suada-mcp/internal/common/logger"
	"suada-mcp/internal/common/metrics"
	"suada-mcp/internal/common/validation"
)

// HandlerFunc is the signature every tool handler implements.
type HandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

type entry struct {
	definition Definition
	handler    HandlerFunc
}

// ToolRegistry holds the static set of tools and wires them onto an MCP
// server. Registration order is preserved for discovery.
type ToolRegistry struct {
	entries []entry
	logger  logger.Logger
}

func New(log logger.Logger) *ToolRegistry {
	return &ToolRegistry{
		logger: log.With(map[string]interface{}{"component": "registry"}),
	}
}

func (r *ToolRegistry) Register(def Definition, handler HandlerFunc) {
	r.entries = append(r.entries, entry{definition: def, handler: handler})
}

// Definitions returns the registered tool definitions in registration order.
func (r *ToolRegistry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.entries))
	for _, e := range r.entries {
		defs = append(defs, e.definition)
	}
	return defs
}

// BuildTool renders a definition into the wire tool advertised to hosts,
// carrying both the input and output schemas.
func BuildTool(def Definition) (mcp.Tool, error) {
	rawInput, err := json.Marshal(def.InputSchema)
	if err != nil {
		return mcp.Tool{}, fmt.Errorf("failed to marshal input schema for %s: %w", def.Name, err)
	}

	tool := mcp.NewToolWithRawSchema(def.Name, def.Description, rawInput)

	if def.OutputSchema != nil {
		rawOutput, err := json.Marshal(def.OutputSchema)
		if err != nil {
			return mcp.Tool{}, fmt.Errorf("failed to marshal output schema for %s: %w", def.Name, err)
		}
		tool.RawOutputSchema = rawOutput
	}

	return tool, nil
}

// RegisterAll publishes every tool onto the MCP server, wrapping each handler
// with schema validation and call metrics.
func (r *ToolRegistry) RegisterAll(s *server.MCPServer) error {
	for _, e := range r.entries {
		tool, err := BuildTool(e.definition)
		if err != nil {
			return err
		}
		s.AddTool(tool, r.wrap(e))

		r.logger.Info("registered tool", map[string]interface{}{
			"name": e.definition.Name,
		})
	}
	return nil
}

// wrap enforces the propagation policy: every per-call failure becomes a
// structured error result, never an uncaught failure past the tool boundary.
func (r *ToolRegistry) wrap(e entry) server.ToolHandlerFunc {
	name := e.definition.Name

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		metrics.ToolCallsTotal.WithLabelValues(name).Inc()
		defer func() {
			metrics.ToolCallDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		}()

		vr, err := validation.ValidateArguments(request.GetArguments(), e.definition.InputSchema)
		if err != nil {
			metrics.ToolCallFailures.WithLabelValues(name, "VALIDATION_FAILED").Inc()
			return mcp.NewToolResultError(fmt.Sprintf("Invalid arguments: %v", err)), nil
		}
		if !vr.Valid {
			metrics.ToolCallFailures.WithLabelValues(name, "VALIDATION_FAILED").Inc()
			return mcp.NewToolResultError(fmt.Sprintf("Invalid arguments: %s", strings.Join(vr.GetErrorMessages(), "; "))), nil
		}

		result, err := e.handler(ctx, request)
		if err != nil {
			// Handlers report failures through error results; an error here
			// means something unexpected escaped, and the host still gets a
			// well-formed result.
			metrics.ToolCallFailures.WithLabelValues(name, "UNEXPECTED").Inc()
			r.logger.WithError(err).Error("tool handler returned unexpected error", map[string]interface{}{
				"name": name,
			})
			return mcp.NewToolResultError(err.Error()), nil
		}
		if result != nil && result.IsError {
			metrics.ToolCallFailures.WithLabelValues(name, "TOOL_ERROR").Inc()
		}
		return result, nil
	}
}
