// pkg/registry/schema.go
package registry

// Definition describes one tool as published to the invoking host.
type Definition struct {
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	InputSchema  map[string]interface{} `json:"inputSchema"`
	OutputSchema map[string]interface{} `json:"outputSchema,omitempty"`
}
