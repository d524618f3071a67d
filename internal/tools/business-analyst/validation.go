package businessanalyst

// GetInputSchema returns the JSON schema published for tool discovery and
// enforced before dispatch.
func GetInputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "The business question to analyze",
			},
			"user_identifier": map[string]interface{}{
				"type":        "string",
				"description": "External user identifier to attribute the request to (optional)",
			},
		},
		"required": []string{"query"},
	}
}

func GetOutputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"response": map[string]interface{}{
				"type":        "string",
				"description": "The business analysis response",
			},
			"metrics": map[string]interface{}{
				"type":        "object",
				"description": "Key metrics extracted from the analysis",
			},
			"insights": map[string]interface{}{
				"type":        "array",
				"description": "List of key insights from the analysis",
				"items":       map[string]interface{}{"type": "string"},
			},
			"recommendations": map[string]interface{}{
				"type":        "array",
				"description": "List of recommendations based on the analysis",
				"items":       map[string]interface{}{"type": "string"},
			},
			"risks": map[string]interface{}{
				"type":        "array",
				"description": "List of potential risks identified in the analysis",
				"items":       map[string]interface{}{"type": "string"},
			},
		},
	}
}
