package dataretrieval

// GetInputSchema returns the JSON schema published for tool discovery and
// enforced before dispatch.
func GetInputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"data_source": map[string]interface{}{
				"type":        "string",
				"description": "The name of the data source to query",
			},
			"query": map[string]interface{}{
				"type":        "string",
				"description": "The query to execute against the data source",
			},
			"user_identifier": map[string]interface{}{
				"type":        "string",
				"description": "External user identifier to attribute the request to (optional)",
			},
		},
		"required": []string{"data_source", "query"},
	}
}

func GetOutputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"data": map[string]interface{}{
				"type":        "string",
				"description": "The retrieved data",
			},
			"metadata": map[string]interface{}{
				"type":        "object",
				"description": "Source and query the data was retrieved with",
				"properties": map[string]interface{}{
					"source": map[string]interface{}{"type": "string"},
					"query":  map[string]interface{}{"type": "string"},
				},
			},
		},
	}
}
