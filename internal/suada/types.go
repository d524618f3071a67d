// internal/suada/types.go
package suada

// ChatPayload is the request body for POST /chat.
type ChatPayload struct {
	Message                string                 `json:"message"`
	ExternalUserIdentifier string                 `json:"externalUserIdentifier,omitempty"`
	Context                map[string]interface{} `json:"context"`
	ConversationID         string                 `json:"conversationId,omitempty"`
}

// ChatResponse is the structured shape some Suada API variants answer with.
// Every field is optional on the wire.
type ChatResponse struct {
	Response        string            `json:"response"`
	Metrics         map[string]string `json:"metrics"`
	Insights        []string          `json:"insights"`
	Recommendations []string          `json:"recommendations"`
	Risks           []string          `json:"risks"`
	Reasoning       string            `json:"reasoning"`
}

// ChatResult is the tagged union resolved once at the API-response boundary:
// exactly one of Structured or Raw is populated. Raw carries the free-text
// variant whose sections are tag-delimited.
type ChatResult struct {
	Structured *ChatResponse
	Raw        string
}

// errorBody is the best-effort shape of a non-2xx response body.
type errorBody struct {
	Message string `json:"message"`
}
