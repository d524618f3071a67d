package businessanalyst

// Output is the terminal result returned to the tool caller.
type Output struct {
	Response        string            `json:"response"`
	Metrics         map[string]string `json:"metrics"`
	Insights        []string          `json:"insights"`
	Recommendations []string          `json:"recommendations"`
	Risks           []string          `json:"risks"`
}
