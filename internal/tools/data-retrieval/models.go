package dataretrieval

// Output is the terminal result returned to the tool caller.
type Output struct {
	Data     string   `json:"data"`
	Metadata Metadata `json:"metadata"`
}

// Metadata echoes back which source was queried and with what.
type Metadata struct {
	Source string `json:"source"`
	Query  string `json:"query"`
}
