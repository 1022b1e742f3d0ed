package fetch

// RequestConfig describes one call.
type RequestConfig struct {
	// Method defaults to GET when empty.
	Method Method `json:"method,omitempty"`
	// Params go to the query string or the body depending on Method.
	Params *Params `json:"params,omitempty"`
	// Credential adds a single header.
	Credential *Credential `json:"credential,omitempty"`
}

// DefaultConfig is the config merged under any call without a method.
func DefaultConfig() RequestConfig {
	return RequestConfig{Method: MethodGet}
}

// Merge combines configs left to right. A later non-zero field replaces the
// earlier one; zero fields never clear a value.
func Merge(configs ...RequestConfig) RequestConfig {
	var out RequestConfig
	for _, c := range configs {
		if c.Method != "" {
			out.Method = c.Method
		}
		if c.Params != nil {
			out.Params = c.Params
		}
		if c.Credential != nil {
			out.Credential = c.Credential
		}
	}
	return out
}
