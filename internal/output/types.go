// Package output provides response types and formatters for confread output.
package output

// CheckResponse reports a successful load.
type CheckResponse struct {
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Members int    `json:"members,omitempty"` // top-level members of an object root
	Keys    int    `json:"keys"`
}

// KeysResponse lists leaf key paths.
type KeysResponse struct {
	Prefix string   `json:"prefix,omitempty"`
	Keys   []string `json:"keys"`
	Count  int      `json:"count"`
}

// ErrorResponse is the output when an error occurs.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code        string         `json:"code"`
	Message     string         `json:"message"`
	Suggestions []string       `json:"suggestions,omitempty"`
	Context     map[string]any `json:"context,omitempty"`
}
