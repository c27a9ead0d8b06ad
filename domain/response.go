package domain

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}
