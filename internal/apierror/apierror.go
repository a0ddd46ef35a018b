// Package apierror defines the JSON envelopes the API uses for every 4xx/5xx
// response. The PWA always reads the `error` key; SQL, driver and stack
// details stay in the server logs.
package apierror

// APIError is the single-message envelope: `{"error": "..."}`.
type APIError struct {
	Error string `json:"error"`
}

// New wraps a client-safe message in the envelope.
func New(msg string) *APIError { return &APIError{Error: msg} }

// ValidationError adds the field→tag map produced by the validator.
type ValidationError struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Error: "Error de validacion", Fields: fields}
}
