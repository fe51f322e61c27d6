// Package apierror provides the error bodies returned to API clients.
// Handlers never put driver or database messages in a body; anything
// unexpected becomes InternalError.
package apierror

// APIError is the envelope for every 4xx/5xx response except 422.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// InternalError is the body of every 500 response.
var InternalError = New("Internal server error")

// FieldError locates one schema problem. Loc starts with where the value
// came from: "body", "path" or "query".
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError is the 422 body.
type ValidationError struct {
	Detail []FieldError `json:"detail"`
}

func NewValidation(fields ...FieldError) *ValidationError {
	if fields == nil {
		fields = []FieldError{}
	}
	return &ValidationError{Detail: fields}
}
