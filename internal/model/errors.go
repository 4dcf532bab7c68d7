package model

// FieldError is a single field-scoped failure.
type FieldError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

// ErrorResponse is the body of every 400 response.
type ErrorResponse struct {
	ErrorsMessages []FieldError `json:"errorsMessages"`
}
