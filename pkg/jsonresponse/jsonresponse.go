// Package jsonresponse enables consistent responses across all handlers.
package jsonresponse

import "github.com/go-playground/validator/v10"

// jsonError provides type for explicit json encoded error response.
type jsonError struct {
	Error string `json:"error"`
}

// Error wraps a given err into json frinedly struct.
func Error(err error) jsonError {
	return jsonError{Error: err.Error()}
}

// Message wraps a plain string into the same error envelope.
func Message(msg string) jsonError {
	return jsonError{Error: msg}
}

// BindErrorMsg renders the first field violation of a binding error.
func BindErrorMsg(ve validator.ValidationErrors) string {
	field := ve[0]

	switch field.Tag() {
	case "required":
		return field.Field() + " field is required"
	case "jarkind":
		return field.Field() + " field must be one of spend, save, give"
	case "min":
		return field.Field() + " field must be at least " + field.Param()
	case "max":
		return field.Field() + " field must be at most " + field.Param()
	}

	return field.Field() + " field is invalid"
}
