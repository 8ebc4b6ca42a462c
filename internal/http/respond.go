// Package http provides the JSON API server for the tracker.
//
// This file implements a builder for the response envelope shared by all
// endpoints: {"success": bool, "message": string, ...}. Handlers compose a
// response fluently and write it once.

package http

import (
	"encoding/json"
	"net/http"
)

// JSONResponseBuilder provides a fluent API for building envelope responses.
type JSONResponseBuilder struct {
	statusCode int
	success    bool
	message    string
	data       any
	dataKey    string
	errors     map[string]bool
	headers    map[string]string
}

// NewJSONResponse creates a new response builder with default 200 status.
func NewJSONResponse() *JSONResponseBuilder {
	return &JSONResponseBuilder{
		statusCode: http.StatusOK,
		success:    true,
		headers:    make(map[string]string),
	}
}

// Status sets the HTTP status code for the response.
func (b *JSONResponseBuilder) Status(code int) *JSONResponseBuilder {
	b.statusCode = code
	return b
}

// Success sets the success flag of the envelope.
func (b *JSONResponseBuilder) Success(ok bool) *JSONResponseBuilder {
	b.success = ok
	return b
}

// Message sets the human-readable message of the envelope.
func (b *JSONResponseBuilder) Message(msg string) *JSONResponseBuilder {
	b.message = msg
	return b
}

// Data attaches a payload under the given key.
func (b *JSONResponseBuilder) Data(key string, v any) *JSONResponseBuilder {
	b.dataKey = key
	b.data = v
	return b
}

// FieldErrors attaches a per-field error map for validation failures.
func (b *JSONResponseBuilder) FieldErrors(errs map[string]bool) *JSONResponseBuilder {
	b.errors = errs
	return b
}

// Header adds a custom header to the response.
func (b *JSONResponseBuilder) Header(name, value string) *JSONResponseBuilder {
	b.headers[name] = value
	return b
}

// Write sends the built response to the http.ResponseWriter.
func (b *JSONResponseBuilder) Write(w http.ResponseWriter) {
	for name, value := range b.headers {
		w.Header().Set(name, value)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	envelope := map[string]any{
		"success": b.success,
	}
	if b.message != "" {
		envelope["message"] = b.message
	}
	if b.dataKey != "" {
		envelope[b.dataKey] = b.data
	}
	if len(b.errors) > 0 {
		envelope["errors"] = b.errors
	}

	w.WriteHeader(b.statusCode)
	_ = json.NewEncoder(w).Encode(envelope)
}

// ErrorResponse creates a standard error response with the given status.
func ErrorResponse(statusCode int, message string) *JSONResponseBuilder {
	return NewJSONResponse().
		Status(statusCode).
		Success(false).
		Message(message)
}

// BadRequestError creates a 400 Bad Request error response.
func BadRequestError(message string) *JSONResponseBuilder {
	return ErrorResponse(http.StatusBadRequest, message)
}

// UnprocessableEntityError creates a 422 Unprocessable Entity error response.
func UnprocessableEntityError(message string) *JSONResponseBuilder {
	return ErrorResponse(http.StatusUnprocessableEntity, message)
}

// BadGatewayError creates a 502 Bad Gateway error response.
func BadGatewayError(message string) *JSONResponseBuilder {
	return ErrorResponse(http.StatusBadGateway, message)
}

// InternalServerError creates a 500 Internal Server Error response.
func InternalServerError(message string) *JSONResponseBuilder {
	return ErrorResponse(http.StatusInternalServerError, message)
}

// ServiceUnavailableError creates a 503 Service Unavailable error response.
func ServiceUnavailableError(message string) *JSONResponseBuilder {
	return ErrorResponse(http.StatusServiceUnavailable, message)
}

// MethodNotAllowedError creates a 405 Method Not Allowed error response.
func MethodNotAllowedError(allowedMethods string) *JSONResponseBuilder {
	return ErrorResponse(http.StatusMethodNotAllowed, "method not allowed").
		Header("Allow", allowedMethods)
}
