// Package response writes JSON HTTP responses.
//
// Domain endpoints reply with their own payload shapes via JSON; error
// paths use the envelope helpers so every failure has the same structure.
package response

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Success writes a 200 response with the given payload.
func Success(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

// Created writes a 201 response with the given payload.
func Created(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusCreated, v)
}

// Error writes a JSON error envelope.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, envelope{Status: status, Message: message})
}

// ValidationError writes a 422 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	JSON(w, http.StatusUnprocessableEntity, envelope{
		Status:  http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// BadRequest writes a 400.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// Unauthorized writes a 401.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Unauthorized")
}

// NotFound writes a 404.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}
