// Package respond holds the JSON response envelope shared by all handlers.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type successResponse struct {
	Result any `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

// OK writes a 200 response with the result envelope.
func OK(w http.ResponseWriter, result any) {
	writeJSON(w, http.StatusOK, successResponse{Result: result})
}

// Created writes a 201 response with the result envelope.
func Created(w http.ResponseWriter, result any) {
	writeJSON(w, http.StatusCreated, successResponse{Result: result})
}

// Fail writes an error response with the given status.
func Fail(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
