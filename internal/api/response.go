// SPDX-License-Identifier: MIT
//
// File: response.go
// Role: JSON responses and error status mapping.

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/katalvlaran/pathboard/builder"
	"github.com/katalvlaran/pathboard/core"
	"github.com/katalvlaran/pathboard/dijkstra"
	"github.com/katalvlaran/pathboard/editor"
	"github.com/katalvlaran/pathboard/session"
)

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the standard error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeFailure maps a domain error onto its HTTP status.
func writeFailure(w http.ResponseWriter, err error) {
	writeError(w, statusFor(err), err.Error())
}

// statusFor maps sentinel errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrDuplicateEdge),
		errors.Is(err, session.ErrRunInProgress):
		return http.StatusConflict
	case errors.Is(err, dijkstra.ErrInvalidStart),
		errors.Is(err, dijkstra.ErrNegativeWeight),
		errors.Is(err, session.ErrEmptyGraph),
		errors.Is(err, core.ErrLoopNotAllowed),
		errors.Is(err, core.ErrNegativeWeight),
		errors.Is(err, core.ErrNodeNotFound),
		errors.Is(err, builder.ErrTooFewVertices),
		errors.Is(err, builder.ErrInvalidSpec):
		return http.StatusUnprocessableEntity
	case errors.Is(err, builder.ErrUnknownPreset),
		errors.Is(err, editor.ErrUnknownMode),
		errors.Is(err, ErrBadSessionID):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNoResult),
		errors.Is(err, ErrUnknownSession):
		return http.StatusNotFound
	case errors.Is(err, session.ErrClosed):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}
