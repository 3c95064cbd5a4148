// SPDX-License-Identifier: MIT
//
// File: handler.go
// Role: routes and JSON handlers.

// Package api exposes pathboard sessions over HTTP: JSON commands and queries
// under /v1 and a websocket stream of session events for a browser canvas.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/pathboard/builder"
	"github.com/katalvlaran/pathboard/core"
	"github.com/katalvlaran/pathboard/dijkstra"
	"github.com/katalvlaran/pathboard/editor"
	"github.com/katalvlaran/pathboard/internal/ctxlog"
	"github.com/katalvlaran/pathboard/session"
)

// SessionHeader selects the session a request applies to. Requests without
// it use the hub's default session. Every response echoes the resolved id.
// The websocket endpoint also accepts the id as the "session" query parameter.
const SessionHeader = "X-Pathboard-Session"

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 64 << 10

// Handler holds all HTTP handler dependencies.
type Handler struct {
	hub      *Hub
	log      *slog.Logger
	mux      *http.ServeMux
	upgrader websocket.Upgrader
}

// New creates an HTTP handler and registers all routes.
func New(hub *Hub, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	h := &Handler{
		hub: hub,
		log: log,
		mux: http.NewServeMux(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}

	h.mux.HandleFunc("POST /v1/sessions", h.createSession)
	h.mux.HandleFunc("DELETE /v1/sessions/{id}", h.deleteSession)
	h.mux.HandleFunc("GET /v1/graph", h.graph)
	h.mux.HandleFunc("POST /v1/mode", h.setMode)
	h.mux.HandleFunc("POST /v1/weight", h.setWeight)
	h.mux.HandleFunc("POST /v1/click", h.click)
	h.mux.HandleFunc("POST /v1/preset", h.preset)
	h.mux.HandleFunc("POST /v1/run", h.startRun)
	h.mux.HandleFunc("GET /v1/run", h.runState)
	h.mux.HandleFunc("GET /v1/result", h.result)
	h.mux.HandleFunc("GET /v1/paths", h.paths)
	h.mux.HandleFunc("POST /v1/reset", h.reset)
	h.mux.HandleFunc("GET /v1/events", h.events)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return loggingMiddleware(log, h.mux)
}

// session resolves the target session and echoes its id.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := r.Header.Get(SessionHeader)
	if id == "" {
		id = r.URL.Query().Get("session")
	}
	s, err := h.hub.Lookup(id)
	if err != nil {
		writeFailure(w, err)
		return nil, false
	}
	w.Header().Set(SessionHeader, s.ID())

	return s, true
}

// decode reads a JSON body of at most maxBodyBytes into v, answering 413
// when the body is too large and 400 on any other failure.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return false
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return false
	}

	return true
}

// graphResponse is the editing state of a session.
type graphResponse struct {
	Session string        `json:"session"`
	Mode    editor.Mode   `json:"mode"`
	Weight  int64         `json:"weight"`
	Running bool          `json:"running"`
	Graph   core.Snapshot `json:"graph"`
}

func describe(s *session.Session) graphResponse {
	return graphResponse{
		Session: s.ID(),
		Mode:    s.Mode(),
		Weight:  s.Weight(),
		Running: s.Running(),
		Graph:   s.Graph(),
	}
}

// POST /v1/sessions: create a session.
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	s := h.hub.Create()
	ctxlog.FromContext(r.Context()).Info("session created", slog.String("session", s.ID()))
	w.Header().Set(SessionHeader, s.ID())
	writeJSON(w, http.StatusCreated, describe(s))
}

// DELETE /v1/sessions/{id}: close a session.
func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.hub.Remove(r.PathValue("id")); err != nil {
		writeFailure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /v1/graph: nodes, edges, mode and weight.
func (h *Handler) graph(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, describe(s))
}

// POST /v1/mode: {"mode": "idle" | "add_node" | "add_edge"}.
func (h *Handler) setMode(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req struct {
		Mode string `json:"mode"`
	}
	if !decode(w, r, &req) {
		return
	}
	m, err := editor.ParseMode(req.Mode)
	if err != nil {
		writeFailure(w, err)
		return
	}
	s.SetMode(m)
	writeJSON(w, http.StatusOK, map[string]interface{}{"mode": m})
}

// POST /v1/weight: {"weight": "12"} or {"weight": 12}; coerced like form input.
func (h *Handler) setWeight(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req struct {
		Weight json.RawMessage `json:"weight"`
	}
	if !decode(w, r, &req) {
		return
	}
	eff := s.SetWeight(rawWeight(req.Weight))
	writeJSON(w, http.StatusOK, map[string]interface{}{"weight": eff})
}

// rawWeight returns a JSON string's content or a JSON number's text.
func rawWeight(msg json.RawMessage) string {
	var str string
	if err := json.Unmarshal(msg, &str); err == nil {
		return str
	}

	return string(msg)
}

// POST /v1/click: {"x": 120, "y": 80}.
func (h *Handler) click(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req builder.Point
	if !decode(w, r, &req) {
		return
	}
	out, err := s.Click(r.Context(), req.X, req.Y)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// POST /v1/preset: a builder.Spec such as {"name": "grid", "n": 3, "m": 4}.
func (h *Handler) preset(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var spec builder.Spec
	if !decode(w, r, &spec) {
		return
	}
	con, opts, err := spec.Resolve()
	if err != nil {
		writeFailure(w, err)
		return
	}
	if err := s.ApplyPreset(r.Context(), opts, con); err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, describe(s))
}

// runResponse acknowledges an accepted run.
type runResponse struct {
	RunID string            `json:"run_id"`
	State dijkstra.Snapshot `json:"state"`
}

// POST /v1/run: {"start": 0}; the first step is taken before the response.
func (h *Handler) startRun(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req struct {
		Start *int `json:"start"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Start == nil {
		writeError(w, http.StatusBadRequest, "start is required")
		return
	}
	id, err := s.Run(r.Context(), *req.Start)
	if err != nil {
		writeFailure(w, err)
		return
	}
	snap, _ := s.RunSnapshot()
	writeJSON(w, http.StatusAccepted, runResponse{RunID: id, State: snap})
}

// GET /v1/run: state of the latest run.
func (h *Handler) runState(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	snap, ok := s.RunSnapshot()
	if !ok {
		writeError(w, http.StatusNotFound, "no run")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// GET /v1/result[?format=text]: report of the latest finished run.
func (h *Handler) result(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	res, err := s.Result()
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeResult(w, r, res)
}

// GET /v1/paths?start=N[&format=text]: instant shortest paths from N.
func (h *Handler) paths(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	start, err := strconv.Atoi(r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "start must be an integer node id")
		return
	}
	res, err := s.Paths(start)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeResult(w, r, res)
}

// writeResult renders res as JSON, or as the text report when format=text.
func writeResult(w http.ResponseWriter, r *http.Request, res *dijkstra.Result) {
	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_ = res.WriteText(w)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// POST /v1/reset: cancel the run and clear the canvas.
func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := s.Reset(r.Context()); err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, describe(s))
}

// GET /healthz: always 200 (liveness probe).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"sessions": h.hub.Len(),
	})
}
