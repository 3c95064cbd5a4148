// SPDX-License-Identifier: MIT
//
// File: stream.go
// Role: websocket event stream with lag resync.

package api

import (
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/pathboard/internal/ctxlog"
	"github.com/katalvlaran/pathboard/session"
)

const (
	streamBuffer   = 128
	writeWait      = 5 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxClientFrame = 512
)

// GET /v1/events: websocket stream of session events as JSON text frames.
//
// The first frame is a graph_changed event carrying the current graph. Session
// listeners run under the session lock, so events are handed over through a
// buffered channel and never block the session. When the buffer overflows the
// stream drops events and, once drained, sends a full resync (graph_changed
// plus step_advanced with the run state) so the client converges.
func (h *Handler) events(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	log := ctxlog.FromContextOr(r.Context(), h.log).With(slog.String("session", s.ID()))

	conn, err := h.upgrader.Upgrade(w, r, http.Header{SessionHeader: []string{s.ID()}})
	if err != nil {
		log.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	queue := make(chan session.Event, streamBuffer)
	var lagged atomic.Bool
	unsubscribe := s.Subscribe(func(ev session.Event) {
		select {
		case queue <- ev:
		default:
			lagged.Store(true)
		}
	})
	defer unsubscribe()

	closed := make(chan struct{})
	go readPump(conn, closed)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	if err := writeResync(conn, s, false); err != nil {
		return
	}
	log.Debug("event stream opened")

	for {
		select {
		case ev := <-queue:
			if err := writeEvent(conn, ev); err != nil {
				log.Debug("event stream write failed", slog.String("error", err.Error()))
				return
			}
			if len(queue) == 0 && lagged.Swap(false) {
				log.Warn("event stream lagged; resyncing")
				if err := writeResync(conn, s, true); err != nil {
					return
				}
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-closed:
			log.Debug("event stream closed by client")
			return
		}
	}
}

// readPump discards client frames, keeps the read deadline fresh on pongs and
// closes done when the connection ends.
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	conn.SetReadLimit(maxClientFrame)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeEvent(conn *websocket.Conn, ev session.Event) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))

	return conn.WriteJSON(ev)
}

// writeResync sends the current graph and, when withRun is set and a run
// exists, its latest state.
func writeResync(conn *websocket.Conn, s *session.Session, withRun bool) error {
	snap := s.Graph()
	if err := writeEvent(conn, session.Event{Kind: session.GraphChanged, Session: s.ID(), Graph: &snap}); err != nil {
		return err
	}
	if !withRun {
		return nil
	}
	state, ok := s.RunSnapshot()
	if !ok {
		return nil
	}

	return writeEvent(conn, session.Event{Kind: session.StepAdvanced, Session: s.ID(), State: &state})
}
