// SPDX-License-Identifier: MIT
//
// File: hub.go
// Role: registry of live sessions.

package api

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathboard/session"
)

// ErrUnknownSession is returned when a session id does not name a live session.
var ErrUnknownSession = errors.New("api: unknown session")

// ErrBadSessionID is returned when a session id is not a UUID.
var ErrBadSessionID = errors.New("api: malformed session id")

// Hub owns the sessions served over HTTP. One default session always exists
// and serves requests that carry no session header.
type Hub struct {
	mu       sync.RWMutex
	factory  func() *session.Session
	def      *session.Session
	sessions map[string]*session.Session
}

// NewHub creates a hub whose sessions are built by factory.
func NewHub(factory func() *session.Session) *Hub {
	def := factory()

	return &Hub{
		factory:  factory,
		def:      def,
		sessions: map[string]*session.Session{def.ID(): def},
	}
}

// Default returns the default session.
func (h *Hub) Default() *session.Session { return h.def }

// Create builds and registers a new session.
func (h *Hub) Create() *session.Session {
	s := h.factory()

	h.mu.Lock()
	h.sessions[s.ID()] = s
	h.mu.Unlock()

	return s
}

// Lookup resolves id. The empty id selects the default session.
func (h *Hub) Lookup(id string) (*session.Session, error) {
	if id == "" {
		return h.def, nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrBadSessionID
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.sessions[id]
	if !ok {
		return nil, ErrUnknownSession
	}

	return s, nil
}

// Remove closes and forgets the session id. The default session cannot be removed.
func (h *Hub) Remove(id string) error {
	s, err := h.Lookup(id)
	if err != nil {
		return err
	}
	if s == h.def {
		return ErrUnknownSession
	}

	h.mu.Lock()
	delete(h.sessions, id)
	h.mu.Unlock()

	return s.Close()
}

// Each calls fn for every live session.
func (h *Hub) Each(fn func(*session.Session)) {
	h.mu.RLock()
	list := make([]*session.Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		list = append(list, s)
	}
	h.mu.RUnlock()

	for _, s := range list {
		fn(s)
	}
}

// Len returns the number of live sessions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.sessions)
}

// Close closes every session.
func (h *Hub) Close() {
	h.Each(func(s *session.Session) { _ = s.Close() })
}
