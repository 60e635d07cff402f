// Package server implements the Lazarillo navigation server.
//
// One Session per connected client. The session owns the user's location,
// resolved destination, route and progress pointer, and processes inbound
// events strictly in arrival order while external lookups (destination
// resolution, geocoding, directions, translation) run under bounded
// timeouts. The Server is the connection registry: the only structure
// touched concurrently, guarded by its own lock.
package server

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

type Server struct {
	mtx      sync.RWMutex
	sessions map[string]*Session
	pipeline *Pipeline
}

// Default is the registry the HTTP handlers use. Wired in main.
var Default *Server

func New(p *Pipeline) *Server {
	return &Server{
		sessions: make(map[string]*Session),
		pipeline: p,
	}
}

// NewSession registers a fresh session and starts its event loop.
func (s *Server) NewSession() *Session {
	sess := &Session{
		ID:       uuid.New().String(),
		events:   make(chan *Event, maxPendingEvents),
		send:     make(chan *Response, 8),
		kill:     make(chan bool),
		pipeline: s.pipeline,
	}

	s.mtx.Lock()
	s.sessions[sess.ID] = sess
	s.mtx.Unlock()

	go sess.Run()

	log.Printf("[server] session %s connected", sess.ID)
	return sess
}

// Remove kills a session and drops it from the registry. Called on
// disconnect; the session's state dies with it.
func (s *Server) Remove(id string) {
	s.mtx.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mtx.Unlock()

	if !ok {
		return
	}

	close(sess.kill)
	log.Printf("[server] session %s disconnected", id)
}

// Get returns a session by id, or nil.
func (s *Server) Get(id string) *Session {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.sessions[id]
}

// Count returns the number of connected sessions.
func (s *Server) Count() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return len(s.sessions)
}
