package fiber

import (
	"sync"

	"github.com/google/uuid"

	"nola-analytics/internal/explorer/core/usecase"
)

// ControllerFactory builds a fresh controller for a new dashboard session.
type ControllerFactory func() *usecase.Controller

// SessionRegistry keys live dashboard controllers by session ID. One session
// corresponds to one open dashboard page.
type SessionRegistry struct {
	factory ControllerFactory

	mu       sync.RWMutex
	sessions map[string]*usecase.Controller
}

func NewSessionRegistry(factory ControllerFactory) *SessionRegistry {
	return &SessionRegistry{
		factory:  factory,
		sessions: make(map[string]*usecase.Controller),
	}
}

// Create registers a new controller and returns its session ID.
func (r *SessionRegistry) Create() (string, *usecase.Controller) {
	id := uuid.NewString()
	ctrl := r.factory()

	r.mu.Lock()
	r.sessions[id] = ctrl
	r.mu.Unlock()

	return id, ctrl
}

// Get looks up a live session.
func (r *SessionRegistry) Get(id string) (*usecase.Controller, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctrl, ok := r.sessions[id]
	return ctrl, ok
}

// Delete drops a session, typically when the page closes.
func (r *SessionRegistry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
