package ports

import (
	"context"
	"errors"
	"sync"
)

// ErrAlreadyConnected is returned when Establish is called on a connected Session.
var ErrAlreadyConnected = errors.New("session already established")

// DialFunc opens a connection to the controller.
type DialFunc func(ctx context.Context) (Backend, error)

// Session holds the single shared Backend reference.
// It is established at most once, typically at startup, and never reassigned.
// Handlers borrow the Backend; closing it is the adapter's business.
type Session struct {
	mu      sync.RWMutex
	backend Backend
}

// NewSession returns an unset Session.
func NewSession() *Session {
	return &Session{}
}

// NewConnectedSession wraps an already-connected Backend.
func NewConnectedSession(b Backend) *Session {
	return &Session{backend: b}
}

// Establish dials the controller once. On failure the Session stays unset and
// the dial error is returned; there is no automatic reconnection.
func (s *Session) Establish(ctx context.Context, dial DialFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend != nil {
		return ErrAlreadyConnected
	}
	b, err := dial(ctx)
	if err != nil {
		return err
	}
	s.backend = b
	return nil
}

// Backend returns the connected Backend, or nil when the Session is unset.
func (s *Session) Backend() Backend {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backend
}

// Connected reports whether a Backend is available.
func (s *Session) Connected() bool {
	return s.Backend() != nil
}
