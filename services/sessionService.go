package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"promptmaster/services/builder"
	"promptmaster/services/quiz"

	"github.com/google/uuid"
)

// Session bundles the per-user workflows. Everything in it is transient;
// nothing survives a restart.
type Session struct {
	ID        string
	Builder   *builder.Service
	Quiz      *quiz.Service
	CreatedAt time.Time
}

// ModelClient is what each session's workflows talk to.
type ModelClient interface {
	builder.ModelClient
	quiz.ModelClient
}

type SessionService struct {
	client ModelClient

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionService(client ModelClient) *SessionService {
	return &SessionService{
		client:   client,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session with a fresh builder and quiz workflow.
func (s *SessionService) Create() *Session {
	session := &Session{
		ID:        uuid.New().String(),
		Builder:   builder.NewService(s.client),
		Quiz:      quiz.NewService(s.client),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	log.Printf("[INFO] Created session %s", session.ID)
	return session
}

// Get looks up a session by id.
func (s *SessionService) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session not found: %s", id)
	}
	return session, nil
}
