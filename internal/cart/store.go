// internal/cart/store.go
package cart

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type session struct {
	mu       sync.Mutex
	state    State
	lastSeen time.Time
}

// Store owns one cart per session id. Dispatches on the same session are
// serialized; different sessions never share state.
type Store struct {
	sessions map[string]*session
	mtx      sync.Mutex
	idleTTL  time.Duration
	now      func() time.Time
}

func NewStore(idleTTL time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*session),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

func (s *Store) getSession(id string) *session {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	sess, exists := s.sessions[id]
	if !exists {
		sess = &session{state: State{Items: []LineItem{}}}
		s.sessions[id] = sess
	}
	sess.lastSeen = s.now()
	return sess
}

// Get returns the session's current cart. Unknown sessions start empty.
func (s *Store) Get(id string) State {
	sess := s.getSession(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.state
}

// Dispatch reduces op against the session's cart and stores the result.
func (s *Store) Dispatch(id string, op Operation) (State, error) {
	return s.Update(id, func(current State) (State, error) {
		return Reduce(current, op)
	})
}

// Update runs fn with the session locked and stores its result unless fn
// fails. Other dispatches on the session wait until fn returns.
func (s *Store) Update(id string, fn func(State) (State, error)) (State, error) {
	sess := s.getSession(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	next, err := fn(sess.state)
	if err != nil {
		return sess.state, err
	}
	sess.state = next
	return next, nil
}

func (s *Store) Len() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return len(s.sessions)
}

// Evict drops sessions not seen for longer than the idle TTL and returns how
// many were removed.
func (s *Store) Evict() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	cutoff := s.now().Add(-s.idleTTL)
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RunJanitor evicts idle sessions every interval until ctx is done.
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Evict(); n > 0 {
				logrus.WithFields(logrus.Fields{
					"evicted":   n,
					"remaining": s.Len(),
				}).Debug("Evicted idle cart sessions")
			}
		}
	}
}
