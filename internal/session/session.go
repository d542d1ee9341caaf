package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vancomm/minefield/internal/minefield"
)

var (
	ErrNotFound  = errors.New("session not found")
	ErrForbidden = errors.New("session token does not match")
)

// Session owns one minefield for its lifetime. All access to the field
// goes through Do.
type Session struct {
	ID        uuid.UUID
	Seed      uint64
	StartedAt time.Time

	mu    sync.Mutex
	field *minefield.Minefield
}

func (s *Session) Do(fn func(m *minefield.Minefield) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.field)
}

type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	tokens   *Tokens
	now      func() time.Time
}

func NewStore(tokens *Tokens) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		tokens:   tokens,
		now:      time.Now,
	}
}

// Create generates a new field and returns its session along with the
// owner token that authorizes mutations.
func (st *Store) Create(p minefield.Params, seed uint64) (*Session, string, error) {
	field, err := minefield.GenerateSeeded(p, seed)
	if err != nil {
		return nil, "", err
	}
	return st.add(field, seed)
}

// Import registers a previously exported field as a new session.
func (st *Store) Import(field *minefield.Minefield) (*Session, string, error) {
	return st.add(field, 0)
}

func (st *Store) add(field *minefield.Minefield, seed uint64) (*Session, string, error) {
	s := &Session{
		ID:        uuid.New(),
		Seed:      seed,
		StartedAt: st.now().UTC(),
		field:     field,
	}
	token, err := st.tokens.Issue(s.ID, s.StartedAt)
	if err != nil {
		return nil, "", err
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	return s, token, nil
}

func (st *Store) Get(id uuid.UUID) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Authorize checks the owner token and then fetches the session. Callers
// without a valid token for id cannot tell whether it exists.
func (st *Store) Authorize(id uuid.UUID, token string) (*Session, error) {
	if err := st.tokens.Verify(token, id); err != nil {
		return nil, err
	}
	return st.Get(id)
}

// Live reports whether s is still held by the store. Deleted and swept
// sessions are not.
func (st *Store) Live(s *Session) bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[s.ID] == s
}

func (st *Store) Delete(id uuid.UUID) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(st.sessions, id)
	return nil
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops sessions started more than ttl before now and returns how
// many were removed.
func (st *Store) Sweep(now time.Time, ttl time.Duration) (n int) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for id, s := range st.sessions {
		if now.Sub(s.StartedAt) > ttl {
			delete(st.sessions, id)
			n++
		}
	}
	return
}
