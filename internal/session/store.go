package session

import (
	"sort"

	"github.com/atomicstack/player-remote-control/internal/logging/events"
)

// Teardown releases a session's external resources (timers) before the
// store drops its entry.
type Teardown func(*Session)

// Store is the registry of connected sessions, keyed by session ID. It
// references sessions but does not own their lifetime beyond disconnect:
// Remove runs the teardown and forgets the entry.
type Store struct {
	sessions map[string]*Session
	order    []string
	teardown Teardown
}

// NewStore creates an empty session registry. teardown may be nil.
func NewStore(teardown Teardown) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		teardown: teardown,
	}
}

// Add registers a session on client connect.
func (st *Store) Add(s *Session) {
	if s == nil {
		return
	}
	if _, ok := st.sessions[s.ID]; !ok {
		st.order = append(st.order, s.ID)
	}
	st.sessions[s.ID] = s
	events.Session.Connect(s.ID, s.Name)
}

// Get looks up a session by ID.
func (st *Store) Get(id string) (*Session, bool) {
	s, ok := st.sessions[id]
	return s, ok
}

// Remove tears down and forgets a session on client disconnect.
func (st *Store) Remove(id string) {
	s, ok := st.sessions[id]
	if !ok {
		return
	}
	if st.teardown != nil {
		st.teardown(s)
	}
	delete(st.sessions, id)
	for i, oid := range st.order {
		if oid == id {
			st.order = append(st.order[:i], st.order[i+1:]...)
			break
		}
	}
	events.Session.Disconnect(id)
}

// Len returns the number of connected sessions.
func (st *Store) Len() int {
	return len(st.sessions)
}

// IDs returns the session IDs in connect order.
func (st *Store) IDs() []string {
	ids := make([]string, len(st.order))
	copy(ids, st.order)
	return ids
}

// Names returns the session names sorted alphabetically.
func (st *Store) Names() []string {
	names := make([]string, 0, len(st.sessions))
	for _, s := range st.sessions {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}
