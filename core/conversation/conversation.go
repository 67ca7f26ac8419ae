package conversation

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/manasdev/duochat/providers/ai"
)

// ErrThreadNotFound is returned when a message is appended to a thread id
// that does not exist in the session state.
var ErrThreadNotFound = errors.New("conversation: thread not found")

// Thread is a named, ordered conversation within a session. The id is an
// opaque token generated at creation time.
type Thread struct {
	ID       string       `json:"id"`
	Messages []ai.Message `json:"messages"`
}

// State holds one session's threads and active-thread pointer. Go maps do
// not preserve insertion order, so an ordered id slice accompanies the map;
// the two are kept in lockstep under the mutex.
type State struct {
	mu       sync.RWMutex
	threads  map[string]*Thread
	order    []string
	activeID string
}

// NewState returns an empty session state: no threads, no active thread.
func NewState() *State {
	return &State{
		threads: map[string]*Thread{},
	}
}

// NewThread inserts a fresh empty thread, makes it active, and returns its id.
func (s *State) NewThread() string {
	id := uuid.NewString()

	s.mu.Lock()
	s.threads[id] = &Thread{ID: id, Messages: []ai.Message{}}
	s.order = append(s.order, id)
	s.activeID = id
	s.mu.Unlock()

	return id
}

// EnsureActive returns the active thread id, creating a fresh thread first
// when none is active. This covers the first query of a session, where the
// user has not explicitly started a chat.
func (s *State) EnsureActive() string {
	s.mu.RLock()
	id := s.activeID
	_, exists := s.threads[id]
	s.mu.RUnlock()

	if id != "" && exists {
		return id
	}
	return s.NewThread()
}

// SwitchTo sets the active thread. It reports false and leaves the state
// untouched when the id is unknown, so stale links degrade silently.
func (s *State) SwitchTo(threadID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.threads[threadID]; !ok {
		return false
	}
	s.activeID = threadID
	return true
}

// Append adds a message to the end of the named thread. The sequence is
// append-only; there is no way to reorder or delete committed turns.
func (s *State) Append(threadID string, message ai.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread, ok := s.threads[threadID]
	if !ok {
		return ErrThreadNotFound
	}
	thread.Messages = append(thread.Messages, message)
	return nil
}

// ThreadIDs returns all thread ids in insertion order.
func (s *State) ThreadIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// ActiveID returns the active thread id, or "" when none is active.
func (s *State) ActiveID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

// Active returns a copy of the active thread, or nil when none is active.
func (s *State) Active() *Thread {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyThread(s.activeID)
}

// Thread returns a copy of the named thread, or nil when the id is unknown.
func (s *State) Thread(threadID string) *Thread {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyThread(threadID)
}

// copyThread returns an independent copy of the thread. Callers must hold
// at least a read lock.
func (s *State) copyThread(id string) *Thread {
	thread, ok := s.threads[id]
	if !ok {
		return nil
	}
	out := &Thread{ID: thread.ID, Messages: make([]ai.Message, len(thread.Messages))}
	copy(out.Messages, thread.Messages)
	return out
}

// Store maps session ids to their State. Sessions are created lazily on
// first access and live until the process exits; expiry is the transport
// layer's concern.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*State
}

// NewStore returns an empty, ready-to-use session store.
func NewStore() *Store {
	return &Store{
		sessions: map[string]*State{},
	}
}

// GetOrCreate returns the state bound to sessionID, initializing an empty
// one on first access.
func (st *Store) GetOrCreate(sessionID string) *State {
	st.mu.Lock()
	defer st.mu.Unlock()

	state, ok := st.sessions[sessionID]
	if !ok {
		state = NewState()
		st.sessions[sessionID] = state
	}
	return state
}
