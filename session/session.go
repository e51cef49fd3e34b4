// Package session holds the process-wide client identity that presenters
// read: the local client id, the id to display-name directory and who last
// killed the local ship.
package session

import "sync"

// Reader is the read-only view handed to ship presenters.
type Reader interface {
	LocalClientID() string
	DisplayName(id string) (string, bool)
	KilledBy() string
}

// State is written from network callbacks and read on the game loop, so
// every field is guarded by mu.
type State struct {
	mu       sync.RWMutex
	localID  string
	names    map[string]string
	killedBy string
}

func NewState() *State {
	return &State{names: make(map[string]string)}
}

func (s *State) LocalClientID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.localID
}

func (s *State) SetLocalClientID(id string) {
	s.mu.Lock()
	s.localID = id
	s.mu.Unlock()
}

// DisplayName looks up the name for id. The bool is false on a miss.
func (s *State) DisplayName(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	name, ok := s.names[id]
	return name, ok
}

func (s *State) SetName(id, name string) {
	s.mu.Lock()
	s.names[id] = name
	s.mu.Unlock()
}

// SetRoster replaces the whole directory.
func (s *State) SetRoster(names map[string]string) {
	fresh := make(map[string]string, len(names))
	for id, name := range names {
		fresh[id] = name
	}
	s.mu.Lock()
	s.names = fresh
	s.mu.Unlock()
}

func (s *State) KilledBy() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.killedBy
}

func (s *State) SetKilledBy(id string) {
	s.mu.Lock()
	s.killedBy = id
	s.mu.Unlock()
}

func (s *State) ClearKilledBy() {
	s.SetKilledBy("")
}
