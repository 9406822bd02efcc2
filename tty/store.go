package tty

import (
	"sync"

	"github.com/wader/ttyline/termios"
)

// ModeStore remembers the mode each resource had before it was put in raw
// mode. An entry exists exactly while its resource is raw.
type ModeStore struct {
	mu    sync.Mutex
	modes map[ResourceID]termios.Mode
}

func NewModeStore() *ModeStore {
	return &ModeStore{modes: map[ResourceID]termios.Mode{}}
}

func (s *ModeStore) Get(id ResourceID) (termios.Mode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.modes[id]
	return m, ok
}

// Take removes and returns the entry for id.
func (s *ModeStore) Take(id ResourceID) (termios.Mode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.modes[id]
	delete(s.modes, id)
	return m, ok
}

func (s *ModeStore) Set(id ResourceID, m termios.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modes[id] = m
}

func (s *ModeStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.modes)
}
