package notes

import (
	"sync"

	"github.com/cbodonnell/hanabi/pkg/log"
)

type InMemoryStore struct {
	lock     sync.RWMutex
	notes    map[int]string
	lastNote string
	editing  int
	isOpen   bool
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		notes: make(map[int]string),
	}
}

func (s *InMemoryStore) SetNote(order int, text string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if text == "" {
		delete(s.notes, order)
	} else {
		s.notes[order] = text
	}
	s.lastNote = text
	log.Debug("Set note on card %d to %q", order, text)
}

func (s *InMemoryStore) Note(order int) (string, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	text, ok := s.notes[order]
	return text, ok
}

func (s *InMemoryStore) LastNoteText() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.lastNote
}

func (s *InMemoryStore) OpenEditor(order int) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.editing = order
	s.isOpen = true
}

func (s *InMemoryStore) CloseEditor() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.isOpen = false
}

func (s *InMemoryStore) Editing() (int, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.editing, s.isOpen
}

func (s *InMemoryStore) All() map[int]string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	copy := make(map[int]string, len(s.notes))
	for k, v := range s.notes {
		copy[k] = v
	}
	return copy
}
