package services

import "sync"

// SuggestionKind names the two generators.
type SuggestionKind string

const (
	KindTheme    SuggestionKind = "theme"
	KindSequence SuggestionKind = "sequence"
)

// ResultStore holds the last displayed suggestion per operator session,
// with explicit clear semantics. Clearing discards the displayed result
// only; the persisted suggestion log row is untouched.
type ResultStore struct {
	mu      sync.RWMutex
	results map[string]map[SuggestionKind]string
}

// NewResultStore creates an empty result store.
func NewResultStore() *ResultStore {
	return &ResultStore{
		results: make(map[string]map[SuggestionKind]string),
	}
}

// Get returns the stored suggestion for a session and kind.
func (s *ResultStore) Get(sessionID string, kind SuggestionKind) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.results[sessionID][kind]
	return text, ok
}

// Set stores a suggestion for a session and kind, replacing any previous
// result.
func (s *ResultStore) Set(sessionID string, kind SuggestionKind, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.results[sessionID] == nil {
		s.results[sessionID] = make(map[SuggestionKind]string)
	}
	s.results[sessionID][kind] = text
}

// Clear discards the stored suggestion for a session and kind.
func (s *ResultStore) Clear(sessionID string, kind SuggestionKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.results[sessionID], kind)
	if len(s.results[sessionID]) == 0 {
		delete(s.results, sessionID)
	}
}
