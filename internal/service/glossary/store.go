package glossary

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/heartmarshall/katas-backend/internal/domain"
)

// missingFormat is the definition reported for terms that were never defined.
const missingFormat = "Can't find entry for %s"

// Store maps terms to definitions for the lifetime of the process.
// Terms are matched exactly: case and surrounding whitespace are significant.
// Store is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[string]string
	log     *slog.Logger
}

// NewStore creates a Store pre-populated with a copy of seed.
func NewStore(log *slog.Logger, seed map[string]string) *Store {
	entries := make(map[string]string, len(seed))
	for term, def := range seed {
		entries[term] = def
	}
	return &Store{
		entries: entries,
		log:     log.With("service", "glossary"),
	}
}

// Define inserts or overwrites the definition for term. Empty terms and
// definitions are accepted.
func (s *Store) Define(ctx context.Context, term, definition string) {
	s.mu.Lock()
	_, replaced := s.entries[term]
	s.entries[term] = definition
	s.mu.Unlock()

	s.log.DebugContext(ctx, "glossary term defined",
		slog.String("term", term),
		slog.Bool("replaced", replaced),
	)
}

// Lookup returns the definition for term, or "Can't find entry for <term>"
// when term has not been defined.
func (s *Store) Lookup(_ context.Context, term string) string {
	s.mu.RLock()
	def, ok := s.entries[term]
	s.mu.RUnlock()

	if !ok {
		return fmt.Sprintf(missingFormat, term)
	}
	return def
}

// Len reports the number of defined terms.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Entries returns a snapshot of all entries ordered by term.
func (s *Store) Entries() []domain.GlossaryEntry {
	s.mu.RLock()
	out := make([]domain.GlossaryEntry, 0, len(s.entries))
	for term, def := range s.entries {
		out = append(out, domain.GlossaryEntry{Term: term, Definition: def})
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Term < out[j].Term })
	return out
}
