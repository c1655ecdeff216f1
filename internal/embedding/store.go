// ABOUTME: Session-scoped append-only store of embedded chunks
// ABOUTME: Passed by reference to ranking; replaces a process-wide global
package embedding

import (
	"sync"

	"github.com/harper/doctalk/internal/models"
)

// Store collects embedded chunks for the lifetime of one session. Entries are
// appended once and never mutated; readers rank over a snapshot.
type Store struct {
	mu     sync.Mutex
	chunks []models.EmbeddedChunk
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{}
}

// Append adds one embedded chunk in insertion order.
func (s *Store) Append(chunk models.EmbeddedChunk) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = append(s.chunks, chunk)
}

// Snapshot returns a copy of the current contents. Appends that land after
// the snapshot is taken are simply not ranked by the in-flight operation.
func (s *Store) Snapshot() []models.EmbeddedChunk {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.EmbeddedChunk, len(s.chunks))
	copy(out, s.chunks)
	return out
}

// Len reports the number of stored chunks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.chunks)
}
