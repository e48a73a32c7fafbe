package memory

import (
	"context"
	"sync"

	"bugtracker/internal/model"
	"bugtracker/internal/repository"
)

// BugMemory is an in-memory implementation of repository.BugRepository.
// Handlers run on many goroutines, so every access goes through mu.
type BugMemory struct {
	mu   sync.RWMutex
	bugs []model.Bug
}

// NewBugMemory creates an empty BugMemory store.
func NewBugMemory() *BugMemory {
	return &BugMemory{bugs: make([]model.Bug, 0)}
}

var _ repository.BugRepository = (*BugMemory)(nil)

// List returns a snapshot of the stored bugs.
func (r *BugMemory) List(_ context.Context) ([]model.Bug, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Bug, len(r.bugs))
	copy(out, r.bugs)
	return out, nil
}

// Append adds bug to the end of the sequence.
func (r *BugMemory) Append(_ context.Context, bug model.Bug) (*model.Bug, error) {
	r.mu.Lock()
	r.bugs = append(r.bugs, bug)
	r.mu.Unlock()

	out := bug
	return &out, nil
}

// Len reports how many bugs are stored.
func (r *BugMemory) Len(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bugs)
}
