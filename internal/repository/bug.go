package repository

import (
	"context"

	"bugtracker/internal/model"
)

// BugRepository holds bug records for the lifetime of the process.
// Implementations keep insertion order and never mutate or remove a stored record.
type BugRepository interface {
	// List returns every stored bug in insertion order.
	// The returned slice is a copy; an empty store yields an empty, non-nil slice.
	List(ctx context.Context) ([]model.Bug, error)

	// Append stores bug at the tail and returns a copy of the stored record.
	Append(ctx context.Context, bug model.Bug) (*model.Bug, error)

	// Len reports how many bugs are stored.
	Len(ctx context.Context) int
}
