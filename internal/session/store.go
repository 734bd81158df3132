package session

import (
	"context"
	"time"
)

// DefaultTTL bounds how long partial fragments survive without activity.
// The original intake flow never expired sessions, which let stale
// fragments bleed into unrelated conversations from the same address.
const DefaultTTL = 15 * time.Minute

// Store is the session-scoped accumulator the extraction engine merges
// address fragments into. Implementations must apply the monotonic
// set-only-if-empty rule atomically per sub-field.
type Store interface {
	// Merge applies a fragment for the session and returns the state after
	// the merge. Merging into an unknown session creates it.
	Merge(ctx context.Context, sessionID string, part Part, value string) (PartialAddress, error)
	// Get returns the current state and whether the session exists.
	Get(ctx context.Context, sessionID string) (PartialAddress, bool, error)
	// Clear drops the session's accumulated state. Called once a
	// sufficient address has been returned to the caller.
	Clear(ctx context.Context, sessionID string) error
}
