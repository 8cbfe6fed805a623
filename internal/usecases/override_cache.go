package usecases

import (
	"sync"

	"github.com/google/uuid"
)

// OverrideCache records an admin's moderation decisions for the lifetime of
// their session, so list screens reflect a decision immediately even when the
// durable write is still settling or partially failed. The approved and
// rejected sets are mutually exclusive: marking one side removes the user
// from the other.
//
// This cache is deliberately process-local and unshared; it mirrors one
// admin's view, not global state.
type OverrideCache struct {
	mu       sync.Mutex
	approved map[uuid.UUID]struct{}
	rejected map[uuid.UUID]struct{}
}

// NewOverrideCache creates an empty override cache
func NewOverrideCache() *OverrideCache {
	return &OverrideCache{
		approved: make(map[uuid.UUID]struct{}),
		rejected: make(map[uuid.UUID]struct{}),
	}
}

// MarkApproved records an approval, clearing any prior rejection
func (c *OverrideCache) MarkApproved(userID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.rejected, userID)
	c.approved[userID] = struct{}{}
}

// MarkRejected records a rejection, clearing any prior approval
func (c *OverrideCache) MarkRejected(userID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.approved, userID)
	c.rejected[userID] = struct{}{}
}

// Forget drops the user from both sets
func (c *OverrideCache) Forget(userID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.approved, userID)
	delete(c.rejected, userID)
}

// OverridesFor returns the session overrides recorded for a user
func (c *OverrideCache) OverridesFor(userID uuid.UUID) SessionOverrides {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, approved := c.approved[userID]
	_, rejected := c.rejected[userID]
	return SessionOverrides{Approved: approved, Rejected: rejected}
}

// Len reports the number of users with a recorded override
func (c *OverrideCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.approved) + len(c.rejected)
}
