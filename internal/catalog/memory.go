// Package catalog stores the activity catalog in memory. The catalog lives for
// the lifetime of the process and is reseeded on restart.
package catalog

import (
	"context"
	"sync"

	"example.com/signup/internal/domain"
	"example.com/signup/internal/observability"
)

// InMemoryCatalog maps activity names to their rosters. All mutations run
// under a single lock acquisition so the capacity invariant cannot be raced.
type InMemoryCatalog struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewInMemoryCatalog constructs a catalog populated with the seed activities.
func NewInMemoryCatalog() *InMemoryCatalog {
	c := &InMemoryCatalog{}
	c.install(seedActivities())
	return c
}

func (c *InMemoryCatalog) install(activities map[string]domain.Activity) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.activities = activities
	for name, activity := range c.activities {
		observability.SetParticipants(name, len(activity.Participants))
	}
}

// List returns a deep copy of the catalog keyed by activity name.
func (c *InMemoryCatalog) List(ctx context.Context) (map[string]domain.Activity, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]domain.Activity, len(c.activities))
	for name, activity := range c.activities {
		roster := make([]string, len(activity.Participants))
		copy(roster, activity.Participants)
		activity.Participants = roster
		out[name] = activity
	}
	return out, nil
}

// AddParticipant appends email to the named activity's roster.
func (c *InMemoryCatalog) AddParticipant(ctx context.Context, activityName, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	activity, ok := c.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return domain.ErrAlreadyRegistered
	}
	if activity.IsFull() {
		return domain.ErrActivityFull
	}

	activity.Participants = append(activity.Participants, email)
	c.activities[activityName] = activity
	observability.SetParticipants(activityName, len(activity.Participants))
	return nil
}

// RemoveParticipant removes email from the named activity's roster, keeping
// the remaining participants in signup order.
func (c *InMemoryCatalog) RemoveParticipant(ctx context.Context, activityName, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	activity, ok := c.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}

	idx := -1
	for i, participant := range activity.Participants {
		if participant == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrParticipantNotFound
	}

	activity.Participants = append(activity.Participants[:idx], activity.Participants[idx+1:]...)
	c.activities[activityName] = activity
	observability.SetParticipants(activityName, len(activity.Participants))
	return nil
}

// Reset reinstalls the seed catalog, discarding all signups.
func (c *InMemoryCatalog) Reset(ctx context.Context) error {
	c.install(seedActivities())
	return nil
}
