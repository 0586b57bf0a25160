// Package guard serializes capacity-affecting operations per event.
//
// The confirmed-seat count is read, compared against the limit and written
// back as separate storage calls; without a critical section two concurrent
// requests for the last seat both pass the check. The guard keys a one-slot
// semaphore by event id so that check-and-write sequences for the same event
// never overlap, while different events proceed independently.
package guard

import (
	"context"
	"sync"
)

type slot struct {
	sem  chan struct{}
	refs int
}

type EventGuard struct {
	mu    sync.Mutex
	slots map[string]*slot
}

func New() *EventGuard {
	return &EventGuard{slots: make(map[string]*slot)}
}

// Acquire takes the slot for eventID, blocking until it is free or ctx is
// done. On success it returns a release func that must be called exactly
// once. If ctx ends first its error is returned; how long a caller waits
// on a contended slot is bounded by the caller's deadline alone.
func (g *EventGuard) Acquire(ctx context.Context, eventID string) (func(), error) {
	s := g.checkout(eventID)

	select {
	case s.sem <- struct{}{}:
		var once sync.Once
		release := func() {
			once.Do(func() {
				<-s.sem
				g.checkin(eventID, s)
			})
		}
		return release, nil
	case <-ctx.Done():
		g.checkin(eventID, s)
		return nil, ctx.Err()
	}
}

func (g *EventGuard) checkout(eventID string) *slot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.slots[eventID]
	if !ok {
		s = &slot{sem: make(chan struct{}, 1)}
		g.slots[eventID] = s
	}
	s.refs++
	return s
}

// checkin drops a reference and frees the map entry once nobody holds or
// waits on the slot, so idle events don't accumulate.
func (g *EventGuard) checkin(eventID string, s *slot) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s.refs--
	if s.refs == 0 {
		delete(g.slots, eventID)
	}
}
