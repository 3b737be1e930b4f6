// Package projection builds the local message timeline from store snapshots.
// Handles ordering, optimistic-echo deduplication, and the follow-tail flag.
// Does not contact the store or interact with the presentation layer directly.
package projection

import (
	"context"
	"sort"
	"sync"

	"anonchat/domain"

	"github.com/google/uuid"
)

// UpdateFunc is invoked with the new ordered view after every change.
// followTail reports whether the presentation should jump to the newest entry.
type UpdateFunc func(messages []domain.Message, followTail bool)

// Timeline holds the live ordered view of the shared stream.
//
// Snapshots from the subscription are authoritative. A message sent by the
// local user may be echoed into the view before the next snapshot arrives;
// the echo is kept only until a snapshot contains the same id, so a message
// renders exactly once whichever path wins.
type Timeline struct {
	mu       sync.Mutex
	snapshot []domain.Message
	pending  map[uuid.UUID]domain.Message

	followTail bool
	onUpdate   UpdateFunc
}

func NewTimeline(onUpdate UpdateFunc) *Timeline {
	return &Timeline{
		pending:    make(map[uuid.UUID]domain.Message),
		followTail: true,
		onUpdate:   onUpdate,
	}
}

// Consume implements contract.SnapshotSink.
func (t *Timeline) Consume(_ context.Context, snapshot []domain.Message) error {
	t.mu.Lock()
	t.snapshot = snapshot
	for _, message := range snapshot {
		delete(t.pending, message.ID)
	}
	view, follow := t.renderLocked()
	t.mu.Unlock()

	t.notify(view, follow)
	return nil
}

// AppendLocal echoes the author's own message into the view without waiting
// for the subscription to catch up, and marks the tail to be followed.
func (t *Timeline) AppendLocal(message domain.Message) {
	t.mu.Lock()
	if !t.contains(message.ID) {
		t.pending[message.ID] = message
	}
	t.followTail = true
	view, follow := t.renderLocked()
	t.mu.Unlock()

	t.notify(view, follow)
}

// Messages returns a copy of the current ordered view.
func (t *Timeline) Messages() []domain.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	view, _ := t.renderLocked()
	return view
}

func (t *Timeline) FollowTail() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.followTail
}

// SetFollowTail records whether the user is pinned to the newest message.
// The presentation clears it when the user scrolls up to read history;
// others' messages then stop pulling the view back down.
func (t *Timeline) SetFollowTail(follow bool) {
	t.mu.Lock()
	t.followTail = follow
	t.mu.Unlock()
}

func (t *Timeline) contains(id uuid.UUID) bool {
	if _, ok := t.pending[id]; ok {
		return true
	}
	for _, message := range t.snapshot {
		if message.ID == id {
			return true
		}
	}
	return false
}

// renderLocked merges the authoritative snapshot with any pending local
// echoes, keeping the whole view non-decreasing in CreatedAt.
func (t *Timeline) renderLocked() ([]domain.Message, bool) {
	view := make([]domain.Message, 0, len(t.snapshot)+len(t.pending))
	view = append(view, t.snapshot...)
	for _, message := range t.pending {
		view = append(view, message)
	}
	sort.SliceStable(view, func(i, j int) bool {
		if view[i].CreatedAt.Equal(view[j].CreatedAt) {
			return view[i].ID.String() < view[j].ID.String()
		}
		return view[i].CreatedAt.Before(view[j].CreatedAt)
	})
	return view, t.followTail
}

func (t *Timeline) notify(view []domain.Message, follow bool) {
	if t.onUpdate != nil {
		t.onUpdate(view, follow)
	}
}
