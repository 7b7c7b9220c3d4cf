package pipeline

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Hustada/dynastylab/constants"
)

// EventType enumerates the orchestrator's observable milestones.
type EventType string

const (
	EventScreenIdentified EventType = "screen-identified"
	EventDataExtracted    EventType = "data-extracted"
	EventDataRouted       EventType = "data-routed"
	EventContentTriggered EventType = "content-triggered"
	EventError            EventType = "error"
)

// Event is one append-only progress record for a screenshot. Events are
// delivered synchronously in emission order; there is no replay buffer, so
// subscribers must register before processing starts.
type Event struct {
	Type       EventType            `json:"type"`
	ScreenType constants.ScreenType `json:"screenType,omitempty"`
	Data       any                  `json:"data,omitempty"`
	Message    string               `json:"message"`
	Timestamp  time.Time            `json:"timestamp"`
}

type subscriber struct {
	id uuid.UUID
	fn func(Event)
}

// broadcaster is a simple multicast: every subscribed callback sees every
// event, in order, on the emitting goroutine.
type broadcaster struct {
	mu   sync.Mutex
	subs []subscriber
}

// subscribe registers fn and returns its cancel function. Cancellation only
// affects future emissions.
func (b *broadcaster) subscribe(fn func(Event)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := uuid.New()
	b.subs = append(b.subs, subscriber{id: id, fn: fn})
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

func (b *broadcaster) emit(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	b.mu.Lock()
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(ev)
	}
}
