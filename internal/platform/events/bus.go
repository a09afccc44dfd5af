package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"focusdesk/internal/platform/clock"
	"focusdesk/internal/platform/id"
)

// Event is a UI-bound notification. Consumers that may see an event twice
// deduplicate on ID.
type Event struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
	At      time.Time       `json:"at"`
}

// Publisher is the outbound port components emit UI events through.
type Publisher interface {
	Publish(name string, payload any) error
}

// Bus fans every published event out to all current subscribers. Publish never
// blocks and never drops: each subscriber owns an unbounded ordered queue.
type Bus struct {
	mu    sync.Mutex
	subs  map[*Subscription]struct{}
	ids   id.Generator
	clock clock.Clock
}

func NewBus(ids id.Generator, clk clock.Clock) *Bus {
	if ids == nil {
		ids = id.UUID{}
	}
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &Bus{subs: map[*Subscription]struct{}{}, ids: ids, clock: clk}
}

func (b *Bus) Publish(name string, payload any) error {
	if name == "" {
		return fmt.Errorf("event name is required")
	}
	raw := json.RawMessage(`{}`)
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", name, err)
		}
		raw = encoded
	}
	evt := Event{ID: b.ids.New(), Name: name, Payload: raw, At: b.clock.Now()}

	b.mu.Lock()
	defer b.mu.Unlock()
	for sub := range b.subs {
		sub.push(evt)
	}
	return nil
}

func (b *Bus) Subscribe() *Subscription {
	sub := &Subscription{notify: make(chan struct{}, 1), bus: b}
	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()
	return sub
}

func (b *Bus) remove(sub *Subscription) {
	b.mu.Lock()
	delete(b.subs, sub)
	b.mu.Unlock()
}

type Subscription struct {
	mu     sync.Mutex
	queue  []Event
	notify chan struct{}
	closed bool
	bus    *Bus
}

func (s *Subscription) push(evt Event) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.queue = append(s.queue, evt)
	s.mu.Unlock()
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// C signals that at least one event is pending.
func (s *Subscription) C() <-chan struct{} {
	return s.notify
}

// Drain returns every pending event in publish order and empties the queue.
func (s *Subscription) Drain() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.queue
	s.queue = nil
	return out
}

// Next blocks until an event is pending or ctx is done.
func (s *Subscription) Next(ctx context.Context) (Event, error) {
	for {
		s.mu.Lock()
		if len(s.queue) > 0 {
			evt := s.queue[0]
			s.queue = s.queue[1:]
			s.mu.Unlock()
			return evt, nil
		}
		closed := s.closed
		s.mu.Unlock()
		if closed {
			return Event{}, fmt.Errorf("subscription closed")
		}
		select {
		case <-ctx.Done():
			return Event{}, ctx.Err()
		case <-s.notify:
		}
	}
}

func (s *Subscription) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.queue = nil
	s.mu.Unlock()
	s.bus.remove(s)
	select {
	case s.notify <- struct{}{}:
	default:
	}
}
