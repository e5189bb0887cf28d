package application

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wxpress/salesboard/internal/modules/notify/domain"
)

// Broadcaster fans a toast out to connected boards. The websocket hub
// satisfies it; tests use a recorder.
type Broadcaster interface {
	BroadcastMessage(message []byte)
}

// Sink is the in-memory ordered queue of board toasts. Each enqueued item
// schedules its own auto-dismiss timer; no two items share state and
// dismissing one never affects another. The queue is bounded: past
// maxQueued items the oldest is dropped, so a failure storm cannot grow
// it without limit.
type Sink struct {
	mu     sync.Mutex
	items  []domain.Notification
	timers map[uuid.UUID]*time.Timer
	hub    Broadcaster
	closed bool
}

const maxQueued = 64

// NewSink creates a sink. hub may be nil when no boards are connected
// (tests, CLI tools).
func NewSink(hub Broadcaster) *Sink {
	return &Sink{
		items:  []domain.Notification{},
		timers: make(map[uuid.UUID]*time.Timer),
		hub:    hub,
	}
}

// Push enqueues a toast with the kind's default duration and auto-dismiss
// enabled, and returns the stored item.
func (s *Sink) Push(kind domain.Kind, title, body string) domain.Notification {
	return s.PushWith(kind, title, body, domain.DefaultDuration(kind), true)
}

// PushWith enqueues a toast with an explicit duration and dismissal mode.
func (s *Sink) PushWith(kind domain.Kind, title, body string, duration time.Duration, autoDismiss bool) domain.Notification {
	n := domain.Notification{
		ID:          uuid.New(),
		Kind:        kind,
		Title:       title,
		Body:        body,
		Duration:    duration,
		AutoDismiss: autoDismiss,
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return n
	}
	s.items = append(s.items, n)
	if len(s.items) > maxQueued {
		oldest := s.items[0]
		s.items = s.items[1:]
		s.cancelTimerLocked(oldest.ID)
	}
	if autoDismiss {
		id := n.ID
		s.timers[id] = time.AfterFunc(duration, func() {
			s.Dismiss(id)
		})
	}
	s.mu.Unlock()

	s.broadcast(n)
	return n
}

// Dismiss removes a toast by id. Unknown ids are ignored.
func (s *Sink) Dismiss(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, n := range s.items {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.items = kept
	s.cancelTimerLocked(id)
}

// Active returns the queued toasts in enqueue order.
func (s *Sink) Active() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Notification, len(s.items))
	copy(out, s.items)
	return out
}

// Close cancels all pending timers and stops accepting toasts.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.items = nil
}

// Success, Error, Info and Warning satisfy the board's Notifier interface.

func (s *Sink) Success(title, body string) { s.Push(domain.KindSuccess, title, body) }
func (s *Sink) Error(title, body string)   { s.Push(domain.KindError, title, body) }
func (s *Sink) Info(title, body string)    { s.Push(domain.KindInfo, title, body) }
func (s *Sink) Warning(title, body string) { s.Push(domain.KindWarning, title, body) }

func (s *Sink) cancelTimerLocked(id uuid.UUID) {
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
}

func (s *Sink) broadcast(n domain.Notification) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(n)
	if err != nil {
		log.Printf("notify: marshaling toast: %v", err)
		return
	}
	s.hub.BroadcastMessage(payload)
}
