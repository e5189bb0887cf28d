package application

import (
	"context"
	"errors"
	"log"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wxpress/salesboard/internal/modules/board/domain"
)

// Store is the single authoritative in-process snapshot of the three
// persisted collections. Every mutation performs one remote write and then
// reconciles local state, either by patching or by a full reload. There is
// no concurrency control across instances: the remote layer is last write
// wins, and this store does not attempt optimistic-lock detection.
//
// Error policy: reads fail open (empty or default state, logged, never
// propagated) because a failed read must not take down the board; writes
// propagate so callers can surface a failure toast and avoid assuming the
// write landed.
type Store struct {
	mu       sync.RWMutex
	messages []domain.Message
	members  []domain.TeamMember
	alert    domain.PriorityAlert

	messageRepo domain.MessageRepository
	memberRepo  domain.TeamMemberRepository
	alertRepo   domain.PriorityAlertRepository
}

func NewStore(messages domain.MessageRepository, members domain.TeamMemberRepository, alerts domain.PriorityAlertRepository) *Store {
	return &Store{
		messages:    []domain.Message{},
		members:     []domain.TeamMember{},
		alert:       domain.DefaultPriorityAlert(),
		messageRepo: messages,
		memberRepo:  members,
		alertRepo:   alerts,
	}
}

// Messages returns a copy of the current message snapshot, newest first.
func (s *Store) Messages() []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// TeamMembers returns a copy of the current member snapshot.
func (s *Store) TeamMembers() []domain.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.TeamMember, len(s.members))
	copy(out, s.members)
	return out
}

// PriorityAlert returns the current banner state.
func (s *Store) PriorityAlert() domain.PriorityAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alert
}

// FindMessage returns the snapshot entity with the given id, if present.
func (s *Store) FindMessage(id uuid.UUID) (domain.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.messages {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Message{}, false
}

// FindMember returns the active member with the given display name.
func (s *Store) FindMember(name string) (domain.TeamMember, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.Name == name {
			return m, true
		}
	}
	return domain.TeamMember{}, false
}

// LoadMessages replaces the whole message collection from the remote
// store. On failure the collection is reset to empty: the board fails open
// to an empty state rather than showing stale rows.
func (s *Store) LoadMessages(ctx context.Context) {
	messages, err := s.messageRepo.List(ctx)
	if err != nil {
		log.Printf("board: loading messages failed: %v", err)
		messages = []domain.Message{}
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	s.mu.Lock()
	s.messages = messages
	s.mu.Unlock()
}

// LoadTeamMembers replaces the member collection; fails open to empty.
func (s *Store) LoadTeamMembers(ctx context.Context) {
	members, err := s.memberRepo.ListActive(ctx)
	if err != nil {
		log.Printf("board: loading team members failed: %v", err)
		members = []domain.TeamMember{}
	}
	if members == nil {
		members = []domain.TeamMember{}
	}
	s.mu.Lock()
	s.members = members
	s.mu.Unlock()
}

// LoadPriorityAlert fetches the singleton banner row. A missing row is an
// expected condition and silently yields the default alert; any other
// failure also falls back to the default, logged. Connectivity failures
// are logged distinctly so a dead backend is tellable from a bad row.
func (s *Store) LoadPriorityAlert(ctx context.Context) {
	alert := domain.DefaultPriorityAlert()
	stored, err := s.alertRepo.Get(ctx)
	switch {
	case err == nil:
		alert = *stored
	case errors.Is(err, domain.ErrAlertNotFound):
		// No banner configured yet.
	case isConnectivityError(err):
		log.Printf("board: priority alert unreachable (connectivity): %v", err)
	default:
		log.Printf("board: loading priority alert failed: %v", err)
	}
	s.mu.Lock()
	s.alert = alert
	s.mu.Unlock()
}

func isConnectivityError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr)
}

// AddMessage inserts a new row and, on success, prepends the stored entity
// to the local collection. This is an optimistic prepend: no reload, so
// concurrent external changes surface only at the next refresh tick.
func (s *Store) AddMessage(ctx context.Context, draft domain.MessageDraft) (*domain.Message, error) {
	created, err := s.messageRepo.Insert(ctx, draft)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.messages = append([]domain.Message{*created}, s.messages...)
	s.mu.Unlock()
	return created, nil
}

// UpdateMessage rewrites the content fields of a message and patches the
// matching local entity in place, preserving collection order.
func (s *Store) UpdateMessage(ctx context.Context, m domain.Message) error {
	if err := s.messageRepo.Update(ctx, m); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.messages {
		if s.messages[i].ID == m.ID {
			s.messages[i] = m
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// DeleteMessage removes a row and drops the matching local entity.
func (s *Store) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	if err := s.messageRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	kept := s.messages[:0]
	for _, m := range s.messages {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.messages = kept
	s.mu.Unlock()
	return nil
}

// AssignMessage sets both assignment columns and then reloads the whole
// collection instead of patching, so derived fields are guaranteed
// consistent with the remote state. Side effects (SMS) are the caller's
// concern and must never roll back the assignment.
func (s *Store) AssignMessage(ctx context.Context, id uuid.UUID, memberName string) error {
	if err := s.messageRepo.Assign(ctx, id, memberName, time.Now()); err != nil {
		return err
	}
	s.LoadMessages(ctx)
	return nil
}

// UnassignMessage clears both assignment columns together and reloads.
// Unassigning an already-unassigned message is a no-op, not an error.
func (s *Store) UnassignMessage(ctx context.Context, id uuid.UUID) error {
	if err := s.messageRepo.Unassign(ctx, id); err != nil {
		return err
	}
	s.LoadMessages(ctx)
	return nil
}

// UpdatePriorityAlert upserts the singleton row and sets the local value
// directly, without rereading.
func (s *Store) UpdatePriorityAlert(ctx context.Context, alert domain.PriorityAlert) error {
	if err := s.alertRepo.Upsert(ctx, alert); err != nil {
		return err
	}
	s.mu.Lock()
	s.alert = alert
	s.mu.Unlock()
	return nil
}

// ClearAllMessages wipes the messages table, empties the local collection
// and resets the banner to its default, regardless of prior alert state.
func (s *Store) ClearAllMessages(ctx context.Context) error {
	if err := s.messageRepo.DeleteAll(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.messages = []domain.Message{}
	s.alert = domain.DefaultPriorityAlert()
	s.mu.Unlock()
	return nil
}

// MarkAsRead appends readerID to the message's local read set. Read state
// is process-local only: it is never written remotely and a reload resets
// it. The append is duplicate-tolerant, matching the board's behavior.
func (s *Store) MarkAsRead(id uuid.UUID, readerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].ReadBy = append(s.messages[i].ReadBy, readerID)
			return
		}
	}
}
