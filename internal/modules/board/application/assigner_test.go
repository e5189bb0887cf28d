package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wxpress/salesboard/internal/modules/board/application"
	"github.com/wxpress/salesboard/internal/modules/board/domain"
)

type toast struct {
	kind  string
	title string
	body  string
}

type notifierSpy struct {
	toasts []toast
}

func (n *notifierSpy) Success(title, body string) {
	n.toasts = append(n.toasts, toast{"success", title, body})
}
func (n *notifierSpy) Error(title, body string) {
	n.toasts = append(n.toasts, toast{"error", title, body})
}
func (n *notifierSpy) Info(title, body string) {
	n.toasts = append(n.toasts, toast{"info", title, body})
}
func (n *notifierSpy) Warning(title, body string) {
	n.toasts = append(n.toasts, toast{"warning", title, body})
}

func (n *notifierSpy) last(t *testing.T) toast {
	t.Helper()
	require.NotEmpty(t, n.toasts)
	return n.toasts[len(n.toasts)-1]
}

type dispatcherSpy struct {
	sent []domain.SMSRequest
	err  error
}

func (d *dispatcherSpy) Send(_ context.Context, req domain.SMSRequest) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, req)
	return nil
}

// assignFixture builds a store preloaded with one message and one member,
// wired to repos that accept every write.
func assignFixture(t *testing.T, m domain.Message, member domain.TeamMember, assignErr error) *application.Store {
	t.Helper()
	repo := messageRepoMock{
		listFn: func(context.Context) ([]domain.Message, error) {
			return []domain.Message{m}, nil
		},
		assignFn: func(context.Context, uuid.UUID, string, time.Time) error {
			return assignErr
		},
		unassignFn: func(context.Context, uuid.UUID) error { return nil },
	}
	members := memberRepoMock{
		listActiveFn: func(context.Context) ([]domain.TeamMember, error) {
			return []domain.TeamMember{member}, nil
		},
	}
	s := application.NewStore(repo, members, alertRepoMock{})
	ctx := context.Background()
	s.LoadMessages(ctx)
	s.LoadTeamMembers(ctx)
	return s
}

func TestAssigner_Assign_WriteFailure(t *testing.T) {
	m := seedMessage("client perdu")
	member := domain.TeamMember{ID: uuid.New(), Name: "Marc", Active: true}
	s := assignFixture(t, m, member, errors.New("db down"))
	notifier := &notifierSpy{}
	sms := &dispatcherSpy{}
	a := application.NewAssigner(s, sms, notifier)

	err := a.Assign(context.Background(), m.ID, "Marc")
	require.Error(t, err)

	got := notifier.last(t)
	assert.Equal(t, "error", got.kind)
	assert.Equal(t, "Erreur d'assignation", got.title)
	// No SMS attempt on a failed write.
	assert.Empty(t, sms.sent)
}

func TestAssigner_Assign_PlainMessage(t *testing.T) {
	m := seedMessage("note interne")
	member := domain.TeamMember{ID: uuid.New(), Name: "Marc", Active: true}
	s := assignFixture(t, m, member, nil)
	notifier := &notifierSpy{}
	sms := &dispatcherSpy{}
	a := application.NewAssigner(s, sms, notifier)

	require.NoError(t, a.Assign(context.Background(), m.ID, "Marc"))

	got := notifier.last(t)
	assert.Equal(t, "success", got.kind)
	assert.Equal(t, "📤 Message envoyé", got.title)
	assert.Contains(t, got.body, "Marc")
	assert.Empty(t, sms.sent)
}

func TestAssigner_Assign_ClientWithoutPhone(t *testing.T) {
	client := "Garage Nord"
	m := seedMessage("rappel")
	m.ClientName = &client
	member := domain.TeamMember{ID: uuid.New(), Name: "Julie", Active: true}
	s := assignFixture(t, m, member, nil)
	notifier := &notifierSpy{}
	sms := &dispatcherSpy{}
	a := application.NewAssigner(s, sms, notifier)

	require.NoError(t, a.Assign(context.Background(), m.ID, "Julie"))

	got := notifier.last(t)
	assert.Equal(t, "success", got.kind)
	assert.Equal(t, "🎯 Client assigné", got.title)
	assert.Contains(t, got.body, "Pas de numéro de téléphone")
	assert.Empty(t, sms.sent)
}

func TestAssigner_Assign_ClientWithSMS(t *testing.T) {
	client := "Garage Nord"
	phone := "+15145550100"
	m := seedMessage("rappel")
	m.ClientName = &client
	member := domain.TeamMember{ID: uuid.New(), Name: "Julie", Active: true, PhoneNumber: &phone}
	s := assignFixture(t, m, member, nil)
	notifier := &notifierSpy{}
	sms := &dispatcherSpy{}
	a := application.NewAssigner(s, sms, notifier)

	require.NoError(t, a.Assign(context.Background(), m.ID, "Julie"))

	require.Len(t, sms.sent, 1)
	assert.Equal(t, domain.SMSRequest{
		MemberName:  "Julie",
		PhoneNumber: phone,
		ClientName:  "Garage Nord",
		DealerName:  "Dealer non spécifié",
	}, sms.sent[0])

	got := notifier.last(t)
	assert.Equal(t, "success", got.kind)
	assert.Equal(t, "🎯📱 Client assigné avec SMS", got.title)
}

func TestAssigner_Assign_SMSFailureKeepsAssignment(t *testing.T) {
	dealer := "Concession Est"
	phone := "+15145550100"
	m := seedMessage("rappel")
	m.DealerName = &dealer
	member := domain.TeamMember{ID: uuid.New(), Name: "Julie", Active: true, PhoneNumber: &phone}
	s := assignFixture(t, m, member, nil)
	notifier := &notifierSpy{}
	sms := &dispatcherSpy{err: errors.New("function timeout")}
	a := application.NewAssigner(s, sms, notifier)

	// The SMS failure is absorbed: the assignment stands.
	require.NoError(t, a.Assign(context.Background(), m.ID, "Julie"))

	got := notifier.last(t)
	assert.Equal(t, "success", got.kind)
	assert.Equal(t, "🎯 Client assigné", got.title)
	assert.Contains(t, got.body, "SMS non envoyé")
}

func TestAssigner_Unassign(t *testing.T) {
	m := seedMessage("retour")
	member := domain.TeamMember{ID: uuid.New(), Name: "Marc", Active: true}

	t.Run("success", func(t *testing.T) {
		s := assignFixture(t, m, member, nil)
		notifier := &notifierSpy{}
		a := application.NewAssigner(s, &dispatcherSpy{}, notifier)

		require.NoError(t, a.Unassign(context.Background(), m.ID))
		got := notifier.last(t)
		assert.Equal(t, "info", got.kind)
		assert.Equal(t, "Message remis au tableau", got.title)
	})

	t.Run("write failure", func(t *testing.T) {
		repo := messageRepoMock{
			unassignFn: func(context.Context, uuid.UUID) error {
				return errors.New("db down")
			},
		}
		s := application.NewStore(repo, memberRepoMock{}, alertRepoMock{})
		notifier := &notifierSpy{}
		a := application.NewAssigner(s, &dispatcherSpy{}, notifier)

		require.Error(t, a.Unassign(context.Background(), m.ID))
		got := notifier.last(t)
		assert.Equal(t, "error", got.kind)
		assert.Equal(t, "Erreur de désassignation", got.title)
	})
}
