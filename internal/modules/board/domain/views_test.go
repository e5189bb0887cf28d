package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wxpress/salesboard/internal/modules/board/domain"
)

func strPtr(s string) *string { return &s }

func msg(title string, p domain.Priority, createdAt time.Time) domain.Message {
	return domain.Message{
		ID:        uuid.New(),
		Title:     title,
		Priority:  p,
		CreatedAt: createdAt,
	}
}

func assigned(m domain.Message, member string, at time.Time) domain.Message {
	m.AssignedTo = &member
	m.AssignedAt = &at
	return m
}

func TestUnassigned(t *testing.T) {
	now := time.Now()
	a := msg("libre", domain.PriorityLevel1, now)
	b := assigned(msg("pris", domain.PriorityLevel2, now), "Marc", now)

	out := domain.Unassigned([]domain.Message{a, b})
	require.Len(t, out, 1)
	assert.Equal(t, "libre", out[0].Title)
}

func TestGroupByPriority(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	older := msg("older", domain.PriorityLevel3, base)
	newer := msg("newer", domain.PriorityLevel3, base.Add(time.Hour))
	low := msg("low", domain.PriorityLevel1, base)

	groups := domain.GroupByPriority([]domain.Message{older, low, newer})

	// All three buckets exist even when empty.
	require.Len(t, groups, 3)
	require.Contains(t, groups, domain.PriorityLevel2)
	assert.Empty(t, groups[domain.PriorityLevel2])

	// Within a bucket, newest first.
	require.Len(t, groups[domain.PriorityLevel3], 2)
	assert.Equal(t, "newer", groups[domain.PriorityLevel3][0].Title)
	assert.Equal(t, "older", groups[domain.PriorityLevel3][1].Title)

	require.Len(t, groups[domain.PriorityLevel1], 1)
}

func TestPriorityOrder(t *testing.T) {
	assert.Equal(t, []domain.Priority{
		domain.PriorityLevel3,
		domain.PriorityLevel2,
		domain.PriorityLevel1,
	}, domain.PriorityOrder)
}

func TestFilter_StatusAndMember(t *testing.T) {
	now := time.Now()
	free := msg("libre", domain.PriorityLevel1, now)
	marc := assigned(msg("pour marc", domain.PriorityLevel2, now), "Marc", now)
	julie := assigned(msg("pour julie", domain.PriorityLevel2, now), "Julie", now)
	all := []domain.Message{free, marc, julie}

	out := domain.Filter(all, domain.AdminFilter{Status: domain.StatusUnassigned})
	require.Len(t, out, 1)
	assert.Equal(t, "libre", out[0].Title)

	out = domain.Filter(all, domain.AdminFilter{Status: domain.StatusAssigned})
	assert.Len(t, out, 2)

	out = domain.Filter(all, domain.AdminFilter{Status: domain.StatusAll, Member: "Julie"})
	require.Len(t, out, 1)
	assert.Equal(t, "pour julie", out[0].Title)

	// Status and member combine.
	out = domain.Filter(all, domain.AdminFilter{Status: domain.StatusAssigned, Member: "Marc"})
	require.Len(t, out, 1)
	assert.Equal(t, "pour marc", out[0].Title)
}

func TestFilter_SearchOverridesOtherFilters(t *testing.T) {
	now := time.Now()
	free := msg("Rappel client", domain.PriorityLevel1, now)
	taken := assigned(msg("autre", domain.PriorityLevel2, now), "Marc", now)
	taken.Description = "rappel du garage"

	// Search matches the unassigned message even though the status
	// filter says assigned-only: the term wins outright.
	out := domain.Filter([]domain.Message{free, taken}, domain.AdminFilter{
		Status: domain.StatusAssigned,
		Member: "Julie",
		Search: "RAPPEL",
	})
	assert.Len(t, out, 2)
}

func TestFilter_SearchMatchesAssignee(t *testing.T) {
	now := time.Now()
	taken := assigned(msg("x", domain.PriorityLevel1, now), "Marc Dubois", now)

	out := domain.Filter([]domain.Message{taken}, domain.AdminFilter{Search: "dubois"})
	assert.Len(t, out, 1)

	out = domain.Filter([]domain.Message{taken}, domain.AdminFilter{Search: "introuvable"})
	assert.Empty(t, out)
}

func TestMemberStats(t *testing.T) {
	now := time.Now()
	members := []domain.TeamMember{
		{ID: uuid.New(), Name: "Marc", Active: true},
		{ID: uuid.New(), Name: "Julie", Active: true},
		{ID: uuid.New(), Name: "Paul", Active: true},
	}
	messages := []domain.Message{
		assigned(msg("a", domain.PriorityLevel1, now), "Julie", now),
		assigned(msg("b", domain.PriorityLevel2, now), "Julie", now),
		assigned(msg("c", domain.PriorityLevel3, now), "Marc", now),
		msg("d", domain.PriorityLevel1, now),
	}

	stats := domain.MemberStats(members, messages)
	require.Len(t, stats, 3)
	assert.Equal(t, "Julie", stats[0].Name)
	assert.Equal(t, 2, stats[0].Count)
	assert.Len(t, stats[0].Messages, 2)
	assert.Equal(t, "Marc", stats[1].Name)
	assert.Equal(t, 1, stats[1].Count)
	// Members with no assignments still get a zero row.
	assert.Equal(t, "Paul", stats[2].Name)
	assert.Equal(t, 0, stats[2].Count)
}

func TestSummarize(t *testing.T) {
	now := time.Now()
	messages := []domain.Message{
		assigned(msg("a", domain.PriorityLevel1, now), "Marc", now),
		msg("b", domain.PriorityLevel2, now),
		msg("c", domain.PriorityLevel3, now),
	}
	members := []domain.TeamMember{
		{Name: "Marc", Active: true},
		{Name: "Ancien", Active: false},
	}

	s := domain.Summarize(messages, members)
	assert.Equal(t, 1, s.Assigned)
	assert.Equal(t, 2, s.Pending)
	assert.Equal(t, 1, s.ActiveMembers)
	assert.Equal(t, 3, s.Total)
}

func TestPriorityIsValid(t *testing.T) {
	assert.True(t, domain.PriorityLevel1.IsValid())
	assert.True(t, domain.PriorityLevel3.IsValid())
	assert.False(t, domain.Priority("urgent").IsValid())
	assert.False(t, domain.Priority("").IsValid())
}

func TestMessageIsClient(t *testing.T) {
	m := domain.Message{}
	assert.False(t, m.IsClient())
	m.ClientName = strPtr("Garage Nord")
	assert.True(t, m.IsClient())
	m = domain.Message{DealerName: strPtr("Concession Est")}
	assert.True(t, m.IsClient())
}
