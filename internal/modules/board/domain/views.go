package domain

import (
	"sort"
	"strings"
)

// StatusFilter gates the admin view by assignment state.
type StatusFilter string

const (
	StatusAll        StatusFilter = "all"
	StatusAssigned   StatusFilter = "assigned"
	StatusUnassigned StatusFilter = "unassigned"
)

// AdminFilter holds the admin panel filter controls. A non-empty Search
// overrides Status and Member entirely: the term is matched
// case-insensitively against title, description and assignee, and the
// other two filters are ignored. This mirrors the panel's observed
// behavior and is kept deliberately.
type AdminFilter struct {
	Status StatusFilter
	Member string
	Search string
}

// Unassigned returns the messages shown on the primary board: those with
// no assignee.
func Unassigned(messages []Message) []Message {
	out := make([]Message, 0, len(messages))
	for _, m := range messages {
		if !m.IsAssigned() {
			out = append(out, m)
		}
	}
	return out
}

// PriorityOrder is the fixed render order of the board sections,
// most urgent first.
var PriorityOrder = []Priority{PriorityLevel3, PriorityLevel2, PriorityLevel1}

// GroupByPriority partitions messages into the three priority buckets,
// each independently sorted by creation time descending.
func GroupByPriority(messages []Message) map[Priority][]Message {
	groups := map[Priority][]Message{
		PriorityLevel3: {},
		PriorityLevel2: {},
		PriorityLevel1: {},
	}
	for _, m := range messages {
		groups[m.Priority] = append(groups[m.Priority], m)
	}
	for p := range groups {
		g := groups[p]
		sort.SliceStable(g, func(i, j int) bool {
			return g[i].CreatedAt.After(g[j].CreatedAt)
		})
	}
	return groups
}

// Filter applies the admin panel criteria to a message snapshot.
func Filter(messages []Message, f AdminFilter) []Message {
	out := make([]Message, 0, len(messages))
	for _, m := range messages {
		if matchesFilter(m, f) {
			out = append(out, m)
		}
	}
	return out
}

func matchesFilter(m Message, f AdminFilter) bool {
	// Search wins: when a term is present the status and member filters
	// do not apply at all.
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if strings.Contains(strings.ToLower(m.Title), term) {
			return true
		}
		if strings.Contains(strings.ToLower(m.Description), term) {
			return true
		}
		if m.AssignedTo != nil && strings.Contains(strings.ToLower(*m.AssignedTo), term) {
			return true
		}
		return false
	}

	if f.Status == StatusAssigned && !m.IsAssigned() {
		return false
	}
	if f.Status == StatusUnassigned && m.IsAssigned() {
		return false
	}
	if f.Member != "" && (m.AssignedTo == nil || *m.AssignedTo != f.Member) {
		return false
	}
	return true
}

// MemberStat is one row of the per-member assignment report.
type MemberStat struct {
	Name     string
	Count    int
	Messages []Message
}

// MemberStats computes, for each team member, the messages currently
// assigned to them, sorted by count descending.
func MemberStats(members []TeamMember, messages []Message) []MemberStat {
	stats := make([]MemberStat, 0, len(members))
	for _, member := range members {
		assigned := make([]Message, 0)
		for _, m := range messages {
			if m.AssignedTo != nil && *m.AssignedTo == member.Name {
				assigned = append(assigned, m)
			}
		}
		stats = append(stats, MemberStat{
			Name:     member.Name,
			Count:    len(assigned),
			Messages: assigned,
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	return stats
}

// Summary holds the admin panel headline counters.
type Summary struct {
	Assigned      int
	Pending       int
	ActiveMembers int
	Total         int
}

// Summarize computes the headline counters over a snapshot.
func Summarize(messages []Message, members []TeamMember) Summary {
	s := Summary{Total: len(messages)}
	for _, m := range messages {
		if m.IsAssigned() {
			s.Assigned++
		} else {
			s.Pending++
		}
	}
	for _, member := range members {
		if member.Active {
			s.ActiveMembers++
		}
	}
	return s
}
