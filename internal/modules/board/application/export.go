package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/wxpress/salesboard/internal/modules/board/domain"
)

// The assignment report is a CSV with a fixed French header and every cell
// force-quoted. encoding/csv quotes only when it has to, so the rows are
// joined by hand to keep the wire format byte-stable.

var exportHeader = []string{
	"Titre",
	"Description",
	"Priorité",
	"Assigné à",
	"Date d'assignation",
	"Date de création",
}

const (
	exportUnassigned   = "Non assigné"
	exportNoAssignedAt = "N/A"
)

// ExportCSV renders the given (already filtered) messages as the
// assignment report. Column order is fixed; header row first.
func ExportCSV(messages []domain.Message) string {
	var b strings.Builder
	b.WriteString(strings.Join(exportHeader, ","))
	for _, m := range messages {
		assignedTo := exportUnassigned
		if m.AssignedTo != nil {
			assignedTo = *m.AssignedTo
		}
		assignedAt := exportNoAssignedAt
		if m.AssignedAt != nil {
			assignedAt = domain.FormatAssignedAt(*m.AssignedAt)
		}
		cells := []string{
			m.Title,
			m.Description,
			string(m.Priority),
			assignedTo,
			assignedAt,
			domain.FormatCreatedAt(m.CreatedAt),
		}
		b.WriteByte('\n')
		for i, cell := range cells {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quoteCell(cell))
		}
	}
	return b.String()
}

func quoteCell(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ReportFilename names the downloaded report after the export date,
// e.g. rapport-assignations-2026-08-28.csv.
func ReportFilename(now time.Time) string {
	return fmt.Sprintf("rapport-assignations-%s.csv", now.Format("2006-01-02"))
}
