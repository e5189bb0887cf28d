package domain

import (
	"fmt"
	"time"
)

// The board displays timestamps the way the sales office reads them:
// French month names, 24h clock. Formatting lives here at the view
// boundary; entities carry raw time.Time values.

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var frenchMonthsShort = [...]string{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

// FormatCreatedAt renders a creation timestamp for display,
// e.g. "2 janvier à 15:04".
func FormatCreatedAt(t time.Time) string {
	return fmt.Sprintf("%d %s à %02d:%02d", t.Day(), frenchMonths[t.Month()-1], t.Hour(), t.Minute())
}

// FormatAssignedAt renders an assignment timestamp in the compact form
// used on assignment badges, e.g. "2 janv. à 15:04".
func FormatAssignedAt(t time.Time) string {
	return fmt.Sprintf("%d %s à %02d:%02d", t.Day(), frenchMonthsShort[t.Month()-1], t.Hour(), t.Minute())
}
