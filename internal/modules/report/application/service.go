package application

import (
	"context"
	"strings"
	"time"

	"github.com/wxpress/salesboard/internal/modules/report/domain"
)

// ArchiveService files generated CSV reports under a date-based key.
type ArchiveService struct {
	storage domain.ArchiveStorage
}

func NewArchiveService(storage domain.ArchiveStorage) *ArchiveService {
	return &ArchiveService{storage: storage}
}

// Archive stores the report content under reports/<year>/<filename> and
// returns its location.
func (s *ArchiveService) Archive(ctx context.Context, filename, content string, now time.Time) (string, error) {
	key := "reports/" + now.Format("2006") + "/" + filename
	return s.storage.Store(ctx, key, strings.NewReader(content))
}
