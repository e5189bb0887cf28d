package report

import (
	"context"
	"fmt"

	"github.com/wxpress/salesboard/internal/modules/report/application"
	"github.com/wxpress/salesboard/internal/modules/report/domain"
	"github.com/wxpress/salesboard/internal/modules/report/infrastructure/local"
	"github.com/wxpress/salesboard/internal/modules/report/infrastructure/s3"
)

// Config selects where report archives land.
type Config struct {
	UseS3     bool
	LocalPath string
	S3        s3.S3Config
}

type Module struct {
	service *application.ArchiveService
}

func NewModule(ctx context.Context, cfg Config) (*Module, error) {
	var storage domain.ArchiveStorage
	var err error

	if cfg.UseS3 {
		storage, err = s3.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("report archive: %w", err)
		}
	} else {
		storage, err = local.NewLocalStorage(cfg.LocalPath)
		if err != nil {
			return nil, fmt.Errorf("report archive: %w", err)
		}
	}

	return &Module{service: application.NewArchiveService(storage)}, nil
}

func (m *Module) Service() *application.ArchiveService {
	return m.service
}
