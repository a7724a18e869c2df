package slog

import (
	"context"
	"log/slog"
	"time"

	latexworkshop "github.com/Jeff-Tian/LaTeX-Workshop"
)

// Ensure LoggingCatalogService implements latexworkshop.CatalogService.
var _ latexworkshop.CatalogService = (*LoggingCatalogService)(nil)

// LoggingCatalogService wraps a CatalogService with debug logging.
type LoggingCatalogService struct {
	next   latexworkshop.CatalogService
	logger *slog.Logger
}

// NewLoggingCatalogService creates a new LoggingCatalogService.
func NewLoggingCatalogService(next latexworkshop.CatalogService, logger *slog.Logger) *LoggingCatalogService {
	return &LoggingCatalogService{next: next, logger: logger}
}

// FetchPackages delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) FetchPackages(ctx context.Context) (catalog latexworkshop.Table, err error) {
	defer func(begin time.Time) {
		s.logger.Info("catalog fetch",
			"count", len(catalog),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchPackages(ctx)
}
