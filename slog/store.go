package slog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	latexworkshop "github.com/Jeff-Tian/LaTeX-Workshop"
	"github.com/cespare/xxhash/v2"
)

// Ensure LoggingTableStore implements latexworkshop.TableStore.
var _ latexworkshop.TableStore = (*LoggingTableStore)(nil)

// LoggingTableStore wraps a TableStore with debug logging. Each save
// logs a fingerprint of its table so two runs can be compared without
// diffing the output files.
type LoggingTableStore struct {
	next   latexworkshop.TableStore
	logger *slog.Logger
}

// NewLoggingTableStore creates a new LoggingTableStore.
func NewLoggingTableStore(next latexworkshop.TableStore, logger *slog.Logger) *LoggingTableStore {
	return &LoggingTableStore{next: next, logger: logger}
}

// SavePackages delegates to the wrapped store and logs the operation.
func (s *LoggingTableStore) SavePackages(ctx context.Context, packages latexworkshop.Table) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save packages",
			"count", len(packages),
			"fingerprint", fingerprint(packages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SavePackages(ctx, packages)
}

// SaveClasses delegates to the wrapped store and logs the operation.
func (s *LoggingTableStore) SaveClasses(ctx context.Context, classes latexworkshop.Table) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save classes",
			"count", len(classes),
			"fingerprint", fingerprint(classes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveClasses(ctx, classes)
}

// Commit delegates to the wrapped store.
func (s *LoggingTableStore) Commit() error {
	err := s.next.Commit()
	s.logger.Info("commit", "err", err)
	return err
}

// Abort delegates to the wrapped store.
func (s *LoggingTableStore) Abort() error {
	err := s.next.Abort()
	s.logger.Info("abort", "err", err)
	return err
}

// fingerprint hashes a table in sorted key order so that identical
// tables produce identical values across runs.
func fingerprint(table latexworkshop.Table) string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	h := xxhash.New()
	for _, k := range keys {
		c := table[k]
		for _, field := range []string{k, c.Command, c.Detail, c.Documentation} {
			_, _ = h.WriteString(field)
			_, _ = h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum64())
}
