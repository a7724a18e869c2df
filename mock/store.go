package mock

import (
	"context"

	latexworkshop "github.com/Jeff-Tian/LaTeX-Workshop"
)

var _ latexworkshop.TableStore = (*TableStore)(nil)

// TableStore is a mock implementation of latexworkshop.TableStore.
type TableStore struct {
	SavePackagesFn func(ctx context.Context, packages latexworkshop.Table) error
	SaveClassesFn  func(ctx context.Context, classes latexworkshop.Table) error
	CommitFn       func() error
	AbortFn        func() error
}

func (s *TableStore) SavePackages(ctx context.Context, packages latexworkshop.Table) error {
	return s.SavePackagesFn(ctx, packages)
}

func (s *TableStore) SaveClasses(ctx context.Context, classes latexworkshop.Table) error {
	return s.SaveClassesFn(ctx, classes)
}

func (s *TableStore) Commit() error {
	return s.CommitFn()
}

func (s *TableStore) Abort() error {
	return s.AbortFn()
}
