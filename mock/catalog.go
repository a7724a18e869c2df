package mock

import (
	"context"

	latexworkshop "github.com/Jeff-Tian/LaTeX-Workshop"
)

var _ latexworkshop.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of latexworkshop.CatalogService.
type CatalogService struct {
	FetchPackagesFn func(ctx context.Context) (latexworkshop.Table, error)
}

func (s *CatalogService) FetchPackages(ctx context.Context) (latexworkshop.Table, error) {
	return s.FetchPackagesFn(ctx)
}
