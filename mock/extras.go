package mock

import (
	"context"

	latexworkshop "github.com/Jeff-Tian/LaTeX-Workshop"
)

var _ latexworkshop.ExtrasService = (*ExtrasService)(nil)

// ExtrasService is a mock implementation of latexworkshop.ExtrasService.
type ExtrasService struct {
	ExtrasFn func(ctx context.Context) (latexworkshop.Table, error)
}

func (s *ExtrasService) Extras(ctx context.Context) (latexworkshop.Table, error) {
	return s.ExtrasFn(ctx)
}
