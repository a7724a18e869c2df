package main

import (
	"context"
	"io"

	latexworkshop "github.com/Jeff-Tian/LaTeX-Workshop"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Catalog latexworkshop.CatalogService
	Extras  latexworkshop.ExtrasService
	Store   latexworkshop.TableStore
}

// GenerateCmd builds both completion tables from the remote catalog and
// the local installation.
type GenerateCmd struct {
	TexmfDir string
}
