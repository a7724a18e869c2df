package main

import (
	"fmt"
	"os"
	"path/filepath"

	latexworkshop "github.com/Jeff-Tian/LaTeX-Workshop"
	"github.com/Jeff-Tian/LaTeX-Workshop/texmf"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Catalog.FetchPackages(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", latexworkshop.ErrorMessage(err))
		return err
	}

	indexPath := filepath.Join(c.TexmfDir, texmf.IndexFileName)
	f, err := os.Open(indexPath)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: pass the root of a TeX installation, the directory holding ls-R")
		return fmt.Errorf("failed to open file database at %q: %w", indexPath, err)
	}
	defer f.Close()

	idx, err := texmf.ParseIndex(f, catalog)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", latexworkshop.ErrorMessage(err))
		return err
	}

	packages := texmf.ResolvePackages(catalog, idx)

	extras, err := deps.Extras.Extras(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", latexworkshop.ErrorMessage(err))
		return err
	}
	packages = latexworkshop.MergeExtras(packages, extras)

	classes := texmf.ExtractClasses(catalog, idx.AllFiles)

	// Save both tables, then commit so either both reach their final
	// names or neither does.
	if err := deps.Store.SavePackages(deps.Ctx, packages); err != nil {
		_ = deps.Store.Abort()
		fmt.Fprintf(deps.Stderr, "error saving packages: %v\n", err)
		return err
	}
	if err := deps.Store.SaveClasses(deps.Ctx, classes); err != nil {
		_ = deps.Store.Abort()
		fmt.Fprintf(deps.Stderr, "error saving classes: %v\n", err)
		return err
	}
	if err := deps.Store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error committing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d packages and %d classes\n", len(packages), len(classes))
	return nil
}
