// Package fs provides file-based input and output for completion tables.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"

	latexworkshop "github.com/Jeff-Tian/LaTeX-Workshop"
)

// PackagesFileName is the output file for \usepackage completions.
const PackagesFileName = "packagenames.json"

// ClassesFileName is the output file for \documentclass completions.
const ClassesFileName = "classnames.json"

// Ensure TableStore implements latexworkshop.TableStore at compile time.
var _ latexworkshop.TableStore = (*TableStore)(nil)

// TableStore implements latexworkshop.TableStore with atomic update
// semantics. Tables are saved next to their final location with a .tmp
// suffix, then moved into place on Commit.
type TableStore struct {
	dir   string
	saved []string
}

// NewTableStore creates a new TableStore writing into dir.
// The directory is created on the first save if it does not exist.
func NewTableStore(dir string) *TableStore {
	return &TableStore{dir: dir}
}

func (s *TableStore) tempPath(name string) string {
	return filepath.Join(s.dir, name+".tmp")
}

func (s *TableStore) finalPath(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *TableStore) SavePackages(ctx context.Context, packages latexworkshop.Table) error {
	return s.save(PackagesFileName, packages)
}

func (s *TableStore) SaveClasses(ctx context.Context, classes latexworkshop.Table) error {
	return s.save(ClassesFileName, classes)
}

func (s *TableStore) save(name string, table latexworkshop.Table) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := EncodeTable(&buf, table); err != nil {
		return err
	}
	if err := os.WriteFile(s.tempPath(name), buf.Bytes(), 0644); err != nil {
		return err
	}

	if !slices.Contains(s.saved, name) {
		s.saved = append(s.saved, name)
	}
	return nil
}

// EncodeTable writes a table as indented JSON with keys in sorted
// order. HTML escaping is off so captions keep characters like & and
// non-ASCII text literally.
func EncodeTable(w io.Writer, table latexworkshop.Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(table)
}

func (s *TableStore) Commit() error {
	for _, name := range s.saved {
		if err := os.Rename(s.tempPath(name), s.finalPath(name)); err != nil {
			return err
		}
	}
	s.saved = nil
	return nil
}

func (s *TableStore) Abort() error {
	for _, name := range s.saved {
		if err := os.RemoveAll(s.tempPath(name)); err != nil {
			return err
		}
	}
	s.saved = nil
	return nil
}
