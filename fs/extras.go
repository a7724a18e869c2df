package fs

import (
	"context"
	"encoding/json"
	"os"

	latexworkshop "github.com/Jeff-Tian/LaTeX-Workshop"
)

// ExtrasFileName is the curated list of packages merged into the
// resolved output to cover packages the file database cannot resolve.
const ExtrasFileName = "extra-packagenames.json"

// Ensure ExtrasFile implements latexworkshop.ExtrasService at compile time.
var _ latexworkshop.ExtrasService = (*ExtrasFile)(nil)

// ExtrasFile reads a manually curated completion table from a JSON file.
type ExtrasFile struct {
	path string
}

// NewExtrasFile creates an ExtrasFile reading from the given path.
func NewExtrasFile(path string) *ExtrasFile {
	return &ExtrasFile{path: path}
}

// Extras loads the curated table from disk. A missing file is an error.
func (e *ExtrasFile) Extras(ctx context.Context) (latexworkshop.Table, error) {
	data, err := os.ReadFile(e.path)
	if err != nil {
		return nil, err
	}

	var table latexworkshop.Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, latexworkshop.Errorf(latexworkshop.EINVALID, "malformed extras file %s: %v", e.path, err)
	}

	return table, nil
}
