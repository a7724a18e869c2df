package texmf_test

import (
	"strings"
	"testing"

	latexworkshop "github.com/Jeff-Tian/LaTeX-Workshop"
	"github.com/Jeff-Tian/LaTeX-Workshop/texmf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndex(t *testing.T) {
	t.Parallel()

	catalog := latexworkshop.Table{
		"amsmath":  {Command: "amsmath", Detail: "AMS mathematical facilities for LaTeX"},
		"graphics": {Command: "graphics", Detail: "Standard LaTeX graphics"},
		"latex":    {Command: "latex", Detail: "A TeX macro package"},
	}

	t.Run("collects style, definition and class files by package", func(t *testing.T) {
		t.Parallel()

		input := `% ls-R -- filename database for kpathsea; do not change this file.

./tex/latex/amsmath:
amsbsy.sty
amsmath.sty
amstex.def
testmath.tex
README

`

		idx, err := texmf.ParseIndex(strings.NewReader(input), catalog)
		require.NoError(t, err)

		assert.Equal(t, []string{"amsbsy.sty", "amsmath.sty", "amstex.def"}, idx.PackageFiles["amsmath"])
		assert.Equal(t, []string{"amsbsy.sty", "amsmath.sty", "amstex.def"}, idx.AllFiles)
	})

	t.Run("skips documentation and source trees", func(t *testing.T) {
		t.Parallel()

		input := `./doc/latex/amsmath:
amsmath.pdf
amsmath.sty

./source/latex/amsmath:
amsmath.dtx
amsmath.sty

`

		idx, err := texmf.ParseIndex(strings.NewReader(input), catalog)
		require.NoError(t, err)

		assert.Empty(t, idx.PackageFiles)
		assert.Empty(t, idx.AllFiles)
	})

	t.Run("ignores blocks under unrecognized directories", func(t *testing.T) {
		t.Parallel()

		input := `./fonts/opentype/public/somefont:
somefont.sty

`

		idx, err := texmf.ParseIndex(strings.NewReader(input), catalog)
		require.NoError(t, err)

		assert.Empty(t, idx.PackageFiles)
		assert.Empty(t, idx.AllFiles)
	})

	t.Run("attributes a block to the innermost matching segment", func(t *testing.T) {
		t.Parallel()

		input := `./tex/latex/graphics:
graphics.sty

`

		idx, err := texmf.ParseIndex(strings.NewReader(input), catalog)
		require.NoError(t, err)

		assert.Equal(t, []string{"graphics.sty"}, idx.PackageFiles["graphics"])
		assert.NotContains(t, idx.PackageFiles, "latex")
	})

	t.Run("matches a top-level package directory", func(t *testing.T) {
		t.Parallel()

		input := `./amsmath:
amsmath.sty

`

		idx, err := texmf.ParseIndex(strings.NewReader(input), catalog)
		require.NoError(t, err)

		assert.Equal(t, []string{"amsmath.sty"}, idx.PackageFiles["amsmath"])
	})

	t.Run("falls back to an outer segment when the innermost is unknown", func(t *testing.T) {
		t.Parallel()

		input := `./tex/latex/unknowndir:
special.sty

`

		idx, err := texmf.ParseIndex(strings.NewReader(input), catalog)
		require.NoError(t, err)

		assert.Equal(t, []string{"special.sty"}, idx.PackageFiles["latex"])
	})

	t.Run("merges repeated blocks for the same package", func(t *testing.T) {
		t.Parallel()

		input := `./tex/latex/amsmath:
amsmath.sty

./tex/latex/amsmath/extra:
amsextra.sty

`

		idx, err := texmf.ParseIndex(strings.NewReader(input), catalog)
		require.NoError(t, err)

		assert.Equal(t, []string{"amsmath.sty", "amsextra.sty"}, idx.PackageFiles["amsmath"])
	})

	t.Run("keeps only the base name of a listed path", func(t *testing.T) {
		t.Parallel()

		input := `./tex/latex/amsmath:
subdir/amsmath.sty

`

		idx, err := texmf.ParseIndex(strings.NewReader(input), catalog)
		require.NoError(t, err)

		assert.Equal(t, []string{"amsmath.sty"}, idx.AllFiles)
	})

	t.Run("leaves a block open at end of input", func(t *testing.T) {
		t.Parallel()

		// Without a closing blank line the block never lands in
		// PackageFiles, though its files are still seen.
		input := `./tex/latex/amsmath:
amsmath.sty`

		idx, err := texmf.ParseIndex(strings.NewReader(input), catalog)
		require.NoError(t, err)

		assert.Empty(t, idx.PackageFiles)
		assert.Equal(t, []string{"amsmath.sty"}, idx.AllFiles)
	})

	t.Run("skips names without a usable extension", func(t *testing.T) {
		t.Parallel()

		input := `./tex/latex/amsmath:
.cls
trailingdot.
Makefile
amsmath.sty

`

		idx, err := texmf.ParseIndex(strings.NewReader(input), catalog)
		require.NoError(t, err)

		assert.Equal(t, []string{"amsmath.sty"}, idx.AllFiles)
	})

	t.Run("records nothing for a block with no matching files", func(t *testing.T) {
		t.Parallel()

		input := `./tex/latex/amsmath:
README
amsmath.tex

`

		idx, err := texmf.ParseIndex(strings.NewReader(input), catalog)
		require.NoError(t, err)

		assert.Empty(t, idx.PackageFiles)
	})

	t.Run("handles an empty database", func(t *testing.T) {
		t.Parallel()

		idx, err := texmf.ParseIndex(strings.NewReader(""), catalog)
		require.NoError(t, err)

		assert.Empty(t, idx.PackageFiles)
		assert.Empty(t, idx.AllFiles)
	})
}
