// Package texmf reads the ls-R file database of a TeX Live installation
// and matches the files it lists against the CTAN package catalog.
package texmf

import (
	"bufio"
	"io"
	"path"
	"strings"

	latexworkshop "github.com/Jeff-Tian/LaTeX-Workshop"
)

// IndexFileName is the name of the file database at the root of a
// TEXMF tree, as maintained by mktexlsr.
const IndexFileName = "ls-R"

// Index holds the style, class and definition files recorded in an
// ls-R file database, grouped by the catalog package they belong to.
type Index struct {
	// PackageFiles maps a catalog package name to the files listed
	// under directories named after that package.
	PackageFiles map[string][]string

	// AllFiles lists every file found under a recognized package
	// directory, in database order.
	AllFiles []string
}

// ParseIndex reads an ls-R database and collects its .sty, .def and
// .cls files. The database groups files into blocks, each introduced
// by a directory header such as "./tex/latex/amsmath:" and closed by a
// blank line. A block is attributed to the innermost path segment of
// its header that names a package in the catalog; blocks under
// unrecognized directories are ignored entirely.
func ParseIndex(r io.Reader, catalog latexworkshop.Table) (*Index, error) {
	idx := &Index{PackageFiles: make(map[string][]string)}

	pkg := ""
	var files []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		// Documentation and source trees hold no loadable files.
		if strings.HasPrefix(line, "./doc") || strings.HasPrefix(line, "./source") {
			continue
		}

		if strings.HasPrefix(line, "./") && strings.HasSuffix(line, ":") {
			pkg = blockPackage(strings.TrimSuffix(line, ":"), catalog)
			files = nil
			continue
		}

		if pkg == "" {
			continue
		}

		if line == "" {
			// A blank line closes the block. Blocks for the same
			// package can appear more than once, so merge.
			if len(files) > 0 {
				idx.PackageFiles[pkg] = append(idx.PackageFiles[pkg], files...)
			}
			pkg = ""
			continue
		}

		name := path.Base(line)
		switch ext(name) {
		case ".sty", ".def", ".cls":
			files = append(files, name)
			idx.AllFiles = append(idx.AllFiles, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, latexworkshop.Errorf(latexworkshop.EINTERNAL, "read file database: %v", err)
	}

	return idx, nil
}

// blockPackage scans the segments of a header directory from innermost
// to outermost and returns the first one that names a catalog package,
// or "" if none does.
func blockPackage(dir string, catalog latexworkshop.Table) string {
	segments := strings.Split(dir, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		if seg == "" || seg == "." {
			continue
		}
		if _, ok := catalog[seg]; ok {
			return seg
		}
	}
	return ""
}

// ext returns the extension of a file name, including the leading dot.
// A name that is nothing but an extension, such as ".cls", or that ends
// in a dot has no extension.
func ext(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

// stem returns a file name with its extension removed.
func stem(name string) string {
	if e := ext(name); e != "" {
		return strings.TrimSuffix(name, e)
	}
	return name
}
