package texmf

import (
	"strings"

	latexworkshop "github.com/Jeff-Tian/LaTeX-Workshop"
)

// ResolvePackages returns a completion entry for every catalog package
// whose style file is present in the file database. Each entry keeps
// the catalog detail and documentation link, while its command is the
// name of the style file itself so that \usepackage completes to a
// loadable argument.
func ResolvePackages(catalog latexworkshop.Table, idx *Index) latexworkshop.Table {
	all := make(map[string]struct{}, len(idx.AllFiles))
	for _, f := range idx.AllFiles {
		all[f] = struct{}{}
	}

	packages := make(latexworkshop.Table)
	for name, entry := range catalog {
		command := styleCommand(name, idx, all)
		if command == "" {
			continue
		}
		entry.Command = command
		packages[name] = entry
	}

	return packages
}

// styleCommand locates the style file that loads the given package and
// returns its name without the extension. The installed file can differ
// from the package name in case, so a case-insensitive pass over the
// package's own files runs after the exact lookups.
func styleCommand(name string, idx *Index, all map[string]struct{}) string {
	want := name + ".sty"
	if _, ok := all[want]; ok {
		return name
	}

	files, ok := idx.PackageFiles[name]
	if !ok {
		return ""
	}
	for _, f := range files {
		if f == want {
			return name
		}
	}
	for _, f := range files {
		if strings.EqualFold(f, want) {
			return stem(f)
		}
	}

	return ""
}

// ExtractClasses returns a completion entry for every class file in
// files. Classes listed in the catalog carry its detail and
// documentation link; unlisted ones still complete, with empty details.
func ExtractClasses(catalog latexworkshop.Table, files []string) latexworkshop.Table {
	classes := make(latexworkshop.Table)
	for _, f := range files {
		if !strings.HasSuffix(f, ".cls") {
			continue
		}
		name := stem(f)
		completion := latexworkshop.Completion{Command: name}
		if entry, ok := catalog[name]; ok {
			completion.Detail = entry.Detail
			completion.Documentation = entry.Documentation
		}
		classes[name] = completion
	}

	return classes
}
