package latexworkshop

import "context"

// DocumentationBaseURL is the prefix of every package's documentation
// link on CTAN. The full URL is the prefix followed by the package key.
const DocumentationBaseURL = "https://ctan.org/pkg/"

// CatalogEntry is a raw package record from the CTAN catalog.
type CatalogEntry struct {
	Key     string `json:"key"`
	Caption string `json:"caption"`
}

// CatalogService fetches the CTAN package catalog.
type CatalogService interface {
	// FetchPackages retrieves the full package catalog, keyed by
	// package name.
	FetchPackages(ctx context.Context) (Table, error)
}

// BuildCatalog converts raw catalog entries into a completion table
// keyed by package name. Each entry's command is its key and its
// documentation URL is derived from the key. Entries with a missing
// key or caption indicate malformed upstream data and return EINVALID.
func BuildCatalog(entries []CatalogEntry) (Table, error) {
	catalog := make(Table, len(entries))
	for i, e := range entries {
		if e.Key == "" {
			return nil, Errorf(EINVALID, "catalog entry %d: key required", i)
		}
		if e.Caption == "" {
			return nil, Errorf(EINVALID, "catalog entry %q: caption required", e.Key)
		}
		catalog[e.Key] = Completion{
			Command:       e.Key,
			Detail:        e.Caption,
			Documentation: DocumentationBaseURL + e.Key,
		}
	}
	return catalog, nil
}
