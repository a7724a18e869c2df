package latexworkshop

import "context"

// ExtrasService supplies the manually curated supplemental package
// table maintained alongside the generated data.
type ExtrasService interface {
	// Extras returns the supplemental package table.
	Extras(ctx context.Context) (Table, error)
}

// MergeExtras returns a new table containing every entry of packages
// plus any extras entry whose key is not already present. Existing
// entries are never overwritten: catalog-derived resolution wins over
// manual extras.
func MergeExtras(packages, extras Table) Table {
	merged := make(Table, len(packages)+len(extras))
	for key, entry := range packages {
		merged[key] = entry
	}
	for key, entry := range extras {
		if _, ok := merged[key]; !ok {
			merged[key] = entry
		}
	}
	return merged
}
