package latexworkshop

import "context"

// TableStore persists completion tables with atomic semantics.
// Save methods write to a temporary location; Commit makes every saved
// table permanent; Abort discards pending changes. Either both output
// tables land or neither does.
type TableStore interface {
	SavePackages(ctx context.Context, packages Table) error
	SaveClasses(ctx context.Context, classes Table) error
	Commit() error
	Abort() error
}
