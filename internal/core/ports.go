package core

import (
	"context"
)

// DirectorySearcher defines the interface for executing one search against
// the student directory
type DirectorySearcher interface {
	// Search executes a single subtree-scoped search with the given filter
	// and returns the raw matching entries
	Search(ctx context.Context, filter string) ([]*DirectoryEntry, error)
}

// ReportWriter defines the interface for emitting resolved records and
// missing-address diagnostics
type ReportWriter interface {
	// WriteRecords emits one output row per record
	WriteRecords(records []StudentRecord) error

	// ReportMissing emits a diagnostic for each address the directory did
	// not return, in the order given
	ReportMissing(addresses []string)
}
