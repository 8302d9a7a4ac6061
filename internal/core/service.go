package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// LookupService is the core service resolving email addresses to student records
type LookupService struct {
	searcher DirectorySearcher
	reporter ReportWriter
	logger   *zap.Logger
}

// NewLookupService creates a new lookup service
func NewLookupService(searcher DirectorySearcher, reporter ReportWriter, logger *zap.Logger) *LookupService {
	return &LookupService{
		searcher: searcher,
		reporter: reporter,
		logger:   logger,
	}
}

// Resolve runs one batch lookup: build the filter, execute the search, map
// every entry and reconcile the requested addresses against the returned ones.
// Addresses must already be validated.
func (s *LookupService) Resolve(ctx context.Context, addresses []string) (*LookupResult, error) {
	filter := BuildMailFilter(addresses)
	s.logger.Debug("Built directory search filter",
		zap.Int("addresses", len(addresses)),
		zap.String("filter", filter))

	entries, err := s.searcher.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("directory search failed: %w", err)
	}
	s.logger.Debug("Directory search completed", zap.Int("entries", len(entries)))

	records := make([]StudentRecord, 0, len(entries))
	for _, entry := range entries {
		record, err := MapEntry(entry)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return &LookupResult{
		Records: records,
		Missing: missingAddresses(addresses, entries),
	}, nil
}

// Run resolves the given addresses and hands the outcome to the reporter.
// Missing addresses produce diagnostics only and do not fail the run.
func (s *LookupService) Run(ctx context.Context, addresses []string) error {
	result, err := s.Resolve(ctx, addresses)
	if err != nil {
		return err
	}

	if err := s.reporter.WriteRecords(result.Records); err != nil {
		return err
	}
	s.reporter.ReportMissing(result.Missing)

	return nil
}

// missingAddresses reports requested addresses absent from the returned
// entries, in request order. The check only fires when the two counts
// differ: equal counts with differing address sets go unreported. Known
// limitation.
func missingAddresses(requested []string, entries []*DirectoryEntry) []string {
	if len(requested) == len(entries) {
		return nil
	}

	returned := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if mail, ok := entry.First("mail"); ok {
			returned[mail] = struct{}{}
		}
	}

	var missing []string
	for _, addr := range requested {
		if _, ok := returned[addr]; !ok {
			missing = append(missing, addr)
		}
	}
	return missing
}
