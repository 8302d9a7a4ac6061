package report

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mikey/student-lookup/internal/core"
)

// Reporter implements core.ReportWriter: records as comma-delimited lines on
// the output writer, diagnostics through the logger (stderr)
type Reporter struct {
	out    io.Writer
	logger *zap.Logger
}

// NewReporter creates a new CSV reporter
func NewReporter(out io.Writer, logger *zap.Logger) *Reporter {
	return &Reporter{
		out:    out,
		logger: logger,
	}
}

// WriteRecords emits one line per record: index,surname,given-name,uid,mail.
// No header row, no quoting of embedded commas.
func (r *Reporter) WriteRecords(records []core.StudentRecord) error {
	for _, rec := range records {
		_, err := fmt.Fprintf(r.out, "%s,%s,%s,%s,%s\n",
			rec.Index, rec.Surname, rec.GivenName, rec.UID, rec.Mail)
		if err != nil {
			return fmt.Errorf("failed to write record for %s: %w", rec.Mail, err)
		}
	}
	return nil
}

// ReportMissing warns about every requested address the directory did not
// return. Non-fatal: the run still succeeds.
func (r *Reporter) ReportMissing(addresses []string) {
	if len(addresses) == 0 {
		return
	}

	r.logger.Warn("Some email addresses were not found in the directory",
		zap.Int("count", len(addresses)))
	for _, addr := range addresses {
		r.logger.Warn("Missing email address", zap.String("email", addr))
	}
}
