package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mikey/student-lookup/internal/core"
)

func TestWriteRecords(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out, zap.NewNop())

	err := r.WriteRecords([]core.StudentRecord{
		{Index: "1", Surname: "Doe", GivenName: "John", UID: "jdoe", Mail: "a@example.com"},
		{Index: "2", Surname: "Smith", GivenName: "Jane Q", UID: "jsmith", Mail: "b@example.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, "1,Doe,John,jdoe,a@example.com\n2,Smith,Jane Q,jsmith,b@example.com\n", out.String())
}

func TestWriteRecordsEmitsNoHeader(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out, zap.NewNop())

	require.NoError(t, r.WriteRecords(nil))
	assert.Empty(t, out.String())
}

func TestReportMissing(t *testing.T) {
	obs, logs := observer.New(zap.WarnLevel)
	r := NewReporter(&bytes.Buffer{}, zap.New(obs))

	r.ReportMissing([]string{"a@example.com", "b@example.com"})

	summary := logs.FilterMessage("Some email addresses were not found in the directory").All()
	require.Len(t, summary, 1)
	assert.Equal(t, int64(2), summary[0].ContextMap()["count"])

	warnings := logs.FilterMessage("Missing email address").All()
	require.Len(t, warnings, 2)
	assert.Equal(t, "a@example.com", warnings[0].ContextMap()["email"])
	assert.Equal(t, "b@example.com", warnings[1].ContextMap()["email"])
}

func TestReportMissingSilentWhenNoneMissing(t *testing.T) {
	obs, logs := observer.New(zap.WarnLevel)
	r := NewReporter(&bytes.Buffer{}, zap.New(obs))

	r.ReportMissing(nil)

	assert.Zero(t, logs.Len())
}
