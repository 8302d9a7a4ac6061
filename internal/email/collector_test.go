package email

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		address string
		valid   bool
	}{
		{name: "plain address", address: "jdoe@example.com", valid: true},
		{name: "dots and dashes in local part", address: "john.doe-1@example.com", valid: true},
		{name: "subdomain", address: "jdoe@students.uni.example.edu", valid: true},
		{name: "two letter tld", address: "jdoe@example.rs", valid: true},
		{name: "missing at sign", address: "jdoe.example.com", valid: false},
		{name: "missing domain dot", address: "jdoe@example", valid: false},
		{name: "tld too long", address: "jdoe@example.museum", valid: false},
		{name: "tld too short", address: "jdoe@example.c", valid: false},
		{name: "embedded space", address: "j doe@example.com", valid: false},
		{name: "empty string", address: "", valid: false},
		{name: "filter metacharacters", address: "j*doe@example.com", valid: false},
		{name: "non-ascii word characters", address: "jörg@example.com", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]string{tt.address})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateFailsOnFirstInvalidAddress(t *testing.T) {
	err := Validate([]string{"ok@example.com", "bad-one", "also-bad"})

	var invalid *InvalidAddressError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "bad-one", invalid.Address)
}

func TestCollectFromExplicitList(t *testing.T) {
	c := NewCollector("", []string{"a@example.com", "b@example.com"}, strings.NewReader(""), zap.NewNop())

	addresses, err := c.Collect()
	require.NoError(t, err)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, addresses)
}

func TestCollectFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emails.txt")
	require.NoError(t, os.WriteFile(path, []byte("a@example.com\nb@example.com\n"), 0o600))

	c := NewCollector(path, nil, strings.NewReader(""), zap.NewNop())

	addresses, err := c.Collect()
	require.NoError(t, err)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, addresses)
}

func TestCollectFilePrecedesList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emails.txt")
	require.NoError(t, os.WriteFile(path, []byte("file@example.com\n"), 0o600))

	c := NewCollector(path, []string{"list@example.com"}, strings.NewReader(""), zap.NewNop())

	addresses, err := c.Collect()
	require.NoError(t, err)
	assert.Equal(t, []string{"file@example.com"}, addresses)
}

func TestCollectFromStdin(t *testing.T) {
	stdin := strings.NewReader("a@example.com\n  b@example.com  \n")
	c := NewCollector("", nil, stdin, zap.NewNop())

	addresses, err := c.Collect()
	require.NoError(t, err)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, addresses)
}

func TestCollectBlankLineIsInvalid(t *testing.T) {
	stdin := strings.NewReader("a@example.com\n\nb@example.com\n")
	c := NewCollector("", nil, stdin, zap.NewNop())

	_, err := c.Collect()

	var invalid *InvalidAddressError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "", invalid.Address)
}

func TestCollectInvalidAddressAborts(t *testing.T) {
	c := NewCollector("", []string{"good@example.com", "not-an-email"}, strings.NewReader(""), zap.NewNop())

	addresses, err := c.Collect()

	var invalid *InvalidAddressError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "not-an-email", invalid.Address)
	assert.Nil(t, addresses)
}

func TestCollectMissingFileFails(t *testing.T) {
	c := NewCollector(filepath.Join(t.TempDir(), "absent.txt"), nil, strings.NewReader(""), zap.NewNop())

	_, err := c.Collect()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}
