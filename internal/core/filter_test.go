package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMailFilter(t *testing.T) {
	tests := []struct {
		name      string
		addresses []string
		expected  string
	}{
		{
			name:      "single address",
			addresses: []string{"a@example.com"},
			expected:  "(|(mail=a@example.com))",
		},
		{
			name:      "multiple addresses",
			addresses: []string{"a@example.com", "b@example.com", "c@example.com"},
			expected:  "(|(mail=a@example.com)(mail=b@example.com)(mail=c@example.com))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildMailFilter(tt.addresses))
		})
	}
}

func TestBuildMailFilterOneClausePerAddress(t *testing.T) {
	addresses := []string{"x@uni.edu", "y@uni.edu", "z@uni.edu", "w@uni.edu"}
	filter := BuildMailFilter(addresses)

	assert.True(t, strings.HasPrefix(filter, "(|"))
	assert.True(t, strings.HasSuffix(filter, "))"))
	assert.Equal(t, len(addresses), strings.Count(filter, "(mail="))
	for _, addr := range addresses {
		assert.Contains(t, filter, "(mail="+addr+")")
	}
}
