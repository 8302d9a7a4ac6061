package core

import (
	"strings"
)

// BuildMailFilter compiles a list of email addresses into a single directory
// search filter matching any record whose mail attribute equals one of them,
// e.g. (|(mail=a@example.com)(mail=b@example.com)).
//
// Addresses must already be validated: the address pattern admits none of the
// filter grammar's metacharacters, so no escaping is applied here.
func BuildMailFilter(addresses []string) string {
	var b strings.Builder
	b.WriteString("(|")
	for _, addr := range addresses {
		b.WriteString("(mail=")
		b.WriteString(addr)
		b.WriteString(")")
	}
	b.WriteString(")")
	return b.String()
}
