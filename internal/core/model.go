package core

// DirectoryEntry represents a raw record returned by the directory service,
// keyed by its distinguished name
type DirectoryEntry struct {
	DN         string
	Attributes map[string][]string
}

// First returns the first value of the named attribute
func (e *DirectoryEntry) First(name string) (string, bool) {
	values, ok := e.Attributes[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// StudentRecord represents the mapped, human-readable result for one entry
type StudentRecord struct {
	Index     string
	Surname   string
	GivenName string
	UID       string
	Mail      string
}

// LookupResult represents the outcome of one batch resolution: the mapped
// records plus the requested addresses the directory did not return
type LookupResult struct {
	Records []StudentRecord
	Missing []string
}
