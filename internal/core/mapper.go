package core

import (
	"fmt"
	"strings"
)

// requiredAttributes are the directory attributes every matched entry must carry
var requiredAttributes = []string{"mail", "gecos", "uid"}

// MissingAttributeError indicates a directory entry lacking a required attribute.
// This is a contract violation by the directory and fatal for the whole run.
type MissingAttributeError struct {
	DN        string
	Attribute string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("directory entry %s is missing required attribute %q", e.DN, e.Attribute)
}

// MalformedGecosError indicates a gecos value that cannot be decomposed into
// index, surname and given name
type MalformedGecosError struct {
	DN    string
	Gecos string
}

func (e *MalformedGecosError) Error() string {
	return fmt.Sprintf("directory entry %s has malformed gecos value %q: want \"<index> <surname> <given-name>\"", e.DN, e.Gecos)
}

// MapEntry extracts the first value of each required attribute from a raw
// directory entry and decomposes gecos into index, surname and given name.
// The gecos value is split on the first two spaces only, so a multi-word
// given name survives intact; trailing whitespace is trimmed from the given
// name alone.
func MapEntry(entry *DirectoryEntry) (StudentRecord, error) {
	values := make(map[string]string, len(requiredAttributes))
	for _, attr := range requiredAttributes {
		value, ok := entry.First(attr)
		if !ok {
			return StudentRecord{}, &MissingAttributeError{DN: entry.DN, Attribute: attr}
		}
		values[attr] = value
	}

	parts := strings.SplitN(values["gecos"], " ", 3)
	if len(parts) < 3 {
		return StudentRecord{}, &MalformedGecosError{DN: entry.DN, Gecos: values["gecos"]}
	}

	return StudentRecord{
		Index:     parts[0],
		Surname:   parts[1],
		GivenName: strings.TrimRight(parts[2], " \t\r\n"),
		UID:       values["uid"],
		Mail:      values["mail"],
	}, nil
}
