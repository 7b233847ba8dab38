// Copyright © 2018 One Concern

package pbxproj

import (
	"regexp"
	"strings"
)

// Entry is one file reference line in a section's files list,
// e.g. `0123ABCD... /* InstaMathInfo.plist in Resources */,`.
type Entry struct {
	ID   string // 24 hex digit object id
	Name string // file name
	Raw  string // the whole line, untrimmed
}

var entryRe = regexp.MustCompile(`^\s*([0-9A-Fa-f]{24}) /\* (.+?) in (?:.+?) \*/,?\s*$`)

// Entries parses the file reference lines of the section. Lines that do not
// look like file references are skipped.
func (s Section) Entries() []Entry {
	var entries []Entry
	for _, line := range strings.Split(s.Raw, "\n") {
		m := entryRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entries = append(entries, Entry{ID: m[1], Name: m[2], Raw: line})
	}
	return entries
}
