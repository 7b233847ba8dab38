// Copyright © 2018 One Concern

package pbxproj

import (
	"strings"
)

// Patch reports the outcome of a removal pass over a document.
type Patch struct {
	Doc      string   // patched document
	Modified bool     // true when Doc differs from the input
	Removed  []string // raw lines dropped, one per modified section
}

// RemoveResource drops the named resource from every section of the named
// phase that mentions it, and returns the patched document.
//
// Inside each matching section only the first line containing the name is
// removed. When the preceding line ends with a comma, that trailing comma is
// trimmed as well, so the files list stays well formed when the dropped line
// was its last element.
func RemoveResource(doc, phase, name string) (Patch, error) {
	sections, err := Sections(doc, phase)
	if err != nil {
		return Patch{}, err
	}
	p := Patch{Doc: doc}
	// splice back to front so recorded section offsets stay valid
	for i := len(sections) - 1; i >= 0; i-- {
		s := sections[i]
		if !s.Contains(name) {
			continue
		}
		patched, removed := removeLine(s.Raw, name)
		if removed == "" {
			continue
		}
		p.Doc = p.Doc[:s.Start] + patched + p.Doc[s.End:]
		p.Removed = append(p.Removed, removed)
		p.Modified = true
	}
	return p, nil
}

func removeLine(section, name string) (patched, removed string) {
	lines := strings.Split(section, "\n")
	for i, line := range lines {
		if !strings.Contains(line, name) {
			continue
		}
		if i > 0 && strings.HasSuffix(strings.TrimRight(lines[i-1], " \t"), ",") {
			lines[i-1] = strings.TrimRight(lines[i-1], ",")
		}
		removed = line
		lines = append(lines[:i], lines[i+1:]...)
		break
	}
	return strings.Join(lines, "\n"), removed
}
