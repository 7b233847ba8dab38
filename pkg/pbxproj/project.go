// Copyright © 2018 One Concern

// Package pbxproj locates and edits build phase sections in Xcode
// project.pbxproj files.
//
// The pbxproj format is a serialized property list with a grammar of its
// own. This package deliberately does not parse it: sections are located by
// scanning the raw text for "/* <phase> */ = { ... };" spans and entries are
// individual lines of the files list. Everything outside an edited span is
// carried over byte for byte.
package pbxproj

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultPhase is the build phase targeted when none is specified.
const DefaultPhase = "Copy Bundle Resources"

// Section is a single build phase span found in a pbxproj document.
type Section struct {
	Phase string // phase name as it appears in the section comment
	Raw   string // full text of the span, braces and trailing semicolon included
	Start int    // byte offset of the span in the scanned document
	End   int    // byte offset one past the span
}

func phasePattern(phase string) (*regexp.Regexp, error) {
	// non-greedy body so adjacent sections do not bleed into each other
	return regexp.Compile(`(?s)/\* ` + regexp.QuoteMeta(phase) + ` \*/ = \{.*?\};`)
}

// Sections returns every span of the named build phase, in document order.
func Sections(doc, phase string) ([]Section, error) {
	re, err := phasePattern(phase)
	if err != nil {
		return nil, fmt.Errorf("invalid phase name %q: %w", phase, err)
	}
	var sections []Section
	for _, loc := range re.FindAllStringIndex(doc, -1) {
		sections = append(sections, Section{
			Phase: phase,
			Raw:   doc[loc[0]:loc[1]],
			Start: loc[0],
			End:   loc[1],
		})
	}
	return sections, nil
}

var anySectionRe = regexp.MustCompile(`(?s)/\* ([^*/]+) \*/ = \{.*?\};`)

// BuildPhases returns every build phase span in the document, whatever its
// name. A span qualifies when its body declares a PBX*BuildPhase isa.
func BuildPhases(doc string) []Section {
	var sections []Section
	for _, loc := range anySectionRe.FindAllStringSubmatchIndex(doc, -1) {
		raw := doc[loc[0]:loc[1]]
		if !strings.Contains(raw, "BuildPhase;") {
			continue
		}
		sections = append(sections, Section{
			Phase: doc[loc[2]:loc[3]],
			Raw:   raw,
			Start: loc[0],
			End:   loc[1],
		})
	}
	return sections
}

// Contains reports whether any line of the section mentions name.
func (s Section) Contains(name string) bool {
	return strings.Contains(s.Raw, name)
}
