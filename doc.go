/*
Package pbxpatch provides CLI tooling to patch Xcode project configuration files.

The tool edits the serialized text of project.pbxproj files rather than
parsing the pbxproj grammar: build phase sections are located by scanning
the raw text and single resource entries are removed line-wise, with a
backup of the file taken before any change.
*/
package pbxpatch
