package cmd

import (
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

// printDiff writes a unified diff of the pending patch to stdout, with
// added and removed lines colorized.
func printDiff(path, before, after string) error {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path + " (patched)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return err
	}
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			infoLogger.Println(color.GreenString("%s", line))
		case strings.HasPrefix(line, "-"):
			infoLogger.Println(color.RedString("%s", line))
		case strings.HasPrefix(line, "@@"):
			infoLogger.Println(color.HiBlackString("%s", line))
		default:
			infoLogger.Println(line)
		}
	}
	return nil
}
