package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/lhgen-dev/lhgen/internal/branding"
	"github.com/lhgen-dev/lhgen/internal/scaffold"
)

func printResult(w io.Writer, root string, result *scaffold.Result, dryRun bool) {
	rel := result.Path
	if r, err := filepath.Rel(root, result.Path); err == nil {
		rel = r
	}

	if dryRun {
		if result.Diff != "" {
			fmt.Fprintf(w, "%s (existing file differs):\n", rel)
			printDiff(w, result.Diff)
		} else {
			fmt.Fprintf(w, "%s:\n", rel)
			fmt.Fprint(w, result.Content)
		}
		printWarnings(w, result.Warnings)
		return
	}

	color.New(color.FgGreen).Fprintf(w, "%s created successfully.\n", result.Kind.Label)
	fmt.Fprintf(w, "  %s\n", rel)
	printWarnings(w, result.Warnings)

	if result.Kind.Name == scaffold.KindDirective.Name {
		fmt.Fprintln(w, "\nNext steps:")
		fmt.Fprintf(w, "  1. Describe the directive in definition() of %s\n", rel)
		fmt.Fprintf(w, "  2. See %s\n", branding.DocsURL())
	}
}

func printDiff(w io.Writer, diff string) {
	add := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case line == "":
		case strings.HasPrefix(line, "+ "):
			add.Fprint(w, line)
		case strings.HasPrefix(line, "- "):
			del.Fprint(w, line)
		default:
			fmt.Fprint(w, line)
		}
	}
}

func printWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(w, "\nWarnings:")
	for _, msg := range warnings {
		color.New(color.FgYellow).Fprintf(w, "  - %s\n", msg)
	}
}

func printWarning(w io.Writer, msg string) {
	color.New(color.FgYellow).Fprintf(w, "warning: %s\n", msg)
}
