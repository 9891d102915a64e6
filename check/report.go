package check

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Report writes a PASS/FAIL header followed by one line per failure.
func (r Result) Report(w io.Writer) error {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	if r.Bool() {
		_, err := fmt.Fprintln(w, green("PASS"))
		return err
	}
	if _, err := fmt.Fprintf(w, "%s (%d)\n", red("FAIL"), len(r.failures)); err != nil {
		return err
	}
	for _, msg := range r.failures {
		if _, err := fmt.Fprintf(w, "  %s %s\n", yellow("-"), msg); err != nil {
			return err
		}
	}
	return nil
}

// ReportString is Report into a string.
func (r Result) ReportString() string {
	var sb strings.Builder
	_ = r.Report(&sb)
	return sb.String()
}
