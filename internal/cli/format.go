package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgHiBlack)
	dimColor     = color.New(color.FgHiBlack)
)

// PrintSection prints a section header
func PrintSection(title string) {
	fmt.Fprintln(os.Stdout)
	_, _ = headerColor.Fprintf(os.Stdout, "▸ %s\n", title)
	fmt.Fprintln(os.Stdout)
}

// PrintSubsection prints a subsection header
func PrintSubsection(title string) {
	_, _ = infoColor.Fprintf(os.Stdout, "  %s\n", title)
}

// PrintSuccess prints a success message with a checkmark
func PrintSuccess(msg string) {
	_, _ = successColor.Fprintf(os.Stdout, "✓ %s\n", msg)
}

// PrintWarning prints a warning message with a warning symbol
func PrintWarning(msg string) {
	_, _ = warningColor.Fprintf(os.Stdout, "⚠ %s\n", msg)
}

// PrintError prints an error message to stderr
func PrintError(msg string) {
	_, _ = errorColor.Fprintf(os.Stderr, "✗ %s\n", msg)
}

// PrintInfo prints an informational message
func PrintInfo(msg string) {
	fmt.Fprintln(os.Stdout, msg)
}

// PrintLabelValue prints a label-value pair with proper formatting
func PrintLabelValue(label, value string) {
	_, _ = labelColor.Fprintf(os.Stdout, "  %s: ", label)
	_, _ = valueColor.Fprintln(os.Stdout, value)
}

// PrintTable prints a simple aligned table
func PrintTable(headers []string, rows [][]string) {
	if len(headers) == 0 || len(rows) == 0 {
		return
	}

	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) && len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	fmt.Fprint(os.Stdout, "  ")
	for i, header := range headers {
		if i > 0 {
			fmt.Fprint(os.Stdout, "  ")
		}
		_, _ = headerColor.Fprintf(os.Stdout, "%-*s", colWidths[i], header)
	}
	fmt.Fprintln(os.Stdout)

	fmt.Fprint(os.Stdout, "  ")
	for i, width := range colWidths {
		if i > 0 {
			fmt.Fprint(os.Stdout, "  ")
		}
		fmt.Fprint(os.Stdout, strings.Repeat("-", width))
	}
	fmt.Fprintln(os.Stdout)

	for _, row := range rows {
		fmt.Fprint(os.Stdout, "  ")
		for i, cell := range row {
			if i >= len(colWidths) {
				break
			}
			if i > 0 {
				fmt.Fprint(os.Stdout, "  ")
			}
			_, _ = valueColor.Fprintf(os.Stdout, "%-*s", colWidths[i], cell)
		}
		fmt.Fprintln(os.Stdout)
	}
}

// PrintEmptyState prints a message when there's no data to show
func PrintEmptyState(msg string) {
	_, _ = dimColor.Fprintf(os.Stdout, "  %s\n", msg)
}

// PrintCount prints a count with proper formatting
func PrintCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// progress redraws a single "[done/total]" line on a terminal.
// On anything that is not a terminal it stays silent.
type progress struct {
	w       io.Writer
	enabled bool
	open    bool
}

func newProgress(f *os.File) *progress {
	fd := f.Fd()
	return &progress{
		w:       f,
		enabled: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

func (p *progress) update(done, total int) {
	if !p.enabled {
		return
	}
	_, _ = dimColor.Fprintf(p.w, "\r  [%d/%d] rendered", done, total)
	p.open = done < total
	if !p.open {
		_, _ = fmt.Fprintln(p.w)
	}
}

// finish terminates a partially drawn progress line.
func (p *progress) finish() {
	if p.open {
		_, _ = fmt.Fprintln(p.w)
		p.open = false
	}
}
