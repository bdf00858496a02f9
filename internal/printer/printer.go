package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style definitions for status lines.
var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
)

var out io.Writer = os.Stdout

// SetOutput redirects printed lines. It returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// SetNoColor disables ANSI styling when noColor is true.
func SetNoColor(noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// Faint returns text with faint styling.
func Faint(text string) string { return faintStyle.Render(text) }

// Bold returns text with bold styling.
func Bold(text string) string { return boldStyle.Render(text) }

// Success returns text with success (green) styling.
func Success(text string) string { return successStyle.Render(text) }

// Error returns text with error (red) styling.
func Error(text string) string { return errorStyle.Render(text) }

// Warning returns text with warning (yellow) styling.
func Warning(text string) string { return warningStyle.Render(text) }

// PrintUpToDate reports a destination whose content was already current.
func PrintUpToDate(dest string) {
	fmt.Fprintln(out, Faint(fmt.Sprintf("%s up-to-date.", dest)))
}

// PrintUpdated reports a destination that was rewritten with version.
func PrintUpdated(dest, version string) {
	fmt.Fprintf(out, "%s %s\n", Success(dest+" updated."), Faint("("+version+")"))
}

// PrintWouldUpdate reports a destination a dry run left untouched.
func PrintWouldUpdate(dest, version string) {
	fmt.Fprintf(out, "%s %s\n", Warning(dest+" would be updated."), Faint("("+version+")"))
}

// PrintNotice prints an informational line without styling.
func PrintNotice(text string) {
	fmt.Fprintln(out, text)
}

// PrintError prints text with error (red) styling.
func PrintError(text string) {
	fmt.Fprintln(out, Error(text))
}

// PrintField prints an aligned "label: value" line.
func PrintField(label, value string) {
	fmt.Fprintf(out, "%s %s\n", Bold(fmt.Sprintf("%-18s", label+":")), value)
}
