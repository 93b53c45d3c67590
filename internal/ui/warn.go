package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var warnColor = lipgloss.Color("11")

// Warn writes "Warning: <msg>" to w. The label is colored only when w is a
// terminal.
func Warn(w io.Writer, format string, args ...any) {
	label := lipgloss.NewRenderer(w).NewStyle().Bold(true).Foreground(warnColor).Render("Warning:")
	fmt.Fprintf(w, "%s %s\n", label, fmt.Sprintf(format, args...))
}
