package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/vizioz/task-issues/pkg/taskissues"
)

var warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

// Notice writes an informational message titled like every ti notice.
func Notice(w io.Writer, format string, args ...interface{}) {
	if Quiet {
		return
	}
	fmt.Fprintf(w, "%s: %s\n", taskissues.NoticeTitle, fmt.Sprintf(format, args...))
}

// Warn writes a warning the user should act on.
func Warn(w io.Writer, format string, args ...interface{}) {
	if Quiet {
		return
	}
	msg := fmt.Sprintf("%s: %s", taskissues.NoticeTitle, fmt.Sprintf(format, args...))
	fmt.Fprintln(w, warningStyle.Render(msg))
}
