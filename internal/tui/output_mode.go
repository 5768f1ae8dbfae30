package tui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// OutputMode selects how CLI output is rendered.
type OutputMode int

const (
	// OutputModePlain is unstyled text, suitable for pipes and scripts.
	OutputModePlain OutputMode = iota

	// OutputModeStyled is lipgloss-colored terminal output.
	OutputModeStyled
)

// DetectOutputMode picks the output mode for f. Plain wins whenever the
// user asked for it, NO_COLOR is set, or f is not a terminal.
func DetectOutputMode(plainFlag bool, f *os.File) OutputMode {
	if plainFlag {
		return OutputModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return OutputModePlain
	}
	return OutputModeStyled
}

// RenderError formats an error message for mode.
func RenderError(err error, mode OutputMode) string {
	msg := fmt.Sprintf("Error: %v", err)
	if mode == OutputModeStyled {
		return ErrorStyle.Render(msg)
	}
	return msg
}
