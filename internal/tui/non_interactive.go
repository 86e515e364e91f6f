package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/EmundoT/deployfix/internal/core"
)

// NonInteractiveTUICallback handles output for pipes, CI, --quiet and --json.
type NonInteractiveTUICallback struct {
	flags core.NonInteractiveFlags
	// nil means the process streams, resolved at write time
	stdout io.Writer
	stderr io.Writer
}

// NewNonInteractiveTUICallback creates a new non-interactive callback
func NewNonInteractiveTUICallback(flags core.NonInteractiveFlags) *NonInteractiveTUICallback {
	return &NonInteractiveTUICallback{flags: flags}
}

// WithOutput redirects the callback's stdout and stderr.
func (n *NonInteractiveTUICallback) WithOutput(stdout, stderr io.Writer) *NonInteractiveTUICallback {
	n.stdout = stdout
	n.stderr = stderr
	return n
}

func (n *NonInteractiveTUICallback) out() io.Writer {
	if n.stdout != nil {
		return n.stdout
	}
	return os.Stdout
}

func (n *NonInteractiveTUICallback) errOut() io.Writer {
	if n.stderr != nil {
		return n.stderr
	}
	return os.Stderr
}

// ShowError displays an error message
func (n *NonInteractiveTUICallback) ShowError(title, message string) {
	switch n.flags.Mode {
	case core.OutputJSON:
		_ = n.EmitEvent(core.Event{Level: core.EventError, Title: title, Message: message})
	case core.OutputNormal:
		fmt.Fprintf(n.errOut(), "Error: %s - %s\n", title, message)
	}
}

// ShowSuccess displays a success message
func (n *NonInteractiveTUICallback) ShowSuccess(message string) {
	switch n.flags.Mode {
	case core.OutputJSON:
		_ = n.EmitEvent(core.Event{Level: core.EventInfo, Message: message})
	case core.OutputNormal:
		fmt.Fprintln(n.out(), message)
	}
}

// ShowWarning displays a warning message on stderr.
func (n *NonInteractiveTUICallback) ShowWarning(title, message string) {
	switch n.flags.Mode {
	case core.OutputJSON:
		_ = n.EmitEvent(core.Event{Level: core.EventWarning, Title: title, Message: message})
	case core.OutputNormal:
		fmt.Fprintf(n.errOut(), "Warning: %s - %s\n", title, message)
	}
}

// AskConfirmation handles confirmation prompts
func (n *NonInteractiveTUICallback) AskConfirmation(title, message string) bool {
	if n.flags.Yes {
		return true
	}
	// Without --yes there is nobody to ask, so refuse to write.
	n.ShowWarning("Interactive Prompt Required",
		fmt.Sprintf("%s: %s\nUse --yes to auto-approve", title, message))
	return false
}

// StyleTitle returns a styled title (no styling in non-interactive mode)
func (n *NonInteractiveTUICallback) StyleTitle(title string) string {
	return title
}

// StartProgress returns a text tracker in normal mode and a no-op otherwise.
func (n *NonInteractiveTUICallback) StartProgress(total int, label string) core.ProgressTracker {
	if n.flags.Mode == core.OutputNormal {
		return newTextProgressTracker(n.out(), total, label)
	}
	return NewNoOpProgressTracker()
}

// GetOutputMode returns the current output mode
func (n *NonInteractiveTUICallback) GetOutputMode() core.OutputMode {
	return n.flags.Mode
}

// IsAutoApprove returns whether auto-approve is enabled
func (n *NonInteractiveTUICallback) IsAutoApprove() bool {
	return n.flags.Yes
}

// EmitEvent writes ev to stderr as a single JSON line.
func (n *NonInteractiveTUICallback) EmitEvent(ev core.Event) error {
	return json.NewEncoder(n.errOut()).Encode(ev)
}
